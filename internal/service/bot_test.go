package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

// scoreOf returns the minimax score of mark playing move on board.
func scoreOf(board *entity.Board, mark entity.Mark, move entity.Move) int {
	s := &search{board: board, own: mark, opponent: mark.Opponent()}

	return s.try(move.Row, move.Col, mark, false)
}

func TestBotService_FindBestMove(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBotService(st.Logger)

	t.Run("Empty board keeps the first of equally good moves", func(t *testing.T) {
		// Given: an empty board, where every opening is a draw with best play
		board := entity.NewBoard()

		// When: O searches as the maximizing root
		move, err := bot.FindBestMove(board, entity.PlayerO)

		// Then: the first cell in row-major order is chosen and is not losing
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 0, Mark: entity.PlayerO}, move)
		assert.Equal(t, scoreDraw, scoreOf(board, entity.PlayerO, move))

		// And: the board is left exactly as it was
		assert.Equal(t, entity.Grid{}, board.Snapshot())
	})

	t.Run("Blocks an immediate threat", func(t *testing.T) {
		// Given: X threatens the top row and O holds the center
		grid := entity.Grid{
			{x, x, e},
			{e, o, e},
			{e, e, e},
		}
		board := entity.NewBoardFromGrid(grid)

		// When: O searches for a move
		move, err := bot.FindBestMove(board, entity.PlayerO)

		// Then: O blocks at (0, 2), the only move that does not lose
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2, Mark: entity.PlayerO}, move)
		assert.Equal(t, scoreDraw, scoreOf(board, entity.PlayerO, move))
		assert.Equal(t, grid, board.Snapshot())

		for _, other := range board.EmptyCells() {
			if other.Row == 0 && other.Col == 2 {
				continue
			}
			assert.Equal(t, scoreLoss, scoreOf(board, entity.PlayerO, other), "move %s", other)
		}
	})

	t.Run("Blocks when X holds two cells of the top row", func(t *testing.T) {
		// Given: X at (0, 0) and (0, 1), O to move
		board := entity.NewBoardFromGrid(entity.Grid{
			{x, x, e},
			{e, e, e},
			{e, e, e},
		})

		// When: O searches for a move
		move, err := bot.FindBestMove(board, entity.PlayerO)

		// Then: O blocks at (0, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, move.Row)
		assert.Equal(t, 2, move.Col)
	})

	t.Run("Takes a forced win", func(t *testing.T) {
		// Given: O can complete the middle row, X threatens the bottom row
		board := entity.NewBoardFromGrid(entity.Grid{
			{x, e, e},
			{o, o, e},
			{e, x, x},
		})

		// When: O searches for a move
		move, err := bot.FindBestMove(board, entity.PlayerO)

		// Then: O wins at (1, 2)
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 1, Col: 2, Mark: entity.PlayerO}, move)
		assert.Equal(t, scoreWin, scoreOf(board, entity.PlayerO, move))
	})

	t.Run("Forced loss scores every move -1 and keeps the first", func(t *testing.T) {
		// Given: X has a double threat on (0, 2) and (2, 0)
		board := entity.NewBoardFromGrid(entity.Grid{
			{x, x, e},
			{x, o, e},
			{e, e, o},
		})

		// Then: every reply loses
		for _, candidate := range board.EmptyCells() {
			assert.Equal(t, scoreLoss, scoreOf(board, entity.PlayerO, candidate), "move %s", candidate)
		}

		// When: O searches for a move
		move, err := bot.FindBestMove(board, entity.PlayerO)

		// Then: the first empty cell is returned
		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 0, Col: 2, Mark: entity.PlayerO}, move)
	})

	t.Run("Single empty cell", func(t *testing.T) {
		board := entity.NewBoardFromGrid(entity.Grid{
			{x, o, x},
			{x, o, o},
			{o, x, e},
		})

		move, err := bot.FindBestMove(board, entity.PlayerX)

		require.NoError(t, err)
		assert.Equal(t, entity.Move{Row: 2, Col: 2, Mark: entity.PlayerX}, move)
	})
}

func TestBotService_FindBestMove_Preconditions(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBotService(st.Logger)

	t.Run("Full board", func(t *testing.T) {
		board := entity.NewBoardFromGrid(entity.Grid{
			{o, x, o},
			{o, x, x},
			{x, o, x},
		})

		_, err := bot.FindBestMove(board, entity.PlayerO)

		assert.ErrorIs(t, err, apperror.ErrInvariantViolation)
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Board already has a winner", func(t *testing.T) {
		board := entity.NewBoardFromGrid(entity.Grid{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		})

		_, err := bot.FindBestMove(board, entity.PlayerO)

		assert.ErrorIs(t, err, apperror.ErrInvariantViolation)
	})

	t.Run("Invalid mark", func(t *testing.T) {
		_, err := bot.FindBestMove(entity.NewBoard(), entity.PlayerTie)

		assert.ErrorIs(t, err, apperror.ErrInvariantViolation)
		assert.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestBotService_SelfPlayIsADraw(t *testing.T) {
	_, st := suite.New(t)
	bot := NewBotService(st.Logger)

	// Given: a new game
	game := entity.NewGame()

	// When: both sides play the engine's move until the game ends
	for !game.IsFinished() {
		move, err := bot.FindBestMove(game.Board, game.Turn)
		require.NoError(t, err)
		require.NoError(t, game.MakeTurn(move))
	}

	// Then: optimal play from the empty board is always a draw
	assert.True(t, game.IsDraw())
}

func TestSearch_Minimax(t *testing.T) {
	tests := []struct {
		name       string
		grid       entity.Grid
		maximizing bool
		want       int
	}{
		{
			name: "Own line scores a win",
			grid: entity.Grid{
				{o, o, o},
				{x, x, e},
				{x, e, e},
			},
			want: scoreWin,
		},
		{
			name: "Opponent line scores a loss",
			grid: entity.Grid{
				{x, x, x},
				{o, o, e},
				{e, e, e},
			},
			maximizing: true,
			want:       scoreLoss,
		},
		{
			name: "Full board without a line scores a draw",
			grid: entity.Grid{
				{o, x, o},
				{o, x, x},
				{x, o, x},
			},
			want: scoreDraw,
		},
		{
			name: "Own win is checked before the opponent's",
			grid: entity.Grid{
				{o, o, o},
				{x, x, x},
				{e, e, e},
			},
			want: scoreWin,
		},
		{
			name: "Minimizing ply lets the opponent win",
			grid: entity.Grid{
				{x, x, e},
				{o, o, e},
				{x, e, e},
			},
			want: scoreLoss,
		},
		{
			name: "Maximizing ply takes the win",
			grid: entity.Grid{
				{x, x, e},
				{o, o, e},
				{x, e, e},
			},
			maximizing: true,
			want:       scoreWin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := entity.NewBoardFromGrid(tt.grid)
			s := &search{board: board, own: entity.PlayerO, opponent: entity.PlayerX}

			assert.Equal(t, tt.want, s.minimax(tt.maximizing))
			assert.Equal(t, tt.grid, board.Snapshot())
			assert.Positive(t, s.visited)
		})
	}
}
