package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotService picks moves for the computer player.
type BotService interface {
	FindBestMove(board *entity.Board, mark entity.Mark) (entity.Move, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// FindBestMove runs a full minimax search and returns the first move, in
// row-major order, with the highest guaranteed score for mark. The board is
// mutated while searching and restored before returning.
func (that *botService) FindBestMove(board *entity.Board, mark entity.Mark) (entity.Move, error) {
	if !mark.IsValid() {
		return entity.Move{}, fmt.Errorf("%w: %w %q", apperror.ErrInvariantViolation, apperror.ErrInvalidMark, mark)
	}

	if board.CheckWinner(mark) || board.CheckWinner(mark.Opponent()) {
		return entity.Move{}, fmt.Errorf("%w: search on a decided board", apperror.ErrInvariantViolation)
	}

	candidates := board.EmptyCells()
	if len(candidates) == 0 {
		return entity.Move{}, fmt.Errorf("%w: %w", apperror.ErrInvariantViolation, ErrNoAvailableMoves)
	}

	s := &search{
		board:    board,
		own:      mark,
		opponent: mark.Opponent(),
	}

	bestScore := math.MinInt
	var bestMove entity.Move

	for _, candidate := range candidates {
		score := s.try(candidate.Row, candidate.Col, s.own, false)

		if score > bestScore {
			bestScore = score
			bestMove = candidate
		}
	}

	bestMove.Mark = mark

	that.logger.Debug("best move found",
		"mark", mark,
		"move", bestMove.String(),
		"score", bestScore,
		"positions", s.visited,
	)

	return bestMove, nil
}

// search holds the state of one FindBestMove call. Scores are always from
// the point of view of own.
type search struct {
	board    *entity.Board
	own      entity.Mark
	opponent entity.Mark
	visited  int
}

func (that *search) minimax(maximizing bool) int {
	that.visited++

	switch {
	case that.board.CheckWinner(that.own):
		return scoreWin
	case that.board.CheckWinner(that.opponent):
		return scoreLoss
	case that.board.IsFull():
		return scoreDraw
	}

	mark := that.opponent
	best := math.MaxInt
	if maximizing {
		mark = that.own
		best = math.MinInt
	}

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if cell, _ := that.board.Cell(row, col); cell != entity.EmptyCell {
				continue
			}

			score := that.try(row, col, mark, !maximizing)
			if maximizing {
				best = max(best, score)
			} else {
				best = min(best, score)
			}
		}
	}

	return best
}

// try places mark, scores the position and takes the mark back.
func (that *search) try(row, col int, mark entity.Mark, maximizing bool) int {
	if err := that.board.MakeMove(row, col, mark); err != nil {
		// only empty in-range cells are ever tried
		panic(fmt.Errorf("%w: %w", apperror.ErrInvariantViolation, err))
	}
	defer that.board.UndoMove(row, col)

	return that.minimax(maximizing)
}
