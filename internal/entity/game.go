package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusAwaitingMove = "awaiting_move"
	StatusFinished     = "finished"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one play session: the board, whose turn it is and the outcome.
type Game struct {
	ID     string
	Board  *Board
	Winner Mark
	Status string
	Turn   Mark
}

// NewGame starts an empty session with X to move.
func NewGame() *Game {
	return &Game{
		ID:     uuid.NewString(),
		Board:  NewBoard(),
		Turn:   PlayerX,
		Status: StatusAwaitingMove,
	}
}

// NewGameFromBoard resumes a session from an existing position.
func NewGameFromBoard(board *Board, turn Mark) (*Game, error) {
	if !turn.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, turn)
	}

	game := &Game{
		ID:     uuid.NewString(),
		Board:  board,
		Turn:   turn,
		Status: StatusAwaitingMove,
	}

	if result := game.DetermineGameResult(); result != EmptyCell {
		game.finish(result)
	}

	return game, nil
}

// DetermineGameResult returns the winning mark, PlayerTie for a full board
// without a winner, or EmptyCell while the game continues.
func (that *Game) DetermineGameResult() Mark {
	for _, mark := range []Mark{PlayerX, PlayerO} {
		if that.Board.CheckWinner(mark) {
			return mark
		}
	}

	if that.Board.IsFull() {
		return PlayerTie
	}

	return EmptyCell
}

// UpdateGameState evaluates the board after mover placed a mark.
func (that *Game) UpdateGameState(mover Mark) {
	switch {
	case that.Board.CheckWinner(mover):
		that.finish(mover)
	case that.Board.IsFull():
		that.finish(PlayerTie)
	default:
		that.Turn = mover.Opponent()
	}
}

func (that *Game) MakeTurn(move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != move.Mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.MakeMove(move.Row, move.Col, move.Mark); err != nil {
		return fmt.Errorf("failed to place %s at %s: %w", move.Mark, move, err)
	}

	that.UpdateGameState(move.Mark)

	return nil
}

// Reset clears the board in place and gives the first turn back to X.
func (that *Game) Reset() {
	that.Board = NewBoard()
	that.Turn = PlayerX
	that.Winner = EmptyCell
	that.Status = StatusAwaitingMove
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch that.Status {
	case StatusAwaitingMove:
		return nil
	case StatusFinished:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) finish(winner Mark) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = EmptyCell
}
