package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	MsgInvalidInput = "Invalid input, please enter two integers for row and col."
	MsgInvalidMove  = "Invalid move, try again."
)

// Player is a participant that owns one mark for the whole game.
type Player interface {
	Mark() entity.Mark
	SelectMove(ctx context.Context, board *entity.Board) (entity.Move, error)
}

type moveReader interface {
	ReadMove(prompt string) (row, col int, err error)
}

type messageDisplay interface {
	DisplayMessage(text string)
}

type humanPlayer struct {
	mark   entity.Mark
	input  moveReader
	output messageDisplay
}

func NewHumanPlayer(mark entity.Mark, input moveReader, output messageDisplay) Player {
	return &humanPlayer{
		mark:   mark,
		input:  input,
		output: output,
	}
}

func (that *humanPlayer) Mark() entity.Mark {
	return that.mark
}

// SelectMove keeps prompting until the input names an empty cell on the
// board. Malformed, out of range and occupied inputs are reported and
// retried; any other reader error ends the game.
func (that *humanPlayer) SelectMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	prompt := fmt.Sprintf("Enter your move (row, col) for %s: ", that.mark)

	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, err
		}

		row, col, err := that.input.ReadMove(prompt)
		if errors.Is(err, apperror.ErrInvalidInput) {
			that.output.DisplayMessage(MsgInvalidInput)
			continue
		}

		if err != nil {
			return entity.Move{}, fmt.Errorf("failed to read move: %w", err)
		}

		if cell, cellErr := board.Cell(row, col); cellErr != nil || cell != entity.EmptyCell {
			that.output.DisplayMessage(MsgInvalidMove)
			continue
		}

		return entity.Move{Row: row, Col: col, Mark: that.mark}, nil
	}
}

type botPlayer struct {
	mark       entity.Mark
	botService BotService
}

func NewBotPlayer(mark entity.Mark, botService BotService) Player {
	return &botPlayer{
		mark:       mark,
		botService: botService,
	}
}

func (that *botPlayer) Mark() entity.Mark {
	return that.mark
}

func (that *botPlayer) SelectMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	if err := ctx.Err(); err != nil {
		return entity.Move{}, err
	}

	move, err := that.botService.FindBestMove(board, that.mark)
	if err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to find a move: %w", err)
	}

	return move, nil
}
