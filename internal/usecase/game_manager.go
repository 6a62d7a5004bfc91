package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
)

const MsgDraw = "It's a draw!"

type gameDisplay interface {
	DisplayBoard(grid entity.Grid)
	DisplayMessage(text string)
}

// GameManager runs one session: it asks the player on turn for a move,
// applies it and stops once the game is won or drawn.
type GameManager struct {
	logger *slog.Logger

	game    *entity.Game
	players [2]service.Player
	output  gameDisplay
}

func NewGameManager(logger *slog.Logger, game *entity.Game, first, second service.Player, output gameDisplay) (*GameManager, error) {
	if !first.Mark().IsValid() || second.Mark() != first.Mark().Opponent() {
		return nil, fmt.Errorf("%w: players need distinct X and O marks, got %q and %q",
			apperror.ErrInvariantViolation, first.Mark(), second.Mark())
	}

	if !game.IsFinished() && game.Turn != first.Mark() {
		return nil, fmt.Errorf("%w: %s is on turn but the first player is %s",
			apperror.ErrInvariantViolation, game.Turn, first.Mark())
	}

	return &GameManager{
		logger:  logger.With("component", "game_manager", "gameID", game.ID),
		game:    game,
		players: [2]service.Player{first, second},
		output:  output,
	}, nil
}

// Run plays the game to the end and returns its final state.
func (that *GameManager) Run(ctx context.Context) (*entity.Game, error) {
	log := that.logger.With("method", "Run")

	that.output.DisplayBoard(that.game.Board.Snapshot())

	for !that.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return that.game, fmt.Errorf("game interrupted: %w", err)
		}

		if err := that.MakeTurn(ctx); err != nil {
			return that.game, err
		}
	}

	log.Info("game finished", "winner", that.game.Winner)
	that.output.DisplayMessage(resultMessage(that.game.Winner))

	return that.game, nil
}

// MakeTurn lets the player on turn move once and shows the new board.
func (that *GameManager) MakeTurn(ctx context.Context) error {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	player := that.currentPlayer()

	move, err := player.SelectMove(ctx, that.game.Board)
	if err != nil {
		return fmt.Errorf("player %s failed to select a move: %w", player.Mark(), err)
	}

	// players only hand out legal moves, so a rejection here is a bug
	if err = that.game.MakeTurn(move); err != nil {
		return fmt.Errorf("%w: move %s by %s rejected: %w", apperror.ErrInvariantViolation, move, player.Mark(), err)
	}

	that.logger.Debug("move applied", "mark", move.Mark, "row", move.Row, "col", move.Col)
	that.output.DisplayBoard(that.game.Board.Snapshot())

	return nil
}

func (that *GameManager) currentPlayer() service.Player {
	if that.players[0].Mark() == that.game.Turn {
		return that.players[0]
	}

	return that.players[1]
}

func resultMessage(winner entity.Mark) string {
	if winner == entity.PlayerTie {
		return MsgDraw
	}

	return fmt.Sprintf("%s wins!", winner)
}
