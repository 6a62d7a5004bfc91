package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs one game of the human (X) against the computer (O) on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return runSession(ctx, logger, conf, os.Stdin, os.Stdout)
}

// runSession plays one game on the given streams until it ends or ctx is
// canceled.
func runSession(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	log.Info("Starting game", "log-level", conf.LogLevel, "log-format", conf.LogFormat)

	// the human may be blocked on stdin, so the game runs aside and a
	// signal does not have to wait for the next line of input
	gameErrCh := make(chan error, 1)
	go func() {
		game, err := PlayGame(ctx, logger, in, out)
		if err == nil {
			log.Info("Game over", "gameID", game.ID, "winner", game.Winner)
		}
		gameErrCh <- err
	}()

	select {
	case err := <-gameErrCh:
		if err != nil {
			return fmt.Errorf("game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// PlayGame wires a fresh session to the given terminal streams and plays it
// to completion.
func PlayGame(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer) (*entity.Game, error) {
	renderer := console.NewRenderer(out)
	reader := console.NewReader(in, out)

	human := service.NewHumanPlayer(entity.PlayerX, reader, renderer)
	bot := service.NewBotPlayer(entity.PlayerO, service.NewBotService(logger))

	game := entity.NewGame()

	manager, err := usecase.NewGameManager(logger, game, human, bot, renderer)
	if err != nil {
		return nil, fmt.Errorf("could not start game: %w", err)
	}

	return manager.Run(ctx)
}
