package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playgridlabs/tictactoe-console/internal/config"
	"github.com/playgridlabs/tictactoe-console/internal/entity"
	"github.com/playgridlabs/tictactoe-console/transport/terminal"
)

var ErrUnknownMark = errors.New("unknown first-turn mark")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	firstTurn := conf.Game.FirstTurn
	if firstTurn != entity.PlayerX && firstTurn != entity.PlayerO {
		return fmt.Errorf("%w: %q", ErrUnknownMark, firstTurn)
	}

	game := entity.NewGame(firstTurn)
	srv := terminal.New(logger, game, os.Stdin, os.Stdout)

	log.Info("Starting console session", "first_turn", firstTurn)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("console session error: %w", err)
	}

	return nil
}
