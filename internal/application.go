package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/transport/report"
	"github.com/rocketscienceinc/tictactoe/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
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

	engine := tictactoe.NewEngine(tictactoe.WithStartingPlayer(entity.Mark(conf.Game.StartingPlayer)))
	session := usecase.NewSession(logger, engine)

	log.Info("Starting session", "starting_player", engine.StartingPlayer())

	if err := tui.Run(ctx, logger, session, conf.UI, in, out); err != nil {
		return fmt.Errorf("session ended with error: %w", err)
	}

	scores := session.Snapshot().Scores
	log.Info("Session finished", "scores", scores, "rounds", scores.Rounds())

	if err := report.WriteScores(out, scores); err != nil {
		return fmt.Errorf("could not print scores: %w", err)
	}

	return nil
}
