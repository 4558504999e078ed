package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// Run drives the terminal UI until the player quits or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, session session, conf config.UI, in io.Reader, out io.Writer) error {
	log := logger.With("component", "tui")

	options := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	}
	if conf.AltScreen {
		options = append(options, tea.WithAltScreen())
	}

	program := tea.NewProgram(NewModel(ctx, session, conf), options...)

	log.Info("Starting terminal UI")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("Terminal UI stopped by context", "reason", ctx.Err())
			return nil
		}

		return fmt.Errorf("terminal UI failed: %w", err)
	}

	log.Info("Terminal UI closed")

	return nil
}
