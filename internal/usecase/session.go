package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
)

type gameEngine interface {
	PlaceMark(position int) (tictactoe.Result, error)
	Reset()

	Board() entity.Board
	Status() entity.GameStatus
	CurrentPlayer() entity.Mark
	Scores() entity.ScoreBoard
}

// Snapshot is a consistent read of the session taken under a single lock.
type Snapshot struct {
	Board         entity.Board
	Status        entity.GameStatus
	CurrentPlayer entity.Mark
	Scores        entity.ScoreBoard
	// WinningLines is non-empty only when Status is won.
	WinningLines []entity.WinLine
}

func (that Snapshot) Rounds() int {
	return that.Scores.Rounds()
}

// Session is the single owner of an engine and serializes every call into it.
type Session struct {
	logger *slog.Logger

	mu     sync.Mutex
	engine gameEngine
}

func NewSession(logger *slog.Logger, engine gameEngine) *Session {
	return &Session{
		logger: logger.With("component", "session"),
		engine: engine,
	}
}

func (that *Session) PlaceMark(ctx context.Context, position int) (tictactoe.Result, error) {
	log := that.logger.With("method", "PlaceMark")

	that.mu.Lock()
	defer that.mu.Unlock()

	player := that.engine.CurrentPlayer()

	result, err := that.engine.PlaceMark(position)
	if err != nil {
		if isRejectedMove(err) {
			log.WarnContext(ctx, "move rejected", "player", player, "position", position, "error", err)
		} else {
			log.ErrorContext(ctx, "failed to place mark", "player", player, "position", position, "error", err)
		}

		return tictactoe.Result{}, fmt.Errorf("failed to place mark: %w", err)
	}

	log.DebugContext(ctx, "mark placed", "player", player, "position", position, "status", result.Status.String())

	switch {
	case result.Status.IsWon():
		log.InfoContext(ctx, "round won",
			"winner", result.Status.Winner,
			"lines", result.WinningLines,
			"scores", that.engine.Scores(),
		)
	case result.Status.IsDraw():
		log.InfoContext(ctx, "round drawn", "scores", that.engine.Scores())
	}

	return result, nil
}

// Reset starts a new round. Scores are kept.
func (that *Session) Reset(ctx context.Context) {
	log := that.logger.With("method", "Reset")

	that.mu.Lock()
	defer that.mu.Unlock()

	abandoned := that.engine.Status().IsInProgress() && !that.engine.Board().IsEmpty()

	that.engine.Reset()

	log.InfoContext(ctx, "board reset",
		"abandoned_round", abandoned,
		"starting_player", that.engine.CurrentPlayer(),
		"scores", that.engine.Scores(),
	)
}

func (that *Session) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	snapshot := Snapshot{
		Board:         that.engine.Board(),
		Status:        that.engine.Status(),
		CurrentPlayer: that.engine.CurrentPlayer(),
		Scores:        that.engine.Scores(),
	}

	if snapshot.Status.IsWon() {
		snapshot.WinningLines = snapshot.Board.CompletedLines(snapshot.Status.Winner)
	}

	return snapshot
}

func isRejectedMove(err error) bool {
	return errors.Is(err, apperror.ErrInvalidPosition) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrGameAlreadyOver)
}
