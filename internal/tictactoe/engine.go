package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Result describes the outcome of a successful PlaceMark call.
type Result struct {
	Status entity.GameStatus `json:"status"`

	// WinningLine is the first completed line found, set only on a win.
	WinningLine *entity.WinLine `json:"winning_line,omitempty"`
	// WinningLines holds every line the winning move completed.
	WinningLines []entity.WinLine `json:"winning_lines,omitempty"`
	// NextPlayer is set only while the round is still in progress.
	NextPlayer entity.Mark `json:"next_player,omitempty"`
}

// Engine owns the state of one game session. It does no locking: callers must serialize access.
type Engine struct {
	board         entity.Board
	currentPlayer entity.Mark
	startPlayer   entity.Mark
	status        entity.GameStatus
	scores        entity.ScoreBoard
}

type Option func(*Engine)

// WithStartingPlayer sets who opens every round. Values other than X or O are ignored.
func WithStartingPlayer(player entity.Mark) Option {
	return func(that *Engine) {
		if player.IsPlayer() {
			that.startPlayer = player
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{
		startPlayer: entity.PlayerX,
	}

	for _, opt := range opts {
		opt(engine)
	}

	engine.Reset()

	return engine
}

// PlaceMark writes the current player's mark at position (0-8) and evaluates the board.
// On error the engine state is left untouched.
func (that *Engine) PlaceMark(position int) (Result, error) {
	if err := that.validateMove(position); err != nil {
		return Result{}, fmt.Errorf("invalid move: %w", err)
	}

	player := that.currentPlayer
	that.board[position] = player

	return that.updateGameStatus(player), nil
}

// Reset clears the board for a new round. Scores are kept.
func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.status = entity.InProgress()
	that.currentPlayer = that.startPlayer
}

func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) Status() entity.GameStatus {
	return that.status
}

func (that *Engine) CurrentPlayer() entity.Mark {
	return that.currentPlayer
}

func (that *Engine) Scores() entity.ScoreBoard {
	return that.scores
}

func (that *Engine) StartingPlayer() entity.Mark {
	return that.startPlayer
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(position int) error {
	if that.status.IsOver() {
		return apperror.ErrGameAlreadyOver
	}

	if !entity.IsValidPosition(position) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	if that.board[position] != entity.EmptyCell {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Engine) updateGameStatus(player entity.Mark) Result {
	// a win on the last free cell is a win, not a draw
	if lines := that.board.CompletedLines(player); len(lines) > 0 {
		that.finishRound(entity.Won(player))

		return Result{
			Status:       that.status,
			WinningLine:  &lines[0],
			WinningLines: lines,
		}
	}

	if that.board.IsFull() {
		that.finishRound(entity.Draw())

		return Result{Status: that.status}
	}

	that.currentPlayer = toggleMark(player)

	return Result{
		Status:     that.status,
		NextPlayer: that.currentPlayer,
	}
}

func (that *Engine) finishRound(status entity.GameStatus) {
	that.status = status
	that.scores.RecordOutcome(status)
}

func toggleMark(currentMark entity.Mark) entity.Mark {
	return currentMark.Opponent()
}
