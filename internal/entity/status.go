package entity

import "fmt"

type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDraw       State = "draw"
)

// GameStatus is InProgress, Won(Winner) or Draw. Winner is only set for StateWon.
type GameStatus struct {
	State  State `json:"state"`
	Winner Mark  `json:"winner,omitempty"`
}

func InProgress() GameStatus {
	return GameStatus{State: StateInProgress}
}

func Won(winner Mark) GameStatus {
	return GameStatus{State: StateWon, Winner: winner}
}

func Draw() GameStatus {
	return GameStatus{State: StateDraw}
}

func (that GameStatus) IsInProgress() bool {
	return that.State == StateInProgress
}

func (that GameStatus) IsWon() bool {
	return that.State == StateWon
}

func (that GameStatus) IsDraw() bool {
	return that.State == StateDraw
}

func (that GameStatus) IsOver() bool {
	return that.IsWon() || that.IsDraw()
}

func (that GameStatus) String() string {
	if that.IsWon() {
		return fmt.Sprintf("%s(%s)", that.State, that.Winner)
	}
	return string(that.State)
}

// ScoreBoard survives round resets for the lifetime of a session.
type ScoreBoard struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// Wins returns the number of rounds won by player.
func (that ScoreBoard) Wins(player Mark) int {
	switch player {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return 0
	}
}

// Rounds returns the number of completed rounds.
func (that ScoreBoard) Rounds() int {
	return that.X + that.O + that.Draws
}

func (that *ScoreBoard) recordWin(player Mark) {
	switch player {
	case PlayerX:
		that.X++
	case PlayerO:
		that.O++
	}
}

func (that *ScoreBoard) recordDraw() {
	that.Draws++
}

// RecordOutcome increments the counter matching a finished round. In-progress statuses are ignored.
func (that *ScoreBoard) RecordOutcome(status GameStatus) {
	switch status.State {
	case StateWon:
		that.recordWin(status.Winner)
	case StateDraw:
		that.recordDraw()
	case StateInProgress:
	}
}
