// Package presenter turns session snapshots into display data without knowing how it is drawn.
package presenter

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const (
	messageWin  = "Congratulations"
	messageDraw = "It's a draw"
	draw        = "Draw!"
)

// Tone tells an adapter which palette entry to use.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneX
	ToneO
	ToneDraw
)

type Cell struct {
	// Label is the tile number (1-9) for empty cells and the mark otherwise.
	Label       string
	Mark        entity.Mark
	Tone        Tone
	Highlighted bool
}

type View struct {
	Cells     [entity.BoardSize]Cell
	Indicator string
	// IndicatorTone follows the current player or the winner, and is neutral on a draw.
	IndicatorTone Tone
	Message       string
	XScore        string
	OScore        string
	DrawScore     string
	PlayAgain     bool
}

func Present(snapshot usecase.Snapshot) View {
	view := View{
		XScore:    WinsLabel(snapshot.Scores.X),
		OScore:    WinsLabel(snapshot.Scores.O),
		DrawScore: DrawsLabel(snapshot.Scores.Draws),
		PlayAgain: snapshot.Status.IsOver(),
	}

	highlighted := highlightedCells(snapshot)

	for i, mark := range snapshot.Board {
		cell := Cell{
			Label:       fmt.Sprintf("%d", i+1),
			Mark:        mark,
			Tone:        toneOf(mark),
			Highlighted: highlighted[i],
		}
		if mark != entity.EmptyCell {
			cell.Label = string(mark)
		}
		if snapshot.Status.IsDraw() {
			cell.Tone = ToneDraw
		}

		view.Cells[i] = cell
	}

	switch {
	case snapshot.Status.IsWon():
		view.Indicator = fmt.Sprintf("%s is the winner!", snapshot.Status.Winner)
		view.IndicatorTone = toneOf(snapshot.Status.Winner)
		view.Message = messageWin
	case snapshot.Status.IsDraw():
		view.Indicator = draw
		view.IndicatorTone = ToneNeutral
		view.Message = messageDraw
	default:
		view.Indicator = fmt.Sprintf("%s's turn", snapshot.CurrentPlayer)
		view.IndicatorTone = toneOf(snapshot.CurrentPlayer)
	}

	return view
}

func WinsLabel(count int) string {
	return countLabel(count, "win", "wins")
}

func DrawsLabel(count int) string {
	return countLabel(count, "draw", "draws")
}

func countLabel(count int, singular, plural string) string {
	if count == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func highlightedCells(snapshot usecase.Snapshot) [entity.BoardSize]bool {
	var highlighted [entity.BoardSize]bool

	switch {
	case snapshot.Status.IsDraw():
		for i := range highlighted {
			highlighted[i] = true
		}
	case snapshot.Status.IsWon():
		positions := lo.Uniq(lo.FlatMap(snapshot.WinningLines, func(line entity.WinLine, _ int) []int {
			return line[:]
		}))
		for _, position := range positions {
			highlighted[position] = true
		}
	}

	return highlighted
}

func toneOf(mark entity.Mark) Tone {
	switch mark {
	case entity.PlayerX:
		return ToneX
	case entity.PlayerO:
		return ToneO
	default:
		return ToneNeutral
	}
}
