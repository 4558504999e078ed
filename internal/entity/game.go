package entity

import (
	"github.com/samber/lo"
)

// Mark is the content of a board cell. PlayerX and PlayerO double as the two players.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

const BoardSize = 9

// WinLine holds three board positions that win when marked uniformly.
type WinLine [3]int

// WinLines are checked in this order: diagonals, columns, rows.
var WinLines = [8]WinLine{
	{0, 4, 8},
	{2, 4, 6},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
}

type Board [BoardSize]Mark

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player. Anything that is not a player maps to PlayerX.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) String() string {
	if that == EmptyCell {
		return " "
	}
	return string(that)
}

func (that Board) IsFull() bool {
	return lo.EveryBy(that[:], func(cell Mark) bool {
		return cell != EmptyCell
	})
}

func (that Board) IsEmpty() bool {
	return lo.EveryBy(that[:], func(cell Mark) bool {
		return cell == EmptyCell
	})
}

// CompletedLines returns every win line fully held by mark, in WinLines order.
func (that Board) CompletedLines(mark Mark) []WinLine {
	if !mark.IsPlayer() {
		return nil
	}

	return lo.Filter(WinLines[:], func(line WinLine, _ int) bool {
		return that[line[0]] == mark && that[line[1]] == mark && that[line[2]] == mark
	})
}

func IsValidPosition(position int) bool {
	return position >= 0 && position < BoardSize
}
