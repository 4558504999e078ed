package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinLines(t *testing.T) {
	t.Run("Covers every row, column and diagonal exactly once", func(t *testing.T) {
		// Given: the eight lines of a 3x3 board
		expected := []WinLine{
			{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
			{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
			{0, 4, 8}, {2, 4, 6},
		}

		// Then: the table holds all of them
		assert.ElementsMatch(t, expected, WinLines[:])
	})

	t.Run("Diagonals are checked first", func(t *testing.T) {
		assert.Equal(t, WinLine{0, 4, 8}, WinLines[0])
		assert.Equal(t, WinLine{2, 4, 6}, WinLines[1])
	})
}

func TestBoard_CompletedLines(t *testing.T) {
	t.Run("Returns the row held by X", func(t *testing.T) {
		// Given: a board where X holds the top row
		board := Board{
			PlayerX, PlayerX, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		}

		// When: looking for X's lines
		lines := board.CompletedLines(PlayerX)

		// Then: only the top row is returned
		assert.Equal(t, []WinLine{{0, 1, 2}}, lines)
		assert.Empty(t, board.CompletedLines(PlayerO))
	})

	t.Run("Returns every line when a move completes several", func(t *testing.T) {
		// Given: X holds a column, a row and a diagonal through the corner
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerX, PlayerX, PlayerO,
			PlayerX, PlayerO, PlayerO,
		}

		// When: looking for X's lines
		lines := board.CompletedLines(PlayerX)

		// Then: lines come back in check order
		assert.Equal(t, []WinLine{{2, 4, 6}, {0, 3, 6}, {0, 1, 2}}, lines)
	})

	t.Run("Empty cells never form a line", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// Then: no line is complete for an empty mark
		assert.Empty(t, board.CompletedLines(EmptyCell))
	})
}

func TestBoard_Fill(t *testing.T) {
	t.Run("Full board", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		assert.True(t, board.IsFull())
		assert.False(t, board.IsEmpty())
	})

	t.Run("Partially filled board", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}

		assert.False(t, board.IsFull())
		assert.False(t, board.IsEmpty())
	})

	t.Run("Empty board", func(t *testing.T) {
		board := Board{}

		assert.True(t, board.IsEmpty())
		assert.False(t, board.IsFull())
	})
}

func TestMark(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.True(t, PlayerX.IsPlayer())
	assert.False(t, EmptyCell.IsPlayer())
	assert.Equal(t, " ", EmptyCell.String())
	assert.Equal(t, "O", PlayerO.String())
}

func TestIsValidPosition(t *testing.T) {
	assert.True(t, IsValidPosition(0))
	assert.True(t, IsValidPosition(8))
	assert.False(t, IsValidPosition(-1))
	assert.False(t, IsValidPosition(9))
}
