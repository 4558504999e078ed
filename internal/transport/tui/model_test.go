package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

var uiConfig = config.UI{ColorX: "#EA2027", ColorO: "#25CCF7", ColorDraw: "#009432"}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, model Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		next, _ := model.Update(msg)

		var ok bool
		model, ok = next.(Model)
		require.True(t, ok)
	}

	return model
}

func TestModel_PlaceByNumber(t *testing.T) {
	t.Run("Tile numbers map to board positions", func(t *testing.T) {
		ctx, st := suite.New(t)
		model := NewModel(ctx, st.Session, uiConfig)

		// When: X presses 1 and O presses 9
		model = press(t, model, runes("1"), runes("9"))

		// Then: positions 0 and 8 hold the marks
		board := st.Session.Snapshot().Board
		assert.Equal(t, entity.PlayerX, board[0])
		assert.Equal(t, entity.PlayerO, board[8])
		assert.Equal(t, 8, model.cursor)
		assert.Empty(t, model.problem)
	})

	t.Run("Occupied tile shows a message and changes nothing", func(t *testing.T) {
		ctx, st := suite.New(t)
		model := NewModel(ctx, st.Session, uiConfig)

		// Given: X took tile 5
		model = press(t, model, runes("5"))
		before := st.Session.Snapshot()

		// When: O presses 5 as well
		model = press(t, model, runes("5"))

		// Then: the problem line is set and the session is untouched
		assert.Equal(t, "That tile is already taken.", model.problem)
		assert.Equal(t, before, st.Session.Snapshot())
		assert.Contains(t, model.View(), "That tile is already taken.")
	})
}

func TestModel_Cursor(t *testing.T) {
	ctx, st := suite.New(t)
	model := NewModel(ctx, st.Session, uiConfig)
	require.Equal(t, 4, model.cursor)

	// When: moving up, left, then left again at the edge
	model = press(t, model,
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyLeft},
		runes("h"),
	)

	// Then: the cursor stops at the top-left corner
	assert.Equal(t, 0, model.cursor)

	// When: moving up past the edge and selecting
	model = press(t, model, runes("k"), tea.KeyMsg{Type: tea.KeyEnter})

	// Then: X is placed at the top-left corner
	assert.Equal(t, 0, model.cursor)
	assert.Equal(t, entity.PlayerX, st.Session.Snapshot().Board[0])

	// When: moving down twice and right, then pressing space
	model = press(t, model, runes("j"), tea.KeyMsg{Type: tea.KeyDown}, runes("l"), tea.KeyMsg{Type: tea.KeySpace})

	// Then: O is placed at position 7
	assert.Equal(t, 7, model.cursor)
	assert.Equal(t, entity.PlayerO, st.Session.Snapshot().Board[7])
}

func TestModel_PlayAgain(t *testing.T) {
	t.Run("Play again is ignored mid-round", func(t *testing.T) {
		ctx, st := suite.New(t)
		model := NewModel(ctx, st.Session, uiConfig)

		// Given: one move played
		model = press(t, model, runes("1"))

		// When: r is pressed
		press(t, model, runes("r"))

		// Then: the move is still on the board
		assert.Equal(t, entity.PlayerX, st.Session.Snapshot().Board[0])
	})

	t.Run("Play again after a win keeps the score", func(t *testing.T) {
		ctx, st := suite.New(t)
		model := NewModel(ctx, st.Session, uiConfig)

		// Given: X wins the top row
		model = press(t, model, runes("1"), runes("4"), runes("2"), runes("5"), runes("3"))
		require.True(t, st.Session.Snapshot().Status.IsWon())

		view := model.View()
		assert.Contains(t, view, "X is the winner!")
		assert.Contains(t, view, "Congratulations")
		assert.Contains(t, view, "1 win")

		// When: another tile is pressed, then r
		model = press(t, model, runes("9"))
		assert.Equal(t, "The round is over. Press r to play again.", model.problem)
		model = press(t, model, runes("r"))

		// Then: the board is clear, X is up and the score stayed
		snapshot := st.Session.Snapshot()
		assert.True(t, snapshot.Board.IsEmpty())
		assert.Equal(t, entity.PlayerX, snapshot.CurrentPlayer)
		assert.Equal(t, entity.ScoreBoard{X: 1}, snapshot.Scores)
		assert.Empty(t, model.problem)
		assert.Contains(t, model.View(), "X's turn")
	})

	t.Run("Ctrl+r restarts mid-round", func(t *testing.T) {
		ctx, st := suite.New(t)
		model := NewModel(ctx, st.Session, uiConfig)

		// Given: one move played
		model = press(t, model, runes("1"))

		// When: ctrl+r is pressed
		press(t, model, tea.KeyMsg{Type: tea.KeyCtrlR})

		// Then: the board is clear
		assert.True(t, st.Session.Snapshot().Board.IsEmpty())
	})
}

func TestModel_DrawView(t *testing.T) {
	ctx, st := suite.New(t)
	model := NewModel(ctx, st.Session, uiConfig)

	// When: the board fills without a line
	model = press(t, model, runes("1"), runes("2"), runes("3"), runes("5"), runes("4"), runes("6"), runes("8"), runes("7"), runes("9"))

	// Then: the draw is shown
	view := model.View()
	assert.Contains(t, view, "Draw!")
	assert.Contains(t, view, "It's a draw")
	assert.Contains(t, view, "1 draw")
}

func TestModel_QuitAndHelp(t *testing.T) {
	ctx, st := suite.New(t)
	model := NewModel(ctx, st.Session, uiConfig)

	// When: help is toggled
	model = press(t, model, runes("?"))

	// Then: the full help is shown
	assert.True(t, model.help.ShowAll)
	assert.True(t, strings.Contains(model.View(), "restart round"))

	// When: q is pressed
	_, cmd := model.Update(runes("q"))

	// Then: the program is told to quit
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowSize(t *testing.T) {
	ctx, st := suite.New(t)
	model := NewModel(ctx, st.Session, uiConfig)

	model = press(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, model.help.Width)
	assert.Nil(t, model.Init())
}

func TestModel_RunesInOneMessage(t *testing.T) {
	ctx, st := suite.New(t)
	model := NewModel(ctx, st.Session, uiConfig)

	// When: several tiles and a quit arrive in a single key message
	next, cmd := model.Update(runes("15q"))

	// Then: each rune is handled in order and the quit is returned
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 4, next.(Model).cursor)

	board := st.Session.Snapshot().Board
	assert.Equal(t, entity.PlayerX, board[0])
	assert.Equal(t, entity.PlayerO, board[4])
}
