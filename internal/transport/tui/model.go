package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/presenter"
	"github.com/rocketscienceinc/tictactoe/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

const (
	title    = "Tic-Tac-Toe"
	boardDim = 3
)

type session interface {
	PlaceMark(ctx context.Context, position int) (tictactoe.Result, error)
	Reset(ctx context.Context)
	Snapshot() usecase.Snapshot
}

// Model is the bubbletea model for one game session. It never touches the engine directly.
type Model struct {
	ctx     context.Context
	session session

	keys   keyMap
	help   help.Model
	styles styles

	cursor  int
	problem string
}

func NewModel(ctx context.Context, session session, conf config.UI) Model {
	return Model{
		ctx:     ctx,
		session: session,
		keys:    newKeyMap(),
		help:    help.New(),
		styles:  newStyles(conf),
		cursor:  4,
	}
}

func (that Model) Init() tea.Cmd {
	return nil
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		that.help.Width = msg.Width

	case tea.KeyMsg:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 && !msg.Paste {
			return that.handleRunes(msg)
		}
		return that.handleKey(msg)
	}

	return that, nil
}

// handleRunes replays runes that arrived in one read as separate key presses.
func (that Model) handleRunes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var model tea.Model = that

	for _, r := range msg.Runes {
		next, cmd := model.(Model).handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: msg.Alt})
		if cmd != nil {
			return next, cmd
		}
		model = next
	}

	return model, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, that.keys.Quit):
		return that, tea.Quit

	case key.Matches(msg, that.keys.Help):
		that.help.ShowAll = !that.help.ShowAll

	case key.Matches(msg, that.keys.Place):
		// tiles are numbered 1-9 on screen, positions are 0-8
		position := int(msg.String()[0] - '1')
		that.cursor = position
		that.placeMark(position)

	case key.Matches(msg, that.keys.Select):
		that.placeMark(that.cursor)

	case key.Matches(msg, that.keys.Up):
		that.moveCursor(-boardDim)
	case key.Matches(msg, that.keys.Down):
		that.moveCursor(boardDim)
	case key.Matches(msg, that.keys.Left):
		if that.cursor%boardDim > 0 {
			that.moveCursor(-1)
		}
	case key.Matches(msg, that.keys.Right):
		if that.cursor%boardDim < boardDim-1 {
			that.moveCursor(1)
		}

	case key.Matches(msg, that.keys.PlayAgain):
		// the button only exists once a round is over
		if that.session.Snapshot().Status.IsOver() {
			that.reset()
		}

	case key.Matches(msg, that.keys.ForceReset):
		that.reset()
	}

	return that, nil
}

func (that *Model) placeMark(position int) {
	that.problem = ""

	if _, err := that.session.PlaceMark(that.ctx, position); err != nil {
		that.problem = describeError(err)
	}
}

func (that *Model) reset() {
	that.problem = ""
	that.session.Reset(that.ctx)
}

func (that *Model) moveCursor(delta int) {
	if next := that.cursor + delta; entity.IsValidPosition(next) {
		that.cursor = next
	}
}

func (that Model) View() string {
	view := presenter.Present(that.session.Snapshot())

	var b strings.Builder

	b.WriteString(that.styles.title.Render(title))
	b.WriteString("\n")
	b.WriteString(that.styles.colored(view.IndicatorTone).Render(view.Indicator))
	b.WriteString("\n")
	b.WriteString(that.renderBoard(view))

	if view.Message != "" {
		b.WriteString("\n")
		b.WriteString(that.styles.message.Render(view.Message))
		if view.PlayAgain {
			b.WriteString("  (press r to play again)")
		}
	}

	if that.problem != "" {
		b.WriteString("\n")
		b.WriteString(that.styles.errorLine.Render(that.problem))
	}

	b.WriteString("\n")
	b.WriteString(that.styles.scores.Render(that.renderScores(view)))
	b.WriteString("\n\n")
	b.WriteString(that.help.View(that.keys))
	b.WriteString("\n")

	return b.String()
}

func (that Model) renderBoard(view presenter.View) string {
	rows := make([]string, 0, boardDim)

	for row := 0; row < boardDim; row++ {
		cells := make([]string, 0, boardDim)
		for col := 0; col < boardDim; col++ {
			position := row*boardDim + col
			cells = append(cells, that.styles.renderCell(view.Cells[position], position == that.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that Model) renderScores(view presenter.View) string {
	return strings.Join([]string{
		that.styles.colored(presenter.ToneX).Render("X") + " " + view.XScore,
		that.styles.colored(presenter.ToneO).Render("O") + " " + view.OScore,
		that.styles.colored(presenter.ToneDraw).Render("Draws") + " " + view.DrawScore,
	}, "   ")
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameAlreadyOver):
		return "The round is over. Press r to play again."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That tile is already taken."
	case errors.Is(err, apperror.ErrInvalidPosition):
		return "There is no such tile."
	default:
		return err.Error()
	}
}
