package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/presenter"
)

type styles struct {
	title     lipgloss.Style
	cell      lipgloss.Style
	cursor    lipgloss.Style
	message   lipgloss.Style
	errorLine lipgloss.Style
	scores    lipgloss.Style

	tones     map[presenter.Tone]lipgloss.Color
	highlight map[presenter.Tone]lipgloss.Color
}

func newStyles(conf config.UI) styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		cell: lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")),
		cursor:    lipgloss.NewStyle().Underline(true).Bold(true),
		message:   lipgloss.NewStyle().Bold(true).MarginTop(1),
		errorLine: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		scores:    lipgloss.NewStyle().MarginTop(1),

		tones: map[presenter.Tone]lipgloss.Color{
			presenter.ToneNeutral: lipgloss.Color("7"),
			presenter.ToneX:       lipgloss.Color(conf.ColorX),
			presenter.ToneO:       lipgloss.Color(conf.ColorO),
			presenter.ToneDraw:    lipgloss.Color(conf.ColorDraw),
		},
		// light backgrounds the page used for winning and drawn tiles
		highlight: map[presenter.Tone]lipgloss.Color{
			presenter.ToneX:    lipgloss.Color("#FFE5FF"),
			presenter.ToneO:    lipgloss.Color("#DFF9FB"),
			presenter.ToneDraw: lipgloss.Color("#E6F7D8"),
		},
	}
}

func (that styles) renderCell(cell presenter.Cell, withCursor bool) string {
	color := that.tones[cell.Tone]

	style := that.cell.Foreground(color)
	if cell.Mark != "" {
		style = style.Bold(true)
	}
	if cell.Highlighted {
		style = style.BorderForeground(color).Background(that.highlight[cell.Tone])
	}

	label := cell.Label
	if withCursor {
		label = that.cursor.Render(label)
	}

	return style.Render(label)
}

func (that styles) colored(tone presenter.Tone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(that.tones[tone]).Bold(true)
}
