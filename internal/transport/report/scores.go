package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/presenter"
)

// WriteScores renders the session scoreboard as a table.
func WriteScores(out io.Writer, scores entity.ScoreBoard) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Player", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{string(entity.PlayerX), presenter.WinsLabel(scores.X)})
	table.Append([]string{string(entity.PlayerO), presenter.WinsLabel(scores.O)})
	table.Append([]string{"Draws", presenter.DrawsLabel(scores.Draws)})

	table.SetFooter([]string{"Rounds", fmt.Sprintf("%d", scores.Rounds())})

	table.Render()

	if _, err := fmt.Fprintf(out, "\n%s", tableBuffer.String()); err != nil {
		return fmt.Errorf("failed to write score table: %w", err)
	}

	return nil
}
