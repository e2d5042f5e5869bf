package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/theirongolddev/ctxline/internal/theme"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(th theme.Theme, title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(lipgloss.NewStyle().Bold(true).Foreground(th.TextPrimary).Render(title))
}

// RenderTable renders a bordered table. The first column is left-aligned,
// the rest are right-aligned numbers.
func RenderTable(th theme.Theme, t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(th.Accent).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(th.TextPrimary).Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(th.TextDim)).
		Headers(t.Headers...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = header
			}
			if col > 0 {
				return s.Align(lipgloss.Right)
			}
			return s
		})

	out := tbl.Render() + "\n"
	if t.Title != "" {
		out = "  " + header.UnsetPadding().Render(t.Title) + "\n" + out
	}
	return out
}

// Label renders muted label text.
func Label(th theme.Theme, s string) string {
	return lipgloss.NewStyle().Foreground(th.TextMuted).Render(s)
}
