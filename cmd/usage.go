package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/ctxline/internal/cli"
	"github.com/theirongolddev/ctxline/internal/source"
	"github.com/theirongolddev/ctxline/internal/statusline"
	"github.com/theirongolddev/ctxline/internal/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage <transcript.jsonl>",
	Short: "Break down the token usage behind the context gauge",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsage,
}

func init() {
	rootCmd.AddCommand(usageCmd)
}

func runUsage(cmd *cobra.Command, args []string) error {
	result := source.ReadTranscript(args[0])
	if result.Err != nil {
		return result.Err
	}

	th := theme.ByName(appConfig.Appearance.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderUsageReport(th, result))
	return nil
}

func renderUsageReport(th theme.Theme, result source.TranscriptResult) string {
	u := result.Usage
	total := u.Total()
	g := statusline.ComputeGauge(total)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(cli.RenderTitle(th, "CONTEXT USAGE"))
	b.WriteString("\n\n")

	row := func(label string, n int64) []string {
		return []string{label, cli.FormatNumber(n), cli.FormatShare(n, total)}
	}
	b.WriteString(cli.RenderTable(th, cli.Table{
		Title:   "Tokens",
		Headers: []string{"Counter", "Tokens", "Share"},
		Rows: [][]string{
			row("Input", u.InputTokens),
			row("Output", u.OutputTokens),
			row("Cache write", u.CacheCreationInputTokens),
			row("Cache read", u.CacheReadInputTokens),
			row("Total", total),
		},
	}))
	b.WriteString("\n")

	b.WriteString(cli.RenderTable(th, cli.Table{
		Title:   "Transcript",
		Headers: []string{"Lines", "Count"},
		Rows: [][]string{
			{"Non-blank", cli.FormatNumber(int64(result.Lines))},
			{"With usage", cli.FormatNumber(int64(result.UsageLines))},
			{"Skipped (unreadable)", cli.FormatNumber(int64(result.Skipped))},
		},
	}))
	b.WriteString("\n")

	bar := progress.New(
		progress.WithSolidFill(string(g.Tier.Color(th))),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(th.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(g.Tier.Color(th)).Bold(true)
	fmt.Fprintf(&b, "  %s %s\n", bar.ViewAs(g.Fraction()), pctStyle.Render(fmt.Sprintf("%d%%", g.Percentage)))
	fmt.Fprintf(&b, "  %s\n\n", cli.Label(th, fmt.Sprintf("%s of %s compaction threshold (%s context limit)",
		cli.FormatTokens(total),
		cli.FormatTokens(statusline.CompactionThreshold),
		cli.FormatTokens(statusline.ContextLimit),
	)))

	return b.String()
}
