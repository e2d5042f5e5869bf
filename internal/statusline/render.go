package statusline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/ctxline/internal/theme"
)

const (
	linePrefix  = "💰"
	errorPrefix = linePrefix + " Claude Code | Error: "
)

// ansi renders with the 16-color profile regardless of whether stdout is a
// terminal; the host captures our output through a pipe and draws it itself.
var ansi = newANSIRenderer(io.Discard)

func newANSIRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// FormatLine builds the status line. The branch is always yellow; the
// percentage takes the gauge tier's color. Each colored segment is followed
// by a reset.
func FormatLine(in Input, branch string, g Gauge) string {
	th := theme.Terminal
	branchStyle := ansi.NewStyle().Foreground(th.Branch)
	pctStyle := ansi.NewStyle().Foreground(g.Tier.Color(th))

	return fmt.Sprintf("%s Model: %s | Session: %s... | Branch: %s | Context: %s (%dk / %dk of %dk)",
		linePrefix,
		in.Model,
		in.ShortSession(),
		branchStyle.Render(branch),
		pctStyle.Render(strconv.Itoa(g.Percentage)+"%"),
		g.TokensK,
		g.CompactionK,
		g.LimitK,
	)
}

// FormatError builds the fallback line shown when the envelope is unusable.
func FormatError(err error) string {
	return errorPrefix + err.Error()
}
