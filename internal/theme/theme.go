// Package theme defines the color palettes used by ctxline output.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the status line and the usage report.
type Theme struct {
	Name        string
	Border      lipgloss.Color // Table borders
	TextDim     lipgloss.Color // Empty gauge cells, hints
	TextMuted   lipgloss.Color // Labels
	TextPrimary lipgloss.Color // Values
	Accent      lipgloss.Color // Headers
	Branch      lipgloss.Color // Git branch name
	Green       lipgloss.Color // Gauge below 70%
	Yellow      lipgloss.Color // Gauge 70-89%
	Red         lipgloss.Color // Gauge 90% and above
}

// Terminal uses ANSI 16 colors only. The status line always renders with it
// so the host sees plain SGR 31/32/33 sequences.
var Terminal = Theme{
	Name:        "terminal",
	Border:      lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Branch:      lipgloss.Color("3"),
	Green:       lipgloss.Color("2"),
	Yellow:      lipgloss.Color("3"),
	Red:         lipgloss.Color("1"),
}

// FlexokiDark is the default report theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Branch:      lipgloss.Color("#D0A215"),
	Green:       lipgloss.Color("#879A39"),
	Yellow:      lipgloss.Color("#D0A215"),
	Red:         lipgloss.Color("#D14D41"),
}

// TokyoNight is a cool blue/purple theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:        "tokyo-night",
	Border:      lipgloss.Color("#565F89"),
	TextDim:     lipgloss.Color("#565F89"),
	TextMuted:   lipgloss.Color("#A9B1D6"),
	TextPrimary: lipgloss.Color("#C0CAF5"),
	Accent:      lipgloss.Color("#7AA2F7"),
	Branch:      lipgloss.Color("#E0AF68"),
	Green:       lipgloss.Color("#9ECE6A"),
	Yellow:      lipgloss.Color("#E0AF68"),
	Red:         lipgloss.Color("#F7768E"),
}

// All available themes.
var All = []Theme{FlexokiDark, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}
