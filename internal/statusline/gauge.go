package statusline

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/ctxline/internal/theme"
)

// Context window constants. These are fixed, not configurable.
const (
	ContextLimit        = 200000
	CompactionThreshold = ContextLimit * 0.8 // 160,000
)

// Tier is the gauge color band.
type Tier int

// Tiers, lowest first.
const (
	TierGreen Tier = iota
	TierYellow
	TierRed
)

// TierFor maps a percentage to its band: >= 90 red, >= 70 yellow, else green.
func TierFor(pct int) Tier {
	switch {
	case pct >= 90:
		return TierRed
	case pct >= 70:
		return TierYellow
	default:
		return TierGreen
	}
}

func (t Tier) String() string {
	switch t {
	case TierRed:
		return "red"
	case TierYellow:
		return "yellow"
	default:
		return "green"
	}
}

// Color returns the tier's color in the given theme.
func (t Tier) Color(th theme.Theme) lipgloss.Color {
	switch t {
	case TierRed:
		return th.Red
	case TierYellow:
		return th.Yellow
	default:
		return th.Green
	}
}

// Gauge is the context usage summary shown at the end of the status line.
type Gauge struct {
	TotalTokens int64
	Percentage  int // of CompactionThreshold, capped at 100
	Tier        Tier
	TokensK     int64
	CompactionK int64
	LimitK      int64
}

// ComputeGauge derives the display quantities for a token total.
// There is no lower clamp: totals are sums of non-negative counters.
func ComputeGauge(total int64) Gauge {
	pct := max(0, min(100, int(roundHalfUp(float64(total)/CompactionThreshold*100))))
	return Gauge{
		TotalTokens: total,
		Percentage:  pct,
		Tier:        TierFor(pct),
		TokensK:     int64(roundHalfUp(float64(total) / 1000)),
		CompactionK: int64(roundHalfUp(CompactionThreshold / 1000)),
		LimitK:      int64(roundHalfUp(ContextLimit / 1000)),
	}
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

// Fraction returns the percentage as a 0-1 value for progress bars.
func (g Gauge) Fraction() float64 {
	return float64(g.Percentage) / 100
}
