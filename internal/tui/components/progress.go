package components

import (
	"fmt"
	"strings"

	"github.com/lucashmf/grana/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/orange/red based on how much of a
// budget or goal is consumed.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Red)
	case pct >= 0.7:
		return string(t.Orange)
	case pct >= 0.5:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// RatioBar renders a progress bar with a percentage label for a 0-1
// ratio (budget consumption or goal progress).
func RatioBar(pct float64, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)

	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// PlainBar renders an unstyled-width block bar, for places where the
// animated progress widget is too heavy (sparkline footers, tables).
func PlainBar(pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	filledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct)))
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", width-filled))
}
