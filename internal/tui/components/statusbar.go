package components

import (
	"fmt"
	"strings"

	"github.com/lucashmf/grana/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: keys on the left, the
// selected month on the right.
func RenderStatusBar(width int, month string) string {
	t := theme.Active

	style := lipgloss.NewStyle().Foreground(t.TextMuted).Width(width)

	left := " [tab]switch  [p/n]month  [q]uit"
	right := fmt.Sprintf("Month: %s ", month)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
