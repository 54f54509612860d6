package tui

import (
	"fmt"
	"strings"

	"github.com/lucashmf/grana/internal/tui/components"
	"github.com/lucashmf/grana/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewGoals() string {
	t := theme.Active
	cw := a.contentWidth()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	goals := a.state.Goals()
	if len(goals) == 0 {
		return labelStyle.Render("  No goals yet.") + "\n\n" +
			dimStyle.Render("  [a]dd goal") + "\n"
	}

	inner := components.CardInnerWidth(cw)
	labelW := 2
	for _, g := range goals {
		if w := lipgloss.Width(g.Name); w > labelW {
			labelW = w
		}
	}
	if labelW > 24 {
		labelW = 24
	}
	barW := inner - labelW - 35
	if barW < 10 {
		barW = 10
	}

	var list strings.Builder
	for i, g := range goals {
		cursor := "  "
		nameStyle := labelStyle
		if i == a.goalCursor {
			cursor = lipgloss.NewStyle().Foreground(t.Accent).Render("▸ ")
			nameStyle = lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
		}

		name := fitName(g.Name, labelW)

		list.WriteString(cursor)
		list.WriteString(nameStyle.Render(name + strings.Repeat(" ", labelW-lipgloss.Width(name))))
		list.WriteString(" ")
		list.WriteString(components.RatioBar(g.Ratio(), barW))
		list.WriteString(labelStyle.Render(fmt.Sprintf("  %s / %s", a.money(g.Acquired), a.money(g.Target))))
		list.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(components.ContentCard(fmt.Sprintf("Savings goals (%d)", len(goals)), list.String(), cw))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  [a]dd goal  [j/k]select  [enter]update progress"))
	b.WriteString("\n")
	return b.String()
}

// fitName truncates a goal name to the given display width with an
// ellipsis, without splitting multi-byte runes.
func fitName(name string, width int) string {
	if lipgloss.Width(name) <= width {
		return name
	}
	r := []rune(name)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
