package tui

import (
	"strings"

	"github.com/lucashmf/grana/internal/config"
	"github.com/lucashmf/grana/internal/tui/components"
	"github.com/lucashmf/grana/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewSettings() string {
	t := theme.Active
	cw := a.contentWidth()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	row := func(label, value string) string {
		return labelStyle.Render(label+"  ") + valueStyle.Render(value) + "\n"
	}

	var body strings.Builder
	body.WriteString(row("Currency symbol", a.cfg.General.CurrencySymbol))
	body.WriteString(row("Theme          ", theme.Active.Name))
	body.WriteString(row("Config file    ", config.Path()))
	body.WriteString(row("Database       ", config.DataFile(a.cfg)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", body.String(), cw))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  [T]cycle theme  [c]urrency symbol"))
	b.WriteString("\n")
	return b.String()
}
