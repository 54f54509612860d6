package tui

import (
	"fmt"
	"strings"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/tui/components"
	"github.com/lucashmf/grana/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewTransactions() string {
	t := theme.Active
	cw := a.contentWidth()

	var monthTxs []budget.Transaction
	for _, tx := range a.state.Transactions() {
		if a.month.Contains(tx.Date) {
			monthTxs = append(monthTxs, tx)
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder

	if len(monthTxs) == 0 {
		b.WriteString(labelStyle.Render("  No transactions in " + a.month.String() + "."))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("  [a]dd transaction"))
		b.WriteString("\n")
		return b.String()
	}

	// Most recent entries last, trimmed to what fits on screen
	maxRows := a.height - 16
	if maxRows < 5 {
		maxRows = 5
	}
	visible := monthTxs
	if len(visible) > maxRows {
		visible = visible[len(visible)-maxRows:]
	}

	var list strings.Builder
	if len(visible) < len(monthTxs) {
		list.WriteString(dimStyle.Render(fmt.Sprintf("… %d earlier entries", len(monthTxs)-len(visible))))
		list.WriteString("\n")
	}
	for _, tx := range visible {
		list.WriteString(dimStyle.Render(tx.Date.Format("Jan 02 15:04")))
		list.WriteString("  ")
		list.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", tx.Category)))
		list.WriteString("  ")
		list.WriteString(valueStyle.Render(a.money(tx.Amount)))
		list.WriteString("\n")
	}

	b.WriteString(components.ContentCard(
		fmt.Sprintf("Transactions %s (%d)", a.month, len(monthTxs)), list.String(), cw))
	b.WriteString("\n")

	// Per-category totals
	var totals strings.Builder
	for _, cat := range budget.Categories {
		spent := a.state.MonthlyTotal(cat, a.month)
		if spent.IsZero() {
			continue
		}
		totals.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", cat)))
		totals.WriteString("  ")
		totals.WriteString(valueStyle.Render(a.money(spent)))
		totals.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Totals", totals.String(), cw))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render("  [a]dd transaction"))
	b.WriteString("\n")

	return b.String()
}
