package tui

import (
	"fmt"
	"strings"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"
	"github.com/lucashmf/grana/internal/tui/components"
	"github.com/lucashmf/grana/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

func (a App) viewOverview() string {
	t := theme.Active
	cw := a.contentWidth()

	if a.state.Salary().IsZero() {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		accentStyle := lipgloss.NewStyle().Foreground(t.Accent)
		return hintStyle.Render("  No salary set yet.") + "\n\n" +
			accentStyle.Render("  Press [s] to set your monthly salary.") + "\n"
	}

	var b strings.Builder

	// Top metric cards
	allocated, spent := decimal.Zero, decimal.Zero
	for _, cat := range budget.Categories {
		allocated = allocated.Add(a.state.AmountFor(cat))
		spent = spent.Add(a.state.MonthlyTotal(cat, a.month))
	}

	totalNote := ""
	totalPct := a.state.TotalAllocationPercent()
	if !totalPct.Equal(decimal.NewFromInt(100)) {
		totalNote = "⚠ split totals " + cli.FormatPercent(totalPct)
	}

	cards := []struct{ label, value, note string }{
		{"Salary", a.money(a.state.Salary()), totalNote},
		{"Allocated", a.money(allocated), ""},
		{"Spent " + a.month.String(), a.money(spent), ""},
		{"Left", a.money(allocated.Sub(spent)), ""},
	}
	widths := components.LayoutRow(cw, len(cards))
	rendered := make([]string, 0, len(cards))
	for i, c := range cards {
		rendered = append(rendered, components.MetricCard(c.label, c.value, c.note, widths[i]))
	}
	b.WriteString(components.CardRow(rendered))
	b.WriteString("\n")

	// Per-category cards
	catWidths := components.LayoutRow(cw, len(budget.Categories))
	catCards := make([]string, 0, len(budget.Categories))
	for i, cat := range budget.Categories {
		catCards = append(catCards, a.categoryCard(cat, catWidths[i]))
	}
	b.WriteString(components.CardRow(catCards))
	b.WriteString("\n")

	// Daily spending sparkline for the month
	series := a.dailySpendSeries()
	sparkStyle := lipgloss.NewStyle().Foreground(t.Blue)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	b.WriteString(components.ContentCard(
		"Daily spend "+a.month.String(),
		sparkStyle.Render(cli.RenderSparkline(series))+"\n"+
			labelStyle.Render(fmt.Sprintf("day 1 .. %d", len(series))),
		cw,
	))
	b.WriteString("\n")

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	b.WriteString(hintStyle.Render("  [s]alary  [%]split  [a]dd transaction"))
	b.WriteString("\n")

	return b.String()
}

func (a App) categoryCard(cat budget.Category, width int) string {
	t := theme.Active

	allocated := a.state.AmountFor(cat)
	spent := a.state.MonthlyTotal(cat, a.month)
	remaining := a.state.Remaining(cat, a.month)
	ratio := budget.SpendRatio(spent, allocated)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	remainingStr := valueStyle.Render(a.money(budget.DisplayRemaining(remaining)))
	if remaining.Sign() < 0 {
		overStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		remainingStr = overStyle.Render(a.money(remaining.Neg()) + " over")
	}

	inner := components.CardInnerWidth(width)
	barW := inner - 5
	if barW < 8 {
		barW = 8
	}

	body := labelStyle.Render(cli.FormatPercent(a.state.Split().Pct(cat))+" of salary") + "\n" +
		valueStyle.Render(a.money(allocated)) + labelStyle.Render(" allocated") + "\n" +
		valueStyle.Render(a.money(spent)) + labelStyle.Render(" spent") + "\n" +
		remainingStr + labelStyle.Render(" left") + "\n" +
		components.PlainBar(ratio, barW)

	title := strings.ToUpper(string(cat[:1])) + string(cat[1:])
	return components.ContentCard(title, body, width)
}

// dailySpendSeries sums all categories' transactions per day of the
// selected month, for the sparkline.
func (a App) dailySpendSeries() []float64 {
	series := make([]float64, a.month.Days())
	for _, tx := range a.state.Transactions() {
		if !a.month.Contains(tx.Date) {
			continue
		}
		day := tx.Date.Local().Day()
		v, _ := tx.Amount.Float64()
		series[day-1] += v
	}
	return series
}
