package tui

import (
	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// validAmount accepts the ledger's numeric coercion convention: blank
// means zero, comma and dot both work as decimal separators.
func validAmount(s string) error {
	_, err := cli.ParseAmount(s)
	return err
}

func (a App) newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithWidth(a.contentWidth()).
		WithShowHelp(true)
}

func (a App) openSalaryForm() (tea.Model, tea.Cmd) {
	a.vals.salary = cli.DisplayNumber(a.state.Salary())
	a.formKind = formSalary
	a.form = a.newForm(huh.NewGroup(
		huh.NewInput().
			Title("Monthly salary").
			Description("Setting a salary resets the split to 50/30/20.").
			Value(&a.vals.salary).
			Validate(validAmount),
	))
	return a, a.form.Init()
}

func (a App) openSplitForm() (tea.Model, tea.Cmd) {
	split := a.state.Split()
	a.vals.spending = cli.DisplayNumber(split.Spending)
	a.vals.saving = cli.DisplayNumber(split.Saving)
	a.vals.investing = cli.DisplayNumber(split.Investing)
	a.formKind = formSplit
	a.form = a.newForm(huh.NewGroup(
		huh.NewInput().Title("Spending %").Value(&a.vals.spending).Validate(validAmount),
		huh.NewInput().Title("Saving %").Value(&a.vals.saving).Validate(validAmount),
		huh.NewInput().Title("Investing %").Value(&a.vals.investing).Validate(validAmount),
	).Description("No renormalization; a total other than 100% only warns."))
	return a, a.form.Init()
}

func (a App) openTransactionForm() (tea.Model, tea.Cmd) {
	if a.vals.category == "" {
		a.vals.category = budget.CategorySpending
	}
	a.formKind = formTransaction
	a.form = a.newForm(huh.NewGroup(
		huh.NewSelect[budget.Category]().
			Title("Category").
			Options(
				huh.NewOption("Spending", budget.CategorySpending),
				huh.NewOption("Saving", budget.CategorySaving),
				huh.NewOption("Investing", budget.CategoryInvesting),
			).
			Value(&a.vals.category),
		huh.NewInput().
			Title("Amount").
			Value(&a.vals.amount).
			Validate(validAmount),
	))
	return a, a.form.Init()
}

func (a App) openGoalForm() (tea.Model, tea.Cmd) {
	a.formKind = formGoal
	a.form = a.newForm(huh.NewGroup(
		huh.NewInput().Title("Goal name").Value(&a.vals.name),
		huh.NewInput().Title("Target amount").Value(&a.vals.target).Validate(validAmount),
	))
	return a, a.form.Init()
}

func (a App) openProgressForm() (tea.Model, tea.Cmd) {
	g := a.state.Goals()[a.goalCursor]
	a.vals.progress = cli.DisplayNumber(g.Acquired)
	a.formKind = formProgress
	a.form = a.newForm(huh.NewGroup(
		huh.NewInput().
			Title("Progress for " + g.Name).
			Description("Capped at the target of " + a.money(g.Target) + ".").
			Value(&a.vals.progress).
			Validate(validAmount),
	))
	return a, a.form.Init()
}

func (a App) openCurrencyForm() (tea.Model, tea.Cmd) {
	a.vals.currency = a.cfg.General.CurrencySymbol
	a.formKind = formCurrency
	a.form = a.newForm(huh.NewGroup(
		huh.NewInput().
			Title("Currency symbol").
			Value(&a.vals.currency),
	))
	return a, a.form.Init()
}
