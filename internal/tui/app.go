// Package tui provides the interactive Bubble Tea dashboard for grana.
package tui

import (
	"fmt"
	"strings"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"
	"github.com/lucashmf/grana/internal/config"
	"github.com/lucashmf/grana/internal/tui/components"
	"github.com/lucashmf/grana/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const (
	tabOverview = iota
	tabTransactions
	tabGoals
	tabSettings
)

const (
	formNone = iota
	formSalary
	formSplit
	formTransaction
	formGoal
	formProgress
	formCurrency
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
)

// App is the root Bubble Tea model. All mutations go through the state
// container, which persists every accepted change before Update
// returns; nothing here runs in the background.
type App struct {
	state *budget.State
	cfg   config.Config
	month budget.MonthKey

	width     int
	height    int
	activeTab int
	status    string // one-line feedback from the last action

	goalCursor int

	// Active input form, if any
	form     *huh.Form
	formKind int

	// Form value holders live behind a pointer: huh binds to their
	// addresses, and the model itself is copied on every Update.
	vals *formValues
}

type formValues struct {
	salary    string
	spending  string
	saving    string
	investing string
	category  budget.Category
	amount    string
	name      string
	target    string
	progress  string
	currency  string
}

// NewApp creates a new TUI app model around a loaded state container.
func NewApp(state *budget.State, cfg config.Config, month budget.MonthKey) App {
	return App{
		state: state,
		cfg:   cfg,
		month: month,
		vals:  &formValues{},
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// An active form owns the keyboard until done or aborted
		if a.form != nil {
			return a.updateForm(msg)
		}

		switch key {
		case "q":
			return a, tea.Quit

		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			a.status = ""
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			a.status = ""
			return a, nil

		case "p", "[":
			a.month = a.month.Prev()
			return a, nil
		case "n", "]":
			a.month = a.month.Next()
			return a, nil
		}

		// Tab shortcut letters
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				a.status = ""
				return a, nil
			}
		}

		return a.updateTabKeys(key)
	}

	// Forward everything else to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

// updateTabKeys handles per-tab keybindings.
func (a App) updateTabKeys(key string) (tea.Model, tea.Cmd) {
	switch a.activeTab {
	case tabOverview:
		switch key {
		case "s":
			return a.openSalaryForm()
		case "%":
			return a.openSplitForm()
		case "a":
			return a.openTransactionForm()
		}

	case tabTransactions:
		if key == "a" {
			return a.openTransactionForm()
		}

	case tabGoals:
		goals := a.state.Goals()
		switch key {
		case "a":
			return a.openGoalForm()
		case "j", "down":
			if a.goalCursor < len(goals)-1 {
				a.goalCursor++
			}
			return a, nil
		case "k", "up":
			if a.goalCursor > 0 {
				a.goalCursor--
			}
			return a, nil
		case "enter", "u":
			if len(goals) > 0 {
				return a.openProgressForm()
			}
			return a, nil
		}

	case tabSettings:
		switch key {
		case "T":
			return a.cycleTheme()
		case "c":
			return a.openCurrencyForm()
		}
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.applyForm()
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		a.status = ""
		return a, nil
	}

	return a, cmd
}

// applyForm feeds a completed form into the state container. All
// validation beyond numeric parsing is the core's: invalid values are
// dropped there silently and only reported in the status line.
func (a *App) applyForm() {
	switch a.formKind {
	case formSalary:
		amount, err := cli.ParseAmount(a.vals.salary)
		if err != nil {
			a.status = "Salary not set: " + err.Error()
			return
		}
		if err := a.state.SetSalary(amount); err != nil {
			a.status = err.Error()
			return
		}
		if err := a.state.SubmitSalary(); err != nil {
			a.status = err.Error()
			return
		}
		a.status = fmt.Sprintf("Salary set to %s, split reset to 50/30/20", a.money(amount))

	case formSplit:
		fields := []struct {
			cat budget.Category
			raw string
		}{
			{budget.CategorySpending, a.vals.spending},
			{budget.CategorySaving, a.vals.saving},
			{budget.CategoryInvesting, a.vals.investing},
		}
		for _, f := range fields {
			pct, err := cli.ParseAmount(f.raw)
			if err != nil {
				a.status = fmt.Sprintf("%s percentage not set: %v", f.cat, err)
				continue
			}
			if err := a.state.SetPercent(f.cat, pct); err != nil {
				a.status = err.Error()
				return
			}
		}
		a.status = "Split updated"

	case formTransaction:
		amount, err := cli.ParseAmount(a.vals.amount)
		if err != nil {
			a.status = "Nothing logged: " + err.Error()
			return
		}
		before := len(a.state.Transactions())
		if err := a.state.AddTransaction(a.vals.category, amount); err != nil {
			a.status = err.Error()
			return
		}
		if len(a.state.Transactions()) == before {
			a.status = "Nothing logged: amount must be greater than zero"
			return
		}
		a.vals.amount = "" // successful add resets the pending input
		a.status = fmt.Sprintf("Logged %s to %s", a.money(amount), a.vals.category)

	case formGoal:
		target, err := cli.ParseAmount(a.vals.target)
		if err != nil {
			a.status = "No goal added: " + err.Error()
			return
		}
		before := len(a.state.Goals())
		if err := a.state.AddGoal(a.vals.name, target); err != nil {
			a.status = err.Error()
			return
		}
		if len(a.state.Goals()) == before {
			a.status = "No goal added: needs a name and a positive target"
			return
		}
		a.vals.name, a.vals.target = "", ""
		a.goalCursor = len(a.state.Goals()) - 1
		a.status = "Goal added"

	case formProgress:
		amount, err := cli.ParseAmount(a.vals.progress)
		if err != nil {
			a.status = "Progress not updated: " + err.Error()
			return
		}
		goals := a.state.Goals()
		if a.goalCursor < 0 || a.goalCursor >= len(goals) {
			return
		}
		if err := a.state.UpdateGoalProgress(a.goalCursor, amount); err != nil {
			a.status = err.Error()
			return
		}
		g := a.state.Goals()[a.goalCursor]
		a.status = fmt.Sprintf("%q at %s of %s", g.Name, a.money(g.Acquired), a.money(g.Target))

	case formCurrency:
		symbol := strings.TrimSpace(a.vals.currency)
		if symbol == "" {
			return
		}
		a.cfg.General.CurrencySymbol = symbol
		if err := config.Save(a.cfg); err != nil {
			a.status = "Symbol applied for this session only: " + err.Error()
			return
		}
		a.status = "Currency symbol saved"
	}
}

func (a App) cycleTheme() (tea.Model, tea.Cmd) {
	current := 0
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			current = i
			break
		}
	}
	next := theme.All[(current+1)%len(theme.All)]
	theme.SetActive(next.Name)

	a.cfg.Appearance.Theme = next.Name
	if err := config.Save(a.cfg); err != nil {
		a.status = "Theme applied for this session only: " + err.Error()
	} else {
		a.status = "Theme: " + next.Name
	}
	return a, nil
}

func (a App) money(v decimal.Decimal) string {
	return cli.FormatMoney(v, a.cfg.General.CurrencySymbol)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  grana needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	t := theme.Active
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	monthStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	b.WriteString("\n ")
	b.WriteString(titleStyle.Render("◆ grana"))
	b.WriteString(monthStyle.Render("  ·  " + a.month.String()))
	b.WriteString("\n\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	if a.form != nil {
		b.WriteString(a.form.View())
	} else {
		switch a.activeTab {
		case tabOverview:
			b.WriteString(a.viewOverview())
		case tabTransactions:
			b.WriteString(a.viewTransactions())
		case tabGoals:
			b.WriteString(a.viewGoals())
		case tabSettings:
			b.WriteString(a.viewSettings())
		}
	}

	if a.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(t.Accent)
		b.WriteString("\n ")
		b.WriteString(statusStyle.Render(a.status))
		b.WriteString("\n")
	}

	content := b.String()

	// Pad to full height so the status bar sits at the bottom
	lines := strings.Count(content, "\n")
	for i := lines; i < a.height-2; i++ {
		content += "\n"
	}
	content += components.RenderStatusBar(a.width, a.month.String())

	return content
}
