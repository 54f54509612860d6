package cmd

import (
	"fmt"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/config"
	"github.com/lucashmf/grana/internal/store"
	"github.com/lucashmf/grana/internal/tui"
	"github.com/lucashmf/grana/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	theme.SetActive(cfg.Appearance.Theme)

	month := budget.CurrentMonth()
	if flagMonth != "" {
		var err error
		month, err = budget.ParseMonth(flagMonth)
		if err != nil {
			return err
		}
	}

	db, err := store.Open(config.DataFile(cfg))
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	state, err := budget.NewState(db)
	if err != nil {
		return err
	}

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(state, cfg, month)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
