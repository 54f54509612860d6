// Package cmd implements the grana CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"
	"github.com/lucashmf/grana/internal/config"
	"github.com/lucashmf/grana/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var oneHundredPct = decimal.NewFromInt(100)

var (
	flagMonth   string
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "grana",
	Short: "Personal budgeting dashboard",
	Long: "Track a monthly salary split across spending, saving, and investing,\n" +
		"log transactions against each category, and follow savings goals.\n" +
		"Everything lives in a local database; there is no server.",
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagMonth, "month", "M", "", "Month to view (YYYY-MM, default: current)")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override data directory")
}

// session bundles everything a command needs: config, the open store,
// the loaded state container, and the selected month.
type session struct {
	cfg   config.Config
	db    *store.Store
	state *budget.State
	month budget.MonthKey
}

func (s *session) close() {
	_ = s.db.Close()
}

// money formats a value with the configured currency symbol.
func (s *session) money(v decimal.Decimal) string {
	return cli.FormatMoney(v, s.cfg.General.CurrencySymbol)
}

// openSession loads config, opens the durable store, and loads the
// state snapshot. Every command goes through here.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not lock the user out of
		// their budget; fall back to defaults and say so.
		fmt.Fprintf(os.Stderr, "  %v (using defaults)\n", err)
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	month := budget.CurrentMonth()
	if flagMonth != "" {
		month, err = budget.ParseMonth(flagMonth)
		if err != nil {
			return nil, err
		}
	}

	db, err := store.Open(config.DataFile(cfg))
	if err != nil {
		return nil, err
	}

	state, err := budget.NewState(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &session{cfg: cfg, db: db, state: state, month: month}, nil
}

// printAllocationWarning prints the advisory warning when the split
// does not total 100%. It never blocks anything.
func printAllocationWarning(s *session) {
	total := s.state.TotalAllocationPercent()
	if !total.Equal(oneHundredPct) {
		fmt.Printf("  %s\n",
			cli.Warn(fmt.Sprintf("Allocation should total 100%% (current: %s)", cli.FormatPercent(total))))
	}
}
