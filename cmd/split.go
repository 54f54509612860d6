package cmd

import (
	"fmt"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <category> <percent>",
	Short: "Set one category's allocation percentage",
	Long: "Replaces a single percentage; the other two are untouched and no\n" +
		"renormalization happens. A total other than 100% only produces a\n" +
		"warning.",
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
}

func runSplit(_ *cobra.Command, args []string) error {
	cat, err := budget.ParseCategory(args[0])
	if err != nil {
		return err
	}
	pct, err := cli.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("invalid percentage %q: %w", args[1], err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.state.SetPercent(cat, pct); err != nil {
		return err
	}

	fmt.Printf("\n  %s now gets %s of salary (%s).\n",
		cat, cli.FormatPercent(pct), s.money(s.state.AmountFor(cat)))
	printAllocationWarning(s)
	fmt.Println()
	return nil
}
