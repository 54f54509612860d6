package cmd

import (
	"fmt"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <category> <amount>",
	Short: "Log a transaction against a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	cat, err := budget.ParseCategory(args[0])
	if err != nil {
		return err
	}
	amount, err := cli.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	before := len(s.state.Transactions())
	if err := s.state.AddTransaction(cat, amount); err != nil {
		return err
	}
	if len(s.state.Transactions()) == before {
		// Non-positive amounts are dropped by the ledger; just
		// mention it instead of pretending something was logged.
		fmt.Println("\n  Nothing logged: amount must be greater than zero.")
		return nil
	}

	month := budget.CurrentMonth()
	remaining := s.state.Remaining(cat, month)
	line := s.money(budget.DisplayRemaining(remaining)) + " left"
	if remaining.Sign() < 0 {
		line = cli.Over(s.money(remaining.Neg()) + " over budget")
	}

	fmt.Printf("\n  Logged %s to %s. %s this month.\n\n",
		s.money(amount), cat, line)
	return nil
}
