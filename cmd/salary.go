package cmd

import (
	"fmt"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"

	"github.com/spf13/cobra"
)

var salaryCmd = &cobra.Command{
	Use:   "salary [amount]",
	Short: "Show or set the monthly salary",
	Long: "With an amount, sets the monthly salary and resets the allocation\n" +
		"split to the recommended 50/30/20. Without one, shows the current\n" +
		"salary and per-category amounts.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSalary,
}

func init() {
	rootCmd.AddCommand(salaryCmd)
}

func runSalary(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if len(args) == 1 {
		amount, err := cli.ParseAmount(args[0])
		if err != nil {
			return fmt.Errorf("invalid salary %q: %w", args[0], err)
		}
		if err := s.state.SetSalary(amount); err != nil {
			return err
		}
		// Declaring a new salary re-proposes the recommended split
		if err := s.state.SubmitSalary(); err != nil {
			return err
		}
		fmt.Printf("\n  Salary set to %s, split reset to 50/30/20.\n\n", s.money(amount))
	} else {
		fmt.Println()
	}

	rows := make([][]string, 0, len(budget.Categories))
	for _, cat := range budget.Categories {
		rows = append(rows, []string{
			string(cat),
			cli.FormatPercent(s.state.Split().Pct(cat)),
			s.money(s.state.AmountFor(cat)),
		})
	}

	fmt.Printf("  Salary: %s\n", s.money(s.state.Salary()))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Split", "Amount"},
		Rows:    rows,
	}))
	printAllocationWarning(s)
	return nil
}
