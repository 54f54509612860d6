package cmd

import (
	"fmt"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly budget overview",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GRANA  %s", s.month)))
	fmt.Println()

	if s.state.Salary().IsZero() {
		fmt.Println("  No salary set yet.")
		fmt.Println("  Start with `grana salary <amount>`.")
		fmt.Println()
		return nil
	}

	fmt.Printf("  Salary: %s\n", s.money(s.state.Salary()))

	rows := make([][]string, 0, len(budget.Categories)+2)
	for _, cat := range budget.Categories {
		allocated := s.state.AmountFor(cat)
		spent := s.state.MonthlyTotal(cat, s.month)
		remaining := s.state.Remaining(cat, s.month)

		remainingStr := s.money(budget.DisplayRemaining(remaining))
		if remaining.Sign() < 0 {
			remainingStr = cli.Over(s.money(remaining))
		}

		rows = append(rows, []string{
			string(cat),
			cli.FormatPercent(s.state.Split().Pct(cat)),
			s.money(allocated),
			s.money(spent),
			remainingStr,
			cli.RenderRatioBar(budget.SpendRatio(spent, allocated), 14),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Split", "Allocated", "Spent", "Remaining", ""},
		Rows:    rows,
	}))
	printAllocationWarning(s)

	// Goal progress, compact
	if goals := s.state.Goals(); len(goals) > 0 {
		fmt.Println()
		for i, g := range goals {
			fmt.Printf("  %d. %-20s %s %s\n",
				i+1, g.Name, cli.RenderRatioBar(g.Ratio(), 16), cli.FormatRatio(g.Ratio()))
		}
	}
	fmt.Println()
	return nil
}
