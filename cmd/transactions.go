package cmd

import (
	"fmt"

	"github.com/lucashmf/grana/internal/budget"
	"github.com/lucashmf/grana/internal/cli"

	"github.com/spf13/cobra"
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"tx"},
	Short:   "List the selected month's transactions",
	RunE:    runTransactions,
}

func init() {
	rootCmd.AddCommand(transactionsCmd)
}

func runTransactions(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	var rows [][]string
	for _, tx := range s.state.Transactions() {
		if !s.month.Contains(tx.Date) {
			continue
		}
		rows = append(rows, []string{
			tx.Date.Format("Jan 02 15:04"),
			string(tx.Category),
			s.money(tx.Amount),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TRANSACTIONS  %s", s.month)))
	fmt.Println()

	if len(rows) == 0 {
		fmt.Println("  No transactions this month.")
		fmt.Println("  Log one with `grana add <category> <amount>`.")
		fmt.Println()
		return nil
	}

	rows = append(rows, []string{"---"})
	for _, cat := range budget.Categories {
		spent := s.state.MonthlyTotal(cat, s.month)
		if spent.IsZero() {
			continue
		}
		rows = append(rows, []string{"total " + string(cat), "", s.money(spent)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Category", "Amount"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
