package cmd

import (
	"fmt"
	"strconv"

	"github.com/lucashmf/grana/internal/cli"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
	RunE:  runGoalList,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name> <target>",
	Short: "Add a savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalAdd,
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <number> <amount>",
	Short: "Set a goal's acquired progress (capped at its target)",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalProgress,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with progress",
	RunE:  runGoalList,
}

func init() {
	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalProgressCmd)
	goalCmd.AddCommand(goalListCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(_ *cobra.Command, args []string) error {
	name := args[0]
	target, err := cli.ParseAmount(args[1])
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", args[1], err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	before := len(s.state.Goals())
	if err := s.state.AddGoal(name, target); err != nil {
		return err
	}
	if len(s.state.Goals()) == before {
		fmt.Println("\n  Nothing added: a goal needs a name and a positive target.")
		return nil
	}

	fmt.Printf("\n  Goal %q added with target %s.\n\n", name, s.money(target))
	return nil
}

func runGoalProgress(_ *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid goal number %q", args[0])
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

	goals := s.state.Goals()
	idx := number - 1 // goals are numbered from 1 in all listings
	if idx < 0 || idx >= len(goals) {
		return fmt.Errorf("no goal #%d (have %d, see `grana goal list`)", number, len(goals))
	}

	if err := s.state.UpdateGoalProgress(idx, amount); err != nil {
		return err
	}

	g := s.state.Goals()[idx]
	fmt.Printf("\n  %q: %s of %s (%s)\n\n",
		g.Name, s.money(g.Acquired), s.money(g.Target), cli.FormatRatio(g.Ratio()))
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	goals := s.state.Goals()

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOALS"))
	fmt.Println()

	if len(goals) == 0 {
		fmt.Println("  No goals yet.")
		fmt.Println("  Add one with `grana goal add <name> <target>`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(goals))
	for i, g := range goals {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			g.Name,
			s.money(g.Acquired) + " / " + s.money(g.Target),
			cli.RenderRatioBar(g.Ratio(), 20),
			cli.FormatRatio(g.Ratio()),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Goal", "Progress", "", ""},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
