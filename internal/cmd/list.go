package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List habits with their completion counts",
		Args:    cobra.NoArgs,
		RunE:    withApp(runList),
	}
}

func runList(cmd *cobra.Command, a *app, args []string) error {
	summaries, err := a.tracker.Summaries()
	if err != nil {
		return fmt.Errorf("read completions: %w", err)
	}

	if len(summaries) == 0 {
		fmt.Fprintln(a.out, "No habits yet. Add one with: habits add <name>")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintln(a.out, habitLine(s.Habit, s.Completions))
	}
	return nil
}
