package cmd

import (
	"fmt"

	"github.com/harrison/habits/internal/codec"
	"github.com/spf13/cobra"
)

// defaultRecent is how many completions show prints unless --limit is given.
const defaultRecent = 10

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <habit>",
		Short: "Show a habit and its most recent completions",
		Args:  cobra.ExactArgs(1),
		RunE:  withApp(runShow),
	}
	cmd.Flags().IntP("limit", "l", defaultRecent, "Number of recent completions to show (0 for all)")
	return cmd
}

func runShow(cmd *cobra.Command, a *app, args []string) error {
	h, err := a.tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	recent, err := a.tracker.RecentCompletions(h.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "ID:          %s\n", h.ID)
	fmt.Fprintf(a.out, "Name:        %s\n", h.Name)
	fmt.Fprintf(a.out, "Created:     %s\n", codec.FormatTime(h.Created))
	if h.Description != "" {
		fmt.Fprintf(a.out, "Description: %s\n", h.Description)
	}
	fmt.Fprintf(a.out, "Completions: %d\n", len(recent))

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	if len(recent) > 0 {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Recent:")
		for _, ts := range recent {
			fmt.Fprintf(a.out, "  %s\n", codec.FormatTime(ts))
		}
	}
	return nil
}
