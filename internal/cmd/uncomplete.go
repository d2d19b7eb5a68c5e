package cmd

import (
	"fmt"
	"strings"

	"github.com/harrison/habits/internal/codec"
	"github.com/harrison/habits/internal/display"
	"github.com/spf13/cobra"
)

func newUncompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "uncomplete <habit> <timestamp>",
		Short: "Remove one recorded completion",
		Long: `Remove the completion recorded at the given timestamp, after confirmation.

The timestamp uses the log format "YYYY-MM-DD HH:MM:SS"; the date and time may
be passed as one quoted argument or as two arguments. Use "habits show" to list
recorded timestamps.`,
		Example: `  habits uncomplete Read "2024-03-01 07:45:00"
  habits uncomplete Read 2024-03-01 07:45:00`,
		Args: cobra.RangeArgs(2, 3),
		RunE: withApp(runUncomplete),
	}
}

func runUncomplete(cmd *cobra.Command, a *app, args []string) error {
	h, err := a.tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	ts, err := codec.ParseTime(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	removed, err := a.tracker.DeleteCompletion(cmd.Context(), h.ID, ts, a.confirmer)
	if err != nil {
		return err
	}

	if removed == 0 {
		w := display.Warning{
			Title:      "No completion to remove",
			Message:    fmt.Sprintf("No completion of %q recorded at %s", h.Name, codec.FormatTime(ts)),
			Suggestion: fmt.Sprintf("Run 'habits show %s' to list recorded timestamps", h.ID),
		}
		if sameDay, err := a.tracker.CompletionsOn(h.ID, ts); err == nil && len(sameDay) > 0 {
			w.ItemsLabel = "Recorded that day"
			for _, t := range sameDay {
				w.Items = append(w.Items, codec.FormatTime(t))
			}
		}
		w.Display(a.out, colorOutput(a.out))
		return nil
	}
	fmt.Fprintf(a.out, "Removed completion of %q at %s\n", h.Name, codec.FormatTime(ts))
	return nil
}
