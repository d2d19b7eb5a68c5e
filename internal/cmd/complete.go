package cmd

import (
	"fmt"

	"github.com/harrison/habits/internal/codec"
	"github.com/spf13/cobra"
)

func newCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "complete <habit>",
		Aliases: []string{"done"},
		Short:   "Record that you completed a habit just now",
		Long: `Record a completion after confirmation. The completion is stamped with
the local time at which you confirmed, to the second.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(runComplete),
	}
}

func runComplete(cmd *cobra.Command, a *app, args []string) error {
	h, err := a.tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	e, err := a.tracker.Complete(cmd.Context(), h.ID, a.confirmer)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Recorded %q at %s\n", h.Name, codec.FormatTime(e.Timestamp))
	return nil
}
