package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <habit>",
		Aliases: []string{"rm"},
		Short:   "Delete a habit and all of its completions",
		Long: `Delete a habit after confirmation. Every completion recorded for the
habit is removed from the completion log as well.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(runDelete),
	}
}

func runDelete(cmd *cobra.Command, a *app, args []string) error {
	h, err := a.tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	purged, err := a.tracker.Delete(cmd.Context(), h.ID, a.confirmer)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted habit %q and %d %s\n", h.Name, purged, plural(purged, "completion", "completions"))
	return nil
}
