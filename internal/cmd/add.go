package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a habit",
		Long: `Create a habit with the given name and an optional description.

Words after the command are joined, so quoting multi-word names is optional.
Names and descriptions may not contain ';' or line breaks.`,
		Args: cobra.MinimumNArgs(1),
		RunE: withApp(runAdd),
	}
	cmd.Flags().StringP("description", "d", "", "Habit description")
	return cmd
}

func runAdd(cmd *cobra.Command, a *app, args []string) error {
	description, _ := cmd.Flags().GetString("description")

	h, err := a.tracker.Create(nameArg(args), description)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created habit %q (%s)\n", h.Name, h.ID)
	return nil
}
