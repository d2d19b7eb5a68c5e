package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <habit>",
		Short: "Rename a habit or change its description",
		Long: `Edit a habit. Fields whose flag is not given keep their current value.
Pass --description "" to clear the description.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(runEdit),
	}
	cmd.Flags().StringP("name", "n", "", "New name")
	cmd.Flags().StringP("description", "d", "", "New description")
	return cmd
}

func runEdit(cmd *cobra.Command, a *app, args []string) error {
	h, err := a.tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	nameChanged := cmd.Flags().Changed("name")
	descChanged := cmd.Flags().Changed("description")
	if !nameChanged && !descChanged {
		return errors.New("nothing to change: pass --name or --description")
	}

	name, description := h.Name, h.Description
	if nameChanged {
		name, _ = cmd.Flags().GetString("name")
	}
	if descChanged {
		description, _ = cmd.Flags().GetString("description")
	}

	updated, err := a.tracker.Update(h.ID, name, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated habit %q (%s)\n", updated.Name, updated.ID)
	return nil
}
