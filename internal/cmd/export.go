package cmd

import (
	"errors"
	"fmt"

	"github.com/harrison/habits/internal/stats"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <habit>",
		Short: "Export a habit's hour-by-day statistics to CSV",
		Long: `Write the completion matrix of a habit to habit_stats_<name>.csv.

The file goes to --dir, the export_dir setting, or your documents directory,
in that order of preference. An existing export of the same habit is replaced.
Nothing is written when the habit has no completions.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(runExport),
	}
	cmd.Flags().String("dir", "", "Directory to write the export to")
	return cmd
}

func runExport(cmd *cobra.Command, a *app, args []string) error {
	h, err := a.tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("dir") {
		dir, _ := cmd.Flags().GetString("dir")
		a.cfg.MergeWithFlags(nil, &dir, nil)
	}
	dir, err := a.cfg.ResolveExportDir()
	if err != nil {
		return fmt.Errorf("resolve export directory: %w", err)
	}

	path, err := a.tracker.Export(h.ID, dir)
	if errors.Is(err, stats.ErrNoData) {
		fmt.Fprintf(a.out, "No statistics for %q: nothing has been recorded yet\n", h.Name)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Exported statistics for %q to %s\n", h.Name, path)
	return nil
}
