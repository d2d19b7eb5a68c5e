package cmd

import (
	"errors"
	"fmt"

	"github.com/harrison/habits/internal/display"
	"github.com/harrison/habits/internal/stats"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <habit>",
		Short: "Show completions per hour of day and date",
		Long: `Show a matrix of completion counts with one row per hour of the day and
one column per date, from the first to the last date with a completion.

Use --csv to print the same table as CSV, or "habits export" to write it to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: withApp(runStats),
	}
	cmd.Flags().Bool("csv", false, "Print the matrix as CSV")
	cmd.Flags().Bool("all-hours", false, "Include hours without any completion")
	return cmd
}

func runStats(cmd *cobra.Command, a *app, args []string) error {
	h, err := a.tracker.Resolve(args[0])
	if err != nil {
		return err
	}

	m, err := a.tracker.Stats(h.ID)
	if errors.Is(err, stats.ErrNoData) {
		fmt.Fprintf(a.out, "No completions recorded for %q yet\n", h.Name)
		return nil
	}
	if err != nil {
		return err
	}

	if asCSV, _ := cmd.Flags().GetBool("csv"); asCSV {
		return m.WriteCSV(a.out)
	}

	allHours, _ := cmd.Flags().GetBool("all-hours")
	fmt.Fprintf(a.out, "%s: %d %s over %d %s\n\n", h.Name,
		m.Total, plural(m.Total, "completion", "completions"),
		len(m.Dates), plural(len(m.Dates), "day", "days"))
	display.WriteMatrix(a.out, m, display.MatrixOptions{AllHours: allHours, Color: colorOutput(a.out)})
	return nil
}
