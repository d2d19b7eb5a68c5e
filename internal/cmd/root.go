package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for habits
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habits",
		Short: "Track habits and when you complete them",
		Long: `Habits keeps a list of habits you want to build and a log of every
time you complete one.

Habits are stored in habits.csv and completions in habit_log.csv, both in the
data directory (HABITS_HOME or the current directory by default). Statistics
can be exported as an hour-by-day CSV matrix.

Settings are read from .habits/config.yaml if present.
CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text; main prints errors
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .habits/config.yaml in the habits home)")
	cmd.PersistentFlags().String("data-dir", "", "Directory holding habits.csv and habit_log.csv")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to every confirmation")

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newAddCommand())
	cmd.AddCommand(newEditCommand())
	cmd.AddCommand(newShowCommand())
	cmd.AddCommand(newDeleteCommand())
	cmd.AddCommand(newCompleteCommand())
	cmd.AddCommand(newUncompleteCommand())
	cmd.AddCommand(newStatsCommand())
	cmd.AddCommand(newExportCommand())

	return cmd
}
