package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/harrison/habits/internal/config"
	"github.com/harrison/habits/internal/logger"
	"github.com/harrison/habits/internal/store"
	"github.com/harrison/habits/internal/tracker"
	"github.com/spf13/cobra"
)

// app bundles what every subcommand needs: resolved configuration, an open
// tracker and the confirmation source.
type app struct {
	cfg       *config.Config
	tracker   *tracker.Tracker
	confirmer tracker.Confirmer
	console   *logger.ConsoleLogger
	activity  *logger.FileLogger
	out       io.Writer
}

// openApp loads configuration, applies persistent flags and opens the tracker.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	loggers := []logger.Logger{console}

	var activity *logger.FileLogger
	if cfg.ActivityLog {
		activity, err = logger.NewFileLoggerWithLevel(cfg.ActivityLogPath(), cfg.LogLevel)
		if err != nil {
			// The activity log is a record, not a requirement.
			console.LogWarn(fmt.Sprintf("activity log disabled: %v", err))
			activity = nil
		} else {
			loggers = append(loggers, activity)
		}
	}

	tr, err := tracker.Open(cfg, logger.NewMultiLogger(loggers...))
	if err != nil {
		if activity != nil {
			activity.Close()
		}
		return nil, fmt.Errorf("open habits: %w", err)
	}

	var confirmer tracker.Confirmer = tracker.NewPromptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		confirmer = tracker.AutoConfirm
	}

	console.LogTrace(fmt.Sprintf("habits file %s, log file %s", cfg.HabitsPath(), cfg.LogPath()))

	return &app{
		cfg:       cfg,
		tracker:   tr,
		confirmer: confirmer,
		console:   console,
		activity:  activity,
		out:       cmd.OutOrStdout(),
	}, nil
}

// Close releases the activity log.
func (a *app) Close() error {
	if a.activity != nil {
		return a.activity.Close()
	}
	return nil
}

// loadConfig resolves the config file and merges flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	home, err := config.GetHabitsHome()
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadConfig(path)
		if err == nil && !filepath.IsAbs(cfg.DataDir) {
			cfg.DataDir = filepath.Join(home, cfg.DataDir)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(home)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var dataDir, logLevel *string
	if cmd.Flags().Changed("data-dir") {
		v, _ := cmd.Flags().GetString("data-dir")
		dataDir = &v
	}
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	cfg.MergeWithFlags(dataDir, nil, logLevel)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// withApp wraps a subcommand body with openApp/Close and maps the outcomes
// that are not failures (a declined confirmation) to friendly output.
func withApp(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		err = run(cmd, a, args)
		switch {
		case errors.Is(err, tracker.ErrCancelled):
			fmt.Fprintln(a.out, "Cancelled.")
			return nil
		case err != nil && !store.IsValidation(err):
			// Storage failures get a debug trail; main prints the error itself.
			a.console.LogDebug(fmt.Sprintf("%s failed: %v", cmd.CommandPath(), err))
		}
		return err
	}
}
