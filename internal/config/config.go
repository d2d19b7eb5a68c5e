package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents habits configuration options
type Config struct {
	// DataDir is the directory holding the habit and completion files
	DataDir string `yaml:"data_dir"`

	// HabitsFile is the habit file name, relative to DataDir
	HabitsFile string `yaml:"habits_file"`

	// LogFile is the completion log file name, relative to DataDir
	LogFile string `yaml:"log_file"`

	// ExportDir is where statistics exports are written (empty = documents directory)
	ExportDir string `yaml:"export_dir"`

	// LogLevel sets the console logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ActivityLog enables the per-day activity log of every mutation
	ActivityLog bool `yaml:"activity_log"`

	// ActivityLogDir is the activity log directory, relative to DataDir unless absolute
	ActivityLogDir string `yaml:"activity_log_dir"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		DataDir:        ".",
		HabitsFile:     "habits.csv",
		LogFile:        "habit_log.csv",
		ExportDir:      "",
		LogLevel:       "info",
		ActivityLog:    true,
		ActivityLogDir: filepath.Join(".habits", "logs"),
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointers distinguish "absent" from zero values so only keys present
	// in the file override defaults.
	type yamlConfig struct {
		DataDir        *string `yaml:"data_dir"`
		HabitsFile     *string `yaml:"habits_file"`
		LogFile        *string `yaml:"log_file"`
		ExportDir      *string `yaml:"export_dir"`
		LogLevel       *string `yaml:"log_level"`
		ActivityLog    *bool   `yaml:"activity_log"`
		ActivityLogDir *string `yaml:"activity_log_dir"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.DataDir != nil {
		cfg.DataDir = *yamlCfg.DataDir
	}
	if yamlCfg.HabitsFile != nil {
		cfg.HabitsFile = *yamlCfg.HabitsFile
	}
	if yamlCfg.LogFile != nil {
		cfg.LogFile = *yamlCfg.LogFile
	}
	if yamlCfg.ExportDir != nil {
		cfg.ExportDir = *yamlCfg.ExportDir
	}
	if yamlCfg.LogLevel != nil {
		cfg.LogLevel = *yamlCfg.LogLevel
	}
	if yamlCfg.ActivityLog != nil {
		cfg.ActivityLog = *yamlCfg.ActivityLog
	}
	if yamlCfg.ActivityLogDir != nil {
		cfg.ActivityLogDir = *yamlCfg.ActivityLogDir
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .habits/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	cfg, err := LoadConfig(filepath.Join(dir, ConfigDirName, ConfigFileName))
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(dir, cfg.DataDir)
	}
	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(dataDir *string, exportDir *string, logLevel *string) {
	if dataDir != nil {
		c.DataDir = *dataDir
	}
	if exportDir != nil {
		c.ExportDir = *exportDir
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty")
	}
	if c.HabitsFile == "" {
		return fmt.Errorf("habits_file cannot be empty")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if filepath.Clean(c.HabitsFile) == filepath.Clean(c.LogFile) {
		return fmt.Errorf("habits_file and log_file must differ, both are %q", c.HabitsFile)
	}
	if c.ActivityLog && c.ActivityLogDir == "" {
		return fmt.Errorf("activity_log_dir cannot be empty when activity_log is enabled")
	}

	return nil
}

// HabitsPath returns the full path of the habit file.
func (c *Config) HabitsPath() string {
	return resolve(c.DataDir, c.HabitsFile)
}

// LogPath returns the full path of the completion log.
func (c *Config) LogPath() string {
	return resolve(c.DataDir, c.LogFile)
}

// ActivityLogPath returns the activity log directory.
func (c *Config) ActivityLogPath() string {
	return resolve(c.DataDir, c.ActivityLogDir)
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
