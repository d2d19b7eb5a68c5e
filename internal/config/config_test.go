package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != "." {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, ".")
	}
	if cfg.HabitsFile != "habits.csv" {
		t.Errorf("HabitsFile = %q, want %q", cfg.HabitsFile, "habits.csv")
	}
	if cfg.LogFile != "habit_log.csv" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "habit_log.csv")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if !cfg.ActivityLog {
		t.Error("ActivityLog = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `data_dir: /srv/habits
habits_file: my_habits.csv
log_level: debug
export_dir: /tmp/exports
activity_log: false
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.DataDir != "/srv/habits" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/srv/habits")
	}
	if cfg.HabitsFile != "my_habits.csv" {
		t.Errorf("HabitsFile = %q, want %q", cfg.HabitsFile, "my_habits.csv")
	}
	// Absent keys keep their defaults
	if cfg.LogFile != "habit_log.csv" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "habit_log.csv")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.ExportDir != "/tmp/exports" {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, "/tmp/exports")
	}
	if cfg.ActivityLog {
		t.Error("ActivityLog = true, want false")
	}
}

// TestLoadConfigMissingFile returns defaults without error
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.HabitsFile != "habits.csv" {
		t.Errorf("HabitsFile = %q, want default", cfg.HabitsFile)
	}
}

// TestLoadConfigMalformed returns an error
func TestLoadConfigMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(configPath, []byte("log_level: [unclosed\n"), 0644)

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, ConfigDirName)
	os.MkdirAll(cfgDir, 0755)
	os.WriteFile(filepath.Join(cfgDir, ConfigFileName), []byte("data_dir: data\n"), 0644)

	cfg, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if want := filepath.Join(dir, "data"); cfg.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, want)
	}
	if want := filepath.Join(dir, "data", "habits.csv"); cfg.HabitsPath() != want {
		t.Errorf("HabitsPath() = %q, want %q", cfg.HabitsPath(), want)
	}
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	dataDir := "/data"
	level := "warn"

	cfg.MergeWithFlags(&dataDir, nil, &level)

	if cfg.DataDir != "/data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/data")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.ExportDir != "" {
		t.Errorf("ExportDir = %q, want unchanged", cfg.ExportDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, "data_dir"},
		{"empty habits file", func(c *Config) { c.HabitsFile = "" }, "habits_file"},
		{"empty log file", func(c *Config) { c.LogFile = "" }, "log_file"},
		{"same files", func(c *Config) { c.LogFile = "./habits.csv" }, "must differ"},
		{"activity dir", func(c *Config) { c.ActivityLogDir = "" }, "activity_log_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestPathsAbsoluteNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data"
	cfg.LogFile = "/var/log/habit_log.csv"

	if cfg.LogPath() != "/var/log/habit_log.csv" {
		t.Errorf("LogPath() = %q", cfg.LogPath())
	}
	if cfg.HabitsPath() != filepath.Join("/data", "habits.csv") {
		t.Errorf("HabitsPath() = %q", cfg.HabitsPath())
	}
}

func TestGetHabitsHome(t *testing.T) {
	t.Setenv(HomeEnv, "/custom/home")
	home, err := GetHabitsHome()
	if err != nil {
		t.Fatalf("GetHabitsHome() error = %v", err)
	}
	if home != "/custom/home" {
		t.Errorf("home = %q, want %q", home, "/custom/home")
	}

	t.Setenv(HomeEnv, "")
	home, err = GetHabitsHome()
	if err != nil {
		t.Fatalf("GetHabitsHome() error = %v", err)
	}
	cwd, _ := os.Getwd()
	if home != cwd {
		t.Errorf("home = %q, want cwd %q", home, cwd)
	}
}

func TestResolveExportDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExportDir = "/exports"
	dir, err := cfg.ResolveExportDir()
	if err != nil || dir != "/exports" {
		t.Errorf("ResolveExportDir() = %q, %v", dir, err)
	}

	cfg.ExportDir = ""
	t.Setenv("XDG_DOCUMENTS_DIR", "/docs")
	dir, err = cfg.ResolveExportDir()
	if err != nil || dir != "/docs" {
		t.Errorf("ResolveExportDir() = %q, %v", dir, err)
	}

	home := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	t.Setenv("HOME", home)
	dir, err = DefaultExportDir()
	if err != nil || dir != home {
		t.Errorf("DefaultExportDir() without Documents = %q, %v; want %q", dir, err, home)
	}

	os.Mkdir(filepath.Join(home, "Documents"), 0755)
	dir, err = DefaultExportDir()
	if err != nil || dir != filepath.Join(home, "Documents") {
		t.Errorf("DefaultExportDir() = %q, %v", dir, err)
	}
}
