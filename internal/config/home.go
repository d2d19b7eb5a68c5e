package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the directory the data files live in.
const HomeEnv = "HABITS_HOME"

// Config file location, relative to the habits home.
const (
	ConfigDirName  = ".habits"
	ConfigFileName = "config.yaml"
)

// GetHabitsHome returns the habits home directory
// Priority order:
//  1. HABITS_HOME environment variable (if set)
//  2. Current working directory (fallback)
func GetHabitsHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// DefaultExportDir returns the user's documents directory.
// Priority order:
//  1. XDG_DOCUMENTS_DIR environment variable (if set)
//  2. ~/Documents (if it exists)
//  3. The home directory itself
func DefaultExportDir() (string, error) {
	if dir := os.Getenv("XDG_DOCUMENTS_DIR"); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	docs := filepath.Join(home, "Documents")
	if info, err := os.Stat(docs); err == nil && info.IsDir() {
		return docs, nil
	}
	return home, nil
}

// ResolveExportDir returns ExportDir when configured, otherwise DefaultExportDir.
func (c *Config) ResolveExportDir() (string, error) {
	if c.ExportDir != "" {
		return c.ExportDir, nil
	}
	return DefaultExportDir()
}
