// Package filelock serializes access to the flat data files and provides the
// read, append and full-replace write primitives the stores are built on.
package filelock

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
)

var (
	registryMu sync.Mutex
	registry   = map[string]*sync.Mutex{}
)

// processMutex returns the mutex shared by every Guard on the same path.
func processMutex(path string) *sync.Mutex {
	key, err := filepath.Abs(path)
	if err != nil {
		key = filepath.Clean(path)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	mu, ok := registry[key]
	if !ok {
		mu = &sync.Mutex{}
		registry[key] = mu
	}
	return mu
}

// Guard protects one data file. It holds an in-process mutex and an advisory
// flock on "<path>.lock" for the duration of each critical section, so an
// append can never land between a rewrite's read and its write.
type Guard struct {
	path  string
	mu    *sync.Mutex
	flock *flock.Flock
}

// NewGuard creates a guard for the data file at path.
func NewGuard(path string) *Guard {
	return &Guard{
		path:  path,
		mu:    processMutex(path),
		flock: flock.New(path + ".lock"),
	}
}

// Do runs fn while holding both locks.
func (g *Guard) Do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(g.path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", g.path, err)
	}
	if err := g.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", g.path, err)
	}
	defer g.flock.Unlock()

	return fn()
}

// ReadLines returns the lines of the file at path. A missing file yields
// no lines and no error. Empty lines are preserved so rewrites keep them.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// JoinLines renders lines as file content, one per line with a trailing newline.
func JoinLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// AppendLine appends a single line to the file at path, creating it if needed.
// Existing content is neither read nor rewritten.
func AppendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}

	if _, err := f.WriteString(line + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// AtomicWrite writes data to a file atomically using a temp file and rename strategy.
// Readers never see a partial write; on failure the original file is left unchanged.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Same directory keeps the rename on one filesystem.
	tempFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	tempFile = nil
	return nil
}
