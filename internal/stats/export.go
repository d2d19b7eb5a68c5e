package stats

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/harrison/habits/internal/filelock"
)

// FilePrefix and FileExt frame every export file name.
const (
	FilePrefix = "habit_stats_"
	FileExt    = ".csv"
)

// windowsInvalid lists the printable characters Windows rejects in file names.
const windowsInvalid = `<>:"/\|?*`

// invalidFileNameRune reports whether r cannot appear in a file name on goos.
func invalidFileNameRune(goos string, r rune) bool {
	if r == 0 || r == '/' {
		return true
	}
	if goos == "windows" {
		return r < 32 || strings.ContainsRune(windowsInvalid, r)
	}
	return false
}

// SanitizeName replaces every character that is invalid in a file name on the
// running platform with an underscore. Distinct names may map to the same
// result.
func SanitizeName(name string) string {
	return sanitizeFor(runtime.GOOS, name)
}

func sanitizeFor(goos, name string) string {
	return strings.Map(func(r rune) rune {
		if invalidFileNameRune(goos, r) {
			return '_'
		}
		return r
	}, name)
}

// FileName returns the export file name for a habit.
func FileName(habitName string) string {
	return FilePrefix + SanitizeName(habitName) + FileExt
}

// Export writes m as CSV into dir under FileName(habitName) and returns the
// full path. An existing file with that name is replaced.
func Export(m *Matrix, dir, habitName string) (string, error) {
	var buf bytes.Buffer
	if err := m.WriteCSV(&buf); err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(habitName))
	if err := filelock.AtomicWrite(path, buf.Bytes()); err != nil {
		return "", err
	}
	return path, nil
}
