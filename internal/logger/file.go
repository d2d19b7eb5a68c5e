package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/habits/internal/codec"
	"github.com/harrison/habits/internal/models"
)

// FileLogger appends an activity record of every habit mutation to a
// per-day file, activity-YYYYMMDD.log, and keeps a latest.log symlink pointing
// at it. Domain events are always written; plain messages are level-filtered.
type FileLogger struct {
	logDir   string
	file     *os.File
	fileName string
	logLevel string
	now      func() time.Time
	mu       sync.Mutex
}

// NewFileLoggerWithLevel opens the activity log in logDir, creating the
// directory if needed.
func NewFileLoggerWithLevel(logDir string, logLevel string) (*FileLogger, error) {
	return newFileLogger(logDir, logLevel, time.Now)
}

func newFileLogger(logDir, logLevel string, now func() time.Time) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fileName := filepath.Join(logDir, fmt.Sprintf("activity-%s.log", now().Format("20060102")))
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open activity log: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(fileName), symlinkPath); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to create symlink: %w", err)
	}

	return &FileLogger{
		logDir:   logDir,
		file:     file,
		fileName: fileName,
		logLevel: normalizeLogLevel(logLevel),
		now:      now,
	}, nil
}

// Path returns the activity log file path.
func (fl *FileLogger) Path() string {
	return fl.fileName
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.write(level, message)
}

// LogHabitCreated records a new habit.
func (fl *FileLogger) LogHabitCreated(h models.Habit) {
	fl.write("EVENT", fmt.Sprintf("habit.create id=%s name=%q", h.ID, h.Name))
}

// LogHabitUpdated records an edited habit.
func (fl *FileLogger) LogHabitUpdated(h models.Habit) {
	fl.write("EVENT", fmt.Sprintf("habit.update id=%s name=%q", h.ID, h.Name))
}

// LogHabitDeleted records a deleted habit with the number of purged completions.
func (fl *FileLogger) LogHabitDeleted(h models.Habit, purged int) {
	fl.write("EVENT", fmt.Sprintf("habit.delete id=%s name=%q purged=%d", h.ID, h.Name, purged))
}

// LogCompletionRecorded records an appended completion.
func (fl *FileLogger) LogCompletionRecorded(h models.Habit, e models.CompletionEvent) {
	fl.write("EVENT", fmt.Sprintf("completion.add id=%s at=%q", h.ID, codec.FormatTime(e.Timestamp)))
}

// LogCompletionRemoved records a completion deletion attempt.
func (fl *FileLogger) LogCompletionRemoved(h models.Habit, ts time.Time, removed int) {
	fl.write("EVENT", fmt.Sprintf("completion.remove id=%s at=%q removed=%d", h.ID, codec.FormatTime(ts), removed))
}

// LogExport records a written statistics export.
func (fl *FileLogger) LogExport(h models.Habit, path string) {
	fl.write("EVENT", fmt.Sprintf("stats.export id=%s path=%q", h.ID, path))
}

// Close flushes and closes the activity log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file != nil {
		if err := fl.file.Sync(); err != nil {
			return fmt.Errorf("failed to sync activity log: %w", err)
		}
		if err := fl.file.Close(); err != nil {
			return fmt.Errorf("failed to close activity log: %w", err)
		}
		fl.file = nil
	}
	return nil
}

func (fl *FileLogger) write(level, message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.file != nil {
		fmt.Fprintf(fl.file, "%s [%s] %s\n", fl.now().Format(time.RFC3339), level, message)
	}
}
