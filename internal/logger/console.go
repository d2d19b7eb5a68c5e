// Package logger provides logging implementations for habit tracking.
//
// Loggers record both generic leveled messages and the domain events the
// tracker emits for every mutation. Implementations are thread-safe.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/habits/internal/codec"
	"github.com/harrison/habits/internal/models"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// Color output is enabled when the writer itself is a terminal.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// NO_COLOR disables color regardless of the writer.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}
	cl.writer.Write([]byte(formatted))
}

// colorLevel colors level unconditionally; the caller has already decided
// that its writer is a terminal, which may differ from stdout.
func colorLevel(level string) string {
	var c *color.Color
	switch level {
	case "TRACE":
		c = color.New(color.FgHiBlack)
	case "DEBUG":
		c = color.New(color.FgCyan)
	case "INFO":
		c = color.New(color.FgBlue)
	case "WARN":
		c = color.New(color.FgYellow)
	case "ERROR":
		c = color.New(color.FgRed)
	default:
		return level
	}
	c.EnableColor()
	return c.Sprint(level)
}

// LogHabitCreated logs a new habit at DEBUG level.
func (cl *ConsoleLogger) LogHabitCreated(h models.Habit) {
	cl.LogDebug(fmt.Sprintf("created habit %s (%s)", quoteName(h.Name), h.ID))
}

// LogHabitUpdated logs an edited habit at DEBUG level.
func (cl *ConsoleLogger) LogHabitUpdated(h models.Habit) {
	cl.LogDebug(fmt.Sprintf("updated habit %s (%s)", quoteName(h.Name), h.ID))
}

// LogHabitDeleted logs a deleted habit and its purged completions at INFO level.
func (cl *ConsoleLogger) LogHabitDeleted(h models.Habit, purged int) {
	cl.LogInfo(fmt.Sprintf("deleted habit %s (%s), removed %d %s",
		quoteName(h.Name), h.ID, purged, plural(purged, "completion", "completions")))
}

// LogCompletionRecorded logs an appended completion at DEBUG level.
func (cl *ConsoleLogger) LogCompletionRecorded(h models.Habit, e models.CompletionEvent) {
	cl.LogDebug(fmt.Sprintf("recorded completion of %s at %s", quoteName(h.Name), codec.FormatTime(e.Timestamp)))
}

// LogCompletionRemoved logs a removed completion at DEBUG level, or a WARN
// when nothing matched.
func (cl *ConsoleLogger) LogCompletionRemoved(h models.Habit, ts time.Time, removed int) {
	if removed == 0 {
		cl.LogWarn(fmt.Sprintf("no completion of %s at %s to remove", quoteName(h.Name), codec.FormatTime(ts)))
		return
	}
	cl.LogDebug(fmt.Sprintf("removed %d %s of %s at %s",
		removed, plural(removed, "completion", "completions"), quoteName(h.Name), codec.FormatTime(ts)))
}

// LogExport logs a written statistics export at DEBUG level.
func (cl *ConsoleLogger) LogExport(h models.Habit, path string) {
	cl.LogDebug(fmt.Sprintf("exported statistics of %s to %s", quoteName(h.Name), path))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

func quoteName(name string) string {
	return fmt.Sprintf("%q", name)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
