package logger

import (
	"time"

	"github.com/harrison/habits/internal/models"
)

// Logger is the set of messages emitted while tracking habits.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogHabitCreated(h models.Habit)
	LogHabitUpdated(h models.Habit)
	LogHabitDeleted(h models.Habit, purged int)
	LogCompletionRecorded(h models.Habit, e models.CompletionEvent)
	LogCompletionRemoved(h models.Habit, ts time.Time, removed int)
	LogExport(h models.Habit, path string)
}

// MultiLogger forwards every message to each of its loggers.
type MultiLogger []Logger

// NewMultiLogger combines loggers, skipping nil entries.
func NewMultiLogger(loggers ...Logger) MultiLogger {
	var m MultiLogger
	for _, l := range loggers {
		if l != nil {
			m = append(m, l)
		}
	}
	return m
}

func (m MultiLogger) LogDebug(message string) {
	for _, l := range m {
		l.LogDebug(message)
	}
}

func (m MultiLogger) LogInfo(message string) {
	for _, l := range m {
		l.LogInfo(message)
	}
}

func (m MultiLogger) LogWarn(message string) {
	for _, l := range m {
		l.LogWarn(message)
	}
}

func (m MultiLogger) LogError(message string) {
	for _, l := range m {
		l.LogError(message)
	}
}

func (m MultiLogger) LogHabitCreated(h models.Habit) {
	for _, l := range m {
		l.LogHabitCreated(h)
	}
}

func (m MultiLogger) LogHabitUpdated(h models.Habit) {
	for _, l := range m {
		l.LogHabitUpdated(h)
	}
}

func (m MultiLogger) LogHabitDeleted(h models.Habit, purged int) {
	for _, l := range m {
		l.LogHabitDeleted(h, purged)
	}
}

func (m MultiLogger) LogCompletionRecorded(h models.Habit, e models.CompletionEvent) {
	for _, l := range m {
		l.LogCompletionRecorded(h, e)
	}
}

func (m MultiLogger) LogCompletionRemoved(h models.Habit, ts time.Time, removed int) {
	for _, l := range m {
		l.LogCompletionRemoved(h, ts, removed)
	}
}

func (m MultiLogger) LogExport(h models.Habit, path string) {
	for _, l := range m {
		l.LogExport(h, path)
	}
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOpLogger creates a logger that discards all messages.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (*NoOpLogger) LogDebug(string) {}
func (*NoOpLogger) LogInfo(string) {}
func (*NoOpLogger) LogWarn(string) {}
func (*NoOpLogger) LogError(string) {}
func (*NoOpLogger) LogHabitCreated(models.Habit) {}
func (*NoOpLogger) LogHabitUpdated(models.Habit) {}
func (*NoOpLogger) LogHabitDeleted(models.Habit, int) {}
func (*NoOpLogger) LogCompletionRecorded(models.Habit, models.CompletionEvent) {}
func (*NoOpLogger) LogCompletionRemoved(models.Habit, time.Time, int) {}
func (*NoOpLogger) LogExport(models.Habit, string) {}
