package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/harrison/habits/internal/codec"
	"github.com/harrison/habits/internal/filelock"
	"github.com/harrison/habits/internal/models"
)

// CompletionLog is the append-only record of completion events for all habits.
type CompletionLog struct {
	path  string
	guard *filelock.Guard
}

// NewCompletionLog creates a log backed by the file at path.
func NewCompletionLog(path string) *CompletionLog {
	return &CompletionLog{
		path:  path,
		guard: filelock.NewGuard(path),
	}
}

// Path returns the backing file path.
func (l *CompletionLog) Path() string {
	return l.path
}

// Append records one completion of habitID at ts. The timestamp is truncated
// to whole seconds so it survives the text round-trip. Duplicates are allowed.
func (l *CompletionLog) Append(habitID string, ts time.Time) (models.CompletionEvent, error) {
	if habitID == "" || codec.ContainsReserved(habitID) {
		return models.CompletionEvent{}, &ValidationError{Field: "habit_id", Message: fmt.Sprintf("invalid habit id %q", habitID)}
	}

	e := models.CompletionEvent{Timestamp: ts.Truncate(time.Second), HabitID: habitID}
	line := codec.EncodeCompletion(e)

	err := l.guard.Do(func() error {
		return filelock.AppendLine(l.path, line)
	})
	if err != nil {
		return models.CompletionEvent{}, &StorageError{Op: "append", Path: l.path, Err: err}
	}
	return e, nil
}

// ListFor returns the completion times of habitID in file order. Lines for
// other habits are not parsed; a corrupt timestamp on a matching line fails
// the call.
func (l *CompletionLog) ListFor(habitID string) ([]time.Time, error) {
	lines, err := l.readLines()
	if err != nil {
		return nil, err
	}

	var times []time.Time
	for i, line := range lines {
		id, ok := codec.CompletionHabitID(line)
		if !ok || id != habitID {
			continue
		}
		e, err := codec.DecodeCompletion(line)
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", l.path, i+1, err)
		}
		times = append(times, e.Timestamp)
	}
	return times, nil
}

// CountByHabit returns the number of log lines per habit id. Timestamps are
// not parsed.
func (l *CompletionLog) CountByHabit() (map[string]int, error) {
	lines, err := l.readLines()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, line := range lines {
		if id, ok := codec.CompletionHabitID(line); ok {
			counts[id]++
		}
	}
	return counts, nil
}

// DeleteOne removes every line equal to the encoded (ts, habitID) pair and
// returns how many were removed. Matching is on the encoded text, so ts must
// carry the same second as the recorded event.
func (l *CompletionLog) DeleteOne(habitID string, ts time.Time) (int, error) {
	target := codec.EncodeCompletion(models.CompletionEvent{Timestamp: ts, HabitID: habitID})
	return l.rewrite(func(line string) bool {
		return strings.TrimRight(line, "\r") == target
	})
}

// DeleteAllFor removes every line whose habit id field equals habitID and
// returns how many were removed.
func (l *CompletionLog) DeleteAllFor(habitID string) (int, error) {
	return l.rewrite(func(line string) bool {
		id, ok := codec.CompletionHabitID(line)
		return ok && id == habitID
	})
}

// rewrite drops the lines matched by remove and writes the remainder back,
// all under the file guard. The file is left alone when nothing matched.
func (l *CompletionLog) rewrite(remove func(line string) bool) (int, error) {
	removed := 0
	err := l.guard.Do(func() error {
		lines, err := filelock.ReadLines(l.path)
		if err != nil {
			return err
		}

		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			if remove(line) {
				removed++
				continue
			}
			kept = append(kept, line)
		}
		if removed == 0 {
			return nil
		}
		return filelock.AtomicWrite(l.path, filelock.JoinLines(kept))
	})
	if err != nil {
		return 0, &StorageError{Op: "rewrite", Path: l.path, Err: err}
	}
	return removed, nil
}

func (l *CompletionLog) readLines() ([]string, error) {
	var lines []string
	err := l.guard.Do(func() error {
		var err error
		lines, err = filelock.ReadLines(l.path)
		return err
	})
	if err != nil {
		return nil, &StorageError{Op: "load", Path: l.path, Err: err}
	}
	return lines, nil
}
