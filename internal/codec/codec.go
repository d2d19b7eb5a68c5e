// Package codec encodes and decodes the fixed-field, semicolon-delimited lines
// used by the habit and completion files.
//
// No quoting or escaping is performed. Field values must not contain the
// separator or a line break; callers validate that before encoding.
package codec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harrison/habits/internal/models"
)

// Separator delimits fields within a line.
const Separator = ";"

// TimeLayout is the textual form of every persisted timestamp. Writers and
// readers must agree on it exactly: completion deletion compares encoded lines.
const TimeLayout = "2006-01-02 15:04:05"

// Field counts for each record kind.
const (
	HabitFields      = 4 // id;created;name;description
	CompletionFields = 2 // timestamp;habit_id
)

// ErrMalformedRecord is returned when a line has fewer fields than required.
// Loaders skip such lines.
var ErrMalformedRecord = errors.New("malformed record")

// TimestampError reports a timestamp field that could not be parsed.
// Unlike ErrMalformedRecord it is fatal for the enclosing load.
type TimestampError struct {
	Value string
	Err   error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("corrupt timestamp %q: %v", e.Value, e.Err)
}

func (e *TimestampError) Unwrap() error {
	return e.Err
}

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a TimeLayout value in the local time zone.
func ParseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, &TimestampError{Value: s, Err: err}
	}
	return t, nil
}

// SplitFields splits line on Separator and reports whether it carries at least
// n fields. Trailing carriage returns are ignored.
func SplitFields(line string, n int) ([]string, bool) {
	line = strings.TrimRight(line, "\r")
	parts := strings.Split(line, Separator)
	if len(parts) < n {
		return nil, false
	}
	return parts, true
}

// EncodeHabit renders h as id;created;name;description.
func EncodeHabit(h models.Habit) string {
	return strings.Join([]string{
		h.ID,
		FormatTime(h.Created),
		h.Name,
		h.Description,
	}, Separator)
}

// DecodeHabit parses a habit line and derives its short description.
func DecodeHabit(line string) (models.Habit, error) {
	parts, ok := SplitFields(line, HabitFields)
	if !ok {
		return models.Habit{}, ErrMalformedRecord
	}

	created, err := ParseTime(parts[1])
	if err != nil {
		return models.Habit{}, err
	}

	h := models.Habit{
		ID:      parts[0],
		Created: created,
		Name:    parts[2],
	}
	h.SetDescription(parts[3])
	return h, nil
}

// EncodeCompletion renders e as timestamp;habit_id.
func EncodeCompletion(e models.CompletionEvent) string {
	return FormatTime(e.Timestamp) + Separator + e.HabitID
}

// DecodeCompletion parses a completion log line.
func DecodeCompletion(line string) (models.CompletionEvent, error) {
	parts, ok := SplitFields(line, CompletionFields)
	if !ok {
		return models.CompletionEvent{}, ErrMalformedRecord
	}

	ts, err := ParseTime(parts[0])
	if err != nil {
		return models.CompletionEvent{}, err
	}

	return models.CompletionEvent{Timestamp: ts, HabitID: parts[1]}, nil
}

// CompletionHabitID returns the habit id field of a log line without parsing
// its timestamp.
func CompletionHabitID(line string) (string, bool) {
	parts, ok := SplitFields(line, CompletionFields)
	if !ok {
		return "", false
	}
	return parts[1], true
}

// ContainsReserved reports whether s contains the separator or a line break.
func ContainsReserved(s string) bool {
	return strings.ContainsAny(s, Separator+"\r\n")
}
