package codec

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harrison/habits/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitRoundTrip(t *testing.T) {
	h := models.Habit{
		ID:          "0192f5c4-7d1e-7a3b-9c2f-1b2d3e4f5a6b",
		Created:     time.Date(2024, 3, 9, 7, 45, 12, 0, time.Local),
		Name:        "Morning run",
		Description: strings.Repeat("long description ", 5),
	}

	line := EncodeHabit(h)
	got, err := DecodeHabit(line)
	require.NoError(t, err)

	assert.Equal(t, h.ID, got.ID)
	assert.True(t, h.Created.Equal(got.Created), "created %v != %v", h.Created, got.Created)
	assert.Equal(t, h.Name, got.Name)
	assert.Equal(t, h.Description, got.Description)
	assert.Equal(t, models.ShortDescription(h.Description), got.ShortDescription)
}

func TestEncodeHabit_FieldOrder(t *testing.T) {
	h := models.Habit{
		ID:          "h1",
		Created:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local),
		Name:        "Read",
		Description: "ten pages",
	}
	assert.Equal(t, "h1;2024-01-02 03:04:05;Read;ten pages", EncodeHabit(h))
}

func TestDecodeHabit_TooFewFields(t *testing.T) {
	for _, line := range []string{"", "h1", "h1;2024-01-01 00:00:00;Read"} {
		_, err := DecodeHabit(line)
		assert.ErrorIs(t, err, ErrMalformedRecord, "line %q", line)
	}
}

func TestDecodeHabit_CorruptTimestamp(t *testing.T) {
	_, err := DecodeHabit("h1;yesterday;Read;ten pages")
	require.Error(t, err)

	var tsErr *TimestampError
	require.True(t, errors.As(err, &tsErr))
	assert.Equal(t, "yesterday", tsErr.Value)
	assert.False(t, errors.Is(err, ErrMalformedRecord))
}

func TestDecodeHabit_EmptyDescription(t *testing.T) {
	h, err := DecodeHabit("h1;2024-01-01 00:00:00;Read;")
	require.NoError(t, err)
	assert.Equal(t, "", h.Description)
	assert.Equal(t, "", h.ShortDescription)
}

func TestDecodeHabit_IgnoresCarriageReturn(t *testing.T) {
	h, err := DecodeHabit("h1;2024-01-01 00:00:00;Read;pages\r")
	require.NoError(t, err)
	assert.Equal(t, "pages", h.Description)
}

func TestCompletionRoundTrip(t *testing.T) {
	e := models.CompletionEvent{
		Timestamp: time.Date(2024, 1, 1, 8, 15, 0, 0, time.Local),
		HabitID:   "h1",
	}

	line := EncodeCompletion(e)
	assert.Equal(t, "2024-01-01 08:15:00;h1", line)

	got, err := DecodeCompletion(line)
	require.NoError(t, err)
	assert.True(t, e.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, "h1", got.HabitID)

	// Re-encoding a decoded line reproduces it exactly.
	assert.Equal(t, line, EncodeCompletion(got))
}

func TestDecodeCompletion_Errors(t *testing.T) {
	_, err := DecodeCompletion("2024-01-01 08:15:00")
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = DecodeCompletion("01/01/2024 8:15;h1")
	var tsErr *TimestampError
	assert.ErrorAs(t, err, &tsErr)
}

func TestCompletionHabitID(t *testing.T) {
	id, ok := CompletionHabitID("not-a-date;h42")
	assert.True(t, ok)
	assert.Equal(t, "h42", id)

	_, ok = CompletionHabitID("no separator")
	assert.False(t, ok)
}

func TestContainsReserved(t *testing.T) {
	assert.True(t, ContainsReserved("a;b"))
	assert.True(t, ContainsReserved("line\nbreak"))
	assert.False(t, ContainsReserved("plain, text"))
}
