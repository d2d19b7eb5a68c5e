package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/harrison/habits/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMatrix(t *testing.T, stamps ...string) *stats.Matrix {
	t.Helper()
	var events []time.Time
	for _, s := range stamps {
		ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local)
		require.NoError(t, err)
		events = append(events, ts)
	}
	m, err := stats.Build(events)
	require.NoError(t, err)
	return m
}

func TestWriteMatrixSkipsEmptyHours(t *testing.T) {
	m := buildMatrix(t, "2024-03-01 07:45", "2024-03-01 07:10", "2024-03-03 21:00")

	var buf bytes.Buffer
	WriteMatrix(&buf, m, MatrixOptions{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "            03-01 03-02 03-03", lines[0])
	assert.Equal(t, "7:00-8:00       2     .     .", lines[1])
	assert.Equal(t, "21:00-22:00     .     .     1", lines[2])
}

func TestWriteMatrixAllHours(t *testing.T) {
	m := buildMatrix(t, "2024-03-01 07:45")

	var buf bytes.Buffer
	WriteMatrix(&buf, m, MatrixOptions{AllHours: true})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, stats.HoursPerDay+1)
	assert.True(t, strings.HasPrefix(lines[24], "23:00-0:00"))
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWriteMatrixColor(t *testing.T) {
	m := buildMatrix(t, "2024-03-01 07:45", "2024-03-01 07:10", "2024-03-01 09:00")

	var buf bytes.Buffer
	WriteMatrix(&buf, m, MatrixOptions{Color: true})

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestHeat(t *testing.T) {
	assert.Equal(t, render(t, heat(0, 6)), render(t, heat(0, 1)))
	assert.NotEqual(t, render(t, heat(6, 6)), render(t, heat(1, 6)))
	assert.Equal(t, render(t, heat(1, 1)), render(t, heat(1, 6)))
}

// render renders a marker through c so attribute sets can be compared.
func render(t *testing.T, c interface{ Sprint(...interface{}) string }) string {
	t.Helper()
	return c.Sprint("x")
}
