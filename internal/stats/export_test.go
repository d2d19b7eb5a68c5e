package stats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFor(t *testing.T) {
	tests := []struct {
		goos string
		name string
		want string
	}{
		{"linux", "Morning run", "Morning run"},
		{"linux", "read/write", "read_write"},
		{"linux", "a\x00b", "a_b"},
		{"linux", `a:b*c`, `a:b*c`},
		{"windows", `a:b*c`, `a_b_c`},
		{"windows", `<x>|"y"?\z`, `_x___y___z`},
		{"windows", "tab\there", "tab_here"},
		{"darwin", "Йога", "Йога"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFor(tt.goos, tt.name))
		})
	}
}

func TestSanitizeName_Deterministic(t *testing.T) {
	assert.Equal(t, SanitizeName("a/b"), SanitizeName("a/b"))
	// Collisions are tolerated.
	assert.Equal(t, sanitizeFor("linux", "a/b"), sanitizeFor("linux", "a_b"))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "habit_stats_Read.csv", FileName("Read"))
	assert.Equal(t, "habit_stats_in_out.csv", FileName("in/out"))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	m, err := Build([]time.Time{ts(2024, 1, 1, 8, 15)})
	require.NoError(t, err)

	path, err := Export(m, dir, "Read/Write")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "habit_stats_Read_Write.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 25)
	assert.Equal(t, ",2024-01-01", lines[0])
	assert.Equal(t, "8:00-9:00,1", lines[9])
}

func TestExport_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "Documents")
	m, err := Build([]time.Time{ts(2024, 1, 1, 8, 15)})
	require.NoError(t, err)

	path, err := Export(m, dir, "Read")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
