package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/habits/internal/models"
	"github.com/mattn/go-isatty"
)

// colorOutput reports whether w is a terminal that should receive color.
func colorOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// habitLine renders a habit as a single list row.
func habitLine(h models.Habit, completions int) string {
	line := fmt.Sprintf("%s  %s  (%d %s)", h.ID, h.Name, completions, plural(completions, "completion", "completions"))
	if h.ShortDescription != "" {
		line += "\n    " + h.ShortDescription
	}
	return line
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// nameArg joins positional words so names with spaces need no quoting.
func nameArg(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
