package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/harrison/habits/internal/stats"
)

// ColumnDateLayout is the compact date header used in the terminal matrix.
const ColumnDateLayout = "01-02"

// MatrixOptions controls WriteMatrix.
type MatrixOptions struct {
	AllHours bool // Include hours without any completion
	Color    bool // Heat-color the cells
}

// WriteMatrix renders m as an aligned table with one row per hour and one
// column per date. Zero cells print as ".".
func WriteMatrix(w io.Writer, m *stats.Matrix, opts MatrixOptions) {
	labelWidth := 0
	for hour := 0; hour < stats.HoursPerDay; hour++ {
		if n := len(stats.HourLabel(hour)); n > labelWidth {
			labelWidth = n
		}
	}
	peak := m.Max()
	cellWidth := len(ColumnDateLayout)
	if n := len(strconv.Itoa(peak)); n > cellWidth {
		cellWidth = n
	}

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", labelWidth))
	for _, d := range m.Dates {
		fmt.Fprintf(&header, " %*s", cellWidth, d.Format(ColumnDateLayout))
	}
	fmt.Fprintln(w, header.String())

	for hour := 0; hour < stats.HoursPerDay; hour++ {
		row := m.Counts[hour]
		if !opts.AllHours && rowTotal(row) == 0 {
			continue
		}

		var line strings.Builder
		fmt.Fprintf(&line, "%-*s", labelWidth, stats.HourLabel(hour))
		for _, c := range row {
			cell := fmt.Sprintf("%*s", cellWidth, cellText(c))
			if opts.Color {
				cell = heat(c, peak).Sprint(cell)
			}
			line.WriteString(" ")
			line.WriteString(cell)
		}
		fmt.Fprintln(w, line.String())
	}
}

func rowTotal(row []int) int {
	total := 0
	for _, c := range row {
		total += c
	}
	return total
}

func cellText(c int) string {
	if c == 0 {
		return "."
	}
	return strconv.Itoa(c)
}

// heat picks a color for a cell relative to the busiest cell.
func heat(c, peak int) *color.Color {
	var attrs []color.Attribute
	switch {
	case c == 0:
		attrs = []color.Attribute{color.Faint}
	case peak > 1 && c*3 >= peak*2:
		attrs = []color.Attribute{color.FgGreen, color.Bold}
	case peak > 1 && c*3 >= peak:
		attrs = []color.Attribute{color.FgGreen}
	default:
		attrs = []color.Attribute{color.FgCyan}
	}
	hc := color.New(attrs...)
	hc.EnableColor()
	return hc
}
