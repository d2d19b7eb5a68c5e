// Package stats derives the hour-by-day completion matrix for a habit and
// exports it as CSV.
package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"
)

// HoursPerDay is the number of hour rows in a Matrix.
const HoursPerDay = 24

// DateLayout is the header format of each date column.
const DateLayout = "2006-01-02"

// ErrNoData is returned by Build when there are no events. It is a distinct
// "nothing to show" signal, not a failure.
var ErrNoData = errors.New("no completion data")

// Matrix counts events per (hour, date). Columns cover every date from the
// earliest to the latest event inclusive, including dates without events.
type Matrix struct {
	Dates  []time.Time        // Column dates at midnight UTC, ascending
	Counts [HoursPerDay][]int // Counts[hour][column]
	Total  int                // Number of events counted
}

// Build buckets events by calendar date and wall-clock hour as recorded.
// No time zone conversion is applied.
func Build(events []time.Time) (*Matrix, error) {
	if len(events) == 0 {
		return nil, ErrNoData
	}

	minDate, maxDate := dateOf(events[0]), dateOf(events[0])
	for _, ev := range events[1:] {
		d := dateOf(ev)
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}

	m := &Matrix{}
	column := make(map[string]int)
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		column[d.Format(DateLayout)] = len(m.Dates)
		m.Dates = append(m.Dates, d)
	}
	for h := range m.Counts {
		m.Counts[h] = make([]int, len(m.Dates))
	}

	for _, ev := range events {
		key := dateOf(ev).Format(DateLayout)
		col, ok := column[key]
		if !ok {
			return nil, fmt.Errorf("no column for date %s", key)
		}
		m.Counts[ev.Hour()][col]++
		m.Total++
	}
	return m, nil
}

// dateOf returns the calendar date of t's wall clock as midnight UTC. Local
// midnights can be skipped by DST transitions, so dates are walked in UTC.
func dateOf(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

// HourLabel returns the row label for hour, e.g. "8:00-9:00" or "23:00-0:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%d:00-%d:00", hour, (hour+1)%HoursPerDay)
}

// Max returns the largest cell value.
func (m *Matrix) Max() int {
	peak := 0
	for _, row := range m.Counts {
		for _, c := range row {
			if c > peak {
				peak = c
			}
		}
	}
	return peak
}

// Records returns the table form: a header of an empty cell followed by one
// date per column, then one row per hour holding the label and its counts.
func (m *Matrix) Records() [][]string {
	records := make([][]string, 0, HoursPerDay+1)

	header := make([]string, 0, len(m.Dates)+1)
	header = append(header, "")
	for _, d := range m.Dates {
		header = append(header, d.Format(DateLayout))
	}
	records = append(records, header)

	for h := 0; h < HoursPerDay; h++ {
		row := make([]string, 0, len(m.Dates)+1)
		row = append(row, HourLabel(h))
		for _, c := range m.Counts[h] {
			row = append(row, strconv.Itoa(c))
		}
		records = append(records, row)
	}
	return records
}

// WriteCSV writes Records as comma-separated lines.
func (m *Matrix) WriteCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.WriteAll(m.Records()); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
