// Package display renders habit data and user-facing warnings for the
// terminal.
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "No completion to remove",
//	    Message:    `Nothing recorded for "Read" at 2024-03-01 07:45:00`,
//	    Items:      []string{"2024-03-01 07:44:58"},
//	    ItemsLabel: "Recorded that day",
//	    Suggestion: "Run 'habits show Read' to list recorded timestamps",
//	}
//	warning.Display(os.Stderr, false)
//
// # Statistics Matrix
//
// WriteMatrix prints a stats.Matrix as an aligned hour-by-date table, with
// optional heat coloring relative to the busiest cell:
//
//	display.WriteMatrix(os.Stdout, m, display.MatrixOptions{Color: true})
//
// All functions accept io.Writer interfaces for testability. Color is opt-in
// per call and rendered with fatih/color.
package display
