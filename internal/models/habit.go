package models

import (
	"errors"
	"strings"
	"time"
)

// ShortDescriptionLimit is the number of characters kept by ShortDescription
// before the ellipsis marker is appended.
const ShortDescriptionLimit = 50

// Ellipsis is appended to a truncated short description.
const Ellipsis = "..."

// Habit represents a user-defined recurring activity
type Habit struct {
	ID               string    // Opaque unique identifier, immutable once created
	Created          time.Time // When the habit was created
	Name             string    // Display name (non-empty)
	Description      string    // Free-form description
	ShortDescription string    // Derived from Description, never persisted
}

// Validate checks if the habit has all required fields
func (h *Habit) Validate() error {
	if h.ID == "" {
		return errors.New("habit id is required")
	}
	if strings.TrimSpace(h.Name) == "" {
		return errors.New("habit name is required")
	}
	return nil
}

// SetDescription replaces the description and recomputes the short description.
func (h *Habit) SetDescription(description string) {
	h.Description = description
	h.ShortDescription = ShortDescription(description)
}

// ShortDescription truncates description to ShortDescriptionLimit characters,
// appending Ellipsis when anything was cut.
func ShortDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= ShortDescriptionLimit {
		return description
	}
	return string(runes[:ShortDescriptionLimit]) + Ellipsis
}

// CompletionEvent records that a habit was performed at a point in time
type CompletionEvent struct {
	Timestamp time.Time
	HabitID   string
}
