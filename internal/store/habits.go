// Package store persists habits and their completion events in flat,
// semicolon-delimited files.
//
// The habit file is always rewritten in full from the in-memory collection;
// the completion log is appended to and only rewritten by deletions. Each file
// is guarded by a filelock.Guard, so callers in one process may share a store
// safely. Access from several processes at once is not a supported setup.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/harrison/habits/internal/codec"
	"github.com/harrison/habits/internal/filelock"
	"github.com/harrison/habits/internal/idgen"
	"github.com/harrison/habits/internal/models"
)

// Purger removes every completion event recorded for a habit.
type Purger interface {
	DeleteAllFor(habitID string) (int, error)
}

// HabitStore owns the ordered collection of habits backed by one file.
type HabitStore struct {
	path   string
	guard  *filelock.Guard
	newID  idgen.Generator
	now    func() time.Time
	purger Purger

	mu     sync.RWMutex
	habits []models.Habit
}

// HabitStoreOption configures a HabitStore.
type HabitStoreOption func(*HabitStore)

// WithIDGenerator overrides the habit id generator.
func WithIDGenerator(gen idgen.Generator) HabitStoreOption {
	return func(s *HabitStore) { s.newID = gen }
}

// WithClock overrides the clock used for creation timestamps.
func WithClock(now func() time.Time) HabitStoreOption {
	return func(s *HabitStore) { s.now = now }
}

// WithPurger sets the completion store cleaned up when a habit is deleted.
func WithPurger(p Purger) HabitStoreOption {
	return func(s *HabitStore) { s.purger = p }
}

// NewHabitStore creates a store for the habit file at path. Call Load to read
// existing habits.
func NewHabitStore(path string, opts ...HabitStoreOption) *HabitStore {
	s := &HabitStore{
		path:  path,
		guard: filelock.NewGuard(path),
		newID: idgen.Default,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *HabitStore) Path() string {
	return s.path
}

// Load replaces the in-memory collection with the file contents. A missing
// file yields an empty collection. Lines with too few fields are skipped; a
// corrupt timestamp fails the load and leaves the previous collection intact.
func (s *HabitStore) Load() error {
	var lines []string
	err := s.guard.Do(func() error {
		var err error
		lines, err = filelock.ReadLines(s.path)
		return err
	})
	if err != nil {
		return &StorageError{Op: "load", Path: s.path, Err: err}
	}

	habits := make([]models.Habit, 0, len(lines))
	for i, line := range lines {
		h, err := codec.DecodeHabit(line)
		if errors.Is(err, codec.ErrMalformedRecord) {
			continue
		}
		if err != nil {
			return fmt.Errorf("load %s line %d: %w", s.path, i+1, err)
		}
		if h.Validate() != nil {
			// A row without an id or name cannot be addressed; treat it as malformed.
			continue
		}
		habits = append(habits, h)
	}

	s.mu.Lock()
	s.habits = habits
	s.mu.Unlock()
	return nil
}

// Save rewrites the backing file from the in-memory collection.
func (s *HabitStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(s.habits)
}

// Habits returns a snapshot of the collection in file order.
func (s *HabitStore) Habits() []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Habit(nil), s.habits...)
}

// Get returns the habit with the given id.
func (s *HabitStore) Get(id string) (models.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.habits[i], true
	}
	return models.Habit{}, false
}

// Create adds a new habit and persists the collection.
func (s *HabitStore) Create(name, description string) (models.Habit, error) {
	name, description, err := validateHabitInput(name, description)
	if err != nil {
		return models.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h := models.Habit{
		ID:      s.newID(),
		Created: s.now().Truncate(time.Second),
		Name:    name,
	}
	h.SetDescription(description)

	next := make([]models.Habit, 0, len(s.habits)+1)
	next = append(next, s.habits...)
	next = append(next, h)

	if err := s.write(next); err != nil {
		return models.Habit{}, err
	}
	s.habits = next
	return h, nil
}

// Update changes a habit's name and description. Its id and creation time
// are left untouched.
func (s *HabitStore) Update(id, name, description string) (models.Habit, error) {
	name, description, err := validateHabitInput(name, description)
	if err != nil {
		return models.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	next := append([]models.Habit(nil), s.habits...)
	next[i].Name = name
	next[i].SetDescription(description)

	if err := s.write(next); err != nil {
		return models.Habit{}, err
	}
	s.habits = next
	return next[i], nil
}

// Delete removes a habit, persists the collection and then purges the
// habit's completion events. It returns the number of events purged.
//
// If the purge fails the habit is already gone; its leftover events are
// unreachable but harmless, and the error says so.
func (s *HabitStore) Delete(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}

	next := make([]models.Habit, 0, len(s.habits)-1)
	next = append(next, s.habits[:i]...)
	next = append(next, s.habits[i+1:]...)

	if err := s.write(next); err != nil {
		return 0, err
	}
	s.habits = next

	if s.purger == nil {
		return 0, nil
	}
	purged, err := s.purger.DeleteAllFor(id)
	if err != nil {
		return 0, fmt.Errorf("habit %s deleted but completion cleanup failed: %w", id, err)
	}
	return purged, nil
}

// write must be called with s.mu held.
func (s *HabitStore) write(habits []models.Habit) error {
	lines := make([]string, len(habits))
	for i, h := range habits {
		lines[i] = codec.EncodeHabit(h)
	}

	err := s.guard.Do(func() error {
		return filelock.AtomicWrite(s.path, filelock.JoinLines(lines))
	})
	if err != nil {
		return &StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func (s *HabitStore) indexOf(id string) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

func validateHabitInput(name, description string) (string, string, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if name == "" {
		return "", "", &ValidationError{Field: "name", Message: "name is required"}
	}
	if codec.ContainsReserved(name) {
		return "", "", &ValidationError{Field: "name", Message: fmt.Sprintf("must not contain %q or line breaks", codec.Separator)}
	}
	if codec.ContainsReserved(description) {
		return "", "", &ValidationError{Field: "description", Message: fmt.Sprintf("must not contain %q or line breaks", codec.Separator)}
	}
	return name, description, nil
}
