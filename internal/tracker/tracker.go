// Package tracker is the entry point the CLI drives. It ties the habit store
// to the completion log and gates every destructive or recording action
// behind an explicit confirmation, so nothing is written until the caller
// approves.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/harrison/habits/internal/codec"
	"github.com/harrison/habits/internal/config"
	"github.com/harrison/habits/internal/logger"
	"github.com/harrison/habits/internal/models"
	"github.com/harrison/habits/internal/stats"
	"github.com/harrison/habits/internal/store"
)

// ErrAmbiguous is returned when a habit reference matches more than one habit.
var ErrAmbiguous = errors.New("ambiguous habit reference")

// Tracker coordinates habit and completion operations.
type Tracker struct {
	habits *store.HabitStore
	log    *store.CompletionLog
	logger logger.Logger
	now    func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the clock used to timestamp completions.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a Tracker over already constructed stores. The habit store
// should be created with store.WithPurger(log) so deletions cascade.
func New(habits *store.HabitStore, log *store.CompletionLog, lg logger.Logger, opts ...Option) *Tracker {
	if lg == nil {
		lg = logger.NewNoOpLogger()
	}
	t := &Tracker{
		habits: habits,
		log:    log,
		logger: lg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Open builds the stores described by cfg and loads the habit file.
func Open(cfg *config.Config, lg logger.Logger, opts ...Option) (*Tracker, error) {
	log := store.NewCompletionLog(cfg.LogPath())
	habits := store.NewHabitStore(cfg.HabitsPath(), store.WithPurger(log))
	if err := habits.Load(); err != nil {
		return nil, err
	}
	return New(habits, log, lg, opts...), nil
}

// Habits returns the habits in file order.
func (t *Tracker) Habits() []models.Habit {
	return t.habits.Habits()
}

// Summary is a habit with aggregate completion figures.
type Summary struct {
	Habit       models.Habit
	Completions int
}

// Summaries returns every habit with its completion count, in file order.
func (t *Tracker) Summaries() ([]Summary, error) {
	counts, err := t.log.CountByHabit()
	if err != nil {
		return nil, err
	}

	habits := t.habits.Habits()
	out := make([]Summary, len(habits))
	for i, h := range habits {
		out[i] = Summary{Habit: h, Completions: counts[h.ID]}
	}
	return out, nil
}

// Resolve finds a habit by exact id, exact name, or unique id prefix, in
// that order.
func (t *Tracker) Resolve(ref string) (models.Habit, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Habit{}, fmt.Errorf("%w: empty reference", store.ErrHabitNotFound)
	}
	if h, ok := t.habits.Get(ref); ok {
		return h, nil
	}

	habits := t.habits.Habits()
	var byName, byPrefix []models.Habit
	for _, h := range habits {
		if h.Name == ref {
			byName = append(byName, h)
		}
		if strings.HasPrefix(h.ID, ref) {
			byPrefix = append(byPrefix, h)
		}
	}

	for _, matches := range [][]models.Habit{byName, byPrefix} {
		switch len(matches) {
		case 0:
			continue
		case 1:
			return matches[0], nil
		default:
			return models.Habit{}, fmt.Errorf("%w: %q matches %d habits", ErrAmbiguous, ref, len(matches))
		}
	}
	return models.Habit{}, fmt.Errorf("%w: %s", store.ErrHabitNotFound, ref)
}

// Create adds a habit.
func (t *Tracker) Create(name, description string) (models.Habit, error) {
	h, err := t.habits.Create(name, description)
	if err != nil {
		return models.Habit{}, err
	}
	t.logger.LogHabitCreated(h)
	return h, nil
}

// Update edits a habit's name and description.
func (t *Tracker) Update(id, name, description string) (models.Habit, error) {
	h, err := t.habits.Update(id, name, description)
	if err != nil {
		return models.Habit{}, err
	}
	t.logger.LogHabitUpdated(h)
	return h, nil
}

// Delete asks c to confirm, then deletes the habit and all of its
// completions. It returns the number of completions removed.
func (t *Tracker) Delete(ctx context.Context, id string, c Confirmer) (int, error) {
	h, ok := t.habits.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", store.ErrHabitNotFound, id)
	}
	if err := confirm(ctx, c, fmt.Sprintf("Delete habit %q?", h.Name)); err != nil {
		return 0, err
	}

	purged, err := t.habits.Delete(id)
	if err != nil {
		t.logger.LogError(fmt.Sprintf("delete habit %s: %v", id, err))
		return purged, err
	}
	t.logger.LogHabitDeleted(h, purged)
	return purged, nil
}

// Complete asks c to confirm, then records a completion stamped with the
// time of confirmation.
func (t *Tracker) Complete(ctx context.Context, id string, c Confirmer) (models.CompletionEvent, error) {
	h, ok := t.habits.Get(id)
	if !ok {
		return models.CompletionEvent{}, fmt.Errorf("%w: %s", store.ErrHabitNotFound, id)
	}
	if err := confirm(ctx, c, fmt.Sprintf("Did you complete %q?", h.Name)); err != nil {
		return models.CompletionEvent{}, err
	}

	e, err := t.log.Append(h.ID, t.now())
	if err != nil {
		return models.CompletionEvent{}, err
	}
	t.logger.LogCompletionRecorded(h, e)
	return e, nil
}

// Completions returns the habit's completion times in log order.
func (t *Tracker) Completions(id string) ([]time.Time, error) {
	if _, ok := t.habits.Get(id); !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrHabitNotFound, id)
	}
	return t.log.ListFor(id)
}

// RecentCompletions returns the habit's completion times, most recent first.
func (t *Tracker) RecentCompletions(id string) ([]time.Time, error) {
	times, err := t.Completions(id)
	if err != nil {
		return nil, err
	}
	sorted := append([]time.Time(nil), times...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})
	return sorted, nil
}

// DeleteCompletion asks c to confirm, then removes the completion recorded
// at ts. It returns the number of log lines removed, which is zero when no
// completion matched that exact second.
func (t *Tracker) DeleteCompletion(ctx context.Context, id string, ts time.Time, c Confirmer) (int, error) {
	h, ok := t.habits.Get(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s", store.ErrHabitNotFound, id)
	}
	prompt := fmt.Sprintf("Delete completion of %q at %s?", h.Name, codec.FormatTime(ts))
	if err := confirm(ctx, c, prompt); err != nil {
		return 0, err
	}

	removed, err := t.log.DeleteOne(h.ID, ts)
	if err != nil {
		return 0, err
	}
	t.logger.LogCompletionRemoved(h, ts, removed)
	return removed, nil
}

// Stats builds the hour-by-day matrix of a habit. It returns stats.ErrNoData
// when the habit has no completions.
func (t *Tracker) Stats(id string) (*stats.Matrix, error) {
	times, err := t.Completions(id)
	if err != nil {
		return nil, err
	}
	return stats.Build(times)
}

// Export writes the habit's matrix to dir and returns the file path.
// No file is written when the habit has no completions.
func (t *Tracker) Export(id, dir string) (string, error) {
	h, ok := t.habits.Get(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", store.ErrHabitNotFound, id)
	}

	m, err := t.Stats(id)
	if err != nil {
		return "", err
	}

	path, err := stats.Export(m, dir, h.Name)
	if err != nil {
		return "", &store.StorageError{Op: "export", Path: dir, Err: err}
	}
	t.logger.LogExport(h, path)
	return path, nil
}

// CompletionsOn returns the habit's completions on the calendar date of day,
// in log order.
func (t *Tracker) CompletionsOn(id string, day time.Time) ([]time.Time, error) {
	times, err := t.Completions(id)
	if err != nil {
		return nil, err
	}
	y, m, d := day.Date()
	var out []time.Time
	for _, ts := range times {
		if ty, tm, td := ts.Date(); ty == y && tm == m && td == d {
			out = append(out, ts)
		}
	}
	return out, nil
}
