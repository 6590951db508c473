// Package store holds the mutable application state: the weekly
// schedule, the task list and the calendar journal. Every store is
// constructed with an injected Persistence and writes back after each
// mutation, so persisted state is never more than one change stale.
package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vlinks/planner/internal/model"
	"github.com/vlinks/planner/internal/storage"
	"github.com/vlinks/planner/internal/timegrid"
)

const scheduleKey = "schedule"

const (
	DefaultEntryTitle = "New Class"
	DefaultEntryColor = "#93c5fd"
	DefaultEntryStart = "08:00"
)

var (
	ErrEmptyTitle = errors.New("store: title must not be empty")
	ErrNotFound   = errors.New("store: not found")
)

// ScheduleStore owns the ordered collection of weekly schedule entries.
type ScheduleStore struct {
	mu      sync.Mutex
	entries []*model.ScheduleEntry
	db      storage.Persistence
	logger  *zap.Logger
}

// NewScheduleStore restores the schedule from persistence. An absent or
// unreadable blob falls back to an empty collection; the unreadable
// case is logged and the blob is replaced on the next save.
func NewScheduleStore(db storage.Persistence, logger *zap.Logger) *ScheduleStore {
	s := &ScheduleStore{db: db, logger: logger}
	if err := db.Load(scheduleKey, &s.entries); err != nil {
		if !errors.Is(err, storage.ErrNoRecord) {
			logger.Warn("Discarding unreadable schedule data", zap.Error(err))
		}
		s.entries = nil
	}
	return s
}

// Create assigns a fresh id to the draft, fills unset fields with
// defaults, appends the entry and persists. An empty title refuses the
// save and leaves the collection untouched.
func (s *ScheduleStore) Create(d *EntryDraft) (*model.ScheduleEntry, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, ErrEmptyTitle
	}

	e := d.withDefaults()
	e.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	s.persist()

	s.logger.Info("Schedule entry created",
		zap.String("id", e.ID),
		zap.String("title", e.Title),
		zap.Int("day", e.Day),
		zap.String("start", e.Start),
		zap.String("end", e.End))
	return e, nil
}

// Update overwrites the mutable fields of the entry with the draft and
// persists. The id itself is immutable.
func (s *ScheduleStore) Update(id string, d *EntryDraft) error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID != id {
			continue
		}
		updated := d.withDefaults()
		updated.ID = e.ID
		*e = *updated
		s.persist()
		s.logger.Info("Schedule entry updated", zap.String("id", id))
		return nil
	}
	return ErrNotFound
}

// Delete removes the matching entry. Deleting an absent id is a no-op.
func (s *ScheduleStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			s.logger.Info("Schedule entry deleted", zap.String("id", id))
			return
		}
	}
}

// Get returns the entry with the given id.
func (s *ScheduleStore) Get(id string) (*model.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Find resolves an id or an unambiguous id prefix.
func (s *ScheduleStore) Find(idOrPrefix string) (*model.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var match *model.ScheduleEntry
	for _, e := range s.entries {
		if !strings.HasPrefix(e.ID, idOrPrefix) {
			continue
		}
		if match != nil {
			return nil, errors.New("store: ambiguous id prefix")
		}
		match = e
	}
	if match == nil {
		return nil, ErrNotFound
	}
	copied := *match
	return &copied, nil
}

// All returns a copy of the collection in insertion order.
func (s *ScheduleStore) All() []*model.ScheduleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.ScheduleEntry, len(s.entries))
	for i, e := range s.entries {
		copied := *e
		out[i] = &copied
	}
	return out
}

// Len reports the number of entries.
func (s *ScheduleStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// EntriesFor projects the collection onto one grid cell: entries on the
// given day whose interval intersects the hourly slot starting at
// slotStart minutes. Recomputed on every call; the collection is a
// single person's timetable, caching is not worth it.
func (s *ScheduleStore) EntriesFor(day, slotStart int) []*model.ScheduleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.ScheduleEntry
	for _, e := range s.entries {
		if e.Day != day {
			continue
		}
		if timegrid.Overlaps(slotStart, timegrid.MinutesOf(e.Start), timegrid.MinutesOf(e.End)) {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out
}

// persist writes the collection back. Callers hold the mutex. A failed
// write loses durability, not the in-memory session, so it is only a
// warning.
func (s *ScheduleStore) persist() {
	if err := s.db.Save(scheduleKey, s.entries); err != nil {
		s.logger.Warn("Failed to persist schedule", zap.Error(err))
	}
}
