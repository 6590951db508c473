package store

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vlinks/planner/internal/model"
	"github.com/vlinks/planner/internal/storage"
)

const journalKey = "journal"

// maxNotesPerDay caps gratitude notes; the journal is meant for a few
// tiny things, not an essay.
const maxNotesPerDay = 5

// insightWindow is the number of trailing days the insights cover.
const insightWindow = 7

// JournalStore owns the per-day mood marks and gratitude notes.
type JournalStore struct {
	mu     sync.Mutex
	data   *model.JournalData
	db     storage.Persistence
	logger *zap.Logger
	now    func() time.Time
}

// NewJournalStore restores the journal, falling back to an empty one on
// absent or unreadable data.
func NewJournalStore(db storage.Persistence, logger *zap.Logger) *JournalStore {
	s := &JournalStore{db: db, logger: logger, now: time.Now}
	data := model.NewJournalData()
	if err := db.Load(journalKey, data); err != nil {
		if !errors.Is(err, storage.ErrNoRecord) {
			logger.Warn("Discarding unreadable journal data", zap.Error(err))
		}
		data = model.NewJournalData()
	}
	if data.Moods == nil {
		data.Moods = make(map[string]model.Mood)
	}
	if data.Gratitude == nil {
		data.Gratitude = make(map[string][]string)
	}
	s.data = data
	return s
}

// DayKey formats a time as the journal's "YYYY-MM-DD" map key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SetMood records (or, with MoodNone, clears) the mood for a day.
func (s *JournalStore) SetMood(day string, m model.Mood) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == model.MoodNone {
		delete(s.data.Moods, day)
	} else {
		s.data.Moods[day] = m
	}
	s.persist()
	s.logger.Info("Mood recorded", zap.String("day", day), zap.String("mood", string(m)))
}

// Mood returns the mood recorded for a day, MoodNone when unset.
func (s *JournalStore) Mood(day string) model.Mood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Moods[day]
}

// AddGratitude prepends a note for the day, keeping at most
// maxNotesPerDay. Blank notes are ignored.
func (s *JournalStore) AddGratitude(day, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	notes := append([]string{text}, s.data.Gratitude[day]...)
	if len(notes) > maxNotesPerDay {
		notes = notes[:maxNotesPerDay]
	}
	s.data.Gratitude[day] = notes
	s.persist()
	s.logger.Info("Gratitude note added", zap.String("day", day))
}

// Gratitude returns the notes for a day, newest first.
func (s *JournalStore) Gratitude(day string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.data.Gratitude[day]...)
}

// Insights summarizes the trailing week of check-ins.
type Insights struct {
	AvgMood float64 // mean score over the window, blanks counted as 0
	Blanks  int     // days in the window without a mood
	Streak  int     // consecutive days (ending today) with any check-in
	Tips    []string
}

// Insights computes the 7-day summary and its canned suggestions.
func (s *JournalStore) Insights() Insights {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var in Insights
	total := 0
	for i := 0; i < insightWindow; i++ {
		key := DayKey(now.AddDate(0, 0, -i))
		m := s.data.Moods[key]
		total += m.Score()
		if m == model.MoodNone {
			in.Blanks++
		}
	}
	in.AvgMood = math.Round(float64(total)/insightWindow*10) / 10

	for i := 0; i < insightWindow; i++ {
		key := DayKey(now.AddDate(0, 0, -i))
		if s.data.Moods[key] != model.MoodNone || len(s.data.Gratitude[key]) > 0 {
			in.Streak++
		} else {
			break
		}
	}

	if in.AvgMood > 0 && in.AvgMood < 3 {
		in.Tips = append(in.Tips, "Feeling a bit low this week — try 10 minutes of breathing and stretching in the evening, it may help.")
	}
	if in.Blanks >= 3 {
		in.Tips = append(in.Tips, "You missed a few days of check-ins — consider a gentle daily reminder at 9 PM.")
	}
	if in.Streak >= 3 {
		in.Tips = append(in.Tips, fmt.Sprintf("Nice streak: %d days in a row! Keep it up — add one tiny gratitude today 🌱", in.Streak))
	}
	if len(in.Tips) == 0 {
		in.Tips = append(in.Tips, "You're doing well! Schedule a 25-minute focus sprint and jot one gratitude afterwards 😌")
	}
	return in
}

func (s *JournalStore) persist() {
	if err := s.db.Save(journalKey, s.data); err != nil {
		s.logger.Warn("Failed to persist journal", zap.Error(err))
	}
}
