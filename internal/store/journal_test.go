package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vlinks/planner/internal/model"
)

func newTestJournalStore() *JournalStore {
	return NewJournalStore(newTestPersistence(), zap.NewNop())
}

func TestSetAndClearMood(t *testing.T) {
	s := newTestJournalStore()

	s.SetMood("2026-03-09", model.MoodGood)
	assert.Equal(t, model.MoodGood, s.Mood("2026-03-09"))

	s.SetMood("2026-03-09", model.MoodNone)
	assert.Equal(t, model.MoodNone, s.Mood("2026-03-09"))
}

func TestGratitudeCapAndOrder(t *testing.T) {
	s := newTestJournalStore()
	day := "2026-03-09"

	s.AddGratitude(day, "   ") // ignored
	for _, note := range []string{"one", "two", "three", "four", "five", "six"} {
		s.AddGratitude(day, note)
	}

	notes := s.Gratitude(day)
	require.Len(t, notes, maxNotesPerDay)
	assert.Equal(t, "six", notes[0])
	assert.Equal(t, "two", notes[4])
}

func TestInsights(t *testing.T) {
	s := newTestJournalStore()
	now := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	// Three-day streak ending today, four blank days in the window.
	s.SetMood(DayKey(now), model.MoodGreat)
	s.SetMood(DayKey(now.AddDate(0, 0, -1)), model.MoodGood)
	s.AddGratitude(DayKey(now.AddDate(0, 0, -2)), "slept well")

	in := s.Insights()
	// (5+4+0+0+0+0+0)/7 = 1.3
	assert.InDelta(t, 1.3, in.AvgMood, 0.001)
	assert.Equal(t, 5, in.Blanks)
	assert.Equal(t, 3, in.Streak)

	assert.Contains(t, in.Tips[0], "a bit low")
	joined := ""
	for _, tip := range in.Tips {
		joined += tip
	}
	assert.Contains(t, joined, "missed a few days")
	assert.Contains(t, joined, "Nice streak: 3 days")
}

func TestInsightsFallbackTip(t *testing.T) {
	s := newTestJournalStore()
	now := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	// Good week overall but today and yesterday unmarked: no low-mood
	// tip (avg 25/7 ≈ 3.6), no missed-days tip (2 blanks), no streak.
	for i := 2; i <= 6; i++ {
		s.SetMood(DayKey(now.AddDate(0, 0, -i)), model.MoodGreat)
	}

	in := s.Insights()
	assert.Equal(t, 0, in.Streak)
	assert.Equal(t, 2, in.Blanks)
	require.Len(t, in.Tips, 1)
	assert.Contains(t, in.Tips[0], "focus sprint")
}

func TestJournalPersistsAcrossRestart(t *testing.T) {
	db := newTestPersistence()
	s := NewJournalStore(db, zap.NewNop())
	s.SetMood("2026-03-09", model.MoodOkay)
	s.AddGratitude("2026-03-09", "coffee")

	reloaded := NewJournalStore(db, zap.NewNop())
	assert.Equal(t, model.MoodOkay, reloaded.Mood("2026-03-09"))
	assert.Equal(t, []string{"coffee"}, reloaded.Gratitude("2026-03-09"))
}
