package store

import (
	"fmt"
	"strings"

	"github.com/vlinks/planner/internal/model"
	"github.com/vlinks/planner/internal/timegrid"
)

// EntryDraft is the editor-side shape of a schedule entry: every field
// optional, seeded either from an empty grid cell or from an existing
// entry, finalized into a validated ScheduleEntry on save.
type EntryDraft struct {
	Title string
	Room  string
	Day   int
	Start string
	End   string
	Color string
}

// NewEntryDraft seeds a draft for an empty cell: day and start time
// pre-filled, end one hour after start, title and color defaulted.
func NewEntryDraft(day int, start string) *EntryDraft {
	return &EntryDraft{
		Title: DefaultEntryTitle,
		Day:   day,
		Start: start,
		End:   timegrid.AddHours(start, 1),
		Color: DefaultEntryColor,
	}
}

// DraftOf copies an existing entry into a draft for editing.
func DraftOf(e *model.ScheduleEntry) *EntryDraft {
	return &EntryDraft{
		Title: e.Title,
		Room:  e.Room,
		Day:   e.Day,
		Start: e.Start,
		End:   e.End,
		Color: e.Color,
	}
}

// Finalize validates the draft at the editor boundary: non-empty title,
// day in 1..7, parseable HH:MM times and end strictly after start. The
// store itself only enforces the title, so lenient callers can bypass
// this; the CLI editor always goes through it.
func (d *EntryDraft) Finalize() (*EntryDraft, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if d.Day < 1 || d.Day > 7 {
		return nil, fmt.Errorf("day %d out of range 1..7", d.Day)
	}
	startMin, err := timegrid.ToMinutes(d.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	endMin, err := timegrid.ToMinutes(d.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	if endMin <= startMin {
		return nil, fmt.Errorf("end %s must be after start %s", d.End, d.Start)
	}
	return d, nil
}

// withDefaults materializes the draft into an entry, filling unset
// fields the way the editor seeds them.
func (d *EntryDraft) withDefaults() *model.ScheduleEntry {
	e := &model.ScheduleEntry{
		Title: strings.TrimSpace(d.Title),
		Room:  strings.TrimSpace(d.Room),
		Day:   d.Day,
		Start: d.Start,
		End:   d.End,
		Color: d.Color,
	}
	if e.Day == 0 {
		e.Day = 1
	}
	if e.Start == "" {
		e.Start = DefaultEntryStart
	}
	if e.End == "" {
		e.End = timegrid.AddHours(e.Start, 1)
	}
	if e.Color == "" {
		e.Color = DefaultEntryColor
	}
	return e
}
