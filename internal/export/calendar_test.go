package export

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildICS(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e := Event{
		UID:         "abc-123",
		Title:       "Math; revision, part 1",
		Description: "Bring notes\nand a calculator",
		Start:       time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
	}

	ics := BuildICS(e, now)
	lines := strings.Split(ics, "\r\n")

	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, ics, "PRODID:-//Vlinks//Planner//EN")
	assert.Contains(t, ics, "UID:abc-123")
	assert.Contains(t, ics, "DTSTAMP:20260301T120000Z")
	assert.Contains(t, ics, "DTSTART:20260309T080000Z")
	assert.Contains(t, ics, "DTEND:20260309T100000Z")
	assert.Contains(t, ics, `SUMMARY:Math\; revision\, part 1`)
	assert.Contains(t, ics, `DESCRIPTION:Bring notes\nand a calculator`)
}

func TestBuildICSDefaults(t *testing.T) {
	start := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	ics := BuildICS(Event{Title: "Quick call", Start: start}, start)

	// a UID is generated and the default duration is 30 minutes
	assert.Contains(t, ics, "UID:")
	assert.Contains(t, ics, "DTEND:20260309T083000Z")
}

func TestGoogleCalendarURL(t *testing.T) {
	e := Event{
		Title:       "C MT1114 Lecture",
		Description: "Lecture Theatre 3",
		Start:       time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
	}

	raw := GoogleCalendarURL(e)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "calendar.google.com", u.Host)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "C MT1114 Lecture", q.Get("text"))
	assert.Equal(t, "20260309T080000Z/20260309T100000Z", q.Get("dates"))
}

func TestNextOccurrence(t *testing.T) {
	// Monday 2026-03-09, 12:00 local.
	now := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	// Later today.
	got, err := NextOccurrence(1, "16:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC), got)

	// Earlier today rolls to next week.
	got, err = NextOccurrence(1, "08:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC), got)

	// Thursday this week.
	got, err = NextOccurrence(4, "08:00", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC), got)

	// Sunday from a Sunday.
	sunday := time.Date(2026, 3, 15, 7, 0, 0, 0, time.UTC)
	got, err = NextOccurrence(7, "09:00", sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), got)

	_, err = NextOccurrence(1, "nope", now)
	assert.Error(t, err)
}
