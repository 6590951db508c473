// Package export turns planner items into external calendar formats:
// an .ics event body and a Google Calendar template link.
package export

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vlinks/planner/internal/timegrid"
)

// defaultEventDuration applies when no end time is given.
const defaultEventDuration = 30 * time.Minute

// Event is one exportable calendar event.
type Event struct {
	UID         string // generated when empty
	Title       string
	Description string
	Start       time.Time
	End         time.Time // Start + 30min when zero
}

func (e Event) bounds() (time.Time, time.Time) {
	end := e.End
	if end.IsZero() {
		end = e.Start.Add(defaultEventDuration)
	}
	return e.Start, end
}

// BuildICS renders the event as a single-VEVENT VCALENDAR document,
// CRLF-terminated lines per RFC 5545.
func BuildICS(e Event, now time.Time) string {
	uid := e.UID
	if uid == "" {
		uid = uuid.NewString()
	}
	start, end := e.bounds()

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Vlinks//Planner//EN",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + compactUTC(now),
		"DTSTART:" + compactUTC(start),
		"DTEND:" + compactUTC(end),
		"SUMMARY:" + escapeICS(e.Title),
		"DESCRIPTION:" + escapeICS(e.Description),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}

// GoogleCalendarURL builds the prefilled "add event" template link.
func GoogleCalendarURL(e Event) string {
	start, end := e.bounds()
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", e.Title)
	params.Set("details", e.Description)
	params.Set("dates", compactUTC(start)+"/"+compactUTC(end))
	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

// NextOccurrence resolves a recurring weekly block (Monday=1..Sunday=7
// plus an "HH:MM" clock) to its next concrete start after now. A slot
// earlier today rolls over to next week.
func NextOccurrence(day int, hhmm string, now time.Time) (time.Time, error) {
	minutes, err := timegrid.ToMinutes(hhmm)
	if err != nil {
		return time.Time{}, err
	}

	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	daysAhead := (day - weekday + 7) % 7

	candidate := time.Date(now.Year(), now.Month(), now.Day(), minutes/60, minutes%60, 0, 0, now.Location()).
		AddDate(0, 0, daysAhead)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate, nil
}

func compactUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func escapeICS(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
