// Package timegrid provides the pure time arithmetic behind the weekly
// timetable: wall-clock strings to minute offsets, slot overlap tests
// and block geometry for an hourly grid.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotMinutes is the height of one grid row in minutes.
const SlotMinutes = 60

// ToMinutes parses a 24-hour "HH:MM" string into minutes since
// midnight. There is no timezone concept; the parse is purely lexical.
func ToMinutes(hhmm string) (int, error) {
	h, m, err := splitClock(hhmm)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// MinutesOf is ToMinutes for already-validated input; malformed
// strings collapse to 0 instead of an error.
func MinutesOf(hhmm string) int {
	min, err := ToMinutes(hhmm)
	if err != nil {
		return 0
	}
	return min
}

// Overlaps reports whether the half-open entry interval
// [entryStart, entryEnd) intersects the hourly slot starting at
// slotStart. All arguments are minutes since midnight.
func Overlaps(slotStart, entryStart, entryEnd int) bool {
	return !(entryEnd <= slotStart || entryStart >= slotStart+SlotMinutes)
}

// VerticalOffset returns the fraction of the slot's 60-minute row that
// is consumed before the entry visually begins, clamped to [0, 1].
func VerticalOffset(slotStart, entryStart int) float64 {
	ratio := float64(entryStart-slotStart) / SlotMinutes
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// BlockHeight returns the rendered height of an entry given the pixel
// height of one hourly row. Very short (or degenerate) entries are
// held at minHeight so they remain visible and tappable.
func BlockHeight(entryStart, entryEnd int, rowHeight, minHeight float64) float64 {
	h := float64(entryEnd-entryStart) * rowHeight / SlotMinutes
	if h < minHeight {
		return minHeight
	}
	return h
}

// AddHours shifts an "HH:MM" clock string by n hours, wrapping around
// midnight. Malformed input is returned unchanged.
func AddHours(hhmm string, n int) string {
	h, m, err := splitClock(hhmm)
	if err != nil {
		return hhmm
	}
	h = ((h+n)%24 + 24) % 24
	return FormatClock(h*60 + m)
}

// Slots returns the hourly row labels from firstHour to lastHour
// inclusive, e.g. Slots(8, 19) -> "08:00" .. "19:00".
func Slots(firstHour, lastHour int) []string {
	if lastHour < firstHour {
		firstHour, lastHour = lastHour, firstHour
	}
	labels := make([]string, 0, lastHour-firstHour+1)
	for h := firstHour; h <= lastHour; h++ {
		labels = append(labels, FormatClock(h*60))
	}
	return labels
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// FormatSeconds renders a non-negative second count as "MM:SS".
func FormatSeconds(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

func splitClock(hhmm string) (h, m int, err error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", hhmm)
	}
	h, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", hhmm)
	}
	return h, m, nil
}
