package model

// ScheduleEntry is one recurring weekly time block on the timetable.
// Day numbering is Monday=1 .. Sunday=7.
type ScheduleEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Room  string `json:"room,omitempty"`
	Day   int    `json:"day"`
	Start string `json:"start"` // "HH:MM", 24-hour
	End   string `json:"end"`   // "HH:MM", 24-hour
	Color string `json:"color"` // display color, no semantic meaning
}

// DayNames maps Day-1 to its short English label.
var DayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayName returns the short label for a 1-based weekday, or "?" when out of range.
func DayName(day int) string {
	if day < 1 || day > 7 {
		return "?"
	}
	return DayNames[day-1]
}
