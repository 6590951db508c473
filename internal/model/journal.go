package model

// Mood is a single-emoji daily mood mark. The empty string means "not set".
type Mood string

const (
	MoodGreat Mood = "😀"
	MoodGood  Mood = "🙂"
	MoodOkay  Mood = "😐"
	MoodLow   Mood = "🙁"
	MoodSad   Mood = "😢"
	MoodNone  Mood = ""
)

// Moods lists the selectable marks in descending order.
var Moods = [5]Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodSad}

// Score maps a mood to a 1..5 value for averaging; unset scores 0.
func (m Mood) Score() int {
	switch m {
	case MoodGreat:
		return 5
	case MoodGood:
		return 4
	case MoodOkay:
		return 3
	case MoodLow:
		return 2
	case MoodSad:
		return 1
	default:
		return 0
	}
}

// JournalData is the persisted calendar journal: per-day ("YYYY-MM-DD")
// mood marks and gratitude notes, newest note first.
type JournalData struct {
	Moods     map[string]Mood     `json:"moods"`
	Gratitude map[string][]string `json:"gratitude"`
}

// NewJournalData returns an empty journal with initialized maps.
func NewJournalData() *JournalData {
	return &JournalData{
		Moods:     make(map[string]Mood),
		Gratitude: make(map[string][]string),
	}
}
