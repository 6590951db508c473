package render

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlinks/planner/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestWeekProducesPNG(t *testing.T) {
	r := New(8, 19, "#93c5fd", "")
	now := time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC) // a Monday

	entries := []*model.ScheduleEntry{
		{ID: "a", Title: "C MT1114 Lecture", Room: "Lecture Theatre 3", Day: 4, Start: "08:00", End: "10:00", Color: "#5eead4"},
		{ID: "b", Title: "C CT1114 Lab", Room: "Com Lab", Day: 1, Start: "16:00", End: "18:00", Color: "#93c5fd"},
		{ID: "c", Title: "Short", Day: 2, Start: "10:30", End: "10:40", Color: "#fca5a5"},
		{ID: "bad-time", Title: "Skipped", Day: 3, Start: "garbage", End: "10:00"},
		{ID: "bad-day", Title: "Skipped", Day: 9, Start: "08:00", End: "09:00"},
	}

	png, err := r.Week(entries, now)
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:4])
}

func TestWeekEmptySchedule(t *testing.T) {
	r := New(8, 19, "#93c5fd", "")
	png, err := r.Week(nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestNewSwapsDegenerateHourRange(t *testing.T) {
	r := New(20, 6, "#93c5fd", "")
	assert.Equal(t, 8, r.firstHour)
	assert.Equal(t, 19, r.lastHour)
}

func TestMissingFontFallsBack(t *testing.T) {
	r := New(8, 19, "#93c5fd", "/no/such/font.ttf")
	png, err := r.Week(nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, pngMagic, png[:4])
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, color.RGBA{94, 234, 212, 255}, ParseHexColor("#5eead4", "#000000"))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ParseHexColor("#fff", "#000000"))
	// invalid value uses the fallback
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ParseHexColor("teal", "#000000"))
	// invalid fallback lands on the built-in default
	assert.Equal(t, color.RGBA{147, 197, 253, 255}, ParseHexColor("teal", "nope"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a very lo...", truncate("a very long course title", 12))
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 1, isoWeekday(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))  // Monday
	assert.Equal(t, 7, isoWeekday(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))) // Sunday
}
