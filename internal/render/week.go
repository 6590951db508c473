// Package render draws the weekly timetable as a PNG: an hour gutter,
// seven day columns Monday-first and one rounded block per schedule
// entry, colored by the entry itself.
package render

import (
	"bytes"
	"image/color"
	"os"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/vlinks/planner/internal/model"
	"github.com/vlinks/planner/internal/timegrid"
)

const (
	imageWidth     = 1400
	imageHeight    = 900
	headerHeight   = 100
	leftGutter     = 80
	dayPaddingX    = 8
	minBlockHeight = 30.0
	blockRadius    = 6.0
	shadowOffset   = 3.0
	daysPerWeek    = 7
)

const (
	titleFontSize   = 25.0
	dayFontSize     = 27.0
	hourFontSize    = 18.0
	blockFontSize   = 17.0
	captionFontSize = 15.0
)

var (
	bgColor       = color.RGBA{245, 246, 248, 255}
	textColor     = color.RGBA{80, 85, 90, 220}
	hourTextColor = color.RGBA{110, 115, 120, 200}
	hourLineColor = color.NRGBA{150, 150, 150, 255}
	todayBgColor  = color.NRGBA{255, 99, 71, 60}
	evenDayColor  = color.NRGBA{240, 240, 240, 255}
	oddDayColor   = color.NRGBA{220, 220, 220, 255}
	nowLineColor  = color.NRGBA{255, 80, 80, 200}
	blockText     = color.RGBA{20, 24, 28, 230}
	shadowColor   = color.RGBA{0, 0, 0, 20}
)

// Renderer produces week images for a fixed hour range. A TTF font may
// be supplied; without one the built-in bitmap face is used.
type Renderer struct {
	firstHour int
	lastHour  int
	fallback  string // default block color for unparsable entry colors

	fontPath string
	parsed   *opentype.Font
}

// New builds a renderer for the [firstHour, lastHour] rows.
func New(firstHour, lastHour int, defaultColor, fontPath string) *Renderer {
	if lastHour <= firstHour {
		firstHour, lastHour = 8, 19
	}
	return &Renderer{
		firstHour: firstHour,
		lastHour:  lastHour,
		fallback:  defaultColor,
		fontPath:  fontPath,
	}
}

// Week renders all entries onto the grid and returns PNG bytes. The
// current weekday column is highlighted and a line marks the current
// time when it falls inside the hour range. Entries with malformed
// times or an out-of-range day are skipped, not fatal.
func (r *Renderer) Week(entries []*model.ScheduleEntry, now time.Time) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := (imageWidth - leftGutter) / daysPerWeek
	dayHeight := imageHeight - headerHeight
	totalHours := r.lastHour - r.firstHour + 1
	cellHeight := float64(dayHeight) / float64(totalHours)
	today := isoWeekday(now)

	r.drawHeader(dc, now)
	r.drawHourGutter(dc, cellHeight)

	for day := 1; day <= daysPerWeek; day++ {
		x := float64(leftGutter + (day-1)*dayWidth)
		y := float64(headerHeight)

		r.drawDayBackground(dc, x, y, dayWidth, dayHeight, day, day == today)
		r.drawDayHeader(dc, x, dayWidth, day)
		r.drawHourLines(dc, x, y, dayWidth, totalHours, cellHeight)

		for _, e := range entries {
			if e.Day == day {
				r.drawEntry(dc, e, x, dayWidth, cellHeight)
			}
		}
	}

	r.drawNowLine(dc, now, dayWidth, cellHeight)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(dc *gg.Context, now time.Time) {
	title := "Weekly Schedule · " + now.Format("January 2006")
	r.loadFace(dc, titleFontSize)
	dc.SetColor(textColor)
	w, h := dc.MeasureString(title)
	dc.DrawStringAnchored(title, w/2+20, float64(headerHeight)/8+h/2, 0, 0)
}

func (r *Renderer) drawHourGutter(dc *gg.Context, cellHeight float64) {
	r.loadFace(dc, hourFontSize)
	dc.SetColor(hourTextColor)
	for i := 0; i <= r.lastHour-r.firstHour; i++ {
		y := float64(headerHeight) + float64(i)*cellHeight
		label := timegrid.FormatClock((r.firstHour + i) * 60)
		dc.DrawStringAnchored(label, float64(leftGutter)-10, y, 1, 0.5)
	}
}

func (r *Renderer) drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, day int, isToday bool) {
	if day%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()

	if isToday {
		dc.SetColor(todayBgColor)
		dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
		dc.Fill()
	}
}

func (r *Renderer) drawDayHeader(dc *gg.Context, x float64, dayWidth, day int) {
	r.loadFace(dc, dayFontSize)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(model.DayName(day), x+float64(dayWidth)/2, float64(headerHeight), 0.5, -0.5)
}

func (r *Renderer) drawHourLines(dc *gg.Context, x, y float64, dayWidth, totalHours int, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)
	for i := 0; i <= totalHours; i++ {
		hy := y + float64(i)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

func (r *Renderer) drawEntry(dc *gg.Context, e *model.ScheduleEntry, x float64, dayWidth int, cellHeight float64) {
	startMin, err := timegrid.ToMinutes(e.Start)
	if err != nil {
		return
	}
	endMin, err := timegrid.ToMinutes(e.End)
	if err != nil {
		return
	}

	gridTop := r.firstHour * 60
	y := float64(headerHeight) + float64(startMin-gridTop)*cellHeight/timegrid.SlotMinutes
	h := timegrid.BlockHeight(startMin, endMin, cellHeight, minBlockHeight)
	w := float64(dayWidth) - dayPaddingX*2

	fill := ParseHexColor(e.Color, r.fallback)

	dc.SetColor(shadowColor)
	dc.DrawRoundedRectangle(x+dayPaddingX+shadowOffset, y+2+shadowOffset, w, h-4, blockRadius)
	dc.Fill()

	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x+dayPaddingX, y+2, w, h-4, blockRadius)
	dc.Fill()

	dc.SetColor(darken(fill, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+dayPaddingX, y+2, w, h-4, blockRadius)
	dc.Stroke()

	r.loadFace(dc, blockFontSize)
	dc.SetColor(blockText)
	txtX := x + dayPaddingX + 8
	txtY := y + 18
	dc.DrawStringAnchored(truncate(e.Title, 24), txtX, txtY, 0, 0)

	if h > minBlockHeight {
		caption := e.Start + "–" + e.End
		if e.Room != "" {
			caption += " · " + truncate(e.Room, 16)
		}
		r.loadFace(dc, captionFontSize)
		dc.DrawStringAnchored(caption, txtX, txtY+16, 0, 0)
	}
}

func (r *Renderer) drawNowLine(dc *gg.Context, now time.Time, dayWidth int, cellHeight float64) {
	current := float64(now.Hour()) + float64(now.Minute())/60.0
	if current < float64(r.firstHour) || current > float64(r.lastHour) {
		return
	}
	y := float64(headerHeight) + (current-float64(r.firstHour))*cellHeight
	dc.SetColor(nowLineColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(leftGutter, y, float64(leftGutter+daysPerWeek*dayWidth), y)
	dc.Stroke()
}

// loadFace sets the drawing face at the requested size, parsing the
// configured TTF once and falling back to the bitmap face when absent
// or unreadable.
func (r *Renderer) loadFace(dc *gg.Context, size float64) {
	if r.fontPath == "" {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	if r.parsed == nil {
		data, err := os.ReadFile(r.fontPath)
		if err != nil {
			r.fontPath = ""
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			r.fontPath = ""
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		r.parsed = parsed
	}
	face, err := opentype.NewFace(r.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	dc.SetFontFace(face)
}

// ParseHexColor parses "#rgb" or "#rrggbb"; anything else resolves the
// fallback, and a bad fallback comes out light blue.
func ParseHexColor(s, fallback string) color.RGBA {
	if c, ok := parseHex(s); ok {
		return c
	}
	if c, ok := parseHex(fallback); ok {
		return c
	}
	return color.RGBA{147, 197, 253, 255}
}

func parseHex(s string) (color.RGBA, bool) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, false
	}
	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	switch len(s) {
	case 4: // #rgb
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := hexVal(s[i+1])
			if !ok {
				return color.RGBA{}, false
			}
			out[i] = v*16 + v
		}
		return color.RGBA{out[0], out[1], out[2], 255}, true
	case 7: // #rrggbb
		var out [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexVal(s[2*i+1])
			lo, ok2 := hexVal(s[2*i+2])
			if !ok1 || !ok2 {
				return color.RGBA{}, false
			}
			out[i] = hi*16 + lo
		}
		return color.RGBA{out[0], out[1], out[2], 255}, true
	}
	return color.RGBA{}, false
}

func darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// isoWeekday maps time.Weekday to the timetable's Monday=1..Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
