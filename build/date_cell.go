package build

import (
	"math"
	"strconv"
	"strings"

	"plancanvas/common"
	"plancanvas/element"
	"plancanvas/holiday"
	"plancanvas/scene"
)

const (
	dateCellInset     = 8
	accentTextMaxSize = 16
)

// DateCell builds single day card.
func DateCell(m *element.DateCell, lk Lookups) *scene.Object {
	m = element.Apply(m, nil)
	if degenerate(m.Size) {
		return empty(m)
	}
	names := lk.names()
	w, h := m.Size.Width, m.Size.Height

	bg := background(m.Frame, m.Size)
	var border *scene.Object
	if m.ShowBorder {
		// border goes on top of accent band
		border = bg.Clone()
		border.Fill = ""
		bg.Stroke, bg.StrokeWidth = "", 0
	}
	out := []*scene.Object{bg}

	day, dated := m.Day()
	var groups []holiday.Group
	if dated && m.Holidays.ShowHolidays {
		groups = holiday.GroupByDate(holiday.InRange(lk.Holidays, day, day, m.Country, m.Language))
	}
	var info string
	if m.Holidays.ShowList && len(groups) > 0 {
		info = strings.Join(groups[0].Names(m.Language), ", ")
	}
	infoH := 0.0
	if len(info) > 0 {
		infoH = math.Ceil(m.InfoFontSize*1.6) + dateCellInset
	}

	accent := h * m.AccentHeightRatio
	var z Zones
	var infoRect scene.Rect
	switch m.InfoPosition {
	case common.InfoPositionTop:
		z = Partition(h, accent, infoH, 0)
		infoRect = scene.Rect{Left: 0, Top: z.Header, Width: w, Height: z.Weekday}
	case common.InfoPositionOverlay:
		z = Partition(h, accent, 0, 0)
		ih := math.Min(infoH, z.Header/2)
		infoRect = scene.Rect{Left: 0, Top: z.Header - ih, Width: w, Height: ih}
	default:
		z = Partition(h, accent, 0, infoH)
		infoRect = scene.Rect{Left: 0, Top: h - z.List, Width: w, Height: z.List}
	}

	out = append(out, topBand(w, z.Header, m.CornerRadius, m.AccentColor)...)

	if dated {
		var lines []string
		if m.ShowWeekday {
			lines = append(lines, names.WeekdayNames(int(day.Weekday()), m.Language, m.WeekdayFormat)[0])
		}
		if m.ShowMonth {
			lines = append(lines, names.MonthName(day.Month(), m.Language, m.MonthStyle)+" "+strconv.Itoa(day.Year()))
		}
		band := z.Header
		if m.InfoPosition == common.InfoPositionOverlay {
			band -= infoRect.Height
		}
		if n := len(lines); n > 0 && band > 2*dateCellInset {
			lh := (band - 2*dateCellInset) / float64(n)
			st := textStyle{
				size:   FitFontSize(accentTextMaxSize, lh, 0.7),
				color:  m.AccentTextColor,
				family: m.FontFamily,
				bold:   true,
				align:  common.TextAlignCenter,
			}
			for i, s := range lines {
				out = appendNonNil(out, label(s, dateCellInset, dateCellInset+float64(i)*lh, w-2*dateCellInset, lh, st))
			}
		}
	}

	body := scene.Rect{Left: 0, Top: z.Header + z.Weekday, Width: w, Height: z.Body}
	color := m.DayColor
	if len(groups) > 0 {
		mk := holidayMarker(m.Holidays.MarkerStyle, body, m.Holidays.MarkerColor, m.Holidays.MarkerHeight, m.CornerRadius)
		out = append(out, mk.shapes...)
		if len(mk.dayColor) > 0 {
			color = mk.dayColor
		}
	}
	if dated && !body.Empty() {
		out = appendNonNil(out, label(strconv.Itoa(day.Day()), body.Left+dateCellInset, body.Top, body.Width-2*dateCellInset, body.Height, textStyle{
			size:   FitFontSize(m.DayFontSize, body.Height, 0.7),
			color:  color,
			family: m.FontFamily,
			bold:   true,
			align:  common.TextAlignCenter,
		}))
	}

	if len(info) > 0 && !infoRect.Empty() {
		ic := m.InfoColor
		if m.InfoPosition == common.InfoPositionOverlay {
			ic = m.AccentTextColor
		}
		out = appendNonNil(out, label(info, infoRect.Left+dateCellInset, infoRect.Top, infoRect.Width-2*dateCellInset, infoRect.Height, textStyle{
			size:   FitFontSize(m.InfoFontSize, infoRect.Height, 0.7),
			color:  ic,
			family: m.FontFamily,
			align:  common.TextAlignCenter,
		}))
	}

	out = appendNonNil(out, border)
	return finish(m, m.Size, out)
}
