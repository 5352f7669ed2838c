package build

import (
	"math"
	"strconv"
	"time"

	"plancanvas/calendar"
	"plancanvas/common"
	"plancanvas/element"
	"plancanvas/holiday"
	"plancanvas/scene"
)

type weekModel struct {
	pad    float64
	zones  Zones
	start  time.Time
	days   []calendar.Day // empty in blank mode
	groups []holiday.Group
}

func newWeekModel(m *element.WeekStrip, lk Lookups) weekModel {
	wm := weekModel{pad: padding(m.Padding, m.Size)}
	if anchor, ok := m.Anchor(); ok && m.Dated() {
		wm.start = calendar.WeekStart(anchor, m.StartDay)
		end := wm.start.AddDate(0, 0, 6)
		var hs []holiday.Holiday
		if m.Holidays.ShowHolidays {
			// week may span two years, InRange queries both
			hs = holiday.InRange(lk.Holidays, wm.start, end, m.Country, m.Language)
		}
		wm.days = calendar.GenerateWeek(anchor, m.StartDay, lk.Today, holiday.ByDate(hs))
		wm.groups = listGroups(m.Holidays, holiday.GroupByDate(hs))
	}
	wm.zones = calendarZones(m.Size.Height-2*wm.pad, m.ShowHeader, m.HeaderHeight, m.ShowWeekdays, m.WeekdayHeight, m.Holidays, len(wm.groups))
	return wm
}

// WeekStripZones returns vertical partition of week strip height, body zone
// includes element padding.
func WeekStripZones(m *element.WeekStrip, lk Lookups) Zones {
	m = element.Apply(m, nil)
	wm := newWeekModel(m, lk)
	return wm.zones.padded(wm.pad)
}

// WeekStripHolidays returns holiday groups listed by week strip.
func WeekStripHolidays(m *element.WeekStrip, lk Lookups) []holiday.Group {
	m = element.Apply(m, nil)
	return newWeekModel(m, lk).groups
}

// WeekStrip builds seven day columns.
func WeekStrip(m *element.WeekStrip, lk Lookups) *scene.Object {
	m = element.Apply(m, nil)
	if degenerate(m.Size) {
		return empty(m)
	}
	names := lk.names()
	wm := newWeekModel(m, lk)
	z := wm.zones

	out := []*scene.Object{background(m.Frame, m.Size)}
	x0, y := wm.pad, wm.pad
	width := m.Size.Width - 2*wm.pad

	if z.Header > 0 {
		out = appendNonNil(out, label(weekTitle(m, wm, names), x0, y, width, z.Header, textStyle{
			size:   FitFontSize(m.HeaderFontSize, z.Header, 0.6),
			color:  m.HeaderColor,
			family: m.FontFamily,
			bold:   true,
			align:  m.HeaderAlign,
		}))
		y += z.Header
	}

	colW := math.Max(0, (width-6*m.ColumnGap)/7)
	if z.Weekday > 0 {
		st := textStyle{
			size:   FitFontSize(m.WeekdayFontSize, z.Weekday, 0.6),
			color:  m.WeekdayColor,
			family: m.FontFamily,
			align:  common.TextAlignCenter,
		}
		for i, n := range names.WeekdayNames(m.StartDay, m.Language, m.WeekdayFormat) {
			out = appendNonNil(out, label(n, x0+float64(i)*(colW+m.ColumnGap), y, colW, z.Weekday, st))
		}
		y += z.Weekday
	}

	if z.Body > 0 && colW > 0 {
		for i := range 7 {
			col := scene.Rect{Left: x0 + float64(i)*(colW+m.ColumnGap), Top: y, Width: colW, Height: z.Body}
			var day *calendar.Day
			if i < len(wm.days) {
				day = &wm.days[i]
			}
			out = append(out, weekColumn(m, day, col)...)
		}
	}
	y += z.Body

	if z.List > 0 {
		out = append(out, holidayList(m.Holidays, wm.groups, scene.Rect{Left: x0, Top: y, Width: width, Height: z.List}, m.Language, m.FontFamily, names)...)
	}
	return finish(m, m.Size, out)
}

func weekTitle(m *element.WeekStrip, wm weekModel, names calendar.Names) string {
	if len(wm.days) == 0 {
		return ""
	}
	first, last := wm.days[0].Date, wm.days[len(wm.days)-1].Date
	name := func(t time.Time) string {
		s := names.MonthName(t.Month(), m.Language, m.MonthStyle)
		if m.ShowYear {
			s += " " + strconv.Itoa(t.Year())
		}
		return s
	}
	if first.Month() == last.Month() {
		return name(first)
	}
	if first.Year() == last.Year() && m.ShowYear {
		return names.MonthName(first.Month(), m.Language, m.MonthStyle) + " – " + name(last)
	}
	return name(first) + " – " + name(last)
}

func weekColumn(m *element.WeekStrip, d *calendar.Day, col scene.Rect) []*scene.Object {
	bw := 1.0
	border := m.ColumnBorderColor
	if d != nil && m.HighlightToday && d.IsToday {
		bw, border = 2, m.TodayColor
	}
	bw = math.Min(bw, math.Min(col.Width, col.Height)/2)
	r := rounded(stroke(fill(insetRect(col.Left, col.Top, col.Width, col.Height, bw), m.ColumnColor), border, bw), m.ColumnRadius)
	out := []*scene.Object{r}
	if d == nil {
		return out
	}

	color := m.DayColor
	if d.IsWeekend {
		color = m.WeekendColor
	}
	if m.Holidays.ShowHolidays && d.HasHolidays() {
		mk := holidayMarker(m.Holidays.MarkerStyle, col, m.Holidays.MarkerColor, m.Holidays.MarkerHeight, m.ColumnRadius)
		out = append(out, mk.shapes...)
		if len(mk.dayColor) > 0 {
			color = mk.dayColor
		}
	}

	size := FitFontSize(m.DayFontSize, col.Height, 0.3)
	inset := math.Min(8, col.Width/4)
	return appendNonNil(out, label(strconv.Itoa(d.DayOfMonth), col.Left+inset, col.Top+inset/2, col.Width-2*inset, size*scene.LineHeightFactor, textStyle{
		size:   size,
		color:  color,
		family: m.FontFamily,
	}))
}
