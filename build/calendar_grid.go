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

// gridModel is everything calendar grid layout depends on.
type gridModel struct {
	pad    float64
	zones  Zones
	days   []calendar.Day
	groups []holiday.Group
}

func newGridModel(m *element.CalendarGrid, lk Lookups) gridModel {
	first := m.FirstDay()
	start := calendar.WeekStart(first, m.StartDay)
	rows := calendar.MonthRows(m.Year, time.Month(m.Month), m.StartDay)
	end := start.AddDate(0, 0, rows*7-1)

	var hs []holiday.Holiday
	if m.Holidays.ShowHolidays {
		hs = holiday.InRange(lk.Holidays, start, end, m.Country, m.Language)
	}
	var inMonth []holiday.Holiday
	for _, h := range hs {
		if d, err := time.Parse(holiday.DateLayout, h.Date); err == nil && d.Month() == first.Month() {
			inMonth = append(inMonth, h)
		}
	}

	gm := gridModel{
		pad:    padding(m.Padding, m.Size),
		days:   calendar.GenerateMonth(m.Year, time.Month(m.Month), m.StartDay, lk.Today, holiday.ByDate(hs)),
		groups: listGroups(m.Holidays, holiday.GroupByDate(inMonth)),
	}
	gm.zones = calendarZones(m.Size.Height-2*gm.pad, m.ShowHeader, m.HeaderHeight, m.ShowWeekdays, m.WeekdayHeight, m.Holidays, len(gm.groups))
	return gm
}

// calendarZones partitions content height of calendar like kinds. List
// height is computed from what header and weekday zones leave.
func calendarZones(total float64, showHeader bool, header float64, showWeekdays bool, weekday float64, opts element.HolidayOptions, entries int) Zones {
	if !showHeader {
		header = 0
	}
	if !showWeekdays {
		weekday = 0
	}
	available := Partition(total, header, weekday, 0).Body
	return Partition(total, header, weekday, HolidayListHeight(opts, entries, available))
}

func padding(p float64, s scene.Size) float64 {
	return math.Max(0, math.Min(p, math.Min(s.Width, s.Height)/2))
}

// CalendarGridZones returns vertical partition of calendar grid height,
// body zone includes element padding.
func CalendarGridZones(m *element.CalendarGrid, lk Lookups) Zones {
	m = element.Apply(m, nil)
	gm := newGridModel(m, lk)
	return gm.zones.padded(gm.pad)
}

// CalendarGrid builds month grid graphics.
func CalendarGrid(m *element.CalendarGrid, lk Lookups) *scene.Object {
	m = element.Apply(m, nil)
	if degenerate(m.Size) {
		return empty(m)
	}
	names := lk.names()
	gm := newGridModel(m, lk)
	z := gm.zones

	out := []*scene.Object{background(m.Frame, m.Size)}
	x0, y := gm.pad, gm.pad
	width := m.Size.Width - 2*gm.pad

	if z.Header > 0 {
		title := names.MonthName(time.Month(m.Month), m.Language, m.MonthStyle)
		if m.ShowYear {
			title += " " + strconv.Itoa(m.Year)
		}
		out = appendNonNil(out, label(title, x0, y, width, z.Header, textStyle{
			size:   FitFontSize(m.HeaderFontSize, z.Header, 0.6),
			color:  m.HeaderColor,
			family: m.FontFamily,
			bold:   true,
			align:  m.HeaderAlign,
		}))
		y += z.Header
	}

	colW := math.Max(0, (width-6*m.CellGap)/7)
	if z.Weekday > 0 {
		st := textStyle{
			size:   FitFontSize(m.WeekdayFontSize, z.Weekday, 0.6),
			color:  m.WeekdayColor,
			family: m.FontFamily,
			align:  common.TextAlignCenter,
		}
		for i, n := range names.WeekdayNames(m.StartDay, m.Language, m.WeekdayFormat) {
			out = appendNonNil(out, label(n, x0+float64(i)*(colW+m.CellGap), y, colW, z.Weekday, st))
		}
		y += z.Weekday
	}

	rows := len(gm.days) / 7
	cellH := (z.Body - float64(rows-1)*m.CellGap) / float64(rows)
	if rows > 0 && cellH > 0 && colW > 0 {
		for i, d := range gm.days {
			if !d.IsCurrentMonth && !m.ShowOutsideDays {
				continue
			}
			cell := scene.Rect{
				Left:   x0 + float64(i%7)*(colW+m.CellGap),
				Top:    y + float64(i/7)*(cellH+m.CellGap),
				Width:  colW,
				Height: cellH,
			}
			out = append(out, gridCell(m, d, cell)...)
		}
	}
	y += z.Body

	if z.List > 0 {
		out = append(out, holidayList(m.Holidays, gm.groups, scene.Rect{Left: x0, Top: y, Width: width, Height: z.List}, m.Language, m.FontFamily, names)...)
	}
	return finish(m, m.Size, out)
}

func gridCell(m *element.CalendarGrid, d calendar.Day, cell scene.Rect) []*scene.Object {
	bw := 1.0
	border := m.CellBorderColor
	if m.HighlightToday && d.IsToday {
		bw, border = 2, m.TodayColor
	}
	bw = math.Min(bw, math.Min(cell.Width, cell.Height)/2)
	r := rounded(stroke(fill(insetRect(cell.Left, cell.Top, cell.Width, cell.Height, bw), m.CellColor), border, bw), m.CellRadius)
	out := []*scene.Object{r}

	color := m.DayColor
	switch {
	case !d.IsCurrentMonth:
		color = m.OutsideDayColor
	case d.IsWeekend:
		color = m.WeekendColor
	}
	if m.Holidays.ShowHolidays && d.HasHolidays() {
		mk := holidayMarker(m.Holidays.MarkerStyle, cell, m.Holidays.MarkerColor, m.Holidays.MarkerHeight, m.CellRadius)
		out = append(out, mk.shapes...)
		if len(mk.dayColor) > 0 {
			color = mk.dayColor
		}
	}

	size := FitFontSize(m.DayFontSize, cell.Height, 0.45)
	inset := math.Min(6, cell.Width/4)
	return appendNonNil(out, label(strconv.Itoa(d.DayOfMonth), cell.Left+inset, cell.Top+inset/2, cell.Width-2*inset, size*scene.LineHeightFactor, textStyle{
		size:   size,
		color:  color,
		family: m.FontFamily,
	}))
}
