package element

import (
	"fmt"
	"time"

	"plancanvas/calendar"
	"plancanvas/common"
	"plancanvas/scene"
)

// CalendarGrid is a month view: header, weekday row, day cells and an
// optional holiday list.
type CalendarGrid struct {
	Size     scene.Size `yaml:"size"`
	Year     int        `yaml:"year"`
	Month    int        `yaml:"month"`
	StartDay int        `yaml:"start_day"`
	Country  string     `yaml:"country"`
	Language string     `yaml:"language"`
	Padding  float64    `yaml:"padding"`

	Frame       `yaml:",inline"`
	MonthHeader `yaml:",inline"`
	Typography  `yaml:",inline"`
	Holidays    HolidayOptions `yaml:",inline"`

	ShowOutsideDays bool    `yaml:"show_outside_days"`
	OutsideDayColor string  `yaml:"outside_day_color"`
	CellGap         float64 `yaml:"cell_gap"`
	CellColor       string  `yaml:"cell_color"`
	CellBorderColor string  `yaml:"cell_border_color"`
	CellRadius      float64 `yaml:"cell_radius"`
	HighlightToday  bool    `yaml:"highlight_today"`
	TodayColor      string  `yaml:"today_color"`
}

const gridCornerRadius = 24

func DefaultCalendarGrid(today time.Time) *CalendarGrid {
	return &CalendarGrid{
		Size:            scene.Size{Width: 560, Height: 520},
		Year:            today.Year(),
		Month:           int(today.Month()),
		StartDay:        1,
		Language:        "en",
		Padding:         16,
		Frame:           defaultFrame(gridCornerRadius),
		MonthHeader:     defaultMonthHeader(),
		Typography:      defaultTypography(),
		Holidays:        defaultHolidayOptions(),
		ShowOutsideDays: true,
		OutsideDayColor: DefaultOutside,
		CellGap:         4,
		CellColor:       "#f9fafb",
		CellBorderColor: DefaultLine,
		CellRadius:      8,
		HighlightToday:  true,
		TodayColor:      DefaultAccent,
	}
}

func (*CalendarGrid) Kind() common.ElementKind { return common.ElementKindCalendarGrid }

func (m *CalendarGrid) Dimensions() scene.Size { return m.Size }

func (m *CalendarGrid) Label() string {
	return fmt.Sprintf("%s %d", calendar.Default.MonthName(time.Month(m.Month), "en", common.MonthStyleLong), m.Year)
}

func (m *CalendarGrid) Clone() Metadata {
	c := *m
	return &c
}

func (m *CalendarGrid) Normalize() {
	m.Size = normalizeSize(m.Size)
	m.Year = clampi(m.Year, 1, 9999)
	m.Month = clampi(m.Month, 1, 12)
	m.StartDay = calendar.NormalizeStartDay(m.StartDay)
	m.Padding = clampf(m.Padding, 0, 200)
	m.Frame.normalize(gridCornerRadius)
	m.MonthHeader.normalize()
	m.Typography.normalize()
	m.Holidays.normalize()
	m.OutsideDayColor = color(m.OutsideDayColor, DefaultOutside)
	m.CellGap = clampf(m.CellGap, 0, 100)
	m.CellColor = color(m.CellColor, "#f9fafb")
	m.CellBorderColor = color(m.CellBorderColor, DefaultLine)
	m.CellRadius = clampf(m.CellRadius, 0, 100)
	m.TodayColor = color(m.TodayColor, DefaultAccent)
}

// FirstDay returns first day of the displayed month.
func (m *CalendarGrid) FirstDay() time.Time {
	return calendar.DateOf(m.Year, time.Month(m.Month), 1)
}
