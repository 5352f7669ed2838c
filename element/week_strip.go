package element

import (
	"time"

	"plancanvas/calendar"
	"plancanvas/common"
	"plancanvas/holiday"
	"plancanvas/scene"
)

// WeekStrip is seven day columns either anchored at a date or blank.
type WeekStrip struct {
	Size      scene.Size      `yaml:"size"`
	Mode      common.WeekMode `yaml:"mode"`
	StartDate string          `yaml:"start_date"`
	StartDay  int             `yaml:"start_day"`
	Country   string          `yaml:"country"`
	Language  string          `yaml:"language"`
	Padding   float64         `yaml:"padding"`

	Frame       `yaml:",inline"`
	MonthHeader `yaml:",inline"`
	Typography  `yaml:",inline"`
	Holidays    HolidayOptions `yaml:",inline"`

	ColumnGap         float64 `yaml:"column_gap"`
	ColumnColor       string  `yaml:"column_color"`
	ColumnBorderColor string  `yaml:"column_border_color"`
	ColumnRadius      float64 `yaml:"column_radius"`
	HighlightToday    bool    `yaml:"highlight_today"`
	TodayColor        string  `yaml:"today_color"`
}

const weekCornerRadius = 22

func DefaultWeekStrip(today time.Time) *WeekStrip {
	return &WeekStrip{
		Size:              scene.Size{Width: 720, Height: 260},
		Mode:              common.WeekModeMonth,
		StartDate:         calendar.Truncate(today).Format(holiday.DateLayout),
		StartDay:          1,
		Language:          "en",
		Padding:           16,
		Frame:             defaultFrame(weekCornerRadius),
		MonthHeader:       defaultMonthHeader(),
		Typography:        defaultTypography(),
		Holidays:          defaultHolidayOptions(),
		ColumnGap:         6,
		ColumnColor:       "#f9fafb",
		ColumnBorderColor: DefaultLine,
		ColumnRadius:      10,
		HighlightToday:    true,
		TodayColor:        DefaultAccent,
	}
}

func (*WeekStrip) Kind() common.ElementKind { return common.ElementKindWeekStrip }

func (m *WeekStrip) Dimensions() scene.Size { return m.Size }

func (m *WeekStrip) Label() string {
	if m.Mode == common.WeekModeBlank {
		return "Blank week"
	}
	start, ok := m.Anchor()
	if !ok {
		return "Week"
	}
	return "Week of " + calendar.WeekStart(start, m.StartDay).Format(holiday.DateLayout)
}

func (m *WeekStrip) Clone() Metadata {
	c := *m
	return &c
}

func (m *WeekStrip) Normalize() {
	m.Size = normalizeSize(m.Size)
	m.Mode = enum(m.Mode, common.WeekModeMonth)
	if _, ok := m.Anchor(); !ok {
		m.StartDate = ""
	}
	m.StartDay = calendar.NormalizeStartDay(m.StartDay)
	m.Padding = clampf(m.Padding, 0, 200)
	m.Frame.normalize(weekCornerRadius)
	m.MonthHeader.normalize()
	m.Typography.normalize()
	m.Holidays.normalize()
	m.ColumnGap = clampf(m.ColumnGap, 0, 100)
	m.ColumnColor = color(m.ColumnColor, "#f9fafb")
	m.ColumnBorderColor = color(m.ColumnBorderColor, DefaultLine)
	m.ColumnRadius = clampf(m.ColumnRadius, 0, 100)
	m.TodayColor = color(m.TodayColor, DefaultAccent)
}

// Anchor parses StartDate.
func (m *WeekStrip) Anchor() (time.Time, bool) {
	t, err := time.Parse(holiday.DateLayout, m.StartDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Dated reports whether strip shows real dates.
func (m *WeekStrip) Dated() bool {
	if m.Mode == common.WeekModeBlank {
		return false
	}
	_, ok := m.Anchor()
	return ok
}
