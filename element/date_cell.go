package element

import (
	"time"

	"plancanvas/calendar"
	"plancanvas/common"
	"plancanvas/holiday"
	"plancanvas/scene"
)

// DateCell is a single day card: accent band with weekday/month, large day
// number and holiday info.
type DateCell struct {
	Size     scene.Size `yaml:"size"`
	Date     string     `yaml:"date"`
	Country  string     `yaml:"country"`
	Language string     `yaml:"language"`

	Frame    `yaml:",inline"`
	Holidays HolidayOptions `yaml:",inline"`

	AccentColor       string               `yaml:"accent_color"`
	AccentHeightRatio float64              `yaml:"accent_height_ratio"`
	AccentTextColor   string               `yaml:"accent_text_color"`
	DayFontSize       float64              `yaml:"day_font_size"`
	DayColor          string               `yaml:"day_color"`
	ShowWeekday       bool                 `yaml:"show_weekday"`
	ShowMonth         bool                 `yaml:"show_month"`
	WeekdayFormat     common.WeekdayFormat `yaml:"weekday_format"`
	MonthStyle        common.MonthStyle    `yaml:"month_style"`
	InfoPosition      common.InfoPosition  `yaml:"info_position"`
	InfoFontSize      float64              `yaml:"info_font_size"`
	InfoColor         string               `yaml:"info_color"`
	FontFamily        string               `yaml:"font_family"`
}

const (
	dateCellCornerRadius = 26

	MinAccentRatio = 0.05
	MaxAccentRatio = 0.85
)

func DefaultDateCell(today time.Time) *DateCell {
	return &DateCell{
		Size:              scene.Size{Width: 220, Height: 240},
		Date:              calendar.Truncate(today).Format(holiday.DateLayout),
		Language:          "en",
		Frame:             defaultFrame(dateCellCornerRadius),
		Holidays:          defaultHolidayOptions(),
		AccentColor:       DefaultAccent,
		AccentHeightRatio: 0.28,
		AccentTextColor:   "#ffffff",
		DayFontSize:       72,
		DayColor:          DefaultText,
		ShowWeekday:       true,
		ShowMonth:         true,
		WeekdayFormat:     common.WeekdayFormatLong,
		MonthStyle:        common.MonthStyleLong,
		InfoPosition:      common.InfoPositionBottom,
		InfoFontSize:      12,
		InfoColor:         DefaultMuted,
	}
}

func (*DateCell) Kind() common.ElementKind { return common.ElementKindDateCell }

func (m *DateCell) Dimensions() scene.Size { return m.Size }

func (m *DateCell) Label() string {
	return m.Date
}

func (m *DateCell) Clone() Metadata {
	c := *m
	return &c
}

func (m *DateCell) Normalize() {
	m.Size = normalizeSize(m.Size)
	if _, ok := m.Day(); !ok {
		m.Date = ""
	}
	m.Frame.normalize(dateCellCornerRadius)
	m.Holidays.normalize()
	m.AccentColor = color(m.AccentColor, DefaultAccent)
	m.AccentHeightRatio = clampf(positive(m.AccentHeightRatio, 0.28), MinAccentRatio, MaxAccentRatio)
	m.AccentTextColor = color(m.AccentTextColor, "#ffffff")
	m.DayFontSize = clampf(positive(m.DayFontSize, 72), 4, 400)
	m.DayColor = color(m.DayColor, DefaultText)
	m.WeekdayFormat = enum(m.WeekdayFormat, common.WeekdayFormatLong)
	m.MonthStyle = enum(m.MonthStyle, common.MonthStyleLong)
	m.InfoPosition = enum(m.InfoPosition, common.InfoPositionBottom)
	m.InfoFontSize = clampf(positive(m.InfoFontSize, 12), 4, 72)
	m.InfoColor = color(m.InfoColor, DefaultMuted)
}

// Day parses Date.
func (m *DateCell) Day() (time.Time, bool) {
	t, err := time.Parse(holiday.DateLayout, m.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
