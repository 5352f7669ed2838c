package element

import (
	"plancanvas/common"
)

// Default colors shared by element kinds.
const (
	DefaultBackground = "#ffffff"
	DefaultBorder     = "#d1d5db"
	DefaultText       = "#111827"
	DefaultMuted      = "#6b7280"
	DefaultOutside    = "#c0c4cc"
	DefaultWeekend    = "#dc2626"
	DefaultAccent     = "#2563eb"
	DefaultHoliday    = "#ef4444"
	DefaultLine       = "#e5e7eb"
)

// Frame is background and border styling common to all kinds.
type Frame struct {
	ShowBackground  bool    `yaml:"show_background"`
	BackgroundColor string  `yaml:"background_color"`
	ShowBorder      bool    `yaml:"show_border"`
	BorderColor     string  `yaml:"border_color"`
	BorderWidth     float64 `yaml:"border_width"`
	CornerRadius    float64 `yaml:"corner_radius"`
}

func defaultFrame(radius float64) Frame {
	return Frame{
		ShowBackground:  true,
		BackgroundColor: DefaultBackground,
		ShowBorder:      true,
		BorderColor:     DefaultBorder,
		BorderWidth:     1,
		CornerRadius:    radius,
	}
}

func (f *Frame) normalize(radius float64) {
	f.BackgroundColor = color(f.BackgroundColor, DefaultBackground)
	f.BorderColor = color(f.BorderColor, DefaultBorder)
	f.BorderWidth = clampf(positive(f.BorderWidth, 1), 0, 40)
	if f.CornerRadius < 0 {
		f.CornerRadius = radius
	}
}

// HolidayOptions controls holiday markers and the holiday list of calendar
// like kinds.
type HolidayOptions struct {
	ShowHolidays   bool               `yaml:"show_holidays"`
	MarkerStyle    common.MarkerStyle `yaml:"marker_style"`
	MarkerColor    string             `yaml:"marker_color"`
	MarkerHeight   float64            `yaml:"marker_height"`
	ShowList       bool               `yaml:"show_holiday_list"`
	ListTitle      string             `yaml:"holiday_list_title"`
	ListMaxItems   int                `yaml:"holiday_list_max_items"`
	ListHeight     float64            `yaml:"holiday_list_height"`
	ListFontSize   float64            `yaml:"holiday_list_font_size"`
	EntryRowHeight float64            `yaml:"holiday_list_row_height"`
	ListColor      string             `yaml:"holiday_list_color"`
}

const (
	MinMarkerHeight = 1
	MaxMarkerHeight = 20
	MaxListItems    = 31
)

func defaultHolidayOptions() HolidayOptions {
	return HolidayOptions{
		ShowHolidays:   true,
		MarkerStyle:    common.MarkerStyleBar,
		MarkerColor:    DefaultHoliday,
		MarkerHeight:   4,
		ShowList:       true,
		ListTitle:      "Holidays",
		ListMaxItems:   6,
		ListFontSize:   11,
		EntryRowHeight: 16,
		ListColor:      DefaultText,
	}
}

func (h *HolidayOptions) normalize() {
	h.MarkerStyle = enum(h.MarkerStyle, common.MarkerStyleBar)
	h.MarkerColor = color(h.MarkerColor, DefaultHoliday)
	h.MarkerHeight = clampf(positive(h.MarkerHeight, 4), MinMarkerHeight, MaxMarkerHeight)
	h.ListMaxItems = clampi(h.ListMaxItems, 0, MaxListItems)
	h.ListHeight = nonNegative(h.ListHeight)
	h.ListFontSize = clampf(positive(h.ListFontSize, 11), 4, 72)
	h.EntryRowHeight = clampf(positive(h.EntryRowHeight, 16), 4, 120)
	h.ListColor = color(h.ListColor, DefaultText)
}

// Header is title band styling of schedule, checklist and planner note.
type Header struct {
	Title         string             `yaml:"title"`
	HeaderStyle   common.HeaderStyle `yaml:"header_style"`
	AccentColor   string             `yaml:"accent_color"`
	TitleFontSize float64            `yaml:"title_font_size"`
	TitleColor    string             `yaml:"title_color"`
	HeaderHeight  float64            `yaml:"header_height"`
}

func defaultHeader(title string) Header {
	return Header{
		Title:         title,
		HeaderStyle:   common.HeaderStyleMinimal,
		AccentColor:   DefaultAccent,
		TitleFontSize: 18,
		TitleColor:    DefaultText,
		HeaderHeight:  44,
	}
}

func (h *Header) normalize() {
	h.HeaderStyle = enum(h.HeaderStyle, common.HeaderStyleMinimal)
	h.AccentColor = color(h.AccentColor, DefaultAccent)
	h.TitleFontSize = clampf(positive(h.TitleFontSize, 18), 4, 200)
	h.TitleColor = color(h.TitleColor, DefaultText)
	h.HeaderHeight = clampf(positive(h.HeaderHeight, 44), 8, 400)
}

// Typography of weekday names and day numbers.
type Typography struct {
	ShowWeekdays    bool                 `yaml:"show_weekdays"`
	WeekdayHeight   float64              `yaml:"weekday_height"`
	WeekdayFormat   common.WeekdayFormat `yaml:"weekday_format"`
	WeekdayFontSize float64              `yaml:"weekday_font_size"`
	WeekdayColor    string               `yaml:"weekday_color"`
	DayFontSize     float64              `yaml:"day_font_size"`
	DayColor        string               `yaml:"day_color"`
	WeekendColor    string               `yaml:"weekend_color"`
	FontFamily      string               `yaml:"font_family"`
}

func defaultTypography() Typography {
	return Typography{
		ShowWeekdays:    true,
		WeekdayHeight:   24,
		WeekdayFormat:   common.WeekdayFormatShort,
		WeekdayFontSize: 11,
		WeekdayColor:    DefaultMuted,
		DayFontSize:     14,
		DayColor:        DefaultText,
		WeekendColor:    DefaultWeekend,
	}
}

func (t *Typography) normalize() {
	t.WeekdayHeight = clampf(positive(t.WeekdayHeight, 24), 4, 200)
	t.WeekdayFormat = enum(t.WeekdayFormat, common.WeekdayFormatShort)
	t.WeekdayFontSize = clampf(positive(t.WeekdayFontSize, 11), 4, 72)
	t.WeekdayColor = color(t.WeekdayColor, DefaultMuted)
	t.DayFontSize = clampf(positive(t.DayFontSize, 14), 4, 200)
	t.DayColor = color(t.DayColor, DefaultText)
	t.WeekendColor = color(t.WeekendColor, DefaultWeekend)
}

// MonthHeader is month title band of calendar grid and week strip.
type MonthHeader struct {
	ShowHeader     bool              `yaml:"show_header"`
	HeaderHeight   float64           `yaml:"header_height"`
	HeaderFontSize float64           `yaml:"header_font_size"`
	HeaderColor    string            `yaml:"header_color"`
	HeaderAlign    common.TextAlign  `yaml:"header_align"`
	MonthStyle     common.MonthStyle `yaml:"month_style"`
	ShowYear       bool              `yaml:"show_year"`
}

func defaultMonthHeader() MonthHeader {
	return MonthHeader{
		ShowHeader:     true,
		HeaderHeight:   44,
		HeaderFontSize: 20,
		HeaderColor:    DefaultText,
		HeaderAlign:    common.TextAlignLeft,
		MonthStyle:     common.MonthStyleLong,
		ShowYear:       true,
	}
}

func (h *MonthHeader) normalize() {
	h.HeaderHeight = clampf(positive(h.HeaderHeight, 44), 8, 400)
	h.HeaderFontSize = clampf(positive(h.HeaderFontSize, 20), 4, 200)
	h.HeaderColor = color(h.HeaderColor, DefaultText)
	h.HeaderAlign = enum(h.HeaderAlign, common.TextAlignLeft)
	h.MonthStyle = enum(h.MonthStyle, common.MonthStyleLong)
}
