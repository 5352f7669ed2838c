package element

import (
	"plancanvas/common"
	"plancanvas/scene"
)

const plannerCornerRadius = 22

// Schedule is a day timeline with one row per interval.
type Schedule struct {
	Size scene.Size `yaml:"size"`

	Frame  `yaml:",inline"`
	Header `yaml:",inline"`

	StartHour       int               `yaml:"start_hour"`
	EndHour         int               `yaml:"end_hour"`
	IntervalMinutes int               `yaml:"interval_minutes"`
	TimeFormat      common.TimeFormat `yaml:"time_format"`
	LineColor       string            `yaml:"line_color"`
	LabelFontSize   float64           `yaml:"label_font_size"`
	LabelColor      string            `yaml:"label_color"`
	LabelWidth      float64           `yaml:"label_width"`
	Padding         float64           `yaml:"padding"`
	FontFamily      string            `yaml:"font_family"`
}

func DefaultSchedule() *Schedule {
	return &Schedule{
		Size:            scene.Size{Width: 320, Height: 560},
		Frame:           defaultFrame(plannerCornerRadius),
		Header:          defaultHeader("Schedule"),
		StartHour:       8,
		EndHour:         18,
		IntervalMinutes: 60,
		TimeFormat:      common.TimeFormat24h,
		LineColor:       DefaultLine,
		LabelFontSize:   11,
		LabelColor:      DefaultMuted,
		LabelWidth:      56,
		Padding:         16,
	}
}

func (*Schedule) Kind() common.ElementKind { return common.ElementKindSchedule }

func (m *Schedule) Dimensions() scene.Size { return m.Size }

func (m *Schedule) Label() string { return m.Title }

func (m *Schedule) Clone() Metadata {
	c := *m
	return &c
}

func (m *Schedule) Normalize() {
	m.Size = normalizeSize(m.Size)
	m.Frame.normalize(plannerCornerRadius)
	m.Header.normalize()
	m.StartHour = clampi(m.StartHour, 0, 23)
	m.EndHour = clampi(m.EndHour, m.StartHour+1, 24)
	m.IntervalMinutes = clampi(m.IntervalMinutes, 5, 240)
	m.TimeFormat = enum(m.TimeFormat, common.TimeFormat24h)
	m.LineColor = color(m.LineColor, DefaultLine)
	m.LabelFontSize = clampf(positive(m.LabelFontSize, 11), 4, 72)
	m.LabelColor = color(m.LabelColor, DefaultMuted)
	m.LabelWidth = clampf(m.LabelWidth, 0, 400)
	m.Padding = clampf(m.Padding, 0, 200)
}

// Slots returns number of schedule rows.
func (m *Schedule) Slots() int {
	return max(0, (m.EndHour-m.StartHour)*60/max(m.IntervalMinutes, 1))
}

// Checklist is a list of rows with optional checkboxes.
type Checklist struct {
	Size scene.Size `yaml:"size"`

	Frame  `yaml:",inline"`
	Header `yaml:",inline"`

	Rows           int     `yaml:"rows"`
	ShowCheckboxes bool    `yaml:"show_checkboxes"`
	LineColor      string  `yaml:"line_color"`
	CheckboxSize   float64 `yaml:"checkbox_size"`
	CheckboxColor  string  `yaml:"checkbox_color"`
	Padding        float64 `yaml:"padding"`
	FontFamily     string  `yaml:"font_family"`
}

func DefaultChecklist() *Checklist {
	return &Checklist{
		Size:           scene.Size{Width: 300, Height: 400},
		Frame:          defaultFrame(plannerCornerRadius),
		Header:         defaultHeader("To do"),
		Rows:           10,
		ShowCheckboxes: true,
		LineColor:      DefaultLine,
		CheckboxSize:   14,
		CheckboxColor:  "#9ca3af",
		Padding:        16,
	}
}

func (*Checklist) Kind() common.ElementKind { return common.ElementKindChecklist }

func (m *Checklist) Dimensions() scene.Size { return m.Size }

func (m *Checklist) Label() string { return m.Title }

func (m *Checklist) Clone() Metadata {
	c := *m
	return &c
}

func (m *Checklist) Normalize() {
	m.Size = normalizeSize(m.Size)
	m.Frame.normalize(plannerCornerRadius)
	m.Header.normalize()
	m.Rows = clampi(m.Rows, 1, 100)
	m.LineColor = color(m.LineColor, DefaultLine)
	m.CheckboxSize = clampf(positive(m.CheckboxSize, 14), 4, 100)
	m.CheckboxColor = color(m.CheckboxColor, "#9ca3af")
	m.Padding = clampf(m.Padding, 0, 200)
}

// PlannerNote is a notes area with ruled, grid or dot pattern.
type PlannerNote struct {
	Size scene.Size `yaml:"size"`

	Frame  `yaml:",inline"`
	Header `yaml:",inline"`

	Pattern        common.NotePattern `yaml:"pattern"`
	PatternSpacing float64            `yaml:"pattern_spacing"`
	PatternColor   string             `yaml:"pattern_color"`
	Padding        float64            `yaml:"padding"`
	FontFamily     string             `yaml:"font_family"`
}

func DefaultPlannerNote() *PlannerNote {
	return &PlannerNote{
		Size:           scene.Size{Width: 320, Height: 400},
		Frame:          defaultFrame(plannerCornerRadius),
		Header:         defaultHeader("Notes"),
		Pattern:        common.NotePatternRuled,
		PatternSpacing: 24,
		PatternColor:   DefaultLine,
		Padding:        16,
	}
}

func (*PlannerNote) Kind() common.ElementKind { return common.ElementKindPlannerNote }

func (m *PlannerNote) Dimensions() scene.Size { return m.Size }

func (m *PlannerNote) Label() string { return m.Title }

func (m *PlannerNote) Clone() Metadata {
	c := *m
	return &c
}

func (m *PlannerNote) Normalize() {
	m.Size = normalizeSize(m.Size)
	m.Frame.normalize(plannerCornerRadius)
	m.Header.normalize()
	m.Pattern = enum(m.Pattern, common.NotePatternRuled)
	m.PatternSpacing = clampf(positive(m.PatternSpacing, 24), 8, 120)
	m.PatternColor = color(m.PatternColor, DefaultLine)
	m.Padding = clampf(m.Padding, 0, 200)
}
