package element

import (
	"fmt"
	"slices"

	"plancanvas/common"
	"plancanvas/scene"
)

// Slot is a photo frame of a collage, coordinates are relative to the
// element top-left corner.
type Slot struct {
	X        float64        `yaml:"x"`
	Y        float64        `yaml:"y"`
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
	Rotation float64        `yaml:"rotation"`
	ImageURL string         `yaml:"image_url"`
	ImageFit common.FitMode `yaml:"image_fit"`
}

// Collage arranges photo slots.
type Collage struct {
	Size scene.Size `yaml:"size"`

	Frame `yaml:",inline"`

	Slots            []Slot  `yaml:"slots"`
	FramePadding     float64 `yaml:"frame_padding"`
	SlotRadius       float64 `yaml:"slot_radius"`
	SlotColor        string  `yaml:"slot_color"`
	ShowSlotBorder   bool    `yaml:"show_slot_border"`
	SlotBorderColor  string  `yaml:"slot_border_color"`
	SlotBorderWidth  float64 `yaml:"slot_border_width"`
	PlaceholderColor string  `yaml:"placeholder_color"`
}

const collageCornerRadius = 22

func DefaultCollage() *Collage {
	return &Collage{
		Size:  scene.Size{Width: 480, Height: 360},
		Frame: defaultFrame(collageCornerRadius),
		Slots: []Slot{
			{X: 16, Y: 16, Width: 216, Height: 328, ImageFit: common.FitModeCover},
			{X: 248, Y: 16, Width: 216, Height: 156, ImageFit: common.FitModeCover},
			{X: 248, Y: 188, Width: 216, Height: 156, ImageFit: common.FitModeCover},
		},
		FramePadding:     0,
		SlotRadius:       12,
		SlotColor:        "#f3f4f6",
		ShowSlotBorder:   true,
		SlotBorderColor:  DefaultLine,
		SlotBorderWidth:  1,
		PlaceholderColor: "#9ca3af",
	}
}

func (*Collage) Kind() common.ElementKind { return common.ElementKindCollage }

func (m *Collage) Dimensions() scene.Size { return m.Size }

func (m *Collage) Label() string {
	if len(m.Slots) == 1 {
		return "1 photo"
	}
	return fmt.Sprintf("%d photos", len(m.Slots))
}

func (m *Collage) Clone() Metadata {
	c := *m
	c.Slots = slices.Clone(m.Slots)
	return &c
}

func (m *Collage) Normalize() {
	m.Size = normalizeSize(m.Size)
	m.Frame.normalize(collageCornerRadius)
	m.FramePadding = clampf(m.FramePadding, 0, 200)
	m.SlotRadius = clampf(m.SlotRadius, 0, 200)
	m.SlotColor = color(m.SlotColor, "#f3f4f6")
	m.SlotBorderColor = color(m.SlotBorderColor, DefaultLine)
	m.SlotBorderWidth = clampf(m.SlotBorderWidth, 0, 40)
	m.PlaceholderColor = color(m.PlaceholderColor, "#9ca3af")
	for i := range m.Slots {
		s := &m.Slots[i]
		s.Width = nonNegative(s.Width)
		s.Height = nonNegative(s.Height)
		s.ImageFit = enum(s.ImageFit, common.FitModeCover)
	}
}

// ImageURLs returns distinct image sources referenced by slots.
func (m *Collage) ImageURLs() []string {
	var out []string
	for _, s := range m.Slots {
		if len(s.ImageURL) > 0 && !slices.Contains(out, s.ImageURL) {
			out = append(out, s.ImageURL)
		}
	}
	return out
}
