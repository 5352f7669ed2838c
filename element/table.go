package element

import (
	"fmt"

	"plancanvas/common"
	"plancanvas/scene"
	"plancanvas/table"
)

// Table is a grid of text cells with optional header/footer bands, striping
// and merged regions.
type Table struct {
	Size scene.Size `yaml:"size"`

	Frame        `yaml:",inline"`
	table.Layout `yaml:",inline"`

	StripeRows      bool    `yaml:"stripe_rows"`
	StripeColor     string  `yaml:"stripe_color"`
	HeaderColor     string  `yaml:"header_color"`
	HeaderTextColor string  `yaml:"header_text_color"`
	FooterColor     string  `yaml:"footer_color"`
	GridColor       string  `yaml:"grid_color"`
	GridWidth       float64 `yaml:"grid_width"`
	FontSize        float64 `yaml:"font_size"`
	TextColor       string  `yaml:"text_color"`
	CellPadding     float64 `yaml:"cell_padding"`
	FontFamily      string  `yaml:"font_family"`
}

const tableCornerRadius = 12

func DefaultTable() *Table {
	return &Table{
		Size:  scene.Size{Width: 480, Height: 240},
		Frame: defaultFrame(tableCornerRadius),
		Layout: table.Layout{
			Rows:       4,
			Columns:    3,
			HeaderRows: 1,
		},
		StripeRows:      true,
		StripeColor:     "#f3f4f6",
		HeaderColor:     "#e5e7eb",
		HeaderTextColor: DefaultText,
		FooterColor:     "#f3f4f6",
		GridColor:       DefaultBorder,
		GridWidth:       1,
		FontSize:        13,
		TextColor:       DefaultText,
		CellPadding:     8,
	}
}

func (*Table) Kind() common.ElementKind { return common.ElementKindTable }

func (m *Table) Dimensions() scene.Size { return m.Size }

func (m *Table) Label() string {
	return fmt.Sprintf("%d×%d", m.Rows, m.Columns)
}

func (m *Table) Clone() Metadata {
	c := *m
	c.Layout = m.Layout.Clone()
	return &c
}

func (m *Table) Normalize() {
	m.Size = normalizeSize(m.Size)
	m.Frame.normalize(tableCornerRadius)
	m.Layout = table.Sanitize(m.Layout)
	for i := range m.CellContents {
		m.CellContents[i].TextAlign = enum(m.CellContents[i].TextAlign, common.TextAlignLeft)
	}
	m.StripeColor = color(m.StripeColor, "#f3f4f6")
	m.HeaderColor = color(m.HeaderColor, "#e5e7eb")
	m.HeaderTextColor = color(m.HeaderTextColor, DefaultText)
	m.FooterColor = color(m.FooterColor, "#f3f4f6")
	m.GridColor = color(m.GridColor, DefaultBorder)
	m.GridWidth = clampf(m.GridWidth, 0, 20)
	m.FontSize = clampf(positive(m.FontSize, 13), 4, 200)
	m.TextColor = color(m.TextColor, DefaultText)
	m.CellPadding = clampf(m.CellPadding, 0, 100)
}
