package build

import (
	"math"

	"plancanvas/element"
	"plancanvas/scene"
	"plancanvas/table"
)

// Table builds table cells. Merged anchors span their region, covered
// cells are skipped entirely.
func Table(m *element.Table, _ Lookups) *scene.Object {
	m = element.Apply(m, nil)
	if degenerate(m.Size) {
		return empty(m)
	}
	out := []*scene.Object{background(m.Frame, m.Size)}

	var bw float64
	if m.ShowBorder {
		bw = math.Min(m.BorderWidth, math.Min(m.Size.Width, m.Size.Height)/2)
	}
	inner := scene.Rect{Left: bw, Top: bw, Width: m.Size.Width - 2*bw, Height: m.Size.Height - 2*bw}
	if inner.Empty() {
		return finish(m, m.Size, out)
	}
	xs := table.Offsets(table.ResolveTracks(m.ColumnWidths, m.Columns, inner.Width))
	ys := table.Offsets(table.ResolveTracks(m.RowHeights, m.Rows, inner.Height))

	stripe := ""
	if m.StripeRows {
		stripe = m.StripeColor
	}
	for r := range m.Rows {
		for c := range m.Columns {
			if table.IsCoveredByMerge(m.Merges, r, c) {
				continue
			}
			rs, cs := 1, 1
			if mg, ok := table.MergeAt(m.Merges, r, c); ok {
				rs, cs = mg.RowSpan, mg.ColSpan
			}
			cell := scene.Rect{
				Left:   inner.Left + xs[c],
				Top:    inner.Top + ys[r],
				Width:  xs[c+cs] - xs[c],
				Height: ys[r+rs] - ys[r],
			}
			out = append(out, tableCell(m, r, c, cell, stripe)...)
		}
	}
	return finish(m, m.Size, out)
}

func tableCell(m *element.Table, r, c int, cell scene.Rect, stripe string) []*scene.Object {
	var (
		fillColor = table.StripeFill(m.Layout, r, stripe)
		textColor = m.TextColor
		bold      bool
	)
	switch {
	case m.IsHeaderRow(r):
		fillColor, textColor, bold = m.HeaderColor, m.HeaderTextColor, true
	case m.IsFooterRow(r):
		fillColor, bold = m.FooterColor, true
	}

	gw := math.Min(m.GridWidth, math.Min(cell.Width, cell.Height)/2)
	rect := fill(scene.NewRect(cell.Left, cell.Top, cell.Width, cell.Height), fillColor)
	if gw > 0 {
		rect = stroke(fill(insetRect(cell.Left, cell.Top, cell.Width, cell.Height, gw), fillColor), m.GridColor, gw)
	}
	out := []*scene.Object{rect}

	content, ok := table.ContentAt(m.CellContents, r, c)
	if !ok || len(content.Text) == 0 {
		return out
	}
	pad := math.Min(m.CellPadding, cell.Width/4)
	return appendNonNil(out, label(content.Text, cell.Left+pad, cell.Top, cell.Width-2*pad, cell.Height, textStyle{
		size:   FitFontSize(m.FontSize, cell.Height, 0.6),
		color:  textColor,
		family: m.FontFamily,
		bold:   bold,
		align:  content.TextAlign,
	}))
}
