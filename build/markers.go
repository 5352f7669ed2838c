package build

import (
	"math"

	"plancanvas/common"
	"plancanvas/scene"
)

const (
	markerInset       = 4
	backgroundOpacity = 0.18
)

// marker is outcome of holiday marker dispatch for one cell: shapes drawn
// over the cell and, for text style, replacement day number color.
type marker struct {
	shapes   []*scene.Object
	dayColor string
}

// holidayMarker computes marker of style for cell rectangle. h is marker
// height as configured, radius is cell corner radius.
func holidayMarker(style common.MarkerStyle, cell scene.Rect, color string, h, radius float64) marker {
	if cell.Empty() {
		return marker{}
	}
	limit := math.Min(cell.Width, cell.Height)
	switch style {
	case common.MarkerStyleBar:
		bh := math.Min(h, cell.Height)
		return marker{shapes: []*scene.Object{
			fill(scene.NewRect(cell.Left, cell.Bottom()-bh, cell.Width, bh), color),
		}}
	case common.MarkerStyleDot:
		d := math.Min(math.Max(4, h*1.5), limit)
		inset := math.Min(markerInset, (limit-d)/2)
		dot := fill(scene.NewRect(cell.Right()-inset-d, cell.Top+inset, d, d), color)
		dot.Rx, dot.Ry = d/2, d/2
		return marker{shapes: []*scene.Object{dot}}
	case common.MarkerStyleSquare:
		s := math.Min(math.Max(4, h*1.5), limit)
		inset := math.Min(markerInset, (limit-s)/2)
		return marker{shapes: []*scene.Object{
			fill(scene.NewRect(cell.Right()-inset-s, cell.Top+inset, s, s), color),
		}}
	case common.MarkerStyleBorder:
		bw := math.Min(h, limit/2)
		r := insetRect(cell.Left, cell.Top, cell.Width, cell.Height, bw)
		r = rounded(stroke(r, color, bw), radius)
		return marker{shapes: []*scene.Object{r}}
	case common.MarkerStyleTriangle:
		t := math.Min(math.Max(4, h*2), limit)
		return marker{shapes: []*scene.Object{
			fill(scene.NewPolygon([]scene.Point{
				{X: cell.Right() - t, Y: cell.Top},
				{X: cell.Right(), Y: cell.Top},
				{X: cell.Right(), Y: cell.Top + t},
			}), color),
		}}
	case common.MarkerStyleBackground:
		r := rounded(fill(scene.NewRect(cell.Left, cell.Top, cell.Width, cell.Height), color), radius)
		r.Opacity = backgroundOpacity
		return marker{shapes: []*scene.Object{r}}
	case common.MarkerStyleText:
		return marker{dayColor: color}
	default:
		return marker{}
	}
}
