// Package build turns element metadata into scene graphics. Builders are
// pure: same metadata and lookups always produce structurally identical
// trees, the whole tree is rebuilt on every change.
package build

import (
	"math"
	"time"

	"plancanvas/calendar"
	"plancanvas/element"
	"plancanvas/holiday"
	"plancanvas/imagecache"
	"plancanvas/scene"
)

// Lookups are external services consulted by builders. Every field is
// optional.
type Lookups struct {
	Holidays holiday.Lookup
	Names    calendar.Names
	Images   *imagecache.Cache
	// OnImageLoaded is called (from loader goroutine) when image requested
	// by a collage slot becomes available and the element should be
	// rebuilt.
	OnImageLoaded func(url string)
	// Today enables today highlighting, zero disables it.
	Today time.Time
}

func (l Lookups) names() calendar.Names {
	if l.Names == nil {
		return calendar.Default
	}
	return l.Names
}

// Build dispatches to the builder of metadata kind.
func Build(meta element.Metadata, lookups Lookups) *scene.Object {
	switch m := meta.(type) {
	case *element.CalendarGrid:
		return CalendarGrid(m, lookups)
	case *element.WeekStrip:
		return WeekStrip(m, lookups)
	case *element.DateCell:
		return DateCell(m, lookups)
	case *element.Collage:
		return Collage(m, lookups)
	case *element.Table:
		return Table(m, lookups)
	case *element.Schedule:
		return Schedule(m, lookups)
	case *element.Checklist:
		return Checklist(m, lookups)
	case *element.PlannerNote:
		return PlannerNote(m, lookups)
	default:
		return finish(nil, scene.Size{}, nil)
	}
}

// degenerate reports whether element has nothing to draw.
func degenerate(s scene.Size) bool {
	return s.Width <= 0 || s.Height <= 0
}

// empty is the result for degenerate sizes: valid group with a zero sized
// background.
func empty(meta element.Metadata) *scene.Object {
	s := meta.Dimensions()
	bg := scene.NewRect(0, 0, math.Max(s.Width, 0), math.Max(s.Height, 0))
	return finish(meta, s, []*scene.Object{bg})
}

// finish wraps element-local primitives (top-left origin) into the element
// group and makes everything below it inert.
func finish(meta element.Metadata, size scene.Size, children []*scene.Object) *scene.Object {
	g := scene.NewFrame(size.Width, size.Height, children...)
	g.SubTargetCheck = false
	g.Interactive = false
	if meta != nil {
		g.Element = meta
	}
	for _, c := range g.Children {
		c.Walk(func(o *scene.Object) bool {
			o.Selectable = false
			o.Evented = false
			return true
		})
	}
	return g
}

// background draws element frame, stroke is kept inside the element.
func background(f element.Frame, size scene.Size) *scene.Object {
	var bw float64
	if f.ShowBorder {
		bw = math.Min(f.BorderWidth, math.Min(size.Width, size.Height)/2)
	}
	r := insetRect(0, 0, size.Width, size.Height, bw)
	if f.ShowBackground {
		r.Fill = f.BackgroundColor
	}
	if bw > 0 {
		r.Stroke = f.BorderColor
		r.StrokeWidth = bw
	}
	radius := clampRadius(f.CornerRadius, r.Width, r.Height)
	r.Rx, r.Ry = radius, radius
	return r
}

// insetRect creates rectangle whose stroke of width sw stays inside the
// given box.
func insetRect(x, y, w, h, sw float64) *scene.Object {
	return scene.NewRect(x+sw/2, y+sw/2, math.Max(w-sw, 0), math.Max(h-sw, 0))
}

func clampRadius(r, w, h float64) float64 {
	return math.Max(0, math.Min(r, math.Min(w, h)/2))
}

func fill(o *scene.Object, color string) *scene.Object {
	o.Fill = color
	return o
}

func stroke(o *scene.Object, color string, width float64) *scene.Object {
	o.Stroke = color
	o.StrokeWidth = width
	return o
}

func rounded(o *scene.Object, r float64) *scene.Object {
	r = clampRadius(r, o.Width, o.Height)
	o.Rx, o.Ry = r, r
	return o
}

// line draws thin line of color.
func line(x1, y1, x2, y2 float64, color string, width float64) *scene.Object {
	return stroke(scene.NewLine(x1, y1, x2, y2), color, width)
}

// topBand draws band at the top of element following its rounded top
// corners while keeping bottom corners square.
func topBand(width, height, radius float64, color string) []*scene.Object {
	if width <= 0 || height <= 0 {
		return nil
	}
	radius = clampRadius(radius, width, height)
	band := rounded(fill(scene.NewRect(0, 0, width, height), color), radius)
	if radius == 0 {
		return []*scene.Object{band}
	}
	square := fill(scene.NewRect(0, radius, width, height-radius), color)
	return []*scene.Object{band, square}
}
