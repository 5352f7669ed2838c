package identity

import (
	"math"

	"plancanvas/common"
	"plancanvas/scene"
)

// Arrow defaults.
const (
	DefaultArrowBaseWidth   = 140
	DefaultArrowStrokeWidth = 2
	DefaultArrowHeadLength  = 18
	DefaultArrowHeadWidth   = 14
	DefaultArrowStroke      = "#111827"
)

// IsArrow reports whether object is an arrow group: tagged explicitly or
// made of a line part with at least one head part.
func IsArrow(obj *scene.Object) bool {
	if obj == nil || obj.Type != scene.TypeGroup {
		return false
	}
	if obj.ShapeKind == scene.ShapeKindArrow {
		return true
	}
	var line, head bool
	for _, c := range obj.Children {
		switch c.Part {
		case scene.PartLine:
			line = true
		case scene.PartStartHead, scene.PartEndHead:
			head = true
		}
	}
	return line && head
}

// ResolveArrowOptions fills missing or invalid options with defaults.
func ResolveArrowOptions(o *scene.ArrowOptions) scene.ArrowOptions {
	var r scene.ArrowOptions
	if o != nil {
		r = *o
	}
	if r.BaseWidth <= 0 {
		r.BaseWidth = DefaultArrowBaseWidth
	}
	if r.StrokeWidth <= 0 {
		r.StrokeWidth = DefaultArrowStrokeWidth
	}
	if r.HeadLength <= 0 {
		r.HeadLength = DefaultArrowHeadLength
	}
	if r.HeadWidth <= 0 {
		r.HeadWidth = DefaultArrowHeadWidth
	}
	if len(r.Stroke) == 0 {
		r.Stroke = DefaultArrowStroke
	}
	if !r.HeadStyle.IsValid() {
		r.HeadStyle = common.ArrowHeadStyleFilled
	}
	// heads are never longer than the line
	r.HeadLength = math.Min(r.HeadLength, r.BaseWidth)
	return r
}

// NewArrow creates arrow group centered at the origin.
func NewArrow(opts *scene.ArrowOptions) *scene.Object {
	r := ResolveArrowOptions(opts)
	g := scene.NewFrame(0, 0)
	g.ShapeKind = scene.ShapeKindArrow
	g.SubTargetCheck = false
	g.Arrow = &r
	RefreshArrowGroupGeometry(g)
	return g
}

// RefreshArrowGroupGeometry rebuilds line and head children of arrow group
// from its options keeping group center in place. Line spans
// [-baseWidth/2, baseWidth/2] on the group horizontal axis, heads point
// outward with tips at line ends. Returns false for non arrow objects.
func RefreshArrowGroupGeometry(g *scene.Object) bool {
	if !IsArrow(g) {
		return false
	}
	RetagArrow(g)
	o := ResolveArrowOptions(g.Arrow)
	g.Arrow = &o

	half := o.BaseWidth / 2
	ln := g.FindPart(scene.PartLine)
	if ln == nil {
		ln = scene.NewLine(0, 0, 0, 0)
		ln.Part = scene.PartLine
	}
	ln.SetPoints([]scene.Point{{X: -half}, {X: half}})
	ln.Stroke, ln.StrokeWidth = o.Stroke, o.StrokeWidth
	ln.Selectable, ln.Evented = false, false
	children := []*scene.Object{ln}

	head := func(part string, tip, dir float64) *scene.Object {
		h := g.FindPart(part)
		if h == nil {
			h = scene.NewPolygon(nil)
			h.Part = part
		}
		base := tip - dir*o.HeadLength
		h.SetPoints([]scene.Point{
			{X: tip, Y: 0},
			{X: base, Y: -o.HeadWidth / 2},
			{X: base, Y: o.HeadWidth / 2},
		})
		switch o.HeadStyle {
		case common.ArrowHeadStyleOpen:
			h.Fill, h.Stroke, h.StrokeWidth = "", o.Stroke, o.StrokeWidth
		case common.ArrowHeadStyleFilled:
			h.Fill, h.Stroke, h.StrokeWidth = o.Stroke, "", 0
		}
		h.Selectable, h.Evented = false, false
		return h
	}
	if o.HasStartHead() {
		children = append(children, head(scene.PartStartHead, -half, -1))
	}
	if o.HasEndHead() {
		children = append(children, head(scene.PartEndHead, half, 1))
	}

	c := g.Center()
	g.Width = o.BaseWidth
	g.Height = math.Max(o.HeadWidth, o.StrokeWidth)
	g.SetCenter(c)
	g.ShapeKind = scene.ShapeKindArrow
	g.Children = children
	return true
}

// RetagArrow restores arrow tags lost by generic copies: shape kind on the
// group, parts on children and options derived from geometry when
// missing.
func RetagArrow(g *scene.Object) {
	if g == nil || g.Type != scene.TypeGroup {
		return
	}
	g.ShapeKind = scene.ShapeKindArrow

	var ln *scene.Object
	for _, c := range g.Children {
		switch c.Type {
		case scene.TypeLine:
			if ln == nil {
				c.Part, ln = scene.PartLine, c
			}
		case scene.TypePolygon:
			if len(c.Part) > 0 {
				continue
			}
			if c.Center().X < 0 {
				c.Part = scene.PartStartHead
			} else {
				c.Part = scene.PartEndHead
			}
		}
	}
	if g.Arrow != nil || ln == nil {
		return
	}

	opts := scene.ArrowOptions{
		BaseWidth:   ln.Width * ln.ScaleX,
		StrokeWidth: ln.StrokeWidth,
		Stroke:      ln.Stroke,
		HeadStyle:   common.ArrowHeadStyleFilled,
	}
	start, end := g.FindPart(scene.PartStartHead) != nil, g.FindPart(scene.PartEndHead) != nil
	opts.StartHead, opts.EndHead = &start, &end
	if h := g.FindPart(scene.PartEndHead); h != nil {
		opts.HeadLength, opts.HeadWidth = h.Width, h.Height
		if len(h.Fill) == 0 {
			opts.HeadStyle = common.ArrowHeadStyleOpen
		}
	} else if h := g.FindPart(scene.PartStartHead); h != nil {
		opts.HeadLength, opts.HeadWidth = h.Width, h.Height
		if len(h.Fill) == 0 {
			opts.HeadStyle = common.ArrowHeadStyleOpen
		}
	}
	g.Arrow = &opts
}
