package scene

import "math"

// NewGroup wraps objects positioned in parent space into a group sized to
// their combined bounding box. Children are converted to group relative
// coordinates, their on-screen placement does not change.
func NewGroup(children ...*Object) *Object {
	g := newObject(TypeGroup)
	b := unionBounds(children)
	g.Left, g.Top = b.Left, b.Top
	g.Width, g.Height = b.Width, b.Height

	inv := g.ChildMatrix().Invert()
	for _, c := range children {
		c.SetTransform(inv.Mul(c.ChildMatrix()))
	}
	g.Children = children
	return g
}

// NewFrame creates group of exactly width x height placed at the origin.
// Children are given in frame coordinates with top-left origin.
func NewFrame(width, height float64, children ...*Object) *Object {
	g := newObject(TypeGroup)
	g.Width, g.Height = math.Max(width, 0), math.Max(height, 0)
	for _, c := range children {
		c.Left -= g.Width / 2
		c.Top -= g.Height / 2
	}
	g.Children = children
	return g
}

// Disband detaches children from the group converting their transforms to
// the group parent space. Group is left empty.
func (o *Object) Disband() []*Object {
	m := o.ChildMatrix()
	children := o.Children
	for _, c := range children {
		c.SetTransform(m.Mul(c.ChildMatrix()))
	}
	o.Children = nil
	return children
}

func unionBounds(objs []*Object) Rect {
	var (
		out   Rect
		first = true
	)
	for _, o := range objs {
		b := o.Bounds()
		if first {
			out, first = b, false
			continue
		}
		left := math.Min(out.Left, b.Left)
		top := math.Min(out.Top, b.Top)
		out = Rect{
			Left:   left,
			Top:    top,
			Width:  math.Max(out.Right(), b.Right()) - left,
			Height: math.Max(out.Bottom(), b.Bottom()) - top,
		}
	}
	return out
}
