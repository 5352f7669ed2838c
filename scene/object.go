// Package scene is a small retained mode 2D scene graph: primitives,
// groups and an ordered canvas with an active selection.
//
// Every object is positioned by its top-left corner (Left, Top) in the
// coordinate space of its parent and rotated/scaled around its center.
// Children of a group are expressed relative to the group center.
package scene

import (
	"image"
	"maps"
	"math"
	"slices"

	"plancanvas/common"
)

// Type of scene primitive.
type Type int

const (
	TypeRect Type = iota
	TypeText
	TypeLine
	TypePolygon
	TypeImage
	TypeGroup
)

func (t Type) String() string {
	switch t {
	case TypeRect:
		return "rect"
	case TypeText:
		return "text"
	case TypeLine:
		return "line"
	case TypePolygon:
		return "polygon"
	case TypeImage:
		return "image"
	case TypeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Element is metadata of a design element rendered by a group. Records are
// never mutated after they are attached, so clones share them.
type Element interface {
	Kind() common.ElementKind
	Label() string
}

// Shape kinds and parts used to tag compound objects.
const (
	ShapeKindArrow = "arrow"

	PartLine      = "line"
	PartStartHead = "startHead"
	PartEndHead   = "endHead"
)

// ArrowOptions describes geometry and look of an arrow group.
type ArrowOptions struct {
	BaseWidth   float64               `yaml:"base_width"`
	StrokeWidth float64               `yaml:"stroke_width"`
	HeadLength  float64               `yaml:"arrow_head_length"`
	HeadWidth   float64               `yaml:"arrow_head_width"`
	Stroke      string                `yaml:"stroke"`
	HeadStyle   common.ArrowHeadStyle `yaml:"arrow_head_style"`
	StartHead   *bool                 `yaml:"start_head,omitempty"`
	EndHead     *bool                 `yaml:"end_head,omitempty"`
}

// HasStartHead reports whether arrow is drawn with a head at the line start
// (off by default).
func (o *ArrowOptions) HasStartHead() bool {
	return o != nil && o.StartHead != nil && *o.StartHead
}

// HasEndHead reports whether arrow is drawn with a head at the line end (on
// by default).
func (o *ArrowOptions) HasEndHead() bool {
	return o == nil || o.EndHead == nil || *o.EndHead
}

func (o *ArrowOptions) clone() *ArrowOptions {
	if o == nil {
		return nil
	}
	c := *o
	if o.StartHead != nil {
		v := *o.StartHead
		c.StartHead = &v
	}
	if o.EndHead != nil {
		v := *o.EndHead
		c.EndHead = &v
	}
	return &c
}

// Object is a node of the scene graph.
type Object struct {
	Type Type

	Left, Top      float64
	Width, Height  float64
	Angle          float64 // degrees, around center
	ScaleX, ScaleY float64
	Opacity        float64
	Visible        bool

	Fill        string
	Stroke      string
	StrokeWidth float64
	Rx, Ry      float64

	Text       string
	FontSize   float64
	FontFamily string
	FontWeight string
	TextAlign  common.TextAlign

	// Points of lines and polygons relative to the object top-left corner.
	Points []Point

	Image  image.Image
	Source string
	// ClipPath is expressed in the object's own (unscaled, top-left origin)
	// coordinates.
	ClipPath *Object

	Children       []*Object
	Selectable     bool
	Evented        bool
	SubTargetCheck bool
	Interactive    bool

	// Identity and tags survive cloning.
	ID        string
	Name      string
	AutoName  string
	ShapeKind string
	Part      string
	Arrow     *ArrowOptions
	Element   Element
	Data      map[string]string
}

func newObject(t Type) *Object {
	return &Object{
		Type:       t,
		ScaleX:     1,
		ScaleY:     1,
		Opacity:    1,
		Visible:    true,
		Selectable: true,
		Evented:    true,
	}
}

// NewRect creates rectangle with top-left corner at (left, top).
func NewRect(left, top, width, height float64) *Object {
	o := newObject(TypeRect)
	o.Left, o.Top = left, top
	o.Width, o.Height = math.Max(width, 0), math.Max(height, 0)
	return o
}

// LineHeightFactor is ratio of text box height to font size.
const LineHeightFactor = 1.16

// NewText creates single line text box of fixed width.
func NewText(text string, left, top, width, fontSize float64) *Object {
	o := newObject(TypeText)
	o.Text = text
	o.Left, o.Top = left, top
	o.Width = math.Max(width, 0)
	o.FontSize = math.Max(fontSize, 0)
	o.Height = o.FontSize * LineHeightFactor
	o.TextAlign = common.TextAlignLeft
	return o
}

// NewLine creates line between two points given in parent space.
func NewLine(x1, y1, x2, y2 float64) *Object {
	o := newObject(TypeLine)
	o.SetPoints([]Point{{X: x1, Y: y1}, {X: x2, Y: y2}})
	return o
}

// NewPolygon creates closed polygon from points given in parent space.
func NewPolygon(points []Point) *Object {
	o := newObject(TypePolygon)
	o.SetPoints(points)
	return o
}

// NewImage creates image object showing img at its natural size.
func NewImage(img image.Image, source string, left, top float64) *Object {
	o := newObject(TypeImage)
	o.Image = img
	o.Source = source
	o.Left, o.Top = left, top
	if img != nil {
		b := img.Bounds()
		o.Width, o.Height = float64(b.Dx()), float64(b.Dy())
	}
	return o
}

// SetPoints replaces line or polygon geometry with points given in parent
// space, resetting rotation and scale.
func (o *Object) SetPoints(points []Point) {
	b := boundsOf(points)
	o.Left, o.Top = b.Left, b.Top
	o.Width, o.Height = b.Width, b.Height
	o.Angle, o.ScaleX, o.ScaleY = 0, 1, 1
	o.Points = make([]Point, len(points))
	for i, p := range points {
		o.Points[i] = Point{X: p.X - b.Left, Y: p.Y - b.Top}
	}
}

// ParentPoints returns line or polygon points in parent space.
func (o *Object) ParentPoints() []Point {
	m := o.LocalMatrix()
	out := make([]Point, len(o.Points))
	for i, p := range o.Points {
		out[i] = m.Apply(p)
	}
	return out
}

// Center returns object center in parent space.
func (o *Object) Center() Point {
	return Point{
		X: o.Left + o.Width*o.ScaleX/2,
		Y: o.Top + o.Height*o.ScaleY/2,
	}
}

// SetCenter moves object so its center lands on p.
func (o *Object) SetCenter(p Point) {
	o.Left = p.X - o.Width*o.ScaleX/2
	o.Top = p.Y - o.Height*o.ScaleY/2
}

// ChildMatrix maps center-relative coordinates (used by group children)
// into parent space.
func (o *Object) ChildMatrix() Matrix {
	c := o.Center()
	return Translate(c.X, c.Y).Mul(Rotate(o.Angle)).Mul(Scale(o.ScaleX, o.ScaleY))
}

// LocalMatrix maps object own coordinates (top-left origin) into parent
// space.
func (o *Object) LocalMatrix() Matrix {
	return o.ChildMatrix().Mul(Translate(-o.Width/2, -o.Height/2))
}

// SetTransform places object so that its center-relative space is mapped to
// parent space by m.
func (o *Object) SetTransform(m Matrix) {
	d := m.Decompose()
	o.Angle = d.Angle
	o.ScaleX, o.ScaleY = d.ScaleX, d.ScaleY
	o.SetCenter(Point{X: d.TranslateX, Y: d.TranslateY})
}

// Bounds returns axis aligned bounding box in parent space.
func (o *Object) Bounds() Rect {
	m := o.LocalMatrix()
	return boundsOf([]Point{
		m.Apply(Point{}),
		m.Apply(Point{X: o.Width}),
		m.Apply(Point{X: o.Width, Y: o.Height}),
		m.Apply(Point{Y: o.Height}),
	})
}

// Walk visits object and all its descendants depth first. Returning false
// from fn stops descent into that object children.
func (o *Object) Walk(fn func(*Object) bool) {
	if !fn(o) {
		return
	}
	for _, c := range o.Children {
		c.Walk(fn)
	}
}

// FindPart returns first direct child tagged with part.
func (o *Object) FindPart(part string) *Object {
	for _, c := range o.Children {
		if c.Part == part {
			return c
		}
	}
	return nil
}

// Clone makes deep copy of object tree including identity and tags. Images
// are immutable and shared.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	c := *o
	c.Points = slices.Clone(o.Points)
	c.ClipPath = o.ClipPath.Clone()
	c.Arrow = o.Arrow.clone()
	if o.Data != nil {
		c.Data = maps.Clone(o.Data)
	}
	if o.Children != nil {
		c.Children = make([]*Object, len(o.Children))
		for i, ch := range o.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return &c
}

// SetData stores custom string value on object.
func (o *Object) SetData(key, value string) {
	if o.Data == nil {
		o.Data = make(map[string]string)
	}
	o.Data[key] = value
}
