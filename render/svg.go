// Package render produces diagnostic views of a scene: SVG documents,
// raster previews and text dumps.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/disintegration/imaging"

	"plancanvas/colors"
	"plancanvas/common"
	"plancanvas/scene"
)

// Options control SVG output.
type Options struct {
	// Padding added around scene bounds.
	Padding float64
	// Background fills the whole document when set.
	Background string
	// SkipImages leaves image sources out (previews do not need them).
	SkipImages bool
}

type svgWriter struct {
	opts  Options
	defs  *etree.Element
	clips int
}

// Bounds returns union of visible objects bounds.
func Bounds(objs []*scene.Object) scene.Rect {
	var (
		minX, minY = math.Inf(1), math.Inf(1)
		maxX, maxY = math.Inf(-1), math.Inf(-1)
	)
	for _, o := range objs {
		if o == nil || !o.Visible {
			continue
		}
		b := o.Bounds()
		minX, minY = math.Min(minX, b.Left), math.Min(minY, b.Top)
		maxX, maxY = math.Max(maxX, b.Right()), math.Max(maxY, b.Bottom())
	}
	if math.IsInf(minX, 1) {
		return scene.Rect{}
	}
	return scene.Rect{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

// SVG renders top level objects (bottom-most first) into SVG document
// sized to their bounds.
func SVG(objs []*scene.Object, opts Options) *etree.Document {
	b := Bounds(objs)
	p := math.Max(opts.Padding, 0)
	b = scene.Rect{Left: b.Left - p, Top: b.Top - p, Width: math.Max(b.Width+2*p, 1), Height: math.Max(b.Height+2*p, 1)}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("width", num(b.Width))
	root.CreateAttr("height", num(b.Height))
	root.CreateAttr("viewBox", strings.Join([]string{num(b.Left), num(b.Top), num(b.Width), num(b.Height)}, " "))

	w := &svgWriter{opts: opts, defs: root.CreateElement("defs")}
	if len(opts.Background) > 0 {
		bg := root.CreateElement("rect")
		bg.CreateAttr("x", num(b.Left))
		bg.CreateAttr("y", num(b.Top))
		bg.CreateAttr("width", num(b.Width))
		bg.CreateAttr("height", num(b.Height))
		paint(bg, "fill", opts.Background)
	}
	for _, o := range objs {
		w.object(root, o)
	}
	if len(w.defs.ChildElements()) == 0 {
		root.RemoveChild(w.defs)
	}
	return doc
}

// SVGBytes renders objects and serializes the document.
func SVGBytes(objs []*scene.Object, opts Options) ([]byte, error) {
	doc := SVG(objs, opts)
	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("unable to serialize svg: %w", err)
	}
	return data, nil
}

func num(v float64) string {
	if math.Abs(v) < 1e-9 {
		return "0"
	}
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

func matrix(m scene.Matrix) string {
	if m == scene.Identity {
		return ""
	}
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = num(v)
	}
	return "matrix(" + strings.Join(parts, " ") + ")"
}

// paint sets color attribute converting alpha into separate opacity
// attribute, unparsable or transparent colors become none.
func paint(el *etree.Element, attr, color string) {
	c, ok := colors.Parse(color)
	if !ok || c.A <= 0 {
		el.CreateAttr(attr, "none")
		return
	}
	alpha := c.A
	c.A = 1
	el.CreateAttr(attr, c.String())
	if alpha < 1 {
		el.CreateAttr(attr+"-opacity", num(alpha))
	}
}

func setCommon(el *etree.Element, o *scene.Object, transform scene.Matrix) {
	if t := matrix(transform); len(t) > 0 {
		el.CreateAttr("transform", t)
	}
	if o.Opacity < 1 {
		el.CreateAttr("opacity", num(math.Max(o.Opacity, 0)))
	}
	if len(o.ID) > 0 {
		el.CreateAttr("data-id", o.ID)
	}
}

func stroke(el *etree.Element, o *scene.Object) {
	if o.StrokeWidth <= 0 || len(o.Stroke) == 0 {
		return
	}
	paint(el, "stroke", o.Stroke)
	el.CreateAttr("stroke-width", num(o.StrokeWidth))
}

func (w *svgWriter) object(parent *etree.Element, o *scene.Object) {
	if o == nil || !o.Visible {
		return
	}
	if o.Type == scene.TypeGroup {
		g := parent.CreateElement("g")
		setCommon(g, o, o.ChildMatrix())
		for _, c := range o.Children {
			w.object(g, c)
		}
		return
	}
	if el := w.shape(parent, o, o.LocalMatrix()); el != nil && o.ClipPath != nil {
		el.CreateAttr("clip-path", "url(#"+w.clip(o.ClipPath)+")")
	}
}

func (w *svgWriter) clip(c *scene.Object) string {
	w.clips++
	id := "clip" + strconv.Itoa(w.clips)
	cp := w.defs.CreateElement("clipPath")
	cp.CreateAttr("id", id)
	w.shape(cp, c, c.LocalMatrix())
	return id
}

func (w *svgWriter) shape(parent *etree.Element, o *scene.Object, m scene.Matrix) *etree.Element {
	var el *etree.Element
	switch o.Type {
	case scene.TypeRect:
		el = parent.CreateElement("rect")
		el.CreateAttr("width", num(o.Width))
		el.CreateAttr("height", num(o.Height))
		if o.Rx > 0 || o.Ry > 0 {
			el.CreateAttr("rx", num(o.Rx))
			el.CreateAttr("ry", num(o.Ry))
		}
		paint(el, "fill", o.Fill)
		stroke(el, o)
	case scene.TypeText:
		el = parent.CreateElement("text")
		x, anchor := 0.0, "start"
		switch o.TextAlign {
		case common.TextAlignCenter:
			x, anchor = o.Width/2, "middle"
		case common.TextAlignRight:
			x, anchor = o.Width, "end"
		}
		el.CreateAttr("x", num(x))
		el.CreateAttr("y", num(o.Height/2+o.FontSize*0.35))
		el.CreateAttr("text-anchor", anchor)
		el.CreateAttr("font-size", num(o.FontSize))
		if len(o.FontFamily) > 0 {
			el.CreateAttr("font-family", o.FontFamily)
		}
		if len(o.FontWeight) > 0 {
			el.CreateAttr("font-weight", o.FontWeight)
		}
		paint(el, "fill", o.Fill)
		el.SetText(o.Text)
	case scene.TypeLine:
		if len(o.Points) < 2 {
			return nil
		}
		el = parent.CreateElement("line")
		el.CreateAttr("x1", num(o.Points[0].X))
		el.CreateAttr("y1", num(o.Points[0].Y))
		el.CreateAttr("x2", num(o.Points[1].X))
		el.CreateAttr("y2", num(o.Points[1].Y))
		stroke(el, o)
	case scene.TypePolygon:
		if len(o.Points) < 3 {
			return nil
		}
		el = parent.CreateElement("polygon")
		pts := make([]string, len(o.Points))
		for i, p := range o.Points {
			pts[i] = num(p.X) + "," + num(p.Y)
		}
		el.CreateAttr("points", strings.Join(pts, " "))
		paint(el, "fill", o.Fill)
		stroke(el, o)
	case scene.TypeImage:
		el = parent.CreateElement("image")
		el.CreateAttr("width", num(o.Width))
		el.CreateAttr("height", num(o.Height))
		if href := w.href(o); len(href) > 0 {
			el.CreateAttr("href", href)
		}
	default:
		return nil
	}
	setCommon(el, o, m)
	return el
}

// href embeds image as PNG data URI, source URL is used when image is
// not available.
func (w *svgWriter) href(o *scene.Object) string {
	if w.opts.SkipImages {
		return ""
	}
	if o.Image == nil {
		return o.Source
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, o.Image, imaging.PNG); err != nil {
		return o.Source
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
