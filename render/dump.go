package render

import (
	"plancanvas/scene"
	"plancanvas/utils/debug"
)

// Dump writes scene tree as indented text, one object per line.
func Dump(objs []*scene.Object) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "canvas objects=%d", len(objs))
	for _, o := range objs {
		dumpObject(tw, 1, o)
	}
	return tw.String()
}

func dumpObject(tw *debug.TreeWriter, depth int, o *scene.Object) {
	if o == nil {
		return
	}
	attrs := map[string]string{
		"id":     o.ID,
		"name":   o.Name,
		"shape":  o.ShapeKind,
		"part":   o.Part,
		"left":   num(o.Left),
		"top":    num(o.Top),
		"width":  num(o.Width),
		"height": num(o.Height),
		"fill":   o.Fill,
		"stroke": o.Stroke,
	}
	if o.Angle != 0 {
		attrs["angle"] = num(o.Angle)
	}
	if o.ScaleX != 1 || o.ScaleY != 1 {
		attrs["scale"] = num(o.ScaleX) + "x" + num(o.ScaleY)
	}
	if o.Element != nil {
		attrs["element"] = o.Element.Kind().String()
	}
	if !o.Visible {
		attrs["hidden"] = "true"
	}
	if len(o.Source) > 0 {
		attrs["src"] = o.Source
	}
	tw.Attrs(depth, o.Type.String(), attrs)
	if o.Type == scene.TypeText {
		tw.TextBlock(depth+1, "text", o.Text)
	}
	if o.ClipPath != nil {
		tw.Line(depth+1, "clip")
		dumpObject(tw, depth+2, o.ClipPath)
	}
	for _, c := range o.Children {
		dumpObject(tw, depth+1, c)
	}
}
