package build

import (
	"image"
	"math"

	"plancanvas/common"
	"plancanvas/element"
	"plancanvas/scene"
)

// FitScale returns horizontal and vertical scale placing image of imgW x
// imgH into slot of slotW x slotH: cover fills the slot (max), contain fits
// inside (min), fill stretches each axis.
func FitScale(mode common.FitMode, slotW, slotH, imgW, imgH float64) (float64, float64) {
	if imgW <= 0 || imgH <= 0 {
		return 1, 1
	}
	sx, sy := slotW/imgW, slotH/imgH
	switch mode {
	case common.FitModeCover:
		s := math.Max(sx, sy)
		return s, s
	case common.FitModeFill:
		return sx, sy
	case common.FitModeContain:
		fallthrough
	default:
		s := math.Min(sx, sy)
		return s, s
	}
}

// Collage builds photo slots. Images missing from cache are requested and
// a placeholder is drawn until Lookups.OnImageLoaded reports them.
func Collage(m *element.Collage, lk Lookups) *scene.Object {
	m = element.Apply(m, nil)
	if degenerate(m.Size) {
		return empty(m)
	}
	out := []*scene.Object{background(m.Frame, m.Size)}

	area := scene.Rect{Left: 0, Top: 0, Width: m.Size.Width, Height: m.Size.Height}
	if p := padding(m.FramePadding, m.Size); p > 0 {
		area = scene.Rect{Left: p, Top: p, Width: area.Width - 2*p, Height: area.Height - 2*p}
	}
	for _, s := range m.Slots {
		r, ok := clampSlot(s, area)
		if !ok {
			continue
		}
		out = append(out, fitRotated(slot(m, s, r, lk), area))
	}
	return finish(m, m.Size, out)
}

// clampSlot keeps slot rectangle inside area.
func clampSlot(s element.Slot, area scene.Rect) (scene.Rect, bool) {
	left := math.Max(area.Left, math.Min(area.Left+s.X, area.Right()))
	top := math.Max(area.Top, math.Min(area.Top+s.Y, area.Bottom()))
	r := scene.Rect{
		Left:   left,
		Top:    top,
		Width:  math.Min(s.Width, area.Right()-left),
		Height: math.Min(s.Height, area.Bottom()-top),
	}
	return r, !r.Empty()
}

func slot(m *element.Collage, s element.Slot, r scene.Rect, lk Lookups) *scene.Object {
	radius := clampRadius(m.SlotRadius, r.Width, r.Height)
	var bw float64
	if m.ShowSlotBorder {
		bw = math.Min(m.SlotBorderWidth, math.Min(r.Width, r.Height)/2)
	}
	frame := rounded(fill(insetRect(0, 0, r.Width, r.Height, bw), m.SlotColor), radius)
	if bw > 0 {
		stroke(frame, m.SlotBorderColor, bw)
	}
	children := []*scene.Object{frame}

	img, cached := lk.Images.Get(s.ImageURL)
	switch {
	case cached:
		children = append(children, slotImage(s, img, r, radius))
	default:
		if len(s.ImageURL) > 0 {
			lk.Images.Request(s.ImageURL, lk.OnImageLoaded)
		}
		children = append(children, placeholder(r.Width, r.Height, m.PlaceholderColor)...)
	}
	if bw > 0 {
		// keep border visible over image
		border := frame.Clone()
		border.Fill = ""
		children = append(children, border)
	}

	g := scene.NewFrame(r.Width, r.Height, children...)
	g.Left, g.Top = r.Left, r.Top
	g.Angle = s.Rotation
	return g
}

// fitRotated keeps rotated slot bounds inside area: slot is shrunk around
// its center when rotated bounds are larger than area and then shifted in.
func fitRotated(g *scene.Object, area scene.Rect) *scene.Object {
	if g.Angle == 0 {
		return g
	}
	b := g.Bounds()
	if b.Width > area.Width || b.Height > area.Height {
		c := g.Center()
		k := math.Min(area.Width/b.Width, area.Height/b.Height)
		g.ScaleX, g.ScaleY = k, k
		g.SetCenter(c)
		b = g.Bounds()
	}
	switch {
	case b.Left < area.Left:
		g.Left += area.Left - b.Left
	case b.Right() > area.Right():
		g.Left -= b.Right() - area.Right()
	}
	switch {
	case b.Top < area.Top:
		g.Top += area.Top - b.Top
	case b.Bottom() > area.Bottom():
		g.Top -= b.Bottom() - area.Bottom()
	}
	return g
}

// slotImage places image scaled by fit mode at slot center and clips it to
// the rounded slot region.
func slotImage(s element.Slot, img image.Image, r scene.Rect, radius float64) *scene.Object {
	o := scene.NewImage(img, s.ImageURL, 0, 0)
	o.ScaleX, o.ScaleY = FitScale(s.ImageFit, r.Width, r.Height, o.Width, o.Height)
	o.SetCenter(scene.Point{X: r.Width / 2, Y: r.Height / 2})

	// clip path lives in image own unscaled coordinates
	clip := scene.NewRect(-o.Left/o.ScaleX, -o.Top/o.ScaleY, r.Width/o.ScaleX, r.Height/o.ScaleY)
	clip.Rx, clip.Ry = radius/o.ScaleX, radius/o.ScaleY
	o.ClipPath = clip
	return o
}

// placeholder draws picture glyph: frame, sun and mountains.
func placeholder(w, h float64, color string) []*scene.Object {
	s := math.Min(w, h) * 0.3
	if s < 4 {
		return nil
	}
	x, y := (w-s)/2, (h-s*0.8)/2
	sw := math.Max(1, s/24)
	box := stroke(insetRect(x, y, s, s*0.8, sw), color, sw)
	box.Rx, box.Ry = sw*2, sw*2
	sun := fill(scene.NewRect(x+s*0.62, y+s*0.14, s*0.16, s*0.16), color)
	sun.Rx, sun.Ry = s*0.08, s*0.08
	hills := fill(scene.NewPolygon([]scene.Point{
		{X: x + s*0.1, Y: y + s*0.7},
		{X: x + s*0.38, Y: y + s*0.32},
		{X: x + s*0.58, Y: y + s*0.56},
		{X: x + s*0.7, Y: y + s*0.44},
		{X: x + s*0.9, Y: y + s*0.7},
	}), color)
	return []*scene.Object{box, sun, hills}
}
