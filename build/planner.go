package build

import (
	"math"
	"time"

	"plancanvas/colors"
	"plancanvas/common"
	"plancanvas/element"
	"plancanvas/scene"
)

const (
	tintAmount     = 0.85
	underlineWidth = 2
	titleOnAccent  = "#ffffff"
)

// header draws title band of planner kinds and returns its height.
func header(h element.Header, width, pad float64, family string, radius float64) ([]*scene.Object, float64) {
	if h.HeaderStyle == common.HeaderStyleNone {
		return nil, 0
	}
	zh := h.HeaderHeight
	st := textStyle{
		size:   FitFontSize(h.TitleFontSize, zh, 0.5),
		color:  h.TitleColor,
		family: family,
		bold:   true,
	}
	var out []*scene.Object
	switch h.HeaderStyle {
	case common.HeaderStyleMinimal:
		out = append(out, fill(scene.NewRect(pad, zh-underlineWidth, math.Max(width-2*pad, 0), underlineWidth), h.AccentColor))
	case common.HeaderStyleTint:
		out = append(out, topBand(width, zh, radius, colors.Tint(h.AccentColor, tintAmount))...)
		st.color = h.AccentColor
	case common.HeaderStyleFilled:
		out = append(out, topBand(width, zh, radius, h.AccentColor)...)
		st.color = titleOnAccent
	}
	out = appendNonNil(out, label(h.Title, pad, 0, width-2*pad, zh-underlineWidth, st))
	return out, zh
}

// plannerBase draws background and header clamped to element height and
// returns body rectangle below the header inset by padding.
func plannerBase(f element.Frame, h element.Header, size scene.Size, pad float64, family string) ([]*scene.Object, scene.Rect) {
	pad = padding(pad, size)
	out := []*scene.Object{background(f, size)}

	hh := 0.0
	if h.HeaderStyle != common.HeaderStyleNone {
		hh = h.HeaderHeight
	}
	z := Partition(size.Height, hh, 0, 0)
	if z.Header > 0 {
		h.HeaderHeight = z.Header
		objs, _ := header(h, size.Width, pad, family, f.CornerRadius)
		out = append(out, objs...)
	}
	body := scene.Rect{
		Left:   pad,
		Top:    z.Header + pad,
		Width:  math.Max(size.Width-2*pad, 0),
		Height: math.Max(z.Body-2*pad, 0),
	}
	return out, body
}

// Schedule builds day timeline rows.
func Schedule(m *element.Schedule, _ Lookups) *scene.Object {
	m = element.Apply(m, nil)
	if degenerate(m.Size) {
		return empty(m)
	}
	out, body := plannerBase(m.Frame, m.Header, m.Size, m.Padding, m.FontFamily)
	n := m.Slots()
	if body.Empty() || n == 0 {
		return finish(m, m.Size, out)
	}

	rowH := body.Height / float64(n)
	labelW := math.Min(m.LabelWidth, body.Width/2)
	st := textStyle{
		size:   FitFontSize(m.LabelFontSize, rowH, 0.6),
		color:  m.LabelColor,
		family: m.FontFamily,
	}
	for i := range n {
		y := body.Top + float64(i)*rowH
		out = append(out, line(body.Left+labelW, y, body.Right(), y, m.LineColor, 1))
		minutes := m.StartHour*60 + i*m.IntervalMinutes
		out = appendNonNil(out, label(TimeLabel(minutes, m.TimeFormat), body.Left, y, labelW-4, math.Min(rowH, st.size*2), st))
	}
	out = append(out, line(body.Left+labelW, body.Bottom(), body.Right(), body.Bottom(), m.LineColor, 1))
	return finish(m, m.Size, out)
}

// TimeLabel formats minutes since midnight.
func TimeLabel(minutes int, format common.TimeFormat) string {
	t := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(minutes) * time.Minute)
	if minutes >= 24*60 {
		if format == common.TimeFormat12h {
			return "12 AM"
		}
		return "24:00"
	}
	switch format {
	case common.TimeFormat12h:
		if t.Minute() == 0 {
			return t.Format("3 PM")
		}
		return t.Format("3:04 PM")
	default:
		return t.Format("15:04")
	}
}

// Checklist builds rows with optional checkboxes.
func Checklist(m *element.Checklist, _ Lookups) *scene.Object {
	m = element.Apply(m, nil)
	if degenerate(m.Size) {
		return empty(m)
	}
	out, body := plannerBase(m.Frame, m.Header, m.Size, m.Padding, m.FontFamily)
	if body.Empty() {
		return finish(m, m.Size, out)
	}

	rowH := body.Height / float64(m.Rows)
	box := math.Min(m.CheckboxSize, rowH*0.7)
	for i := range m.Rows {
		y := body.Top + float64(i)*rowH
		x := body.Left
		if m.ShowCheckboxes && box >= 2 {
			cb := stroke(insetRect(x, y+(rowH-box)/2, box, box, 1), m.CheckboxColor, 1)
			cb.Rx, cb.Ry = box/5, box/5
			out = append(out, cb)
			x += box + 8
		}
		if x < body.Right() {
			out = append(out, line(x, y+rowH, body.Right(), y+rowH, m.LineColor, 1))
		}
	}
	return finish(m, m.Size, out)
}

// PlannerNote builds notes area with background pattern.
func PlannerNote(m *element.PlannerNote, _ Lookups) *scene.Object {
	m = element.Apply(m, nil)
	if degenerate(m.Size) {
		return empty(m)
	}
	out, body := plannerBase(m.Frame, m.Header, m.Size, m.Padding, m.FontFamily)
	if body.Empty() {
		return finish(m, m.Size, out)
	}
	out = append(out, notePattern(m.Pattern, body, m.PatternSpacing, m.PatternColor)...)
	return finish(m, m.Size, out)
}

func notePattern(p common.NotePattern, r scene.Rect, spacing float64, color string) []*scene.Object {
	var out []*scene.Object
	switch p {
	case common.NotePatternRuled:
		for y := r.Top + spacing; y <= r.Bottom(); y += spacing {
			out = append(out, line(r.Left, y, r.Right(), y, color, 1))
		}
	case common.NotePatternGrid:
		for y := r.Top; y <= r.Bottom(); y += spacing {
			out = append(out, line(r.Left, y, r.Right(), y, color, 1))
		}
		for x := r.Left; x <= r.Right(); x += spacing {
			out = append(out, line(x, r.Top, x, r.Bottom(), color, 1))
		}
	case common.NotePatternDot:
		const d = 2.0
		for y := r.Top; y+d <= r.Bottom(); y += spacing {
			for x := r.Left; x+d <= r.Right(); x += spacing {
				dot := fill(scene.NewRect(x, y, d, d), color)
				dot.Rx, dot.Ry = d/2, d/2
				out = append(out, dot)
			}
		}
	case common.NotePatternNone:
	}
	return out
}
