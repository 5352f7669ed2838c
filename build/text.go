package build

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"plancanvas/common"
	"plancanvas/scene"
)

// Text width is estimated with Go fonts, actual rendering font may differ
// slightly.
type measurer struct {
	mu    sync.Mutex
	fonts map[bool]*opentype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

var metrics = &measurer{faces: make(map[faceKey]font.Face)}

func (m *measurer) face(size float64, bold bool) font.Face {
	key := faceKey{size: size, bold: bold}
	if f, ok := m.faces[key]; ok {
		return f
	}
	if m.fonts == nil {
		m.fonts = map[bool]*opentype.Font{
			false: mustParse(goregular.TTF),
			true:  mustParse(gobold.TTF),
		}
	}
	f, err := opentype.NewFace(m.fonts[bold], &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil
	}
	m.faces[key] = f
	return f
}

func mustParse(data []byte) *opentype.Font {
	f, err := opentype.Parse(data)
	if err != nil {
		panic(err)
	}
	return f
}

// MeasureText returns advance width of single line text.
func MeasureText(s string, size float64, bold bool) float64 {
	if len(s) == 0 || size <= 0 {
		return 0
	}
	metrics.mu.Lock()
	defer metrics.mu.Unlock()

	face := metrics.face(size, bold)
	if face == nil {
		return float64(len([]rune(s))) * size * 0.55
	}
	return float64(font.MeasureString(face, s)) / 64
}

// FitTextSize shrinks font size so text fits into width.
func FitTextSize(s string, size, width float64, bold bool) float64 {
	if size <= 0 || width <= 0 {
		return 0
	}
	w := MeasureText(s, size, bold)
	if w <= width {
		return size
	}
	return math.Max(1, math.Floor(size*width/w))
}

// textStyle is common text appearance.
type textStyle struct {
	size   float64
	color  string
	family string
	bold   bool
	align  common.TextAlign
}

// label creates text box inside rectangle, vertically centered, shrinking
// font so text fits box width and height. Returns nil when nothing fits.
func label(s string, x, y, w, h float64, st textStyle) *scene.Object {
	if len(s) == 0 || w <= 0 || h <= 0 {
		return nil
	}
	size := math.Min(st.size, math.Floor(h/scene.LineHeightFactor+1e-9))
	size = FitTextSize(s, size, w, st.bold)
	if size < 1 {
		return nil
	}
	t := scene.NewText(s, x, y+(h-size*scene.LineHeightFactor)/2, w, size)
	t.Fill = st.color
	t.FontFamily = st.family
	if st.bold {
		t.FontWeight = "bold"
	}
	if st.align.IsValid() {
		t.TextAlign = st.align
	}
	return t
}

// appendNonNil adds objects skipping nils.
func appendNonNil(dst []*scene.Object, objs ...*scene.Object) []*scene.Object {
	for _, o := range objs {
		if o != nil {
			dst = append(dst, o)
		}
	}
	return dst
}
