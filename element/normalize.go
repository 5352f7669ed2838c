package element

import (
	"math"

	"plancanvas/colors"
	"plancanvas/scene"
)

func clampf(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

func clampi(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// positive replaces non-positive (or NaN) values with def.
func positive(v, def float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return def
	}
	return v
}

// nonNegative replaces negative (or NaN) values with zero.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// color keeps parseable CSS color or falls back to def.
func color(v, def string) string {
	return colors.Or(v, def)
}

type validator interface{ IsValid() bool }

func enum[E validator](v, def E) E {
	if v.IsValid() {
		return v
	}
	return def
}

func normalizeSize(s scene.Size) scene.Size {
	return scene.Size{Width: nonNegative(s.Width), Height: nonNegative(s.Height)}
}
