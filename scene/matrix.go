package scene

import "math"

// Matrix is a 2D affine transform in canvas order [a b c d e f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix [6]float64

// Identity is the neutral transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

func Translate(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Rotate returns rotation by angle given in degrees.
func Rotate(deg float64) Matrix {
	if deg == 0 {
		return Identity
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Mul returns m × n, n is applied first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Invert returns inverse transform. Singular matrices invert to Identity.
func (m Matrix) Invert() Matrix {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return Identity
	}
	inv := 1 / det
	return Matrix{
		m[3] * inv,
		-m[1] * inv,
		-m[2] * inv,
		m[0] * inv,
		(m[2]*m[5] - m[3]*m[4]) * inv,
		(m[1]*m[4] - m[0]*m[5]) * inv,
	}
}

func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Decomposed is a transform split into its translation, rotation and scale
// parts. Skew is not represented.
type Decomposed struct {
	TranslateX, TranslateY float64
	Angle                  float64
	ScaleX, ScaleY         float64
}

// Decompose performs QR decomposition of the linear part.
func (m Matrix) Decompose() Decomposed {
	angle := math.Atan2(m[1], m[0])
	denom := m[0]*m[0] + m[1]*m[1]
	scaleX := math.Sqrt(denom)
	var scaleY float64
	if scaleX != 0 {
		scaleY = (m[0]*m[3] - m[2]*m[1]) / scaleX
	}
	return Decomposed{
		TranslateX: m[4],
		TranslateY: m[5],
		Angle:      angle * 180 / math.Pi,
		ScaleX:     scaleX,
		ScaleY:     scaleY,
	}
}
