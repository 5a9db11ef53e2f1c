package geom

import "math"

// Matrix2D is an affine transform stored column-major as [a b c d e f]:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// It is the layout canvas setTransform and gg.Matrix both accept.
type Matrix2D [6]float64

func Identity() Matrix2D { return Matrix2D{1, 0, 0, 1, 0, 0} }

func Translate(tx, ty float64) Matrix2D { return Matrix2D{1, 0, 0, 1, tx, ty} }

func Scale(sx, sy float64) Matrix2D { return Matrix2D{sx, 0, 0, sy, 0, 0} }

// RotateDegrees turns clockwise on screen for positive angles, matching
// RotatePoint.
func RotateDegrees(degrees float64) Matrix2D {
	sin, cos := math.Sincos(degrees * math.Pi / 180.0)
	return Matrix2D{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout rotates by degrees around center.
func RotateAbout(center Point, degrees float64) Matrix2D {
	return Translate(center.X, center.Y).
		Multiply(RotateDegrees(degrees)).
		Multiply(Translate(-center.X, -center.Y))
}

// Multiply returns m * n, the transform that applies n and then m.
func (m Matrix2D) Multiply(n Matrix2D) Matrix2D {
	return Matrix2D{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

func (m Matrix2D) TransformPoint(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Invert returns the inverse transform. A singular matrix (zero scale) has
// none; Identity is returned instead so screen to scene mapping degrades to
// a no-op.
func (m Matrix2D) Invert() Matrix2D {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return Identity()
	}
	inv := 1.0 / det
	return Matrix2D{
		m[3] * inv,
		-m[1] * inv,
		-m[2] * inv,
		m[0] * inv,
		(m[2]*m[5] - m[3]*m[4]) * inv,
		(m[1]*m[4] - m[0]*m[5]) * inv,
	}
}

// ToSlice copies the matrix into a slice for JSON.
func (m Matrix2D) ToSlice() []float64 {
	return m[:]
}

// IsIdentity reports whether m is the identity within 1e-10.
func (m Matrix2D) IsIdentity() bool {
	id := Identity()
	for i := range m {
		if math.Abs(m[i]-id[i]) >= 1e-10 {
			return false
		}
	}
	return true
}
