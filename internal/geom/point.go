package geom

import "math"

// Point is a 2D coordinate. Whether it holds relative (fraction of frame)
// or absolute pixel units depends on where it came from; nothing tags it.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector is a displacement between two points.
type Vector = Point

// Size is a frame extent in absolute pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Pt creates a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales p by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Min returns the smaller of the two extents.
func (s Size) Min() float64 {
	return min(s.Width, s.Height)
}

// Center returns the centre of a frame of this size anchored at the origin.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}
