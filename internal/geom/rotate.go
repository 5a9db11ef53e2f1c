package geom

import "math"

// RotatePoint rotates p around center by angle degrees. With the y axis
// pointing down a positive angle turns clockwise on screen.
func RotatePoint(p, center Point, degrees float64) Point {
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)

	dx := p.X - center.X
	dy := p.Y - center.Y

	return Point{
		X: dx*cos - dy*sin + center.X,
		Y: dx*sin + dy*cos + center.Y,
	}
}

// RotateLine rotates both endpoints of a segment around center.
func RotateLine(start, end, center Point, degrees float64) (Point, Point) {
	return RotatePoint(start, center, degrees), RotatePoint(end, center, degrees)
}

// RotateRectangleCorners builds the axis-aligned rectangle of the given size
// centred on center and rotates its corners. The result is ordered top-left,
// top-right, bottom-right, bottom-left as seen before rotation.
func RotateRectangleCorners(center Point, width, height, degrees float64) [4]Point {
	hw := width / 2
	hh := height / 2

	corners := [4]Point{
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y + hh},
	}
	for i := range corners {
		corners[i] = RotatePoint(corners[i], center, degrees)
	}
	return corners
}

// RotateRectangle rotates the corners of r around an arbitrary center.
// Ordering matches RotateRectangleCorners.
func RotateRectangle(r Rect, center Point, degrees float64) [4]Point {
	corners := [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}
	for i := range corners {
		corners[i] = RotatePoint(corners[i], center, degrees)
	}
	return corners
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}
