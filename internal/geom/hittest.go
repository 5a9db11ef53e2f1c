package geom

import (
	"errors"
	"math"
)

const (
	// HorizontalEpsilon is how far apart the endpoint y values may be for a
	// segment to still count as horizontal.
	HorizontalEpsilon = 0.001

	// CornerTolerance is the per-axis grab distance for corner handles, in
	// relative units.
	CornerTolerance = 0.01
)

// Corner indices of a thick horizontal line.
const (
	CornerUpperLeft = iota
	CornerUpperRight
	CornerLowerRight
	CornerLowerLeft
)

// ErrNotHorizontal is returned by CheckHorizontal for a sloped segment.
var ErrNotHorizontal = errors.New("geom: only horizontal lines are supported")

// CheckHorizontal reports ErrNotHorizontal when the endpoints differ in y by
// more than HorizontalEpsilon.
func CheckHorizontal(start, end Point) error {
	if math.Abs(start.Y-end.Y) > HorizontalEpsilon {
		return ErrNotHorizontal
	}
	return nil
}

// IsPointOnHorizontalLine reports whether pt lies within the x span of the
// segment and within tolerance of its y span. Both bounds are inclusive.
//
// Only horizontal segments give correct answers. A sloped segment is logged
// and tested against its bounding band anyway.
func IsPointOnHorizontalLine(pt, start, end Point, tolerance float64) bool {
	if err := CheckHorizontal(start, end); err != nil {
		Logger().Warn("hit test on non-horizontal line",
			"error", err, "startY", start.Y, "endY", end.Y)
	}

	if pt.X < min(start.X, end.X) || pt.X > max(start.X, end.X) {
		return false
	}
	if pt.Y < min(start.Y, end.Y)-tolerance || pt.Y > max(start.Y, end.Y)+tolerance {
		return false
	}
	return true
}

// LineCorners returns the four handle positions of a thick line, offset by
// half the width vertically from each endpoint, in corner index order.
func LineCorners(start, end Point, width float64) [4]Point {
	half := width / 2
	return [4]Point{
		{X: start.X, Y: start.Y - half}, // upper left
		{X: end.X, Y: end.Y - half},     // upper right
		{X: end.X, Y: end.Y + half},     // lower right
		{X: start.X, Y: start.Y + half}, // lower left
	}
}

// IsPointOnLineCorner returns the index of the first corner handle within
// CornerTolerance of pt.
func IsPointOnLineCorner(pt, start, end Point, width float64) (int, bool) {
	for i, c := range LineCorners(start, end, width) {
		if math.Abs(pt.X-c.X) <= CornerTolerance && math.Abs(pt.Y-c.Y) <= CornerTolerance {
			return i, true
		}
	}
	return -1, false
}
