// Package coords maps points between the relative space shapes are stored
// in, the absolute pixel space of a render surface, and the panned and
// zoomed scene space of the canvas demo.
package coords

import "github.com/inamate/sketchpad/internal/geom"

// RelToAbsPoint scales a relative point by the frame extent.
func RelToAbsPoint(p geom.Point, extent geom.Size) geom.Point {
	return geom.Point{X: p.X * extent.Width, Y: p.Y * extent.Height}
}

// RelToAbsRect scales a relative rect by the frame extent.
func RelToAbsRect(r geom.Rect, extent geom.Size) geom.Rect {
	return geom.Rect{
		X:      r.X * extent.Width,
		Y:      r.Y * extent.Height,
		Width:  r.Width * extent.Width,
		Height: r.Height * extent.Height,
	}
}

// AbsToRelPoint divides an absolute point by the frame extent. A zero
// extent yields the zero point.
func AbsToRelPoint(p geom.Point, extent geom.Size) geom.Point {
	if extent.Width == 0 || extent.Height == 0 {
		return geom.Point{}
	}
	return geom.Point{X: p.X / extent.Width, Y: p.Y / extent.Height}
}

// ScreenToShapeSpace undoes the visual rotation of a shape drawn rotated by
// angle degrees about the frame centre, then normalises the result to
// relative units. cursor is relative to the frame origin.
//
// Hit tests and drags must run on the result of this call, not on the raw
// cursor, or they disagree with what is on screen whenever angle != 0.
func ScreenToShapeSpace(cursor geom.Point, bounds geom.Rect, angle float64) geom.Point {
	center := geom.Point{X: bounds.Width / 2, Y: bounds.Height / 2}
	unrotated := geom.RotatePoint(cursor, center, -angle)
	return AbsToRelPoint(unrotated, bounds.Size())
}

// ShapeToScreen is the inverse of ScreenToShapeSpace.
func ShapeToScreen(rel geom.Point, bounds geom.Rect, angle float64) geom.Point {
	center := geom.Point{X: bounds.Width / 2, Y: bounds.Height / 2}
	abs := RelToAbsPoint(rel, bounds.Size())
	return geom.RotatePoint(abs, center, angle)
}

// ScreenToScene maps a cursor position through the inverse of a view
// transform.
func ScreenToScene(cursor geom.Point, view geom.Matrix2D) geom.Point {
	return view.Invert().TransformPoint(cursor)
}

// SceneToScreen maps a scene point through a view transform.
func SceneToScreen(p geom.Point, view geom.Matrix2D) geom.Point {
	return view.TransformPoint(p)
}
