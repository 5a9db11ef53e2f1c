package shape

import "github.com/inamate/sketchpad/internal/geom"

// RectShape is an axis-aligned rectangle in absolute scene units that can be
// dragged by its body.
type RectShape struct {
	Rect geom.Rect
	Fill string

	dragging bool
	offset   geom.Vector // cursor minus rect origin at press time
}

// NewRectShape returns the default 100x50 rectangle at (100, 50).
func NewRectShape() *RectShape {
	return &RectShape{
		Rect: geom.Rect{X: 100, Y: 50, Width: 100, Height: 50},
		Fill: "#008080",
	}
}

// Dragging reports whether a drag is in progress.
func (r *RectShape) Dragging() bool {
	return r.dragging
}

// Press starts a drag if p lies inside the rectangle.
func (r *RectShape) Press(p geom.Point) bool {
	if !r.Rect.Contains(p) {
		return false
	}
	r.dragging = true
	r.offset = p.Sub(r.Rect.Origin())
	return true
}

// Move repositions the rectangle under p while dragging.
func (r *RectShape) Move(p geom.Point) bool {
	if !r.dragging {
		return false
	}
	r.moveTo(p)
	return true
}

// Release applies the final position and ends the drag.
func (r *RectShape) Release(p geom.Point) bool {
	if !r.dragging {
		return false
	}
	r.moveTo(p)
	r.dragging = false
	r.offset = geom.Vector{}
	return true
}

func (r *RectShape) moveTo(p geom.Point) {
	origin := p.Sub(r.offset)
	r.Rect.X = origin.X
	r.Rect.Y = origin.Y
}
