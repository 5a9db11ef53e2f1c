// Package panzoom tracks the view transform of a canvas: a translation that
// follows pointer drags and a scale driven by the scroll wheel.
package panzoom

import (
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
)

const (
	MinScale = 0.1
	MaxScale = 10.0

	zoomIn  = 1.1
	zoomOut = 0.9
)

// State is the view transform plus the in-flight pan gesture.
type State struct {
	Translation geom.Vector
	Scale       float64

	// dragStart is the screen position of the last pan step; nil when idle.
	dragStart *geom.Point
}

// New returns an untranslated view at scale 1.
func New() *State {
	return &State{Scale: 1}
}

// Panning reports whether a pan gesture is active.
func (s *State) Panning() bool {
	return s.dragStart != nil
}

// View returns the transform from scene to screen space:
// Translate(translation) * Scale(scale).
func (s *State) View() geom.Matrix2D {
	return geom.Translate(s.Translation.X, s.Translation.Y).
		Multiply(geom.Scale(s.Scale, s.Scale))
}

// Handle applies an event at the given cursor position (frame relative).
// It reports whether the event was consumed.
func (s *State) Handle(ev input.Event, cursor geom.Point) bool {
	switch ev.Kind {
	case input.KindButtonPressed:
		if ev.Button != input.ButtonLeft {
			return false
		}
		p := cursor
		s.dragStart = &p
		return true

	case input.KindButtonReleased:
		if ev.Button != input.ButtonLeft {
			return false
		}
		s.dragStart = nil
		return true

	case input.KindCursorMoved:
		if s.dragStart == nil {
			return false
		}
		delta := cursor.Sub(*s.dragStart)
		s.Translation = s.Translation.Add(delta)
		p := cursor
		s.dragStart = &p
		return true

	case input.KindWheelScrolled:
		return s.zoom(ev.WheelDelta, cursor)
	}
	return false
}

// zoom scales the view about cursor so the scene point under it stays put.
func (s *State) zoom(delta float64, cursor geom.Point) bool {
	if delta == 0 {
		return false
	}
	factor := zoomOut
	if delta > 0 {
		factor = zoomIn
	}
	newScale := min(max(s.Scale*factor, MinScale), MaxScale)
	if newScale == s.Scale {
		return false
	}

	ratio := newScale / s.Scale
	s.Translation = cursor.Add(s.Translation.Sub(cursor).Mul(ratio))
	s.Scale = newScale
	return true
}
