// Package input is the host-neutral event model fed to drawing programs.
package input

import "github.com/inamate/sketchpad/internal/geom"

// Kind identifies an input event.
type Kind string

const (
	KindButtonPressed  Kind = "press"
	KindButtonReleased Kind = "release"
	KindCursorMoved    Kind = "move"
	KindWheelScrolled  Kind = "wheel"
)

// Button is a mouse button.
type Button string

const (
	ButtonNone   Button = ""
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonMiddle Button = "middle"
)

// Event is one mouse event as delivered by a host.
type Event struct {
	Kind   Kind   `json:"kind"`
	Button Button `json:"button,omitempty"`
	// WheelDelta is the vertical scroll amount; positive scrolls forward.
	WheelDelta float64 `json:"wheelDelta,omitempty"`
}

// Press returns a button-press event.
func Press(b Button) Event { return Event{Kind: KindButtonPressed, Button: b} }

// Release returns a button-release event.
func Release(b Button) Event { return Event{Kind: KindButtonReleased, Button: b} }

// Move returns a cursor-move event.
func Move() Event { return Event{Kind: KindCursorMoved} }

// Wheel returns a scroll event.
func Wheel(delta float64) Event { return Event{Kind: KindWheelScrolled, WheelDelta: delta} }

// IsPrimaryPress reports whether e is a left-button press.
func (e Event) IsPrimaryPress() bool {
	return e.Kind == KindButtonPressed && e.Button == ButtonLeft
}

// IsPrimaryRelease reports whether e is a left-button release.
func (e Event) IsPrimaryRelease() bool {
	return e.Kind == KindButtonReleased && e.Button == ButtonLeft
}

// Cursor is the pointer position in window coordinates. Available is false
// when the host has no position (pointer outside the window).
type Cursor struct {
	Position  geom.Point `json:"position"`
	Available bool       `json:"available"`
}

// At returns an available cursor at p.
func At(p geom.Point) Cursor {
	return Cursor{Position: p, Available: true}
}

// PositionIn returns the cursor position relative to the bounds origin, or
// false when the cursor is unavailable or outside bounds.
func (c Cursor) PositionIn(bounds geom.Rect) (geom.Point, bool) {
	if !c.Available || !bounds.Contains(c.Position) {
		return geom.Point{}, false
	}
	return c.Position.Sub(bounds.Origin()), true
}

// MessageKind identifies a message a program hands back to its host.
type MessageKind string

const (
	MessageCursorMoved MessageKind = "cursorMoved"
)

// Message is an optional result of event handling for the host to act on.
type Message struct {
	Kind     MessageKind `json:"kind"`
	Position geom.Point  `json:"position"`
}
