package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
)

// Each terminal cell shows two pixel rows, so the frame is twice as tall in
// pixels as it is in cells.
const pixelsPerRow = 2

// CellToPixel returns the pixel at the centre of a cell.
func CellToPixel(x, y int) geom.Point {
	return geom.Pt(float64(x)+0.5, float64(y*pixelsPerRow)+1)
}

// MouseEvent translates a terminal mouse message into an engine event and
// cursor. It reports false for messages with no engine equivalent.
func MouseEvent(msg tea.MouseMsg) (input.Event, input.Cursor, bool) {
	cursor := input.At(CellToPixel(msg.X, msg.Y))

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return input.Wheel(1), cursor, true
		case tea.MouseButtonWheelDown:
			return input.Wheel(-1), cursor, true
		}
		b, ok := button(msg.Button)
		if !ok {
			return input.Event{}, input.Cursor{}, false
		}
		return input.Press(b), cursor, true

	case tea.MouseActionRelease:
		// Legacy mouse encodings do not say which button was released.
		if msg.Button == tea.MouseButtonNone {
			return input.Release(input.ButtonLeft), cursor, true
		}
		b, ok := button(msg.Button)
		if !ok {
			return input.Event{}, input.Cursor{}, false
		}
		return input.Release(b), cursor, true

	case tea.MouseActionMotion:
		return input.Move(), cursor, true
	}
	return input.Event{}, input.Cursor{}, false
}

func button(b tea.MouseButton) (input.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonLeft, true
	case tea.MouseButtonRight:
		return input.ButtonRight, true
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle, true
	}
	return input.ButtonNone, false
}
