// Package demo holds the interactive drawing programs a host can run. Each
// program owns its shapes and interaction state; the rotation angle and the
// frame bounds are passed in on every call.
package demo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
	"github.com/inamate/sketchpad/internal/render"
)

// ErrUnknownProgram is returned by New for names it does not know.
var ErrUnknownProgram = errors.New("unknown program")

// Program is one interactive scene.
type Program interface {
	// OnEvent handles ev with the cursor in window coordinates and the frame
	// occupying bounds. It reports whether the event was consumed and may
	// return a message for the host. A cursor outside bounds yields
	// (false, nil).
	OnEvent(ev input.Event, bounds geom.Rect, cursor input.Cursor, angle float64) (bool, *input.Message)

	// Render returns draw commands for a frame of the given extent. It does
	// not change program state.
	Render(extent geom.Size, angle float64) []render.DrawCommand
}

const (
	NameLine    = "line"
	NameCanvas  = "canvas"
	NameRotor   = "rotor"
	NamePolygon = "polygon"
)

var constructors = map[string]func() Program{
	NameLine:    func() Program { return NewLineProgram() },
	NameCanvas:  func() Program { return NewCanvasProgram() },
	NameRotor:   func() Program { return NewRotorProgram() },
	NamePolygon: func() Program { return NewPolygonProgram() },
}

// New returns a fresh program by name.
func New(name string) (Program, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProgram, name)
	}
	return ctor(), nil
}

// Names lists the registered programs in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
