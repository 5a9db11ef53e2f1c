package demo

import (
	"github.com/inamate/sketchpad/internal/coords"
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
	"github.com/inamate/sketchpad/internal/panzoom"
	"github.com/inamate/sketchpad/internal/render"
	"github.com/inamate/sketchpad/internal/shape"
	"github.com/inamate/sketchpad/internal/typeid"
)

// CanvasProgram is a pannable, zoomable scene holding one draggable
// rectangle. The rectangle sees each event first; the view takes whatever
// it leaves.
type CanvasProgram struct {
	Rect *shape.RectShape
	View *panzoom.State

	id string
}

// NewCanvasProgram returns the canvas with the default rectangle.
func NewCanvasProgram() *CanvasProgram {
	return &CanvasProgram{
		Rect: shape.NewRectShape(),
		View: panzoom.New(),
		id:   typeid.NewShapeID(),
	}
}

func (p *CanvasProgram) OnEvent(ev input.Event, bounds geom.Rect, cursor input.Cursor, _ float64) (bool, *input.Message) {
	pos, ok := cursor.PositionIn(bounds)
	if !ok {
		return false, nil
	}

	var msg *input.Message
	if ev.Kind == input.KindCursorMoved {
		msg = &input.Message{Kind: input.MessageCursorMoved, Position: pos}
	}

	if p.handleRect(ev, coords.ScreenToScene(pos, p.View.View())) {
		return true, msg
	}
	return p.View.Handle(ev, pos), msg
}

func (p *CanvasProgram) handleRect(ev input.Event, scene geom.Point) bool {
	switch {
	case ev.IsPrimaryPress():
		return p.Rect.Press(scene)
	case ev.IsPrimaryRelease():
		return p.Rect.Release(scene)
	case ev.Kind == input.KindCursorMoved:
		return p.Rect.Move(scene)
	}
	return false
}

func (p *CanvasProgram) Render(extent geom.Size, _ float64) []render.DrawCommand {
	rect := render.FillRect(p.Rect.Rect, render.Solid(p.Rect.Fill)).
		WithTransform(p.View.View()).
		WithObjectID(p.id)
	return []render.DrawCommand{background(extent, canvasColor), rect}
}
