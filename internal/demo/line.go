package demo

import (
	"log/slog"

	"github.com/inamate/sketchpad/internal/coords"
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
	"github.com/inamate/sketchpad/internal/render"
	"github.com/inamate/sketchpad/internal/shape"
	"github.com/inamate/sketchpad/internal/typeid"
)

const (
	circleRadiusRatio = 0.25
	markerRadius      = 10.0
)

// LineProgram draws a circle and a thick gradient line rotating about the
// frame centre. The line can be dragged by its body or resized from its
// corners while it rotates.
type LineProgram struct {
	Line *shape.LineShape

	id      string
	pressed bool // a press has been seen; the marker is drawn at Line.Anchor
}

// NewLineProgram returns the program with the default line.
func NewLineProgram() *LineProgram {
	return &LineProgram{
		Line: shape.NewLineShape(),
		id:   typeid.NewShapeID(),
	}
}

// ShapeID identifies the line in draw commands.
func (p *LineProgram) ShapeID() string {
	return p.id
}

func (p *LineProgram) OnEvent(ev input.Event, bounds geom.Rect, cursor input.Cursor, angle float64) (bool, *input.Message) {
	pos, ok := cursor.PositionIn(bounds)
	if !ok {
		return false, nil
	}
	rel := coords.ScreenToShapeSpace(pos, bounds, angle)

	switch {
	case ev.IsPrimaryPress():
		p.pressed = true
		hit := p.Line.Press(rel)
		slog.Debug("line press", "at", rel, "mode", p.Line.Mode.String())
		return hit, nil
	case ev.IsPrimaryRelease():
		was := p.Line.Release()
		if was {
			slog.Debug("line release", "start", p.Line.Start, "end", p.Line.End, "width", p.Line.Width)
		}
		return was, nil
	case ev.Kind == input.KindCursorMoved:
		return p.Line.Move(rel), nil
	}
	return false, nil
}

func (p *LineProgram) Render(extent geom.Size, angle float64) []render.DrawCommand {
	center := extent.Center()
	frameMin := extent.Min()

	start := coords.RelToAbsPoint(p.Line.Start, extent)
	end := coords.RelToAbsPoint(p.Line.End, extent)
	rs, re := geom.RotateLine(start, end, center, angle)

	width := frameMin * p.Line.Width
	cmds := []render.DrawCommand{
		background(extent, backgroundColor),
		render.FillCircle(center, frameMin*circleRadiusRatio, render.Solid(circleColor)),
		render.StrokeLine(rs, re, width, rainbow(extent)).WithObjectID(p.id),
		// unrotated copy of the line, the space hit tests run in
		render.StrokeLine(start, end, width, render.Solid(guideColor)),
	}
	if p.pressed {
		// the marker sits where the press landed in shape space, so it
		// lines up with the unrotated guide
		marker := coords.RelToAbsPoint(p.Line.Anchor, extent)
		cmds = append(cmds, render.FillCircle(marker, markerRadius, render.Solid(markerColor)))
	}
	return cmds
}
