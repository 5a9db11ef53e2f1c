package demo

import (
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
	"github.com/inamate/sketchpad/internal/render"
)

// RotorProgram spins a gradient bar over a circle. It takes no input.
type RotorProgram struct{}

func NewRotorProgram() *RotorProgram {
	return &RotorProgram{}
}

func (*RotorProgram) OnEvent(input.Event, geom.Rect, input.Cursor, float64) (bool, *input.Message) {
	return false, nil
}

func (*RotorProgram) Render(extent geom.Size, angle float64) []render.DrawCommand {
	center := extent.Center()
	frameMin := extent.Min()
	corners := geom.RotateRectangleCorners(center, frameMin*0.8, frameMin*0.2, angle)

	return []render.DrawCommand{
		background(extent, backgroundColor),
		render.FillCircle(center, frameMin*circleRadiusRatio, render.Solid(circleColor)),
		render.FillPolygon(corners[:], rainbow(extent)),
	}
}
