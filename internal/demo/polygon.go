package demo

import (
	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
	"github.com/inamate/sketchpad/internal/polygon"
	"github.com/inamate/sketchpad/internal/render"
)

const polygonRadiusRatio = 1.0 / 3

// PolygonProgram draws a rotating regular polygon. Scrolling adds or
// removes edges within polygon.MinEdges..polygon.MaxEdges.
type PolygonProgram struct {
	Style polygon.Style
}

func NewPolygonProgram() *PolygonProgram {
	return &PolygonProgram{Style: polygon.DefaultStyle()}
}

func (p *PolygonProgram) OnEvent(ev input.Event, bounds geom.Rect, cursor input.Cursor, _ float64) (bool, *input.Message) {
	if _, ok := cursor.PositionIn(bounds); !ok || ev.Kind != input.KindWheelScrolled {
		return false, nil
	}

	edges := p.Style.Edges
	switch {
	case ev.WheelDelta > 0:
		edges++
	case ev.WheelDelta < 0:
		edges--
	}
	edges = min(max(edges, polygon.MinEdges), polygon.MaxEdges)
	if edges == p.Style.Edges {
		return false, nil
	}
	p.Style.Edges = edges
	return true, nil
}

func (p *PolygonProgram) Render(extent geom.Size, angle float64) []render.DrawCommand {
	center := extent.Center()
	pts := polygon.Vertices(center, extent.Min()*polygonRadiusRatio, p.Style.Edges)
	for i := range pts {
		pts[i] = geom.RotatePoint(pts[i], center, angle)
	}

	fill, stroke := p.Style.RGB()
	return []render.DrawCommand{
		background(extent, canvasColor),
		render.FillPolygon(pts, render.Solid(render.RGBA(fill[0], fill[1], fill[2], polygon.FillAlpha()))),
		render.StrokePolygon(pts, 2, render.Solid(render.RGB(stroke[0], stroke[1], stroke[2]))),
	}
}
