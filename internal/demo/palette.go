package demo

import (
	"slices"

	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/render"
)

var (
	backgroundColor = render.RGB(0, 0.2, 0.4)
	circleColor     = render.RGB(0.6, 0.8, 1.0)
	guideColor      = render.RGB(0, 0, 0)
	markerColor     = render.RGB(1, 0, 0)
	canvasColor     = "#1a1a2e"
)

// rainbowStops run red through green to blue with short bands around the
// middle.
var rainbowStops = []render.ColorStop{
	{Offset: 0, Color: render.RGB(1, 0, 0)},
	{Offset: 0.3, Color: render.RGB(0.9, 0.05, 0)},
	{Offset: 0.47, Color: render.RGB(0.75, 0.75, 0)},
	{Offset: 0.5, Color: render.RGB(0, 1, 0)},
	{Offset: 0.53, Color: render.RGB(0, 0.75, 0.75)},
	{Offset: 0.7, Color: render.RGB(0, 0.05, 0.75)},
	{Offset: 1, Color: render.RGB(0, 0, 1)},
}

// rainbow spans the whole frame diagonally.
func rainbow(extent geom.Size) render.Paint {
	return render.Paint{Gradient: &render.LinearGradient{
		Start: geom.Point{},
		End:   geom.Pt(extent.Width, extent.Height),
		Stops: slices.Clone(rainbowStops),
	}}
}

func background(extent geom.Size, color string) render.DrawCommand {
	return render.FillRect(geom.RectFromSize(extent), render.Solid(color))
}
