// Package raster turns draw commands into pixels using the gg software
// renderer.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/render"
)

// Draw executes commands on dc in order.
func Draw(dc *gg.Context, commands []render.DrawCommand) error {
	for i, cmd := range commands {
		if err := drawOne(dc, cmd); err != nil {
			return fmt.Errorf("draw command %d (%s %s): %w", i, cmd.Op, cmd.Shape, err)
		}
	}
	return nil
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	return nil
}

// Image renders commands onto a fresh width x height surface.
func Image(width, height int, commands []render.DrawCommand) (image.Image, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()

	if err := Draw(dc, commands); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders commands and writes the result as PNG.
func EncodePNG(w io.Writer, width, height int, commands []render.DrawCommand) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()

	if err := Draw(dc, commands); err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawOne(dc *gg.Context, cmd render.DrawCommand) error {
	dc.Push()
	defer dc.Pop()

	dc.SetTransform(toGG(cmd.Matrix()))
	dc.ClearPath()

	switch cmd.Shape {
	case render.ShapeRect:
		if cmd.Rect == nil {
			return fmt.Errorf("rect shape without rect")
		}
		dc.DrawRectangle(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.Width, cmd.Rect.Height)
	case render.ShapeCircle:
		dc.DrawCircle(cmd.Center.X, cmd.Center.Y, cmd.Radius)
	case render.ShapeLine:
		if len(cmd.Points) != 2 {
			return fmt.Errorf("line needs 2 points, got %d", len(cmd.Points))
		}
		dc.DrawLine(cmd.Points[0].X, cmd.Points[0].Y, cmd.Points[1].X, cmd.Points[1].Y)
	case render.ShapePath:
		if len(cmd.Points) < 3 {
			return fmt.Errorf("path needs at least 3 points, got %d", len(cmd.Points))
		}
		dc.MoveTo(cmd.Points[0].X, cmd.Points[0].Y)
		for _, p := range cmd.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	default:
		return fmt.Errorf("unknown shape %q", cmd.Shape)
	}

	brush := toBrush(cmd.Paint)
	switch cmd.Op {
	case render.OpFill:
		dc.SetFillBrush(brush)
		return dc.Fill()
	case render.OpStroke:
		dc.SetStrokeBrush(brush)
		dc.SetLineWidth(cmd.StrokeWidth)
		dc.SetLineCap(gg.LineCapButt)
		return dc.Stroke()
	default:
		return fmt.Errorf("unknown op %q", cmd.Op)
	}
}

func toBrush(p render.Paint) gg.Brush {
	if g := p.Gradient; g != nil {
		lg := gg.NewLinearGradientBrush(g.Start.X, g.Start.Y, g.End.X, g.End.Y)
		for _, s := range g.Stops {
			lg.AddColorStop(s.Offset, gg.Hex(s.Color))
		}
		return lg
	}
	if p.Color == "" {
		return gg.Solid(gg.Black)
	}
	return gg.Solid(gg.Hex(p.Color))
}

// toGG converts the column layout of Matrix2D to gg's row layout.
func toGG(m geom.Matrix2D) gg.Matrix {
	return gg.Matrix{
		A: m[0], B: m[2], C: m[4],
		D: m[1], E: m[3], F: m[5],
	}
}
