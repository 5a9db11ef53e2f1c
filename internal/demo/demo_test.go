package demo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/sketchpad/internal/geom"
	"github.com/inamate/sketchpad/internal/input"
	"github.com/inamate/sketchpad/internal/polygon"
	"github.com/inamate/sketchpad/internal/render"
	"github.com/inamate/sketchpad/internal/shape"
	"github.com/inamate/sketchpad/internal/typeid"
)

func assertPointInDelta(t *testing.T, want, got geom.Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestNew(t *testing.T) {
	for _, name := range Names() {
		p, err := New(name)
		require.NoError(t, err, name)
		assert.NotNil(t, p)
	}
	assert.Equal(t, []string{"canvas", "line", "polygon", "rotor"}, Names())

	_, err := New("spiral")
	assert.True(t, errors.Is(err, ErrUnknownProgram))
}

func TestLineProgramCursorOutsideBounds(t *testing.T) {
	p := NewLineProgram()
	bounds := geom.Rect{X: 10, Y: 10, Width: 200, Height: 100}

	consumed, msg := p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(5, 5)), 0)
	assert.False(t, consumed)
	assert.Nil(t, msg)

	consumed, _ = p.OnEvent(input.Press(input.ButtonLeft), bounds, input.Cursor{}, 0)
	assert.False(t, consumed)
	assert.True(t, p.Line.Mode.Idle())
}

func TestLineProgramBodyDrag(t *testing.T) {
	p := NewLineProgram()
	bounds := geom.Rect{X: 10, Y: 10, Width: 200, Height: 100}

	consumed, _ := p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(110, 50)), 0)
	require.True(t, consumed)
	assert.Equal(t, shape.DraggingLine, p.Line.Mode.Kind)

	consumed, _ = p.OnEvent(input.Move(), bounds, input.At(geom.Pt(130, 60)), 0)
	assert.True(t, consumed)
	assertPointInDelta(t, geom.Pt(0.2, 0.5), p.Line.Start)
	assertPointInDelta(t, geom.Pt(1.0, 0.5), p.Line.End)

	consumed, _ = p.OnEvent(input.Release(input.ButtonLeft), bounds, input.At(geom.Pt(130, 60)), 0)
	assert.True(t, consumed)
	assert.True(t, p.Line.Mode.Idle())

	consumed, _ = p.OnEvent(input.Move(), bounds, input.At(geom.Pt(150, 60)), 0)
	assert.False(t, consumed)
}

func TestLineProgramHitTestFollowsRotation(t *testing.T) {
	bounds := geom.Rect{Width: 200, Height: 200}

	// The line centre (100, 80) appears at (120, 100) after a quarter turn.
	p := NewLineProgram()
	consumed, _ := p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(120, 100)), 90)
	assert.True(t, consumed)
	assert.Equal(t, shape.DraggingLine, p.Line.Mode.Kind)

	// Where the line would be without rotation is empty space.
	p = NewLineProgram()
	consumed, _ = p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(150, 80)), 90)
	assert.False(t, consumed)
	assert.True(t, p.Line.Mode.Idle())
}

func TestLineProgramIgnoresOtherButtons(t *testing.T) {
	p := NewLineProgram()
	bounds := geom.Rect{Width: 200, Height: 100}
	consumed, _ := p.OnEvent(input.Press(input.ButtonRight), bounds, input.At(geom.Pt(100, 40)), 0)
	assert.False(t, consumed)
	consumed, _ = p.OnEvent(input.Wheel(1), bounds, input.At(geom.Pt(100, 40)), 0)
	assert.False(t, consumed)
}

func TestLineProgramRender(t *testing.T) {
	p := NewLineProgram()
	extent := geom.Size{Width: 200, Height: 100}

	cmds := p.Render(extent, 0)
	require.Len(t, cmds, 4)
	assert.Equal(t, cmds, p.Render(extent, 0), "render is repeatable")

	line := cmds[2]
	assert.Equal(t, render.ShapeLine, line.Shape)
	assert.Equal(t, p.ShapeID(), line.ObjectID)
	assert.True(t, typeid.Is(line.ObjectID, typeid.PrefixShape))
	assert.InDelta(t, 20, line.StrokeWidth, 1e-9)
	require.NotNil(t, line.Paint.Gradient)
	assert.Len(t, line.Paint.Gradient.Stops, 7)
	assertPointInDelta(t, geom.Pt(20, 40), line.Points[0])
	assertPointInDelta(t, geom.Pt(180, 40), line.Points[1])

	circle := cmds[1]
	assert.Equal(t, render.ShapeCircle, circle.Shape)
	assert.InDelta(t, 25, circle.Radius, 1e-9)

	rotated := p.Render(extent, 180)[2]
	assertPointInDelta(t, geom.Pt(180, 60), rotated.Points[0])
	assertPointInDelta(t, geom.Pt(20, 60), rotated.Points[1])
}

func TestLineProgramMarker(t *testing.T) {
	p := NewLineProgram()
	bounds := geom.Rect{Width: 200, Height: 100}
	p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(10, 90)), 0)

	cmds := p.Render(bounds.Size(), 0)
	require.Len(t, cmds, 5)
	marker := cmds[4]
	assert.Equal(t, render.ShapeCircle, marker.Shape)
	assert.Equal(t, markerRadius, marker.Radius)
	assert.Equal(t, "#ff0000", marker.Paint.Color)
	assertPointInDelta(t, geom.Pt(10, 90), marker.Center)

	guide := cmds[3]
	assert.Equal(t, "#000000", guide.Paint.Color)
	assert.InDelta(t, 20, guide.StrokeWidth, 1e-9, "guide is as thick as the line")
	assertPointInDelta(t, geom.Pt(20, 40), guide.Points[0])
}

func TestLineProgramMarkerStaysInShapeSpace(t *testing.T) {
	p := NewLineProgram()
	bounds := geom.Rect{Width: 200, Height: 100}
	// at 180 degrees the screen point (190, 10) unrotates to (10, 90)
	p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(190, 10)), 180)

	cmds := p.Render(bounds.Size(), 180)
	require.Len(t, cmds, 5)
	assertPointInDelta(t, geom.Pt(10, 90), cmds[4].Center)
	assertPointInDelta(t, geom.Pt(20, 40), cmds[3].Points[0])
}

func TestCanvasProgramRectFirst(t *testing.T) {
	p := NewCanvasProgram()
	bounds := geom.Rect{Width: 400, Height: 300}

	consumed, msg := p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(150, 75)), 0)
	assert.True(t, consumed)
	assert.Nil(t, msg)
	assert.True(t, p.Rect.Dragging())
	assert.False(t, p.View.Panning())

	consumed, msg = p.OnEvent(input.Move(), bounds, input.At(geom.Pt(160, 80)), 0)
	assert.True(t, consumed)
	require.NotNil(t, msg)
	assert.Equal(t, input.MessageCursorMoved, msg.Kind)
	assert.Equal(t, geom.Pt(160, 80), msg.Position)
	assert.Equal(t, geom.Rect{X: 110, Y: 55, Width: 100, Height: 50}, p.Rect.Rect)

	consumed, _ = p.OnEvent(input.Release(input.ButtonLeft), bounds, input.At(geom.Pt(160, 80)), 0)
	assert.True(t, consumed)
	assert.False(t, p.Rect.Dragging())
}

func TestCanvasProgramPanFallback(t *testing.T) {
	p := NewCanvasProgram()
	bounds := geom.Rect{Width: 400, Height: 300}

	consumed, _ := p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(10, 10)), 0)
	assert.True(t, consumed)
	assert.True(t, p.View.Panning())

	p.OnEvent(input.Move(), bounds, input.At(geom.Pt(20, 30)), 0)
	p.OnEvent(input.Release(input.ButtonLeft), bounds, input.At(geom.Pt(20, 30)), 0)
	assert.Equal(t, geom.Pt(10, 20), p.View.Translation)
	assert.Equal(t, geom.Rect{X: 100, Y: 50, Width: 100, Height: 50}, p.Rect.Rect)

	// The rectangle is hit where it is drawn after the pan.
	p.OnEvent(input.Press(input.ButtonLeft), bounds, input.At(geom.Pt(160, 95)), 0)
	assert.True(t, p.Rect.Dragging())
	assert.False(t, p.View.Panning())

	rect := p.Render(bounds.Size(), 0)[1]
	assert.Equal(t, geom.Translate(10, 20).ToSlice(), rect.Transform)
}

func TestCanvasProgramZoom(t *testing.T) {
	p := NewCanvasProgram()
	bounds := geom.Rect{Width: 400, Height: 300}

	consumed, _ := p.OnEvent(input.Wheel(1), bounds, input.At(geom.Pt(0, 0)), 0)
	assert.True(t, consumed)
	assert.InDelta(t, 1.1, p.View.Scale, 1e-9)

	consumed, msg := p.OnEvent(input.Wheel(1), bounds, input.At(geom.Pt(500, 0)), 0)
	assert.False(t, consumed)
	assert.Nil(t, msg)
}

func TestRotorProgram(t *testing.T) {
	p := NewRotorProgram()
	consumed, msg := p.OnEvent(input.Press(input.ButtonLeft), geom.Rect{Width: 10, Height: 10}, input.At(geom.Pt(5, 5)), 0)
	assert.False(t, consumed)
	assert.Nil(t, msg)

	cmds := p.Render(geom.Size{Width: 200, Height: 100}, 0)
	require.Len(t, cmds, 3)
	bar := cmds[2]
	assert.Equal(t, render.ShapePath, bar.Shape)
	require.Len(t, bar.Points, 4)
	assertPointInDelta(t, geom.Pt(60, 40), bar.Points[0])
	assertPointInDelta(t, geom.Pt(140, 60), bar.Points[2])

	quarter := p.Render(geom.Size{Width: 200, Height: 100}, 90)[2]
	assertPointInDelta(t, geom.Pt(110, 10), quarter.Points[0])
}

func TestPolygonProgramWheel(t *testing.T) {
	p := NewPolygonProgram()
	bounds := geom.Rect{Width: 300, Height: 300}
	in := input.At(geom.Pt(150, 150))

	consumed, _ := p.OnEvent(input.Wheel(1), bounds, in, 0)
	assert.True(t, consumed)
	assert.Equal(t, 6, p.Style.Edges)

	for range 20 {
		p.OnEvent(input.Wheel(-1), bounds, in, 0)
	}
	assert.Equal(t, polygon.MinEdges, p.Style.Edges)
	consumed, _ = p.OnEvent(input.Wheel(-1), bounds, in, 0)
	assert.False(t, consumed)

	for range 20 {
		p.OnEvent(input.Wheel(1), bounds, in, 0)
	}
	assert.Equal(t, polygon.MaxEdges, p.Style.Edges)

	consumed, _ = p.OnEvent(input.Press(input.ButtonLeft), bounds, in, 0)
	assert.False(t, consumed)
	consumed, _ = p.OnEvent(input.Wheel(1), bounds, input.At(geom.Pt(400, 0)), 0)
	assert.False(t, consumed)
}

func TestPolygonProgramRender(t *testing.T) {
	p := NewPolygonProgram()
	cmds := p.Render(geom.Size{Width: 300, Height: 300}, 0)
	require.Len(t, cmds, 3)

	fill, stroke := cmds[1], cmds[2]
	assert.Len(t, fill.Points, 5)
	assert.Equal(t, "#ff0000cc", fill.Paint.Color)
	assert.Equal(t, "#b30000", stroke.Paint.Color)
	assertPointInDelta(t, geom.Pt(250, 150), fill.Points[0])

	turned := p.Render(geom.Size{Width: 300, Height: 300}, 90)[1]
	assertPointInDelta(t, geom.Pt(150, 250), turned.Points[0])
}
