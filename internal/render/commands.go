package render

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/inamate/sketchpad/internal/geom"
)

// Op is what a draw command does with its shape.
type Op string

const (
	OpFill   Op = "fill"
	OpStroke Op = "stroke"
)

// ShapeKind is the primitive a draw command describes.
type ShapeKind string

const (
	ShapeRect   ShapeKind = "rect"
	ShapeCircle ShapeKind = "circle"
	ShapeLine   ShapeKind = "line"
	ShapePath   ShapeKind = "path" // closed polygon through Points
)

// DrawCommand represents a single drawing operation for a host to execute.
// Coordinates are absolute pixels. Hosts receive a list of these in
// painter's order.
type DrawCommand struct {
	Op          Op           `json:"op"`
	Shape       ShapeKind    `json:"shape"`
	ObjectID    string       `json:"objectId,omitempty"`  // For hit correlation
	Transform   []float64    `json:"transform,omitempty"` // [a, b, c, d, e, f] affine matrix
	Rect        *geom.Rect   `json:"rect,omitempty"`
	Center      geom.Point   `json:"center,omitzero"`
	Radius      float64      `json:"radius,omitempty"`
	Points      []geom.Point `json:"points,omitempty"`
	Paint       Paint        `json:"paint"`
	StrokeWidth float64      `json:"strokeWidth,omitempty"`
}

// Paint is either a solid colour or a linear gradient.
type Paint struct {
	Color    string          `json:"color,omitempty"`
	Gradient *LinearGradient `json:"gradient,omitempty"`
}

// LinearGradient runs between two absolute points.
type LinearGradient struct {
	Start geom.Point  `json:"start"`
	End   geom.Point  `json:"end"`
	Stops []ColorStop `json:"stops"`
}

// ColorStop is one colour at an offset in [0, 1].
type ColorStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

// Solid returns a solid paint.
func Solid(color string) Paint {
	return Paint{Color: color}
}

// RGB formats components in [0, 1] as "#rrggbb".
func RGB(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

// RGBA formats components in [0, 1] as "#rrggbbaa".
func RGBA(r, g, b, a float64) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", channel(r), channel(g), channel(b), channel(a))
}

func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// FillRect fills r.
func FillRect(r geom.Rect, p Paint) DrawCommand {
	return DrawCommand{Op: OpFill, Shape: ShapeRect, Rect: &r, Paint: p}
}

// FillCircle fills a circle.
func FillCircle(center geom.Point, radius float64, p Paint) DrawCommand {
	return DrawCommand{Op: OpFill, Shape: ShapeCircle, Center: center, Radius: radius, Paint: p}
}

// StrokeLine strokes the segment a-b.
func StrokeLine(a, b geom.Point, width float64, p Paint) DrawCommand {
	return DrawCommand{
		Op:          OpStroke,
		Shape:       ShapeLine,
		Points:      []geom.Point{a, b},
		Paint:       p,
		StrokeWidth: width,
	}
}

// FillPolygon fills the closed polygon through pts.
func FillPolygon(pts []geom.Point, p Paint) DrawCommand {
	return DrawCommand{Op: OpFill, Shape: ShapePath, Points: pts, Paint: p}
}

// StrokePolygon strokes the closed polygon through pts.
func StrokePolygon(pts []geom.Point, width float64, p Paint) DrawCommand {
	return DrawCommand{Op: OpStroke, Shape: ShapePath, Points: pts, Paint: p, StrokeWidth: width}
}

// WithTransform returns cmd drawn under m. Identity matrices are dropped.
func (cmd DrawCommand) WithTransform(m geom.Matrix2D) DrawCommand {
	if m.IsIdentity() {
		cmd.Transform = nil
		return cmd
	}
	cmd.Transform = m.ToSlice()
	return cmd
}

// WithObjectID tags cmd for hit correlation.
func (cmd DrawCommand) WithObjectID(id string) DrawCommand {
	cmd.ObjectID = id
	return cmd
}

// Matrix returns the command transform, or Identity when none is set.
func (cmd DrawCommand) Matrix() geom.Matrix2D {
	if len(cmd.Transform) != 6 {
		return geom.Identity()
	}
	var m geom.Matrix2D
	copy(m[:], cmd.Transform)
	return m
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		commands = []DrawCommand{}
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
