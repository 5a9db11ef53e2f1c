package shape

import (
	"fmt"

	"github.com/inamate/sketchpad/internal/geom"
)

// DragKind says what part of a shape is grabbed.
type DragKind int

const (
	NotDragging DragKind = iota
	DraggingLine
	DraggingCorner
)

// DragMode is the current grab. Corner is meaningful only for DraggingCorner.
type DragMode struct {
	Kind   DragKind
	Corner int
}

// Idle reports whether nothing is grabbed.
func (m DragMode) Idle() bool {
	return m.Kind == NotDragging
}

func (m DragMode) String() string {
	switch m.Kind {
	case DraggingLine:
		return "line"
	case DraggingCorner:
		return fmt.Sprintf("corner(%d)", m.Corner)
	default:
		return "none"
	}
}

// LineShape is a thick horizontal line stored in relative units. Width is a
// fraction of min(frame width, frame height).
type LineShape struct {
	Start geom.Point
	End   geom.Point
	Width float64

	// Anchor is the shape-space position of the last press, advanced as a
	// drag progresses.
	Anchor geom.Point
	Mode   DragMode
}

// NewLineShape returns the default line spanning 10%..90% of the frame at
// 40% height, 20% thick.
func NewLineShape() *LineShape {
	return &LineShape{
		Start: geom.Pt(0.10, 0.40),
		End:   geom.Pt(0.90, 0.40),
		Width: 0.20,
	}
}

// Corners returns the four handle positions.
func (l *LineShape) Corners() [4]geom.Point {
	return geom.LineCorners(l.Start, l.End, l.Width)
}

// Press starts a drag at p (shape space). Corners win over the body. The
// anchor is recorded even when nothing is hit. Reports whether a drag began.
func (l *LineShape) Press(p geom.Point) bool {
	l.Anchor = p

	if i, ok := geom.IsPointOnLineCorner(p, l.Start, l.End, l.Width); ok {
		l.Mode = DragMode{Kind: DraggingCorner, Corner: i}
		return true
	}
	if geom.IsPointOnHorizontalLine(p, l.Start, l.End, l.Width/2) {
		l.Mode = DragMode{Kind: DraggingLine}
		return true
	}
	l.Mode = DragMode{}
	return false
}

// Release ends any drag. Geometry is untouched. Reports whether a drag was
// in progress.
func (l *LineShape) Release() bool {
	was := !l.Mode.Idle()
	l.Mode = DragMode{}
	return was
}

// Move applies the cursor motion to p (shape space) according to the drag
// mode. Reports whether the event was consumed.
func (l *LineShape) Move(p geom.Point) bool {
	switch l.Mode.Kind {
	case DraggingLine:
		delta := p.Sub(l.Anchor)
		l.Start = l.Start.Add(delta)
		l.End = l.End.Add(delta)
		l.Anchor = p
		return true
	case DraggingCorner:
		applied := l.dragCorner(l.Mode.Corner, p.Sub(l.Anchor))
		l.Anchor = l.Anchor.Add(applied)
		return true
	default:
		return false
	}
}

// dragCorner moves corner i by delta and returns the part of delta that was
// applied. The endpoint on the corner's side takes the full x and half the
// y motion, the other endpoint follows in y so the line stays horizontal,
// and the width absorbs the full y motion. Width is clamped at zero: the
// vertical motion is cut short so the opposite edge never moves.
func (l *LineShape) dragCorner(i int, delta geom.Vector) geom.Vector {
	switch i {
	case geom.CornerUpperLeft, geom.CornerUpperRight:
		// moving an upper corner down thins the line
		delta.Y = min(delta.Y, l.Width)
		l.Width -= delta.Y
	case geom.CornerLowerRight, geom.CornerLowerLeft:
		delta.Y = max(delta.Y, -l.Width)
		l.Width += delta.Y
	default:
		return geom.Vector{}
	}

	switch i {
	case geom.CornerUpperLeft, geom.CornerLowerLeft:
		l.Start = geom.Pt(l.Start.X+delta.X, l.Start.Y+delta.Y/2)
		l.End = geom.Pt(l.End.X, l.Start.Y)
	default:
		l.End = geom.Pt(l.End.X+delta.X, l.End.Y+delta.Y/2)
		l.Start = geom.Pt(l.Start.X, l.End.Y)
	}
	return delta
}
