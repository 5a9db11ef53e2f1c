// Package polygon builds a regular polygon coloured from hue, saturation and
// brightness, either as vertices for the draw pipeline or as a standalone
// SVG document.
package polygon

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/inamate/sketchpad/internal/geom"
)

const (
	MinEdges = 3
	MaxEdges = 12

	// SVG canvas is a 300x300 view box with the polygon centred in it.
	viewBoxSize = 300.0
	svgRadius   = 100.0

	fillAlpha      = 0.8
	strokeDarkness = 0.7
)

// Style describes the polygon. Hue is in degrees [0, 360]; saturation and
// brightness are percentages [0, 100].
type Style struct {
	Edges      int     `json:"edges"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Brightness float64 `json:"brightness"`
}

// DefaultStyle is a fully saturated red pentagon.
func DefaultStyle() Style {
	return Style{Edges: 5, Hue: 0, Saturation: 100, Brightness: 100}
}

// ClampEdges enforces the polygon floor of three edges.
func ClampEdges(n int) int {
	return max(n, MinEdges)
}

// HSBToRGB converts hue in degrees (any value, wrapped into [0, 360)) and saturation/brightness percentages to
// RGB components in [0, 1].
func HSBToRGB(h, s, b float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360
	s /= 100
	b /= 100

	i := math.Floor(h * 6)
	f := h*6 - i
	p := b * (1 - s)
	q := b * (1 - f*s)
	t := b * (1 - (1-f)*s)

	switch int(math.Mod(i, 6)) {
	case 0:
		return b, t, p
	case 1:
		return q, b, p
	case 2:
		return p, b, t
	case 3:
		return p, q, b
	case 4:
		return t, p, b
	default:
		return b, p, q
	}
}

// RGB returns the fill colour and the darker stroke colour as RGB triples.
func (s Style) RGB() (fill, stroke [3]float64) {
	r, g, b := HSBToRGB(s.Hue, s.Saturation, s.Brightness)
	sr, sg, sb := HSBToRGB(s.Hue, s.Saturation, s.Brightness*strokeDarkness)
	return [3]float64{r, g, b}, [3]float64{sr, sg, sb}
}

// CSSColors returns fill as rgba() at 80% opacity and stroke as rgb().
func (s Style) CSSColors() (fill, stroke string) {
	f, st := s.RGB()
	fill = fmt.Sprintf("rgba(%d,%d,%d,%s)", byte255(f[0]), byte255(f[1]), byte255(f[2]),
		strconv.FormatFloat(fillAlpha, 'f', -1, 64))
	stroke = fmt.Sprintf("rgb(%d,%d,%d)", byte255(st[0]), byte255(st[1]), byte255(st[2]))
	return fill, stroke
}

// FillAlpha is the opacity used for the polygon body.
func FillAlpha() float64 { return fillAlpha }

func byte255(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// Vertices returns the corners of a regular polygon, the first one on the
// positive x axis, going clockwise on screen.
func Vertices(center geom.Point, radius float64, edges int) []geom.Point {
	edges = ClampEdges(edges)
	pts := make([]geom.Point, edges)
	for i := range pts {
		angle := float64(i) * 2 * math.Pi / float64(edges)
		pts[i] = geom.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
	return pts
}

// PathData formats vertices as SVG path data without the closing Z.
func PathData(pts []geom.Point) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		op := "L"
		if i == 0 {
			op = "M"
		}
		fmt.Fprintf(&sb, "%s %.1f %.1f", op, p.X, p.Y)
	}
	return sb.String()
}

// SVG renders the polygon rotated by degrees about the view box centre.
func SVG(s Style, degrees float64) string {
	c := viewBoxSize / 2
	fill, stroke := s.CSSColors()
	path := PathData(Vertices(geom.Pt(c, c), svgRadius, s.Edges))

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg viewBox="0 0 %[1]g %[1]g" xmlns="http://www.w3.org/2000/svg">
  <g transform="rotate(%[2]s %[3]g %[3]g)">
    <path d="%[4]s Z" fill="%[5]s" stroke="%[6]s" stroke-width="2"/>
  </g>
</svg>
`, viewBoxSize, strconv.FormatFloat(degrees, 'f', -1, 64), c, path, fill, stroke)
}
