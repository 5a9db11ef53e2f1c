package polygon

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inamate/sketchpad/internal/geom"
)

func TestClampEdges(t *testing.T) {
	assert.Equal(t, 3, ClampEdges(0))
	assert.Equal(t, 3, ClampEdges(2))
	assert.Equal(t, 7, ClampEdges(7))
}

func TestHSBToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, b float64
		want    [3]float64
	}{
		{"red", 0, 100, 100, [3]float64{1, 0, 0}},
		{"green", 120, 100, 100, [3]float64{0, 1, 0}},
		{"blue", 240, 100, 100, [3]float64{0, 0, 1}},
		{"white", 42, 0, 100, [3]float64{1, 1, 1}},
		{"black", 200, 80, 0, [3]float64{0, 0, 0}},
		{"full circle wraps", 360, 100, 100, [3]float64{1, 0, 0}},
		{"negative hue wraps", -90, 100, 100, [3]float64{0.5, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSBToRGB(tt.h, tt.s, tt.b)
			assert.InDelta(t, tt.want[0], r, 1e-9)
			assert.InDelta(t, tt.want[1], g, 1e-9)
			assert.InDelta(t, tt.want[2], b, 1e-9)
		})
	}
}

func TestHSBToRGBWrapsHue(t *testing.T) {
	for _, pair := range [][2]float64{{-90, 270}, {-360, 0}, {480, 120}, {360, 0}} {
		r1, g1, b1 := HSBToRGB(pair[0], 100, 100)
		r2, g2, b2 := HSBToRGB(pair[1], 100, 100)
		assert.InDelta(t, r2, r1, 1e-9, "hue %v", pair[0])
		assert.InDelta(t, g2, g1, 1e-9, "hue %v", pair[0])
		assert.InDelta(t, b2, b1, 1e-9, "hue %v", pair[0])
	}
}

func TestCSSColorsMatchRasterChannels(t *testing.T) {
	s := Style{Edges: 5, Hue: 200, Saturation: 37, Brightness: 81}
	fill, stroke := s.CSSColors()
	f, st := s.RGB()
	assert.Equal(t, fmt.Sprintf("rgba(%d,%d,%d,0.8)", rounded(f[0]), rounded(f[1]), rounded(f[2])), fill)
	assert.Equal(t, fmt.Sprintf("rgb(%d,%d,%d)", rounded(st[0]), rounded(st[1]), rounded(st[2])), stroke)
}

func rounded(v float64) int {
	return int(math.Round(v * 255))
}

func TestCSSColors(t *testing.T) {
	fill, stroke := DefaultStyle().CSSColors()
	assert.Equal(t, "rgba(255,0,0,0.8)", fill)
	assert.Equal(t, "rgb(179,0,0)", stroke)
}

func TestVertices(t *testing.T) {
	pts := Vertices(geom.Pt(150, 150), 100, 4)
	assert.Len(t, pts, 4)
	assert.InDelta(t, 250, pts[0].X, 1e-9)
	assert.InDelta(t, 150, pts[0].Y, 1e-9)
	assert.InDelta(t, 150, pts[1].X, 1e-9)
	assert.InDelta(t, 250, pts[1].Y, 1e-9)

	assert.Len(t, Vertices(geom.Pt(0, 0), 1, 1), 3, "edge floor")
}

func TestSVG(t *testing.T) {
	s := DefaultStyle()
	s.Edges = 3
	out := SVG(s, 12.5)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `viewBox="0 0 300 300"`)
	assert.Contains(t, out, `transform="rotate(12.5 150 150)"`)
	assert.Contains(t, out, `d="M 250.0 150.0 L 100.0 236.6 L 100.0 63.4 Z"`)
	assert.Contains(t, out, `fill="rgba(255,0,0,0.8)"`)
	assert.Contains(t, out, `stroke="rgb(179,0,0)"`)
}
