package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inamate/sketchpad/internal/geom"
)

func TestCursorPositionIn(t *testing.T) {
	bounds := geom.Rect{X: 10, Y: 20, Width: 100, Height: 50}

	p, ok := At(geom.Pt(15, 30)).PositionIn(bounds)
	assert.True(t, ok)
	assert.Equal(t, geom.Pt(5, 10), p)

	_, ok = At(geom.Pt(5, 30)).PositionIn(bounds)
	assert.False(t, ok)

	_, ok = Cursor{Position: geom.Pt(15, 30)}.PositionIn(bounds)
	assert.False(t, ok, "unavailable cursor")
}

func TestPrimaryButtonHelpers(t *testing.T) {
	assert.True(t, Press(ButtonLeft).IsPrimaryPress())
	assert.False(t, Press(ButtonRight).IsPrimaryPress())
	assert.True(t, Release(ButtonLeft).IsPrimaryRelease())
	assert.False(t, Move().IsPrimaryRelease())
}
