package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/clickdash/internal/core"
)

func TestPlacerStaysInBounds(t *testing.T) {
	tests := []struct {
		name   string
		margin int
		bounds core.Size
		target core.Size
	}{
		{"desktop play area", 10, core.Size{W: 560, H: 500}, core.Size{W: 100, H: 50}},
		{"terminal play area", 1, core.Size{W: 78, H: 20}, core.Size{W: 11, H: 3}},
		{"tight fit", 2, core.Size{W: 14, H: 6}, core.Size{W: 11, H: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlacer(42, tc.margin, core.Size{W: 560, H: 500})
			for i := 0; i < 2000; i++ {
				pos := p.Place(tc.bounds, tc.target)
				assert.GreaterOrEqual(t, pos.X, tc.margin)
				assert.GreaterOrEqual(t, pos.Y, tc.margin)
				assert.LessOrEqual(t, pos.X, tc.bounds.W-tc.target.W)
				assert.LessOrEqual(t, pos.Y, tc.bounds.H-tc.target.H)
			}
		})
	}
}

func TestPlacerCoversInclusiveRange(t *testing.T) {
	// x in [1, 3], y in [1, 2]
	p := NewPlacer(7, 1, core.Size{})
	bounds := core.Size{W: 6, H: 4}
	target := core.Size{W: 3, H: 2}

	seen := make(map[core.Point]bool)
	for i := 0; i < 1000; i++ {
		seen[p.Place(bounds, target)] = true
	}

	for x := 1; x <= 3; x++ {
		for y := 1; y <= 2; y++ {
			assert.True(t, seen[core.Point{X: x, Y: y}], "never placed at (%d, %d)", x, y)
		}
	}
	assert.Len(t, seen, 6)
}

func TestPlacerUnknownBoundsUseFallback(t *testing.T) {
	fallback := core.Size{W: 560, H: 500}
	target := core.Size{W: 100, H: 50}

	for _, bounds := range []core.Size{{}, {W: 1, H: 1}, {W: 1, H: 800}} {
		p := NewPlacer(3, 10, fallback)
		for i := 0; i < 200; i++ {
			pos := p.Place(bounds, target)
			assert.LessOrEqual(t, pos.X, fallback.W-target.W)
			assert.LessOrEqual(t, pos.Y, fallback.H-target.H)
			assert.GreaterOrEqual(t, pos.X, 10)
			assert.GreaterOrEqual(t, pos.Y, 10)
		}
	}
}

func TestPlacerDegenerateAreaClampsToMargin(t *testing.T) {
	p := NewPlacer(1, 10, core.Size{W: 560, H: 500})

	pos := p.Place(core.Size{W: 50, H: 40}, core.Size{W: 100, H: 50})
	assert.Equal(t, core.Point{X: 10, Y: 10}, pos)

	// Only one axis degenerate
	for i := 0; i < 100; i++ {
		pos = p.Place(core.Size{W: 300, H: 40}, core.Size{W: 100, H: 50})
		assert.Equal(t, 10, pos.Y)
		assert.LessOrEqual(t, pos.X, 200)
	}
}

func TestPlacerDeterministicForSeed(t *testing.T) {
	a := NewPlacer(99, 10, core.Size{W: 560, H: 500})
	b := NewPlacer(99, 10, core.Size{W: 560, H: 500})
	bounds := core.Size{W: 560, H: 500}
	target := core.Size{W: 100, H: 50}

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Place(bounds, target), b.Place(bounds, target))
	}
}

func TestScoreTracker(t *testing.T) {
	for _, n := range []int{0, 1, 5, 100} {
		var s ScoreTracker
		s.Increment() // leftover from a previous round
		s.Reset()

		for i := 1; i <= n; i++ {
			assert.Equal(t, i, s.Increment())
		}
		assert.Equal(t, n, s.Value())
	}
}
