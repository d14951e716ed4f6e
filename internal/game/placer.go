package game

import (
	"math/rand"

	"github.com/vovakirdan/clickdash/internal/core"
)

// Placer picks target positions uniformly at random inside the play area.
type Placer struct {
	rng      *rand.Rand
	margin   int
	fallback core.Size
}

// NewPlacer creates a placer with its own seeded random source.
// margin is the minimum distance from the top-left edges; fallback is used
// whenever the host has not measured its play area yet.
func NewPlacer(seed int64, margin int, fallback core.Size) *Placer {
	return &Placer{
		rng:      rand.New(rand.NewSource(seed)),
		margin:   margin,
		fallback: fallback,
	}
}

// Place returns a top-left position for a target of the given size so that
// it fits inside bounds. Each coordinate is drawn from
// [margin, bound-target] inclusive; a degenerate range collapses to margin.
func (p *Placer) Place(bounds, target core.Size) core.Point {
	if !bounds.Known() {
		bounds = p.fallback
	}
	return core.Point{
		X: p.pick(p.margin, bounds.W-target.W),
		Y: p.pick(p.margin, bounds.H-target.H),
	}
}

func (p *Placer) pick(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.Intn(hi-lo+1)
}

