package layout

import (
	"context"
	"math"

	"github.com/charmbracelet/log"
)

// pushEpsilon is added to each push so a resolved pair clears the margin
// instead of landing exactly on it.
const pushEpsilon = 0.5

// resolveOverlaps runs the round-based overlap resolution loop: scan for
// overlapping pairs, push each pair apart symmetrically, re-clamp to the
// canvas, repeat. It mutates nodes in place and returns the number of rounds
// run and the remaining overlap count.
//
// Each pair is pushed along the vector between its centers by half the
// overlap depth per node, so the pair's combined centroid is preserved and
// the layout as a whole doesn't drift. Identical centers fall back to the
// unit x-axis to avoid a zero-length direction.
//
// The loop checks ctx between rounds only. A round always completes; nodes
// are never left half-clamped.
func resolveOverlaps(ctx context.Context, nodes []PositionedNode, cfg Config, logger *log.Logger) (rounds, remaining int, err error) {
	for rounds = 0; rounds < cfg.MaxRounds; rounds++ {
		if err := ctx.Err(); err != nil {
			return rounds, CountOverlaps(nodes, cfg.MinSeparation), err
		}

		pairs := DetectOverlaps(nodes, cfg.MinSeparation)
		if len(pairs) == 0 {
			return rounds, 0, nil
		}

		for _, p := range pairs {
			pushApart(&nodes[p.A], &nodes[p.B], cfg.MinSeparation)
		}

		// Clamping can push boxes back into each other near the canvas
		// edge, which the next scan picks up.
		for i := range nodes {
			clampToCanvas(&nodes[i], cfg)
		}
	}

	remaining = CountOverlaps(nodes, cfg.MinSeparation)
	if remaining > 0 {
		logger.Warn("overlap resolution exhausted",
			"rounds", rounds,
			"remaining", remaining,
			"nodes", len(nodes))
	}
	return rounds, remaining, nil
}

// pushApart moves a and b away from each other along the line between their
// centers, each by half the overlap depth plus a small epsilon. The pair's
// midpoint stays fixed.
func pushApart(a, b *PositionedNode, margin float64) {
	depth := overlapDepth(*a, *b, margin)
	if depth <= 0 {
		return
	}

	ca, cb := Center(*a), Center(*b)
	dx, dy := cb.X-ca.X, cb.Y-ca.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		// Identical centers: no direction to push along, use the x-axis.
		dx, dy, dist = 1, 0, 1
	}

	push := depth/2 + pushEpsilon
	ux, uy := dx/dist, dy/dist
	a.X -= ux * push
	a.Y -= uy * push
	b.X += ux * push
	b.Y += uy * push
}
