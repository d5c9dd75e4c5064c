package layout

import (
	"math"
	"time"
)

// Confidence scoring constants. Zero overlap is the dominant success signal;
// processing time is a secondary one.
const (
	confidenceBase   = 0.8
	zeroOverlapBonus = 0.15
	overlapPenalty   = 0.10 // per remaining overlap pair
	fastBonus        = 0.05
	slowPenalty      = 0.10
	fastThreshold    = 2 * time.Second
	slowThreshold    = 5 * time.Second
)

// computeBounds returns the minimal axis-aligned rectangle containing all
// node boxes. A zero-size Bounds is returned for an empty node set.
func computeBounds(nodes []PositionedNode) Bounds {
	if len(nodes) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, n := range nodes {
		b.MinX = math.Min(b.MinX, n.X)
		b.MinY = math.Min(b.MinY, n.Y)
		b.MaxX = math.Max(b.MaxX, n.X+n.W)
		b.MaxY = math.Max(b.MaxY, n.Y+n.H)
	}
	b.Width = b.MaxX - b.MinX
	b.Height = b.MaxY - b.MinY
	return b
}

// computeMetrics derives the quality metrics for a resolved layout.
func computeMetrics(nodes []PositionedNode, edges []Edge, bounds Bounds, cfg Config) Metrics {
	return Metrics{
		OverlapCount:       CountOverlaps(nodes, cfg.MinSeparation),
		EdgeCrossings:      countEdgeCrossings(edges),
		TotalArea:          bounds.Width * bounds.Height,
		AverageNodeSpacing: averageSpacing(nodes),
		LayoutBalance:      layoutBalance(nodes, cfg.BalanceNorm),
	}
}

// averageSpacing is the mean pairwise center-to-center distance, 0 for
// fewer than two nodes.
func averageSpacing(nodes []PositionedNode) float64 {
	n := len(nodes)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			total += NodeDistance(nodes[i], nodes[j])
		}
	}
	return total / float64(n*(n-1)/2)
}

// layoutBalance is max(0, 1 - variance/norm) where variance is the mean
// squared distance of node centers from their centroid.
func layoutBalance(nodes []PositionedNode, norm float64) float64 {
	if len(nodes) == 0 {
		return 1
	}

	var cx, cy float64
	for _, n := range nodes {
		c := Center(n)
		cx += c.X
		cy += c.Y
	}
	cx /= float64(len(nodes))
	cy /= float64(len(nodes))

	variance := 0.0
	for _, n := range nodes {
		c := Center(n)
		dx, dy := c.X-cx, c.Y-cy
		variance += dx*dx + dy*dy
	}
	variance /= float64(len(nodes))

	return math.Max(0, 1-variance/norm)
}

// countEdgeCrossings counts pairs of routed edge segments that properly
// intersect. Segments sharing an endpoint (edges fanning out of one node)
// don't count as a crossing. Edges with fewer than two points are skipped.
func countEdgeCrossings(edges []Edge) int {
	type segment struct{ a, b Point }
	var segs []segment
	for _, e := range edges {
		for i := 1; i < len(e.Points); i++ {
			segs = append(segs, segment{e.Points[i-1], e.Points[i]})
		}
	}

	count := 0
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if sharesEndpoint(segs[i].a, segs[i].b, segs[j].a, segs[j].b) {
				continue
			}
			if segmentsIntersect(segs[i].a, segs[i].b, segs[j].a, segs[j].b) {
				count++
			}
		}
	}
	return count
}

func sharesEndpoint(a1, a2, b1, b2 Point) bool {
	return a1 == b1 || a1 == b2 || a2 == b1 || a2 == b2
}

// segmentsIntersect reports whether segments a1-a2 and b1-b2 properly
// intersect, using orientation signs of the endpoint triples.
func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross returns the z component of (b-a) × (p-a).
func cross(a, b, p Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// confidence folds the zero-overlap invariant and processing time into a
// single score in [0,1].
func confidence(m Metrics, elapsed time.Duration) float64 {
	score := confidenceBase
	if m.OverlapCount == 0 {
		score += zeroOverlapBonus
	} else {
		score -= overlapPenalty * float64(m.OverlapCount)
	}

	if elapsed < fastThreshold {
		score += fastBonus
	} else if elapsed > slowThreshold {
		score -= slowPenalty
	}

	return math.Max(0, math.Min(1, score))
}
