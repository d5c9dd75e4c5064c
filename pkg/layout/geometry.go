package layout

import "math"

// NodeWidth returns the box width for a node: the base width, grown with
// label length and capped at twice the base so very long labels don't
// dominate the layout.
func NodeWidth(n NodeSpec, cfg Config) float64 {
	labelWidth := float64(len([]rune(n.Label)))*cfg.CharWidth + cfg.LabelPadding
	w := math.Min(labelWidth, cfg.NodeWidth*2)
	return math.Max(cfg.NodeWidth, w)
}

// NodeHeight returns the box height for a node. Currently constant; multi-line
// labels would extend this.
func NodeHeight(_ NodeSpec, cfg Config) float64 {
	return cfg.NodeHeight
}

// Center returns the center point of a node box.
func Center(n PositionedNode) Point {
	return Point{X: n.X + n.W/2, Y: n.Y + n.H/2}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// NodeDistance returns the center-to-center distance between two node boxes.
func NodeDistance(a, b PositionedNode) float64 {
	return Distance(Center(a), Center(b))
}

// Overlaps reports whether two node boxes, each inflated by margin/2 per
// side, intersect on both axes. It is symmetric in its box arguments.
func Overlaps(a, b PositionedNode, margin float64) bool {
	ca, cb := Center(a), Center(b)
	dx := math.Abs(cb.X - ca.X)
	dy := math.Abs(cb.Y - ca.Y)
	return dx < (a.W+b.W)/2+margin && dy < (a.H+b.H)/2+margin
}

// overlapDepth returns how far two inflated boxes intrude into each other:
// the smaller of the intrusions along the two axes, 0 if they don't overlap.
func overlapDepth(a, b PositionedNode, margin float64) float64 {
	ca, cb := Center(a), Center(b)
	ox := (a.W+b.W)/2 + margin - math.Abs(cb.X-ca.X)
	oy := (a.H+b.H)/2 + margin - math.Abs(cb.Y-ca.Y)
	if ox <= 0 || oy <= 0 {
		return 0
	}
	return math.Min(ox, oy)
}

// clampToCanvas moves a node box so it lies fully inside the canvas minus
// the margin. Boxes wider than the usable area stick to the margin edge.
func clampToCanvas(n *PositionedNode, cfg Config) {
	n.X = math.Max(cfg.Margin, math.Min(n.X, cfg.Width-cfg.Margin-n.W))
	n.Y = math.Max(cfg.Margin, math.Min(n.Y, cfg.Height-cfg.Margin-n.H))
}
