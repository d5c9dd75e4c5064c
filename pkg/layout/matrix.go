package layout

import "math"

// matrixStrategy assigns nodes to a near-square grid in input order,
// centered on the canvas. Cell size derives from the base node box plus the
// separation margin.
type matrixStrategy struct{}

func (matrixStrategy) place(nodes []NodeSpec, _ []EdgeSpec, cfg Config) []PositionedNode {
	out := sizedNodes(nodes, cfg)
	n := len(out)
	if n == 0 {
		return out
	}

	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols

	cellW := cfg.NodeWidth + cfg.MinSeparation
	cellH := cfg.NodeHeight + cfg.MinSeparation
	gridW := float64(cols)*cellW - cfg.MinSeparation
	gridH := float64(rows)*cellH - cfg.MinSeparation
	originX := (cfg.Width - gridW) / 2
	originY := (cfg.Height - gridH) / 2

	for i := range out {
		row := i / cols
		col := i % cols
		// Center each box in its cell so wide labels stay aligned.
		out[i].X = originX + float64(col)*cellW + (cfg.NodeWidth-out[i].W)/2
		out[i].Y = originY + float64(row)*cellH
	}
	return out
}
