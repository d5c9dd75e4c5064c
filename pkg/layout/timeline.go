package layout

// timelineStrategy treats input order as temporal order and spreads node
// centers evenly along the horizontal axis between the margins, all in a
// single band at the vertical center of the canvas.
type timelineStrategy struct{}

func (timelineStrategy) place(nodes []NodeSpec, _ []EdgeSpec, cfg Config) []PositionedNode {
	out := sizedNodes(nodes, cfg)
	n := len(out)

	span := cfg.Width - 2*cfg.Margin
	step := span / float64(max(n-1, 1))
	for i := range out {
		cx := cfg.Margin + float64(i)*step
		out[i].X = cx - out[i].W/2
		out[i].Y = (cfg.Height - out[i].H) / 2
	}
	return out
}
