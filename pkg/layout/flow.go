package layout

// flowStrategy lays nodes along the horizontal axis in edge order: a
// topological walk from the sources, one column per node. A branch (second
// or later child of the same parent) opens a new lane below the current one
// so parallel paths don't stack on the same row.
type flowStrategy struct{}

func (flowStrategy) place(nodes []NodeSpec, edges []EdgeSpec, cfg Config) []PositionedNode {
	out := sizedNodes(nodes, cfg)
	adj := buildAdjacency(nodes, edges)

	order, ok := adj.topoOrder()
	if !ok {
		// Cycle in a flow diagram: keep input order rather than guessing.
		order = make([]int, len(nodes))
		for i := range order {
			order[i] = i
		}
	}

	lane := make([]int, len(nodes))
	seen := make([]bool, len(nodes))
	nextLane := 0
	for _, idx := range order {
		if !seen[idx] && len(adj.incoming[idx]) == 0 {
			// Each source starts its own lane.
			lane[idx] = nextLane
			nextLane++
			seen[idx] = true
		}
		branch := 0
		for _, child := range adj.outgoing[idx] {
			if seen[child] {
				continue
			}
			seen[child] = true
			if branch == 0 {
				lane[child] = lane[idx]
			} else {
				lane[child] = nextLane
				nextLane++
			}
			branch++
		}
	}

	stepX := cfg.NodeWidth + cfg.MinSeparation
	stepY := cfg.NodeHeight + cfg.MinSeparation
	for col, idx := range order {
		out[idx].X = cfg.Margin + float64(col)*stepX
		out[idx].Y = cfg.Margin + float64(lane[idx])*stepY
	}
	return out
}
