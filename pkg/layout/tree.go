package layout

import "sort"

// treeStrategy maps BFS depth to a vertical rank and spreads the nodes of
// each rank horizontally, ordered by their parent's position so subtrees
// stay together. Ranks are centered on the canvas midline.
type treeStrategy struct{}

func (treeStrategy) place(nodes []NodeSpec, edges []EdgeSpec, cfg Config) []PositionedNode {
	out := sizedNodes(nodes, cfg)
	adj := buildAdjacency(nodes, edges)
	depth := adj.depths()

	ranks := make(map[int][]int)
	maxDepth := 0
	for i, d := range depth {
		ranks[d] = append(ranks[d], i)
		if d > maxDepth {
			maxDepth = d
		}
	}

	rankSpacing := cfg.NodeHeight + 2*cfg.MinSeparation
	stepX := cfg.NodeWidth + cfg.MinSeparation

	for d := 0; d <= maxDepth; d++ {
		members := ranks[d]
		if len(members) == 0 {
			continue
		}
		if d > 0 {
			// Order siblings under their parents: sort by the first
			// parent's x so subtrees don't interleave. Input order breaks
			// ties, keeping placement deterministic.
			sort.SliceStable(members, func(a, b int) bool {
				return parentX(out, adj, members[a]) < parentX(out, adj, members[b])
			})
		}

		rowWidth := float64(len(members))*stepX - cfg.MinSeparation
		startX := (cfg.Width - rowWidth) / 2
		y := cfg.Margin + float64(d)*rankSpacing
		for col, idx := range members {
			out[idx].X = startX + float64(col)*stepX
			out[idx].Y = y
		}
	}
	return out
}

// parentX returns the x center of a node's first parent, or 0 for roots.
func parentX(out []PositionedNode, adj adjacency, idx int) float64 {
	if len(adj.incoming[idx]) == 0 {
		return 0
	}
	return Center(out[adj.incoming[idx][0]]).X
}
