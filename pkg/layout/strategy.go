package layout

// strategy computes an archetype-specific initial position for every node.
// Strategies make no overlap guarantee; resolution is a separate pass.
// Implementations must be deterministic: identical inputs yield identical
// placements.
type strategy interface {
	place(nodes []NodeSpec, edges []EdgeSpec, cfg Config) []PositionedNode
}

// strategyFor maps an archetype to its placement strategy. The engine is the
// only caller; archetype validity is checked before dispatch.
func strategyFor(a Archetype) strategy {
	switch a {
	case Tree:
		return treeStrategy{}
	case Timeline:
		return timelineStrategy{}
	case Matrix:
		return matrixStrategy{}
	case Cycle:
		return cycleStrategy{}
	default:
		return flowStrategy{}
	}
}

// sizedNodes allocates positioned nodes with label-driven sizes and zero
// positions, preserving input order.
func sizedNodes(nodes []NodeSpec, cfg Config) []PositionedNode {
	out := make([]PositionedNode, len(nodes))
	for i, n := range nodes {
		out[i] = PositionedNode{
			ID:    n.ID,
			Label: n.Label,
			W:     NodeWidth(n, cfg),
			H:     NodeHeight(n, cfg),
		}
	}
	return out
}

// adjacency holds per-node edge lists keyed by node index. Edges referencing
// unknown IDs are ignored here; the engine has already warned about them.
type adjacency struct {
	index    map[string]int
	outgoing [][]int
	incoming [][]int
}

func buildAdjacency(nodes []NodeSpec, edges []EdgeSpec) adjacency {
	adj := adjacency{
		index:    make(map[string]int, len(nodes)),
		outgoing: make([][]int, len(nodes)),
		incoming: make([][]int, len(nodes)),
	}
	for i, n := range nodes {
		adj.index[n.ID] = i
	}
	for _, e := range edges {
		from, okFrom := adj.index[e.From]
		to, okTo := adj.index[e.To]
		if !okFrom || !okTo || from == to {
			continue
		}
		adj.outgoing[from] = append(adj.outgoing[from], to)
		adj.incoming[to] = append(adj.incoming[to], from)
	}
	return adj
}

// roots returns the indices of nodes with no incoming edges, in input order.
func (adj adjacency) roots() []int {
	var rs []int
	for i := range adj.incoming {
		if len(adj.incoming[i]) == 0 {
			rs = append(rs, i)
		}
	}
	return rs
}

// topoOrder returns node indices in topological order using Kahn's
// algorithm, seeded with roots in input order for determinism. If the graph
// contains a cycle, the second return is false and the caller should fall
// back to input order.
func (adj adjacency) topoOrder() ([]int, bool) {
	n := len(adj.outgoing)
	indegree := make([]int, n)
	for i := range adj.incoming {
		indegree[i] = len(adj.incoming[i])
	}

	var queue []int
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, next := range adj.outgoing[cur] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	return order, len(order) == n
}

// depths assigns each node its BFS depth from the nearest root. Nodes
// unreachable from any root (cycles, disconnected backedges) land at depth 0.
func (adj adjacency) depths() []int {
	n := len(adj.outgoing)
	depth := make([]int, n)
	visited := make([]bool, n)

	queue := adj.roots()
	if len(queue) == 0 && n > 0 {
		// Pure cycle: start from the first node.
		queue = []int{0}
	}
	for _, r := range queue {
		visited[r] = true
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj.outgoing[cur] {
			if visited[next] {
				continue
			}
			visited[next] = true
			depth[next] = depth[cur] + 1
			queue = append(queue, next)
		}
	}
	return depth
}
