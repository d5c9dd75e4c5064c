package layout

import "github.com/charmbracelet/log"

// routeEdges computes a polyline for every edge spec: a straight two-point
// segment between the source and target box centers. An edge referencing a
// node that isn't in the positioned set is emitted with no points and a
// warning; renderers skip point-less edges.
func routeEdges(edges []EdgeSpec, nodes []PositionedNode, logger *log.Logger) []Edge {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		index[n.ID] = i
	}

	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		routed := Edge{From: e.From, To: e.To, Label: e.Label}

		src, okSrc := index[e.From]
		dst, okDst := index[e.To]
		if !okSrc || !okDst {
			logger.Warn("edge references unknown node, skipping route",
				"from", e.From, "to", e.To)
			out = append(out, routed)
			continue
		}

		routed.Points = []Point{Center(nodes[src]), Center(nodes[dst])}
		out = append(out, routed)
	}
	return out
}
