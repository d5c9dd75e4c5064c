package layout

// OverlapPair identifies two overlapping node boxes by their indices in the
// node slice, with A < B.
type OverlapPair struct {
	A, B int
}

// DetectOverlaps enumerates all pairs of node boxes that overlap when
// inflated by margin. Pairs are emitted in input order with A < B, so
// diagnostics are reproducible across runs.
//
// The scan is a full O(n²) pairwise pass. Node counts are tens, not
// thousands, so a spatial index would cost more than it saves.
func DetectOverlaps(nodes []PositionedNode, margin float64) []OverlapPair {
	var pairs []OverlapPair
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if Overlaps(nodes[i], nodes[j], margin) {
				pairs = append(pairs, OverlapPair{A: i, B: j})
			}
		}
	}
	return pairs
}

// CountOverlaps returns the number of overlapping node-box pairs.
func CountOverlaps(nodes []PositionedNode, margin float64) int {
	count := 0
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if Overlaps(nodes[i], nodes[j], margin) {
				count++
			}
		}
	}
	return count
}
