package layout

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func specNodes(n int) []NodeSpec {
	nodes := make([]NodeSpec, n)
	for i := range nodes {
		nodes[i] = NodeSpec{ID: fmt.Sprintf("n%d", i+1), Label: fmt.Sprintf("Step %d", i+1)}
	}
	return nodes
}

func chainEdges(nodes []NodeSpec) []EdgeSpec {
	edges := make([]EdgeSpec, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		edges = append(edges, EdgeSpec{From: nodes[i-1].ID, To: nodes[i].ID})
	}
	return edges
}

func TestFlowPlacesChainLeftToRight(t *testing.T) {
	cfg := DefaultConfig()
	nodes := specNodes(4)
	out := flowStrategy{}.place(nodes, chainEdges(nodes), cfg)

	for i := 1; i < len(out); i++ {
		if out[i].X <= out[i-1].X {
			t.Errorf("node %s at x=%g not right of %s at x=%g", out[i].ID, out[i].X, out[i-1].ID, out[i-1].X)
		}
		if out[i].Y != out[0].Y {
			t.Errorf("chain should stay in one lane, node %s at y=%g", out[i].ID, out[i].Y)
		}
	}
}

func TestFlowBranchOpensNewLane(t *testing.T) {
	cfg := DefaultConfig()
	nodes := specNodes(3)
	edges := []EdgeSpec{
		{From: "n1", To: "n2"},
		{From: "n1", To: "n3"},
	}
	out := flowStrategy{}.place(nodes, edges, cfg)

	if out[1].Y == out[2].Y {
		t.Error("branch siblings should land in different lanes")
	}
}

func TestFlowCycleFallsBackToInputOrder(t *testing.T) {
	cfg := DefaultConfig()
	nodes := specNodes(3)
	edges := []EdgeSpec{
		{From: "n1", To: "n2"},
		{From: "n2", To: "n3"},
		{From: "n3", To: "n1"},
	}
	out := flowStrategy{}.place(nodes, edges, cfg)

	for i := 1; i < len(out); i++ {
		if out[i].X <= out[i-1].X {
			t.Error("cycle fallback should place nodes in input order along x")
		}
	}
}

func TestTreeDepthMapsToRank(t *testing.T) {
	cfg := DefaultConfig()
	nodes := specNodes(5)
	// n1 is root; n2, n3 children; n4, n5 grandchildren under n2.
	edges := []EdgeSpec{
		{From: "n1", To: "n2"},
		{From: "n1", To: "n3"},
		{From: "n2", To: "n4"},
		{From: "n2", To: "n5"},
	}
	out := treeStrategy{}.place(nodes, edges, cfg)

	if out[1].Y <= out[0].Y {
		t.Error("children should rank below the root")
	}
	if out[1].Y != out[2].Y {
		t.Error("siblings should share a rank")
	}
	if out[3].Y <= out[1].Y {
		t.Error("grandchildren should rank below children")
	}
	if out[3].Y != out[4].Y {
		t.Error("grandchildren should share a rank")
	}
}

func TestTimelineSpreadsEvenly(t *testing.T) {
	cfg := DefaultConfig()
	nodes := specNodes(5)
	out := timelineStrategy{}.place(nodes, nil, cfg)

	var steps []float64
	for i := 1; i < len(out); i++ {
		steps = append(steps, Center(out[i]).X-Center(out[i-1]).X)
	}
	for _, s := range steps {
		if math.Abs(s-steps[0]) > 1e-9 {
			t.Errorf("uneven timeline spacing: %v", steps)
		}
	}

	// One horizontal band at the canvas midline.
	for _, n := range out {
		if math.Abs(Center(n).Y-cfg.Height/2) > 1e-9 {
			t.Errorf("node %s off the timeline band: y center %g", n.ID, Center(n).Y)
		}
	}

	if c := Center(out[0]); math.Abs(c.X-cfg.Margin) > 1e-9 {
		t.Errorf("first node center at %g, want margin %g", c.X, cfg.Margin)
	}
	if c := Center(out[4]); math.Abs(c.X-(cfg.Width-cfg.Margin)) > 1e-9 {
		t.Errorf("last node center at %g, want %g", c.X, cfg.Width-cfg.Margin)
	}
}

func TestTimelineSingleNodeCenterless(t *testing.T) {
	cfg := DefaultConfig()
	out := timelineStrategy{}.place(specNodes(1), nil, cfg)
	if c := Center(out[0]); math.Abs(c.X-cfg.Margin) > 1e-9 {
		t.Errorf("single node center at %g, want margin", c.X)
	}
}

func TestMatrixGridShape(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		n        int
		wantCols int
	}{
		{1, 1},
		{4, 2},
		{5, 3},
		{9, 3},
		{10, 4},
	}

	for _, tt := range tests {
		out := matrixStrategy{}.place(specNodes(tt.n), nil, cfg)

		// Nodes fill the grid row-major, so the first row's population is
		// the column count.
		rowY := out[0].Y
		gotCols := 0
		for _, n := range out {
			if n.Y == rowY {
				gotCols++
			}
		}
		if gotCols != tt.wantCols {
			t.Errorf("n=%d: first row has %d cells, want %d", tt.n, gotCols, tt.wantCols)
		}
	}
}

func TestCycleAngularSpacing(t *testing.T) {
	cfg := DefaultConfig()
	n := 6
	out := cycleStrategy{}.place(specNodes(n), nil, cfg)

	center := Point{X: cfg.Width / 2, Y: cfg.Height / 2}
	want := 2 * math.Pi / float64(n) // 60 degrees

	var radii []float64
	for i := range out {
		c := Center(out[i])
		radii = append(radii, Distance(center, c))
	}
	for _, r := range radii {
		if math.Abs(r-radii[0]) > 1e-6 {
			t.Errorf("nodes not on a common circle: radii %v", radii)
		}
	}

	for i := range out {
		a := Center(out[i])
		b := Center(out[(i+1)%n])
		angleA := math.Atan2(a.Y-center.Y, a.X-center.X)
		angleB := math.Atan2(b.Y-center.Y, b.X-center.X)
		diff := math.Mod(angleB-angleA+3*math.Pi, 2*math.Pi) - math.Pi
		if math.Abs(math.Abs(diff)-want) > 1e-6 {
			t.Errorf("angular spacing between %d and %d = %g rad, want %g", i, (i+1)%n, diff, want)
		}
	}
}

func TestCycleSixNodesNoOverlap(t *testing.T) {
	cfg := DefaultConfig()
	out := cycleStrategy{}.place(specNodes(6), nil, cfg)
	if count := CountOverlaps(out, cfg.MinSeparation); count != 0 {
		t.Errorf("6-node cycle has %d overlaps before resolution, want 0", count)
	}
}

func TestStrategiesAreDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	nodes := specNodes(8)
	edges := chainEdges(nodes)

	for _, arch := range []Archetype{Flow, Tree, Timeline, Matrix, Cycle} {
		t.Run(arch.String(), func(t *testing.T) {
			s := strategyFor(arch)
			first := s.place(nodes, edges, cfg)
			second := s.place(nodes, edges, cfg)
			if !reflect.DeepEqual(first, second) {
				t.Error("identical inputs produced different placements")
			}
		})
	}
}

func TestStrategiesPreserveNodeIdentity(t *testing.T) {
	cfg := DefaultConfig()
	nodes := specNodes(7)
	edges := chainEdges(nodes)

	for _, arch := range []Archetype{Flow, Tree, Timeline, Matrix, Cycle} {
		out := strategyFor(arch).place(nodes, edges, cfg)
		if len(out) != len(nodes) {
			t.Fatalf("%s: %d nodes out, want %d", arch, len(out), len(nodes))
		}
		for i, n := range out {
			if n.ID != nodes[i].ID || n.Label != nodes[i].Label {
				t.Errorf("%s: node %d identity changed: %+v", arch, i, n)
			}
			if n.W <= 0 || n.H <= 0 {
				t.Errorf("%s: node %s has non-positive size", arch, n.ID)
			}
		}
	}
}
