package layout

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestResolveSeparatesOverlappingPair(t *testing.T) {
	cfg := DefaultConfig()
	nodes := []PositionedNode{
		{ID: "a", X: 900, Y: 500, W: 160, H: 60},
		{ID: "b", X: 940, Y: 510, W: 160, H: 60},
	}

	_, remaining, err := resolveOverlaps(context.Background(), nodes, cfg, quietLogger())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if remaining != 0 {
		t.Errorf("remaining overlaps = %d, want 0", remaining)
	}
}

func TestResolveIdenticalCentersPreservesCentroid(t *testing.T) {
	cfg := DefaultConfig()
	// Pathological strategy output: two boxes at the exact same spot, at
	// the canvas center so clamping never kicks in.
	x := (cfg.Width - 160) / 2
	y := (cfg.Height - 60) / 2
	nodes := []PositionedNode{
		{ID: "a", X: x, Y: y, W: 160, H: 60},
		{ID: "b", X: x, Y: y, W: 160, H: 60},
	}
	wantCx := Center(nodes[0]).X
	wantCy := Center(nodes[0]).Y

	_, remaining, err := resolveOverlaps(context.Background(), nodes, cfg, quietLogger())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("remaining overlaps = %d, want 0", remaining)
	}

	ca, cb := Center(nodes[0]), Center(nodes[1])
	gotCx := (ca.X + cb.X) / 2
	gotCy := (ca.Y + cb.Y) / 2
	if math.Abs(gotCx-wantCx) > 1e-6 || math.Abs(gotCy-wantCy) > 1e-6 {
		t.Errorf("pair centroid moved: (%g, %g) -> (%g, %g)", wantCx, wantCy, gotCx, gotCy)
	}

	// Identical centers push apart along the x-axis fallback.
	if ca.Y != cb.Y {
		t.Errorf("fallback push should be horizontal: y %g vs %g", ca.Y, cb.Y)
	}
}

func TestResolveKeepsNodesInBounds(t *testing.T) {
	cfg := DefaultConfig()
	// A pile of boxes in a corner: resolution has to spread them without
	// escaping the canvas.
	var nodes []PositionedNode
	for i := 0; i < 8; i++ {
		nodes = append(nodes, PositionedNode{
			ID: string(rune('a' + i)),
			X:  cfg.Margin + float64(i)*5,
			Y:  cfg.Margin + float64(i)*3,
			W:  160, H: 60,
		})
	}

	_, _, err := resolveOverlaps(context.Background(), nodes, cfg, quietLogger())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	for _, n := range nodes {
		if n.X < cfg.Margin || n.X+n.W > cfg.Width-cfg.Margin ||
			n.Y < cfg.Margin || n.Y+n.H > cfg.Height-cfg.Margin {
			t.Errorf("node %s escaped canvas: %+v", n.ID, n)
		}
	}
}

func TestResolveTerminatesAtMaxRounds(t *testing.T) {
	cfg := DefaultConfig()
	// More boxes than the usable canvas can separate at this margin: the
	// loop must stop at the budget, not spin.
	cfg.Width = 500
	cfg.Height = 400
	cfg.Margin = 20

	var nodes []PositionedNode
	for i := 0; i < 20; i++ {
		nodes = append(nodes, PositionedNode{
			ID: string(rune('a' + i)),
			X:  100, Y: 100, W: 160, H: 60,
		})
	}

	rounds, remaining, err := resolveOverlaps(context.Background(), nodes, cfg, quietLogger())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if rounds != cfg.MaxRounds {
		t.Errorf("rounds = %d, want budget %d", rounds, cfg.MaxRounds)
	}
	if remaining == 0 {
		t.Log("dense case resolved anyway; exhaustion path not exercised")
	}
}

func TestResolveNoOverlapsIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	nodes := []PositionedNode{
		{ID: "a", X: 100, Y: 100, W: 160, H: 60},
		{ID: "b", X: 600, Y: 600, W: 160, H: 60},
	}
	before := make([]PositionedNode, len(nodes))
	copy(before, nodes)

	rounds, remaining, err := resolveOverlaps(context.Background(), nodes, cfg, quietLogger())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if rounds != 0 || remaining != 0 {
		t.Errorf("rounds=%d remaining=%d, want 0/0", rounds, remaining)
	}
	for i := range nodes {
		if nodes[i] != before[i] {
			t.Errorf("node %s moved without overlaps: %+v", nodes[i].ID, nodes[i])
		}
	}
}

func TestResolveHonorsCancellation(t *testing.T) {
	cfg := DefaultConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	nodes := []PositionedNode{
		{ID: "a", X: 900, Y: 500, W: 160, H: 60},
		{ID: "b", X: 910, Y: 505, W: 160, H: 60},
	}
	_, _, err := resolveOverlaps(ctx, nodes, cfg, quietLogger())
	if err == nil {
		t.Error("cancelled context should surface an error")
	}
}
