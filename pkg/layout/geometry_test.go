package layout

import (
	"math"
	"strings"
	"testing"
)

func TestNodeWidth(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"empty label uses base", "", cfg.NodeWidth},
		{"short label uses base", "api", cfg.NodeWidth},
		{"long label grows", strings.Repeat("x", 30), 30*cfg.CharWidth + cfg.LabelPadding},
		{"very long label capped at 2x base", strings.Repeat("x", 200), cfg.NodeWidth * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NodeWidth(NodeSpec{ID: "n", Label: tt.label}, cfg)
			if got != tt.want {
				t.Errorf("NodeWidth(%q) = %g, want %g", tt.label, got, tt.want)
			}
		})
	}
}

func TestNodeWidthCountsRunes(t *testing.T) {
	cfg := DefaultConfig()
	// Multi-byte labels must be sized by rune count, not byte count.
	ascii := NodeWidth(NodeSpec{Label: strings.Repeat("a", 20)}, cfg)
	unicode := NodeWidth(NodeSpec{Label: strings.Repeat("ü", 20)}, cfg)
	if ascii != unicode {
		t.Errorf("rune sizing mismatch: ascii %g, unicode %g", ascii, unicode)
	}
}

func TestCenter(t *testing.T) {
	n := PositionedNode{X: 100, Y: 200, W: 160, H: 60}
	c := Center(n)
	if c.X != 180 || c.Y != 230 {
		t.Errorf("Center = %+v, want (180, 230)", c)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(Point{0, 0}, Point{3, 4}); d != 5 {
		t.Errorf("Distance = %g, want 5", d)
	}
	if d := Distance(Point{7, 7}, Point{7, 7}); d != 0 {
		t.Errorf("Distance of identical points = %g, want 0", d)
	}
}

func TestOverlaps(t *testing.T) {
	a := PositionedNode{X: 0, Y: 0, W: 100, H: 50}

	tests := []struct {
		name   string
		b      PositionedNode
		margin float64
		want   bool
	}{
		{"identical boxes", a, 0, true},
		{"clearly separate", PositionedNode{X: 500, Y: 500, W: 100, H: 50}, 0, false},
		{"touching edges no margin", PositionedNode{X: 100, Y: 0, W: 100, H: 50}, 0, false},
		{"touching edges with margin", PositionedNode{X: 100, Y: 0, W: 100, H: 50}, 10, true},
		{"x overlap only", PositionedNode{X: 50, Y: 200, W: 100, H: 50}, 0, false},
		{"y overlap only", PositionedNode{X: 300, Y: 10, W: 100, H: 50}, 0, false},
		{"both axes overlap", PositionedNode{X: 50, Y: 25, W: 100, H: 50}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(a, tt.b, tt.margin); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Symmetry is part of the contract.
			if got := Overlaps(tt.b, a, tt.margin); got != tt.want {
				t.Errorf("Overlaps not symmetric for %s", tt.name)
			}
		})
	}
}

func TestOverlapDepth(t *testing.T) {
	a := PositionedNode{X: 0, Y: 0, W: 100, H: 50}
	b := PositionedNode{X: 80, Y: 0, W: 100, H: 50}

	// Centers 80 apart on x, combined half-widths 100: depth min(20, 50).
	if d := overlapDepth(a, b, 0); math.Abs(d-20) > 1e-9 {
		t.Errorf("overlapDepth = %g, want 20", d)
	}

	far := PositionedNode{X: 500, Y: 500, W: 100, H: 50}
	if d := overlapDepth(a, far, 0); d != 0 {
		t.Errorf("overlapDepth of separate boxes = %g, want 0", d)
	}
}

func TestClampToCanvas(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		node PositionedNode
	}{
		{"off left", PositionedNode{X: -50, Y: 100, W: 160, H: 60}},
		{"off top", PositionedNode{X: 100, Y: -20, W: 160, H: 60}},
		{"off right", PositionedNode{X: 5000, Y: 100, W: 160, H: 60}},
		{"off bottom", PositionedNode{X: 100, Y: 5000, W: 160, H: 60}},
		{"already inside", PositionedNode{X: 500, Y: 500, W: 160, H: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.node
			clampToCanvas(&n, cfg)
			if n.X < cfg.Margin || n.X+n.W > cfg.Width-cfg.Margin {
				t.Errorf("x out of bounds after clamp: %+v", n)
			}
			if n.Y < cfg.Margin || n.Y+n.H > cfg.Height-cfg.Margin {
				t.Errorf("y out of bounds after clamp: %+v", n)
			}
		})
	}
}
