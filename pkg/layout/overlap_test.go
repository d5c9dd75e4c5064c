package layout

import (
	"reflect"
	"testing"
)

func TestDetectOverlaps(t *testing.T) {
	nodes := []PositionedNode{
		{ID: "a", X: 0, Y: 0, W: 100, H: 50},
		{ID: "b", X: 50, Y: 0, W: 100, H: 50},    // overlaps a
		{ID: "c", X: 500, Y: 500, W: 100, H: 50}, // isolated
		{ID: "d", X: 60, Y: 10, W: 100, H: 50},   // overlaps a and b
	}

	got := DetectOverlaps(nodes, 0)
	want := []OverlapPair{{0, 1}, {0, 3}, {1, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectOverlaps = %v, want %v", got, want)
	}

	if count := CountOverlaps(nodes, 0); count != len(want) {
		t.Errorf("CountOverlaps = %d, want %d", count, len(want))
	}
}

func TestDetectOverlapsEmpty(t *testing.T) {
	if pairs := DetectOverlaps(nil, 0); len(pairs) != 0 {
		t.Errorf("DetectOverlaps(nil) = %v, want empty", pairs)
	}
	if pairs := DetectOverlaps([]PositionedNode{{ID: "solo", W: 100, H: 50}}, 0); len(pairs) != 0 {
		t.Errorf("single node should never overlap, got %v", pairs)
	}
}

func TestDetectOverlapsDeterministicOrder(t *testing.T) {
	nodes := []PositionedNode{
		{ID: "a", X: 0, Y: 0, W: 100, H: 50},
		{ID: "b", X: 10, Y: 0, W: 100, H: 50},
		{ID: "c", X: 20, Y: 0, W: 100, H: 50},
	}

	first := DetectOverlaps(nodes, 0)
	for i := 0; i < 10; i++ {
		if again := DetectOverlaps(nodes, 0); !reflect.DeepEqual(first, again) {
			t.Fatalf("enumeration order changed between runs: %v vs %v", first, again)
		}
	}
	for _, p := range first {
		if p.A >= p.B {
			t.Errorf("pair %v not in i<j order", p)
		}
	}
}

func TestCountOverlapsRespectsMargin(t *testing.T) {
	// 20 apart edge to edge: separate at margin 0, overlapping at margin 40.
	nodes := []PositionedNode{
		{ID: "a", X: 0, Y: 0, W: 100, H: 50},
		{ID: "b", X: 120, Y: 0, W: 100, H: 50},
	}
	if count := CountOverlaps(nodes, 0); count != 0 {
		t.Errorf("margin 0: count = %d, want 0", count)
	}
	if count := CountOverlaps(nodes, 40); count != 1 {
		t.Errorf("margin 40: count = %d, want 1", count)
	}
}
