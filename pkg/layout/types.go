package layout

import (
	"fmt"
	"time"
)

// =============================================================================
// Input Types
// =============================================================================

// NodeSpec describes a diagram node before placement. Nodes are identified
// by a unique, non-empty ID; the label drives box sizing.
type NodeSpec struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// EdgeSpec describes a directed edge between two nodes by ID.
// An edge referencing an unknown node is dropped with a warning, never fatal.
type EdgeSpec struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// Archetype selects the initial-placement strategy for a diagram.
type Archetype int

// Diagram archetypes. Each maps to one placement strategy.
const (
	Flow Archetype = iota
	Tree
	Timeline
	Matrix
	Cycle
)

var archetypeNames = map[Archetype]string{
	Flow:     "flow",
	Tree:     "tree",
	Timeline: "timeline",
	Matrix:   "matrix",
	Cycle:    "cycle",
}

// String returns the lowercase archetype name.
func (a Archetype) String() string {
	if s, ok := archetypeNames[a]; ok {
		return s
	}
	return fmt.Sprintf("archetype(%d)", int(a))
}

// Valid reports whether a is one of the known archetypes.
func (a Archetype) Valid() bool {
	_, ok := archetypeNames[a]
	return ok
}

// ParseArchetype converts a string name ("flow", "tree", ...) to an Archetype.
func ParseArchetype(s string) (Archetype, error) {
	for a, name := range archetypeNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown archetype %q", s)
}

// =============================================================================
// Output Types
// =============================================================================

// Point is a 2D coordinate in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PositionedNode is a node box after placement: top-left corner plus size.
// Each Result owns its own slice; positioned nodes are never shared between
// results.
type PositionedNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

// Edge is a routed edge: an ordered polyline between two node boxes.
// A dangling edge keeps its endpoints but has no points; renderers skip it.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Label  string  `json:"label,omitempty"`
	Points []Point `json:"points"`
}

// Bounds is the minimal axis-aligned rectangle containing all positioned
// nodes. It is recomputed from the node set, never stored as stale state.
type Bounds struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	MaxX   float64 `json:"max_x"`
	MaxY   float64 `json:"max_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Metrics summarizes layout quality.
type Metrics struct {
	// OverlapCount is the number of node-box pairs that still overlap after
	// resolution, with boxes inflated by the separation margin. Zero in a
	// fully resolved layout.
	OverlapCount int `json:"overlap_count"`

	// EdgeCrossings counts pairs of routed edge segments that properly
	// intersect each other.
	EdgeCrossings int `json:"edge_crossings"`

	// TotalArea is the area of the bounding box.
	TotalArea float64 `json:"total_area"`

	// AverageNodeSpacing is the mean center-to-center distance over all
	// node pairs, 0 for fewer than two nodes.
	AverageNodeSpacing float64 `json:"average_node_spacing"`

	// LayoutBalance in [0,1] rewards layouts whose nodes cluster near their
	// common centroid rather than scattering to the canvas extremes.
	LayoutBalance float64 `json:"layout_balance"`
}

// Result is the sole artifact produced by a layout call. It is immutable
// once constructed.
type Result struct {
	Nodes          []PositionedNode `json:"nodes"`
	Edges          []Edge           `json:"edges"`
	Bounds         Bounds           `json:"bounds"`
	Metrics        Metrics          `json:"metrics"`
	ProcessingTime time.Duration    `json:"processing_time"`
	Success        bool             `json:"success"`
	Confidence     float64          `json:"confidence"`
	Error          string           `json:"error,omitempty"`
}
