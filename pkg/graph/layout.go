package graph

import (
	"encoding/json"

	"github.com/narravis/narravis/pkg/layout"
)

// =============================================================================
// Layout - Serialized Layout Result
// =============================================================================

// Layout is the serialization format for one computed scene layout. It
// mirrors [layout.Result] with stable JSON/BSON field names, so the core
// engine types stay free of storage concerns.
type Layout struct {
	Scene        string           `json:"scene,omitempty" bson:"scene,omitempty"`
	Archetype    string           `json:"archetype" bson:"archetype"`
	Nodes        []PositionedNode `json:"nodes" bson:"nodes"`
	Edges        []LayoutEdge     `json:"edges" bson:"edges"`
	Bounds       Bounds           `json:"bounds" bson:"bounds"`
	Metrics      Metrics          `json:"metrics" bson:"metrics"`
	ProcessingMs float64          `json:"processing_ms" bson:"processing_ms"`
	Success      bool             `json:"success" bson:"success"`
	Confidence   float64          `json:"confidence" bson:"confidence"`
	Error        string           `json:"error,omitempty" bson:"error,omitempty"`
}

// PositionedNode is a placed node box: top-left corner plus size.
type PositionedNode struct {
	ID    string  `json:"id" bson:"id"`
	Label string  `json:"label,omitempty" bson:"label,omitempty"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
	W     float64 `json:"w" bson:"w"`
	H     float64 `json:"h" bson:"h"`
}

// LayoutEdge is a routed edge polyline. Edges with no points are dangling
// references; renderers skip them.
type LayoutEdge struct {
	From   string  `json:"from" bson:"from"`
	To     string  `json:"to" bson:"to"`
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`
	Points []Point `json:"points,omitempty" bson:"points,omitempty"`
}

// Point is a 2D coordinate.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Bounds is the bounding box of all placed nodes.
type Bounds struct {
	MinX   float64 `json:"min_x" bson:"min_x"`
	MinY   float64 `json:"min_y" bson:"min_y"`
	MaxX   float64 `json:"max_x" bson:"max_x"`
	MaxY   float64 `json:"max_y" bson:"max_y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Metrics carries the layout quality summary.
type Metrics struct {
	OverlapCount       int     `json:"overlap_count" bson:"overlap_count"`
	EdgeCrossings      int     `json:"edge_crossings" bson:"edge_crossings"`
	TotalArea          float64 `json:"total_area" bson:"total_area"`
	AverageNodeSpacing float64 `json:"average_node_spacing" bson:"average_node_spacing"`
	LayoutBalance      float64 `json:"layout_balance" bson:"layout_balance"`
}

// =============================================================================
// Result ↔ Layout Conversion
// =============================================================================

// FromResult converts an engine result to its serialization format.
func FromResult(scene Scene, res layout.Result) Layout {
	out := Layout{
		Scene:        scene.Title,
		Archetype:    scene.Archetype,
		Nodes:        make([]PositionedNode, len(res.Nodes)),
		Edges:        make([]LayoutEdge, len(res.Edges)),
		Bounds:       Bounds(res.Bounds),
		Metrics:      Metrics(res.Metrics),
		ProcessingMs: float64(res.ProcessingTime.Microseconds()) / 1000,
		Success:      res.Success,
		Confidence:   res.Confidence,
		Error:        res.Error,
	}
	for i, n := range res.Nodes {
		out.Nodes[i] = PositionedNode(n)
	}
	for i, e := range res.Edges {
		edge := LayoutEdge{From: e.From, To: e.To, Label: e.Label}
		if len(e.Points) > 0 {
			edge.Points = make([]Point, len(e.Points))
			for j, p := range e.Points {
				edge.Points[j] = Point(p)
			}
		}
		out.Edges[i] = edge
	}
	return out
}

// UnmarshalLayout deserializes JSON bytes to a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// MarshalLayout serializes a Layout to indented JSON.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}
