package graph

import (
	"github.com/narravis/narravis/pkg/errors"
	"github.com/narravis/narravis/pkg/layout"
)

// Validate checks a Document for structural problems the layout engine
// cannot absorb: no scenes, unknown archetypes, empty or duplicate node IDs.
// Dangling edges are deliberately not an error here — the engine drops them
// with a warning, and a document that is useful apart from one bad edge
// should still lay out.
func (d Document) Validate() error {
	if len(d.Scenes) == 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "document has no scenes")
	}
	for i, s := range d.Scenes {
		if err := s.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "scene %d", i)
		}
	}
	return nil
}

// Validate checks a single scene.
func (s Scene) Validate() error {
	if _, err := layout.ParseArchetype(s.Archetype); err != nil {
		return errors.New(errors.ErrCodeInvalidArchetype, "unknown archetype %q", s.Archetype)
	}

	seen := make(map[string]bool, len(s.Nodes))
	for _, n := range s.Nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			return err
		}
		if seen[n.ID] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
	}
	return nil
}

// ToLayoutInput converts a scene to the engine's input types.
func (s Scene) ToLayoutInput() ([]layout.NodeSpec, []layout.EdgeSpec, layout.Archetype, error) {
	arch, err := layout.ParseArchetype(s.Archetype)
	if err != nil {
		return nil, nil, 0, errors.New(errors.ErrCodeInvalidArchetype, "unknown archetype %q", s.Archetype)
	}

	nodes := make([]layout.NodeSpec, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = layout.NodeSpec{ID: n.ID, Label: n.DisplayLabel()}
	}
	edges := make([]layout.EdgeSpec, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = layout.EdgeSpec{From: e.From, To: e.To, Label: e.Label}
	}
	return nodes, edges, arch, nil
}
