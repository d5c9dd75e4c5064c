// Package layout turns an abstract diagram graph into a concrete 2D
// arrangement: node positions and sizes, edge polylines, a bounding box, and
// quality metrics.
//
// # Pipeline
//
// A layout run has five phases, orchestrated by [Engine.Generate]:
//
//  1. Initial placement: one strategy per [Archetype] (flow, tree, timeline,
//     matrix, cycle) computes archetype-appropriate positions with no
//     overlap guarantee.
//  2. Overlap resolution: an iterative, archetype-agnostic pass pushes
//     overlapping boxes apart symmetrically until no pair of boxes inflated
//     by the separation margin intersects, or a fixed round budget runs out.
//  3. Boundary clamping: every box is kept inside the canvas margins.
//  4. Edge routing: straight center-to-center polylines.
//  5. Scoring: overlap count, spacing, balance, edge crossings, and a single
//     confidence value dominated by the zero-overlap signal.
//
// A successful [Result] guarantees zero overlapping node pairs unless the
// resolution budget was exhausted, in which case the result still succeeds
// with proportionally reduced confidence. Invalid inputs (empty node IDs,
// dangling edges) are dropped with a warning and never fail the call;
// unexpected faults are converted to a failed Result at the engine boundary
// rather than escaping as panics.
//
// # Concurrency
//
// One Generate call is synchronous and single-threaded. The Engine itself is
// immutable after construction, so independent calls may run concurrently,
// one goroutine per diagram, with no locking.
//
// # Usage
//
//	engine, err := layout.New(layout.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	res := engine.Generate(ctx, nodes, edges, layout.Flow)
//	if !res.Success {
//	    // skip this diagram, show a placeholder
//	}
package layout
