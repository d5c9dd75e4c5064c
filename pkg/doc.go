// Package pkg provides the core libraries for Narravis diagram layout.
//
// # Overview
//
// Narravis turns structured explanations into animated diagrams. This
// repository holds the layout subsystem: it takes an abstract graph (nodes,
// edges, archetype) extracted from a narration and computes concrete 2D
// geometry for the renderer. The pkg directory is organized into these areas:
//
//  1. [layout] - The layout engine (placement, overlap resolution, routing, scoring)
//  2. [graph] - Serialization types for documents, scenes, and computed layouts
//  3. [pipeline] - Orchestration with caching (document → per-scene layouts)
//  4. [cache] - Layout and artifact caching (file, Redis, null backends)
//  5. [store] - Persistence for documents and their layouts (memory, MongoDB)
//  6. [render] - Debug rendering (SVG previews, Graphviz DOT comparisons)
//
// # Architecture
//
// The typical data flow through Narravis:
//
//	Narrated explanation (upstream classifier)
//	         ↓
//	    [graph] package (Document with Scenes)
//	         ↓
//	    [layout] package (positions, polylines, metrics, confidence)
//	         ↓
//	    [render] package (SVG/DOT debug artifacts)
//	         ↓
//	    Downstream animation renderer
//
// # Quick Start
//
// Lay out a small flow diagram:
//
//	import (
//	    "context"
//	    "github.com/narravis/narravis/pkg/layout"
//	)
//
//	engine, _ := layout.New(layout.DefaultConfig())
//	result := engine.Generate(context.Background(),
//	    []layout.NodeSpec{{ID: "a", Label: "Request"}, {ID: "b", Label: "Handler"}},
//	    []layout.EdgeSpec{{From: "a", To: "b"}},
//	    layout.ArchetypeFlow)
//	for _, n := range result.Nodes {
//	    fmt.Printf("%s at (%.0f, %.0f)\n", n.ID, n.X, n.Y)
//	}
//
// Run the full cached pipeline over a document:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, _ := graph.LoadDocument("explanation.json")
//	res, _ := runner.LayoutDocument(ctx, doc, pipeline.Options{})
//
// # Main Packages
//
// [layout] - The layout engine. Five archetype strategies (flow, tree,
// timeline, matrix, cycle), round-based overlap resolution, canvas clamping,
// straight-line edge routing, and quality metrics with a confidence score.
// Generate never panics and never overlaps nodes in a successful result.
//
// [graph] - Wire and storage types. A Document is a titled list of Scenes;
// each Scene carries nodes, edges, and the archetype the upstream classifier
// chose. Layout mirrors the engine result with stable JSON/BSON field names.
//
// [pipeline] - The document → layouts orchestration used by CLI and API.
// Wraps the engine with content-hash caching (in-process LRU plus a shared
// cache backend) so replayed documents skip recomputation.
//
// [cache] - Cache backends behind one interface: FileCache for the CLI,
// RedisCache for the API server, NullCache to disable. Keys come from a
// [cache.Keyer] so every component agrees on the schema.
//
// [store] - Persistence for documents and their computed layouts. MemoryStore
// for tests and single-process use, MongoStore for the API server.
//
// [render/svg] - Minimal SVG writer for visual inspection of layouts.
//
// [render/dot] - Graphviz DOT export and rasterization, used to compare the
// engine's placement against Graphviz's on the same scene.
//
// [errors] - Structured error codes shared across packages.
//
// [observability] - Hook interfaces for metrics and tracing without binding
// the libraries to a specific backend.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Engine only
//	go test -run Example        # Examples only
//
// [layout]: https://pkg.go.dev/github.com/narravis/narravis/pkg/layout
// [graph]: https://pkg.go.dev/github.com/narravis/narravis/pkg/graph
// [pipeline]: https://pkg.go.dev/github.com/narravis/narravis/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/narravis/narravis/pkg/cache
// [cache.Keyer]: https://pkg.go.dev/github.com/narravis/narravis/pkg/cache#Keyer
// [store]: https://pkg.go.dev/github.com/narravis/narravis/pkg/store
// [render]: https://pkg.go.dev/github.com/narravis/narravis/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/narravis/narravis/pkg/render/svg
// [render/dot]: https://pkg.go.dev/github.com/narravis/narravis/pkg/render/dot
// [errors]: https://pkg.go.dev/github.com/narravis/narravis/pkg/errors
// [observability]: https://pkg.go.dev/github.com/narravis/narravis/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/narravis/narravis/pkg/buildinfo
package pkg
