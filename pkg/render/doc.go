// Package render contains debug renderers for computed layouts.
//
// The real Narravis frames are drawn by the downstream animation renderer;
// nothing here appears in production output. These renderers exist to make
// layout geometry inspectable during development:
//
//   - [render/svg] draws the engine's own geometry (boxes, labels, edge
//     polylines) exactly as computed.
//   - [render/dot] exports a scene to Graphviz DOT and rasterizes it, so the
//     engine's placement can be compared against Graphviz's on the same
//     input.
//
// [render/svg]: https://pkg.go.dev/github.com/narravis/narravis/pkg/render/svg
// [render/dot]: https://pkg.go.dev/github.com/narravis/narravis/pkg/render/dot
package render
