// Package graph defines the serialization format for Narravis diagram
// documents and computed layouts.
//
// A [Document] is what the upstream classifier hands over: one or more
// scenes, each carrying an abstract graph (nodes, directed edges) and the
// archetype the classifier picked for it. A [Layout] is the serialized form
// of a computed layout result, used for API responses, storage, caching, and
// debug export.
//
// The format is human-readable JSON designed for round-trip fidelity:
// import → layout → export → re-import produces identical structures. BSON
// tags mirror the JSON tags so documents stored in MongoDB read back
// identically.
package graph
