// Package pkg provides the libraries that decode an Avalanche Data Format
// container, reconstruct the GraphScript node graph inside it, and compute a
// deterministic layered layout for that graph.
//
// # Data flow
//
//	Container bytes
//	     ↓
//	[adf]    - parse the binary container (type directory, instances, strings)
//	     ↓
//	[gs]     - walk the Graph/Node/DataSet/Data record tree at the instance's offset
//	     ↓
//	[hash32] - resolve class- and field-name hashes back to identifiers
//	[value]  - render Data payloads and dereference variable nodes
//	     ↓
//	[layout] - assign layers, order within layers, and place nodes on a grid
//	     ↓
//	[gsdoc]  - assemble the caller-facing Document (nodes, pins, edges, positions)
//
// # Supporting packages
//
// [cache] stores decoded and laid-out Documents behind a pluggable backend
// (no-op, filesystem, or Redis). [config] loads the TOML file that tunes
// dictionary, layout, cache, server, and archive settings. [archive] persists
// a record of each decode run to MongoDB. [dotpreview] renders a Document to
// Graphviz DOT/SVG for visual debugging of the layout engine's output.
// [httputil] provides retry-with-backoff for the services above to dial.
// [observability] exposes no-op-by-default hooks for pipeline and cache
// events so a deployment can wire in its own metrics backend.
//
// # Entry points
//
// [httpapi] exposes the pipeline over HTTP. The CLI in internal/cli drives
// the same pipeline from the command line.
package pkg
