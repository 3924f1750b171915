// Package synth builds canonical graph topologies directly on top of
// package graph's Builder: cycles, complete graphs, stars, wheels, paths,
// and complete bipartite graphs. These are the standard fixtures used to
// stress a subgraph/exact isomorphism engine, since most of them embed
// predictably into each other (a k-vertex path into an n-cycle for k <= n,
// a star into a wheel's spokes, and so on) and scale cleanly for
// benchmarking.
//
// Every vertex built here carries the same label unless told otherwise
// (Options.VertexLabel), since topology rather than labeling is the point of a
// synthetic fixture; callers who need labeled fixtures to probe R0 should
// build their own graph.Builder sequence instead.
package synth
