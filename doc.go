// Package vf2iso implements VF2-style exact and subgraph isomorphism
// matching over immutable, directed, vertex- and edge-labeled multigraphs.
//
// The module is organized as:
//
//	graph/       — the immutable graph data model (Builder, Graph, Edge)
//	match/       — the State, feasibility rules R0-R4, candidate generation,
//	               and the recursive backtracking search (Isomorphic,
//	               SubIsomorphic, FindMapping)
//	loader/      — the "t/v/e" line-format graph-file reader
//	cli/         — the vf2iso command-line front end (match, batch)
//	cmd/vf2iso/  — the CLI's main package
//
// A typical exact-match check:
//
//	g1, _ := loader.LoadGraphs(r1)
//	g2, _ := loader.LoadGraphs(r2)
//	ok := match.Isomorphic(g1[0], g2[0])
//
// Subgraph isomorphism asks whether a smaller query graph embeds into a
// larger data graph, permitting extra unmatched edges and vertices on the
// data side:
//
//	ok := match.SubIsomorphic(query, data)
package vf2iso
