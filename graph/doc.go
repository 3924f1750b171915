// Package graph provides an immutable, directed, vertex- and edge-labeled
// multigraph with fast adjacency enumeration and fast adjacency-membership
// tests — the data model the match engine searches over.
//
// A Graph is built once via Builder and frozen by Build(); nothing in this
// package mutates a Graph afterward. Vertex identifiers are dense integers
// in [0, N). Parallel edges and self-loops are both permitted.
//
// Two adjacency views are maintained per vertex, as required by the search
// engine in package match:
//
//   - bulk enumeration: OutEdges(u) / InEdges(v), used to match edge labels
//     when extending a partial mapping;
//   - set membership: SuccSet(u) / PredSet(v), backed by
//     golang.org/x/tools/container/intsets.Sparse, used for the
//     feasibility rules' frontier-intersection arithmetic and for the
//     deterministic "largest unmapped id" candidate-selection rule.
//
// Because a Graph never changes after Build(), it may be shared freely
// across concurrent searches (see package match's concurrency notes);
// no locking is needed anywhere in this package.
package graph
