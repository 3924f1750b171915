package graph

import (
	"errors"

	"golang.org/x/tools/container/intsets"
)

// ErrVertexOutOfRange indicates an edge referenced a vertex id outside
// [0, N). Callers check it with errors.Is; the graph package itself never
// recovers from it.
var ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

// Edge is a directed, labeled connection between two vertices.
type Edge struct {
	// From is the source vertex id.
	From int
	// To is the destination vertex id.
	To int
	// Label is the edge's integer label. Edges compare equal for matching
	// purposes iff their labels are equal.
	Label int
}

// Graph is an immutable directed, vertex- and edge-labeled multigraph.
// Vertex ids are dense integers in [0, VertexCount()). Construct one with
// Builder; there is no exported way to mutate a Graph once built.
type Graph struct {
	vlabel []int // vlabel[v] = label of vertex v

	// out[v] / in[v] hold the edges leaving/entering v in insertion
	// order, giving stable, cheap bulk enumeration (spec §4.1).
	out [][]Edge
	in  [][]Edge

	// succ[v] / pred[v] are the unique target/source vertex sets of v's
	// outgoing/incoming edges, for O(1)-amortized membership tests and
	// intersection-cardinality arithmetic (spec §4.1 rationale).
	succ []intsets.Sparse
	pred []intsets.Sparse

	edgeCount int
}

// VertexCount returns the number of vertices N; vertex ids are [0, N).
func (g *Graph) VertexCount() int { return len(g.vlabel) }

// EdgeCount returns the total number of edges, counting parallel edges
// individually.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// VLabel returns the integer label of vertex v.
//
// Precondition: 0 <= v < g.VertexCount(); violating it is a logic error in
// the caller (an already-built, size-bounded Graph), so this panics rather
// than returning an error, matching the §7 treatment of precondition
// violations.
func (g *Graph) VLabel(v int) int {
	return g.vlabel[v]
}

// OutEdges returns the edges leaving v, in construction order.
func (g *Graph) OutEdges(v int) []Edge {
	return g.out[v]
}

// InEdges returns the edges entering v, in construction order.
func (g *Graph) InEdges(v int) []Edge {
	return g.in[v]
}

// SuccSet returns the set of unique targets of v's outgoing edges. The
// returned set must not be mutated by the caller; it is the Graph's own
// backing set.
func (g *Graph) SuccSet(v int) *intsets.Sparse {
	return &g.succ[v]
}

// PredSet returns the set of unique sources of v's incoming edges. The
// returned set must not be mutated by the caller; it is the Graph's own
// backing set.
func (g *Graph) PredSet(v int) *intsets.Sparse {
	return &g.pred[v]
}
