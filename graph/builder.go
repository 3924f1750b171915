package graph

import "golang.org/x/tools/container/intsets"

// Builder constructs an immutable Graph incrementally. It is the only way
// to produce a Graph; once Build() returns, the result never changes.
//
// Usage:
//
//	b := graph.NewBuilder()
//	a := b.AddVertex(labelA)
//	c := b.AddVertex(labelC)
//	b.AddEdge(a, c, edgeLabel)
//	g, err := b.Build()
type Builder struct {
	vlabel []int
	edges  []Edge
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddVertex appends one vertex labeled label and returns its dense,
// sequential id.
func (b *Builder) AddVertex(label int) int {
	id := len(b.vlabel)
	b.vlabel = append(b.vlabel, label)

	return id
}

// AddEdge records a directed edge u->v with the given label. u and v must
// already have been returned by AddVertex on this Builder; Build will
// return ErrVertexOutOfRange if they have not. Parallel edges and
// self-loops (u == v) are both permitted, per spec.
func (b *Builder) AddEdge(u, v, label int) {
	b.edges = append(b.edges, Edge{From: u, To: v, Label: label})
}

// Build freezes the Builder into a Graph. It returns ErrVertexOutOfRange
// if any recorded edge references a vertex id outside [0, N).
func (b *Builder) Build() (*Graph, error) {
	n := len(b.vlabel)
	g := &Graph{
		vlabel: append([]int(nil), b.vlabel...),
		out:    make([][]Edge, n),
		in:     make([][]Edge, n),
		succ:   make([]intsets.Sparse, n),
		pred:   make([]intsets.Sparse, n),
	}
	for _, e := range b.edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, ErrVertexOutOfRange
		}
		g.out[e.From] = append(g.out[e.From], e)
		g.in[e.To] = append(g.in[e.To], e)
		g.succ[e.From].Insert(e.To)
		g.pred[e.To].Insert(e.From)
	}
	g.edgeCount = len(b.edges)

	return g, nil
}
