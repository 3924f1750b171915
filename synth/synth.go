package synth

import (
	"errors"
	"fmt"

	"vf2iso/graph"
)

// ErrTooFewVertices is returned when a topology's vertex count is below
// the minimum needed to make that topology well defined (e.g. a cycle
// needs at least 3 vertices).
var ErrTooFewVertices = errors.New("synth: too few vertices")

// Option configures the label and directedness policy shared by every
// constructor in this package. The zero Options value builds a
// single-labeled graph with both directions present on every edge (the
// policy the original topology generators used for their "directed"
// mode), matching how most isomorphism fixtures are posed.
type Options struct {
	// VertexLabel is applied to every vertex. Defaults to 0.
	VertexLabel int
	// EdgeLabel is applied to every edge. Defaults to 0.
	EdgeLabel int
	// Undirected, if true, omits the reverse edge this package would
	// otherwise add for every edge, producing a strictly one-directional
	// graph instead of a symmetric one.
	Undirected bool
}

func (o Options) addEdge(b *graph.Builder, u, v int) {
	b.AddEdge(u, v, o.EdgeLabel)
	if !o.Undirected {
		b.AddEdge(v, u, o.EdgeLabel)
	}
}

const minCycleVertices = 3

// Cycle builds the n-vertex cycle C_n: vertices 0..n-1 with edges
// i -> (i+1)%n, each reversed as well unless Undirected is set.
func Cycle(n int, opt Options) (*graph.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("synth.Cycle: n=%d < %d: %w", n, minCycleVertices, ErrTooFewVertices)
	}

	b := graph.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddVertex(opt.VertexLabel)
	}
	for i := 0; i < n; i++ {
		opt.addEdge(b, i, (i+1)%n)
	}

	return b.Build()
}

const minPathVertices = 2

// Path builds the n-vertex simple path P_n: vertices 0..n-1 with edges
// i -> i+1.
func Path(n int, opt Options) (*graph.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("synth.Path: n=%d < %d: %w", n, minPathVertices, ErrTooFewVertices)
	}

	b := graph.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddVertex(opt.VertexLabel)
	}
	for i := 0; i < n-1; i++ {
		opt.addEdge(b, i, i+1)
	}

	return b.Build()
}

const minCompleteVertices = 1

// Complete builds the complete graph K_n: vertices 0..n-1 with every
// unordered pair connected.
func Complete(n int, opt Options) (*graph.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("synth.Complete: n=%d < %d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}

	b := graph.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddVertex(opt.VertexLabel)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			opt.addEdge(b, i, j)
		}
	}

	return b.Build()
}

const minStarVertices = 2

// Star builds a star with n vertices: vertex 0 is the hub, 1..n-1 are
// leaves, each connected to the hub.
func Star(n int, opt Options) (*graph.Graph, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("synth.Star: n=%d < %d: %w", n, minStarVertices, ErrTooFewVertices)
	}

	b := graph.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddVertex(opt.VertexLabel)
	}
	for i := 1; i < n; i++ {
		opt.addEdge(b, 0, i)
	}

	return b.Build()
}

const minWheelVertices = 4

// Wheel builds the wheel W_n = C_(n-1) + hub: an (n-1)-cycle over
// vertices 1..n-1 plus a hub at vertex 0 connected to every rim vertex.
func Wheel(n int, opt Options) (*graph.Graph, error) {
	if n < minWheelVertices {
		return nil, fmt.Errorf("synth.Wheel: n=%d < %d: %w", n, minWheelVertices, ErrTooFewVertices)
	}

	b := graph.NewBuilder()
	for i := 0; i < n; i++ {
		b.AddVertex(opt.VertexLabel)
	}
	rim := n - 1
	for i := 0; i < rim; i++ {
		u, v := 1+i, 1+(i+1)%rim
		opt.addEdge(b, u, v)
	}
	for i := 1; i < n; i++ {
		opt.addEdge(b, 0, i)
	}

	return b.Build()
}

const minBipartitePartition = 1

// CompleteBipartite builds K_{n1,n2}: left vertices 0..n1-1, right
// vertices n1..n1+n2-1, every left-right pair connected.
func CompleteBipartite(n1, n2 int, opt Options) (*graph.Graph, error) {
	if n1 < minBipartitePartition || n2 < minBipartitePartition {
		return nil, fmt.Errorf("synth.CompleteBipartite: n1=%d, n2=%d (each must be >= %d): %w",
			n1, n2, minBipartitePartition, ErrTooFewVertices)
	}

	b := graph.NewBuilder()
	for i := 0; i < n1+n2; i++ {
		b.AddVertex(opt.VertexLabel)
	}
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			opt.addEdge(b, i, n1+j)
		}
	}

	return b.Build()
}
