package match_test

import (
	"golang.org/x/tools/container/intsets"

	"vf2iso/graph"
)

func emptySet() *intsets.Sparse {
	return &intsets.Sparse{}
}

func newSet(members ...int) *intsets.Sparse {
	s := &intsets.Sparse{}
	for _, m := range members {
		s.Insert(m)
	}
	return s
}

// buildGraph builds a directed labeled graph from a vertex-label list and an
// edge list, returning the built graph. It panics on a malformed edge since
// these are fixed literal test fixtures, not user input.
func buildGraph(vlabels []int, edges [][3]int) *graph.Graph {
	b := graph.NewBuilder()
	for _, l := range vlabels {
		b.AddVertex(l)
	}
	for _, e := range edges {
		b.AddEdge(e[0], e[1], e[2])
	}
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}
