package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vf2iso/graph"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder()
	v0 := b.AddVertex(0)
	v1 := b.AddVertex(0)
	v2 := b.AddVertex(0)
	b.AddEdge(v0, v1, 1)
	b.AddEdge(v1, v2, 1)
	b.AddEdge(v2, v0, 1)
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestBuilder_BasicShape(t *testing.T) {
	g := triangle(t)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 0, g.VLabel(0))
}

func TestBuilder_OutInEdges(t *testing.T) {
	g := triangle(t)
	out0 := g.OutEdges(0)
	require.Len(t, out0, 1)
	require.Equal(t, graph.Edge{From: 0, To: 1, Label: 1}, out0[0])

	in0 := g.InEdges(0)
	require.Len(t, in0, 1)
	require.Equal(t, graph.Edge{From: 2, To: 0, Label: 1}, in0[0])
}

func TestBuilder_SuccPredSets(t *testing.T) {
	g := triangle(t)
	require.True(t, g.SuccSet(0).Has(1))
	require.False(t, g.SuccSet(0).Has(2))
	require.True(t, g.PredSet(0).Has(2))
	require.False(t, g.PredSet(0).Has(1))
}

func TestBuilder_ParallelEdgesAndSelfLoop(t *testing.T) {
	b := graph.NewBuilder()
	v0 := b.AddVertex(5)
	v1 := b.AddVertex(5)
	b.AddEdge(v0, v1, 1)
	b.AddEdge(v0, v1, 2) // parallel edge, different label
	b.AddEdge(v0, v0, 3) // self-loop
	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.Len(t, g.OutEdges(v0), 3)
	// succ set is unique targets, so parallel edges collapse to one member
	require.Equal(t, 2, g.SuccSet(v0).Len())
}

func TestBuilder_OutOfRangeEdge(t *testing.T) {
	b := graph.NewBuilder()
	b.AddVertex(0)
	b.AddEdge(0, 5, 1)
	_, err := b.Build()
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestBuilder_EmptyGraph(t *testing.T) {
	g, err := graph.NewBuilder().Build()
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
}
