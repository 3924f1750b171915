package match_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vf2iso/match"
)

const (
	labelA = 1
	labelB = 2
	edgeL1 = 1
	edgeL2 = 2
)

func TestR0_LabelsMustMatch(t *testing.T) {
	g1 := buildGraph([]int{labelA, labelB}, nil)
	g2 := buildGraph([]int{labelB, labelA}, nil)

	require.False(t, match.R0(g1, g2, 0, 0))
	require.True(t, match.R0(g1, g2, 0, 1))
}

func TestR1_ForwardEdgeMustExist(t *testing.T) {
	g1 := buildGraph([]int{labelA, labelA}, [][3]int{{0, 1, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA}, [][3]int{{0, 1, edgeL1}})

	s := match.NewState(2, 2, false)
	s.AddPair(0, 0, emptySet(), newSet(1), emptySet(), newSet(1))

	require.True(t, match.R1(g1, g2, s, 1, 1))
}

func TestR1_ForwardEdgeLabelMismatchFails(t *testing.T) {
	g1 := buildGraph([]int{labelA, labelA}, [][3]int{{0, 1, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA}, [][3]int{{0, 1, edgeL2}})

	s := match.NewState(2, 2, false)
	s.AddPair(0, 0, emptySet(), newSet(1), emptySet(), newSet(1))

	require.False(t, match.R1(g1, g2, s, 1, 1))
}

func TestR1_MissingEdgeFails(t *testing.T) {
	g1 := buildGraph([]int{labelA, labelA}, [][3]int{{0, 1, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA}, nil)

	s := match.NewState(2, 2, false)
	s.AddPair(0, 0, emptySet(), emptySet(), emptySet(), emptySet())

	require.False(t, match.R1(g1, g2, s, 1, 1))
}

func TestR1_BackwardEdgeMustExist(t *testing.T) {
	g1 := buildGraph([]int{labelA, labelA}, [][3]int{{1, 0, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA}, [][3]int{{1, 0, edgeL1}})

	s := match.NewState(2, 2, false)
	s.AddPair(0, 0, newSet(1), emptySet(), newSet(1), emptySet())

	require.True(t, match.R1(g1, g2, s, 1, 1))
}

func TestR2_InFrontierCountsMustMatchExact(t *testing.T) {
	// Vertex 2 reaches into the in-frontier ({1}) in g1 but not in g2, so
	// exact mode must reject the pair.
	g1 := buildGraph([]int{labelA, labelA, labelA, labelA}, [][3]int{{2, 1, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA, labelA, labelA}, nil)

	s := match.NewState(4, 4, false)
	s.AddPair(0, 0, newSet(1), emptySet(), newSet(1), emptySet())

	require.False(t, match.R2(g1, g2, s, 2, 2))
}

func TestR2_SubgraphModeAllowsDataToHaveMore(t *testing.T) {
	// g2's vertex 2 reaches into the in-frontier ({1}) while g1's doesn't;
	// subgraph mode's <= comparison must accept this, exact mode would not.
	g1 := buildGraph([]int{labelA, labelA, labelA}, nil)
	g2 := buildGraph([]int{labelA, labelA, labelA}, [][3]int{{2, 1, edgeL1}})

	s := match.NewState(3, 3, true)
	s.AddPair(0, 0, newSet(1), emptySet(), newSet(1), emptySet())

	require.True(t, match.R2(g1, g2, s, 2, 2))
}

func TestR4_BeyondFrontierMatchesDisconnectedComponent(t *testing.T) {
	// Two disconnected edges: 0->1 and 2->3. Map 0<->0, 1<->1; vertices 2
	// and 3 are untouched by either frontier, so R4 must see them as
	// equally available "new" neighbors for themselves once paired.
	g1 := buildGraph([]int{labelA, labelA, labelA, labelA}, [][3]int{{0, 1, edgeL1}, {2, 3, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA, labelA, labelA}, [][3]int{{0, 1, edgeL1}, {2, 3, edgeL1}})

	s := match.NewState(4, 4, false)
	s.AddPair(0, 0, emptySet(), newSet(1), emptySet(), newSet(1))
	s.AddPair(1, 1, newSet(0), emptySet(), newSet(0), emptySet())

	require.True(t, match.R4(g1, g2, s, 2, 2))
}

func TestFeasible_FullChainOnTriangle(t *testing.T) {
	g1 := buildGraph([]int{labelA, labelA, labelA}, [][3]int{{0, 1, edgeL1}, {1, 2, edgeL1}, {2, 0, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA, labelA}, [][3]int{{0, 1, edgeL1}, {1, 2, edgeL1}, {2, 0, edgeL1}})

	s := match.NewState(3, 3, false)
	require.True(t, match.Feasible(g1, g2, s, 0, 0))
}
