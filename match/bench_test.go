package match_test

import (
	"testing"

	"vf2iso/match"
	"vf2iso/synth"
)

func BenchmarkIsomorphic_Triangle(b *testing.B) {
	g1 := buildGraph([]int{labelA, labelA, labelA}, [][3]int{{0, 1, edgeL1}, {1, 2, edgeL1}, {2, 0, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA, labelA}, [][3]int{{0, 1, edgeL1}, {1, 2, edgeL1}, {2, 0, edgeL1}})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		match.Isomorphic(g1, g2)
	}
}

func BenchmarkSubIsomorphic_TriangleInCycle(b *testing.B) {
	g1 := buildGraph([]int{labelA, labelA, labelA}, [][3]int{{0, 1, edgeL1}, {1, 2, edgeL1}, {2, 0, edgeL1}})
	g2 := buildGraph([]int{labelA, labelA, labelA, labelA, labelA}, [][3]int{
		{0, 1, edgeL1}, {1, 2, edgeL1}, {2, 3, edgeL1}, {3, 4, edgeL1}, {4, 0, edgeL1},
	})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		match.SubIsomorphic(g1, g2)
	}
}

func BenchmarkSubIsomorphic_StarIntoWheel(b *testing.B) {
	query, err := synth.Star(6, synth.Options{})
	if err != nil {
		b.Fatal(err)
	}
	data, err := synth.Wheel(20, synth.Options{})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		match.SubIsomorphic(query, data)
	}
}

func BenchmarkGenCandidatePairs_InitialStep(b *testing.B) {
	s := match.NewState(16, 16, false)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		match.GenCandidatePairs(s)
	}
}
