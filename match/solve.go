package match

import "vf2iso/graph"

// Solve is the recursive backtracking search (spec §4.5). It never
// mutates s or any State produced along the way except through Clone +
// AddPair on a fresh copy, per spec §3's State lifecycle invariant ("no
// State is ever mutated in-place by backtracking"). On success it returns
// the completed State (s's own lineage, extended one clone at a time);
// on failure it returns (nil, false) and s is exactly as the caller left
// it.
func Solve(g1, g2 *graph.Graph, s *State) (*State, bool) {
	if s.MappedCount() == s.N1() {
		return s, true
	}

	for _, p := range GenCandidatePairs(s) {
		if !Feasible(g1, g2, s, p.N, p.M) {
			continue
		}
		next := s.Clone()
		next.AddPair(p.N, p.M, g1.PredSet(p.N), g1.SuccSet(p.N), g2.PredSet(p.M), g2.SuccSet(p.M))
		if final, ok := Solve(g1, g2, next); ok {
			return final, true
		}
	}

	return nil, false
}

// Isomorphic reports whether g1 and g2 are exactly isomorphic: a
// bijective, label- and edge-preserving map between all of g1's vertices
// and all of g2's. It cheaply rejects mismatched vertex or edge counts
// before paying for a search (spec §4.5).
func Isomorphic(g1, g2 *graph.Graph) bool {
	if g1.VertexCount() != g2.VertexCount() {
		return false
	}
	if g1.EdgeCount() != g2.EdgeCount() {
		return false
	}
	s := NewState(g1.VertexCount(), g2.VertexCount(), false)
	_, ok := Solve(g1, g2, s)

	return ok
}

// SubIsomorphic reports whether g1 embeds into g2: an injective,
// label-preserving map from g1's vertices into g2's such that every g1
// edge has a same-labeled counterpart in g2. It cheaply rejects a query
// too large for the data graph before paying for a search (spec §4.5).
func SubIsomorphic(g1, g2 *graph.Graph) bool {
	if g1.VertexCount() > g2.VertexCount() {
		return false
	}
	if g1.EdgeCount() > g2.EdgeCount() {
		return false
	}
	s := NewState(g1.VertexCount(), g2.VertexCount(), true)
	_, ok := Solve(g1, g2, s)

	return ok
}

// FindMapping runs the same search as Isomorphic/SubIsomorphic (selected
// by sub) but additionally returns the discovered mapping as (G1 vertex,
// G2 vertex) pairs ordered by G1 vertex id. ok is false iff no mapping
// exists, in which case the returned slice is nil. This supplements the
// boolean-only API with the original engine's printMapping() data,
// surfaced as a value instead of printed output.
func FindMapping(g1, g2 *graph.Graph, sub bool) (pairs [][2]int, ok bool) {
	if sub {
		if g1.VertexCount() > g2.VertexCount() || g1.EdgeCount() > g2.EdgeCount() {
			return nil, false
		}
	} else {
		if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
			return nil, false
		}
	}

	s := NewState(g1.VertexCount(), g2.VertexCount(), sub)
	final, ok := Solve(g1, g2, s)
	if !ok {
		return nil, false
	}

	pairs = make([][2]int, 0, final.N1())
	for n := 0; n < final.N1(); n++ {
		pairs = append(pairs, [2]int{n, final.CoreOf1(n)})
	}

	return pairs, true
}
