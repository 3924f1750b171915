package match

import "golang.org/x/tools/container/intsets"

// Pair is one candidate (query vertex, data vertex) extension considered
// by solve.
type Pair struct {
	N int // query (G1) vertex
	M int // data (G2) vertex
}

// GenCandidatePairs computes P(s), the ordered list of candidate pairs to
// try from s, per spec §4.3:
//
//  1. If both out-frontiers are non-empty, pair every unmapped G1 "out"
//     vertex against the single largest-id unmapped G2 "out" vertex.
//  2. Else if both in-frontiers are non-empty, do the same with the
//     "in" frontiers.
//  3. Else (the initial step, or a disconnected continuation), pair
//     every unmapped G1 vertex against the single largest-id unmapped G2
//     vertex.
//
// Fixing one side of the pair to a single deterministic partner is a
// symmetry-breaking heuristic: it prunes the search without affecting
// completeness, because the choice of which G2 candidate to pair against
// the varying G1 candidates is arbitrary.
func GenCandidatePairs(s *State) []Pair {
	if !s.out1.IsEmpty() && !s.out2.IsEmpty() {
		return pairAgainstMax(&s.out1, &s.out2)
	}
	if !s.in1.IsEmpty() && !s.in2.IsEmpty() {
		return pairAgainstMax(&s.in1, &s.in2)
	}

	return pairAgainstMaxUnmapped(s)
}

// pairAgainstMax pairs every member of side1 against the maximum-id
// member of side2.
func pairAgainstMax(side1, side2 *intsets.Sparse) []Pair {
	mMax := side2.Max()
	pairs := make([]Pair, 0, side1.Len())
	for _, n := range side1.AppendTo(nil) {
		pairs = append(pairs, Pair{N: n, M: mMax})
	}

	return pairs
}

// pairAgainstMaxUnmapped implements case 3: every unmapped G1 vertex
// against the largest-id unmapped G2 vertex.
func pairAgainstMaxUnmapped(s *State) []Pair {
	mMax := -1
	for m := s.n2 - 1; m >= 0; m-- {
		if s.core2[m] == Unmapped {
			mMax = m
			break
		}
	}
	if mMax == -1 {
		return nil
	}

	pairs := make([]Pair, 0, s.n1)
	for n := 0; n < s.n1; n++ {
		if s.core1[n] == Unmapped {
			pairs = append(pairs, Pair{N: n, M: mMax})
		}
	}

	return pairs
}
