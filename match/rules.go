package match

import (
	"golang.org/x/tools/container/intsets"

	"vf2iso/graph"
)

// R0 is the label rule (spec §4.4): vertex labels must match exactly,
// regardless of isomorphism mode.
func R0(g1, g2 *graph.Graph, n, m int) bool {
	return g1.VLabel(n) == g2.VLabel(m)
}

// R1 is the predecessor/successor edge rule (spec §4.4): every edge
// touching n that lands on an already-mapped vertex (or on n itself, for a
// self-loop) must have a same-labeled counterpart touching m on the
// corresponding vertex, in both directions; and conversely, every
// already-mapped neighbor of m must correspond to an already-mapped
// neighbor of n on the matching side. This holds unchanged in both modes: it requires exactly
// the edges the query needs, which subgraph mode does not relax (extra
// edges in G2 beyond what's required are always permitted).
func R1(g1, g2 *graph.Graph, s *State, n, m int) bool {
	return checkForwardEdges(g1, g2, s, n, m) &&
		checkBackwardEdges(g1, g2, s, n, m) &&
		checkMappedPreds(g1, g2, s, n, m) &&
		checkMappedSuccs(g1, g2, s, n, m)
}

// checkForwardEdges requires: for each n->v in G1 with core1[v] mapped to
// v', some m->v' edge in G2 carries the same label. A self-loop n->n
// requires a same-labeled self-loop m->m.
func checkForwardEdges(g1, g2 *graph.Graph, s *State, n, m int) bool {
	for _, e := range g1.OutEdges(n) {
		vPrime := s.core1[e.To]
		if e.To == n {
			vPrime = m
		}
		if vPrime == Unmapped {
			continue
		}
		if !hasOutEdgeTo(g2, m, vPrime, e.Label) {
			return false
		}
	}

	return true
}

// checkBackwardEdges requires: for each u->n in G1 with core1[u] mapped
// to u', some u'->m edge in G2 carries the same label.
func checkBackwardEdges(g1, g2 *graph.Graph, s *State, n, m int) bool {
	for _, e := range g1.InEdges(n) {
		uPrime := s.core1[e.From]
		if uPrime == Unmapped {
			continue
		}
		if !hasInEdgeFrom(g2, m, uPrime, e.Label) {
			return false
		}
	}

	return true
}

// checkMappedPreds requires: every mapped predecessor of m corresponds,
// through core2, to a predecessor of n.
func checkMappedPreds(g1, g2 *graph.Graph, s *State, n, m int) bool {
	ok := true
	forEachInIntersection(g2.PredSet(m), &s.m2, func(vPrime int) {
		if !ok {
			return
		}
		v := s.core2[vPrime]
		if !g1.PredSet(n).Has(v) {
			ok = false
		}
	})

	return ok
}

// checkMappedSuccs requires: every mapped successor of m corresponds,
// through core2, to a successor of n.
func checkMappedSuccs(g1, g2 *graph.Graph, s *State, n, m int) bool {
	ok := true
	forEachInIntersection(g2.SuccSet(m), &s.m2, func(vPrime int) {
		if !ok {
			return
		}
		v := s.core2[vPrime]
		if !g1.SuccSet(n).Has(v) {
			ok = false
		}
	})

	return ok
}

func hasOutEdgeTo(g *graph.Graph, from, to, label int) bool {
	for _, e := range g.OutEdges(from) {
		if e.To == to && e.Label == label {
			return true
		}
	}

	return false
}

func hasInEdgeFrom(g *graph.Graph, to, from, label int) bool {
	for _, e := range g.InEdges(to) {
		if e.From == from && e.Label == label {
			return true
		}
	}

	return false
}

// R2 is the "in" look-ahead (spec §4.4): compares how many of n's/m's
// successors and predecessors already sit in the in-frontier, estimating
// whether m has enough future "in" capacity to eventually cover n's.
func R2(g1, g2 *graph.Graph, s *State, n, m int) bool {
	a := intersectionSize(&s.in1, g1.SuccSet(n))
	b := intersectionSize(&s.in2, g2.SuccSet(m))
	c := intersectionSize(&s.in1, g1.PredSet(n))
	d := intersectionSize(&s.in2, g2.PredSet(m))
	if s.sub {
		return a <= b && c <= d
	}

	return a == b && c == d
}

// R3 is the "out" look-ahead (spec §4.4): the same shape as R2, against
// the out-frontier.
func R3(g1, g2 *graph.Graph, s *State, n, m int) bool {
	a := intersectionSize(&s.out1, g1.SuccSet(n))
	b := intersectionSize(&s.out2, g2.SuccSet(m))
	c := intersectionSize(&s.out1, g1.PredSet(n))
	d := intersectionSize(&s.out2, g2.PredSet(m))
	if s.sub {
		return a <= b && c <= d
	}

	return a == b && c == d
}

// R4 is the "new" 2-step look-ahead (spec §4.4): counts neighbors that lie
// entirely beyond the current frontier (not mapped, not in-frontier, not
// out-frontier) to estimate whether m has enough untouched neighborhood
// left to eventually match n's.
func R4(g1, g2 *graph.Graph, s *State, n, m int) bool {
	nSet1 := beyondFrontier(s.n1, s.core1, &s.in1, &s.out1)
	nSet2 := beyondFrontier(s.n2, s.core2, &s.in2, &s.out2)

	p := intersectionSize(g1.PredSet(n), nSet1)
	q := intersectionSize(g2.PredSet(m), nSet2)
	r := intersectionSize(g1.SuccSet(n), nSet1)
	t := intersectionSize(g2.SuccSet(m), nSet2)
	if s.sub {
		return p <= q && r <= t
	}

	return p == q && r == t
}

// beyondFrontier returns the vertices of a count-sized graph that are
// neither mapped nor in either frontier set — spec §4.4's N1/N2.
func beyondFrontier(count int, core []int, in, out *intsets.Sparse) *intsets.Sparse {
	n := &intsets.Sparse{}
	for v := 0; v < count; v++ {
		if core[v] == Unmapped && !in.Has(v) && !out.Has(v) {
			n.Insert(v)
		}
	}

	return n
}

// intersectionSize returns |a ∩ b| without mutating either set.
func intersectionSize(a, b *intsets.Sparse) int {
	var tmp intsets.Sparse
	tmp.Intersection(a, b)

	return tmp.Len()
}

// forEachInIntersection calls f once for each member of a ∩ b.
func forEachInIntersection(a, b *intsets.Sparse, f func(int)) {
	var tmp intsets.Sparse
	tmp.Intersection(a, b)
	for _, x := range tmp.AppendTo(nil) {
		f(x)
	}
}

// Feasible runs R0-R4 in order, short-circuiting on the first failure, as
// spec §4.5's solve loop requires.
func Feasible(g1, g2 *graph.Graph, s *State, n, m int) bool {
	return R0(g1, g2, n, m) &&
		R1(g1, g2, s, n, m) &&
		R2(g1, g2, s, n, m) &&
		R3(g1, g2, s, n, m) &&
		R4(g1, g2, s, n, m)
}
