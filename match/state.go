package match

import "golang.org/x/tools/container/intsets"

// State is one node of the search tree: a partial injective mapping
// between a query graph G1 and a data graph G2, plus the frontier sets
// that let the feasibility rules estimate future obligations without
// re-walking the graphs.
//
// A State is never mutated by backtracking. Each accepted candidate pair
// produces a fresh State via Clone + AddPair; the recursion stack holds
// one distinct State per frame (spec §5: "each recursive frame owns one
// State snapshot").
type State struct {
	n1  int  // |V(G1)|, the size the search is driven by
	n2  int  // |V(G2)|
	sub bool // true selects subgraph-isomorphism rule strictness

	core1 []int // core1[n], n in V(G1): paired G2 vertex, or Unmapped
	core2 []int // core2[m], m in V(G2): paired G1 vertex, or Unmapped

	m1, m2 intsets.Sparse // mapped vertices on each side

	// in1/out1 are the unmapped G1 vertices that are, respectively,
	// predecessors/successors of some mapped G1 vertex. in2/out2 mirror
	// this on the G2 side.
	in1, out1 intsets.Sparse
	in2, out2 intsets.Sparse
}

// NewState returns an empty State for a search between a query graph with
// n1 vertices and a data graph with n2 vertices. sub selects
// subgraph-isomorphism rule strictness; false selects exact isomorphism.
// (In exact mode n1 == n2, since isomorphism requires equal vertex counts.)
func NewState(n1, n2 int, sub bool) *State {
	core1 := make([]int, n1)
	core2 := make([]int, n2)
	for i := range core1 {
		core1[i] = Unmapped
	}
	for j := range core2 {
		core2[j] = Unmapped
	}

	return &State{
		n1:    n1,
		n2:    n2,
		sub:   sub,
		core1: core1,
		core2: core2,
	}
}

// Clone returns a deep copy of s. No two States produced by Clone ever
// share mutable storage, so extending the clone can never perturb s.
func (s *State) Clone() *State {
	c := &State{
		n1:    s.n1,
		n2:    s.n2,
		sub:   s.sub,
		core1: append([]int(nil), s.core1...),
		core2: append([]int(nil), s.core2...),
	}
	c.m1.Copy(&s.m1)
	c.m2.Copy(&s.m2)
	c.in1.Copy(&s.in1)
	c.in2.Copy(&s.in2)
	c.out1.Copy(&s.out1)
	c.out2.Copy(&s.out2)

	return c
}

// MappedCount reports |M1(s)|, used by solve to detect a completed
// mapping.
func (s *State) MappedCount() int { return s.m1.Len() }

// N1 returns |V(G1)|, the query graph's vertex count.
func (s *State) N1() int { return s.n1 }

// N2 returns |V(G2)|, the data graph's vertex count.
func (s *State) N2() int { return s.n2 }

// Sub reports whether s is running in subgraph-isomorphism mode.
func (s *State) Sub() bool { return s.sub }

// CoreOf1 returns the G2 partner of query vertex n, or Unmapped.
func (s *State) CoreOf1(n int) int { return s.core1[n] }

// CoreOf2 returns the G1 partner of data vertex m, or Unmapped.
func (s *State) CoreOf2(m int) int { return s.core2[m] }

// M1, M2, In1, In2, Out1, Out2 expose the frontier sets read-only; the
// feasibility rules and candidate generation need direct access to their
// cardinalities and membership, and copying them on every check would be
// wasteful, so callers receive the State's own backing sets and must not
// mutate them.
func (s *State) M1() *intsets.Sparse   { return &s.m1 }
func (s *State) M2() *intsets.Sparse   { return &s.m2 }
func (s *State) In1() *intsets.Sparse  { return &s.in1 }
func (s *State) In2() *intsets.Sparse  { return &s.in2 }
func (s *State) Out1() *intsets.Sparse { return &s.out1 }
func (s *State) Out2() *intsets.Sparse { return &s.out2 }

// AddPair extends s with a new match n<->m, updating the core arrays and
// the four frontier sets per spec §4.2. pred1/succ1 are G1's
// predecessor/successor sets of n; pred2/succ2 are G2's of m.
//
// Panics if n or m is already mapped: that can only happen if a caller
// bypassed the feasibility rules, which is a logic-precondition violation
// (spec §7), not a recoverable error.
func (s *State) AddPair(n, m int, pred1, succ1, pred2, succ2 *intsets.Sparse) {
	if s.core1[n] != Unmapped {
		panic(errAlreadyMappedf("G1", n))
	}
	if s.core2[m] != Unmapped {
		panic(errAlreadyMappedf("G2", m))
	}

	s.m1.Insert(n)
	s.m2.Insert(m)
	s.core1[n] = m
	s.core2[m] = n

	insertUnmapped(&s.in1, pred1, s.core1)
	insertUnmapped(&s.out1, succ1, s.core1)
	insertUnmapped(&s.in2, pred2, s.core2)
	insertUnmapped(&s.out2, succ2, s.core2)

	s.in1.Remove(n)
	s.out1.Remove(n)
	s.in2.Remove(m)
	s.out2.Remove(m)
}

// insertUnmapped inserts every element of src into dst that is not yet
// mapped according to core, implementing the idempotent frontier-growth
// step shared by all four frontier sets in AddPair.
func insertUnmapped(dst, src *intsets.Sparse, core []int) {
	for _, u := range src.AppendTo(nil) {
		if core[u] == Unmapped {
			dst.Insert(u)
		}
	}
}
