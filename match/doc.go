// Package match implements the VF2-style backtracking search at the heart
// of vf2iso: State (the partial mapping and its frontier sets), the five
// feasibility rules R0-R4, candidate-pair generation, and the recursive
// solve loop, plus the two public entry points Isomorphic and
// SubIsomorphic.
//
// # Algorithm outline
//
//  1. solve(s) returns true immediately once s's mapping covers every
//     query vertex.
//  2. Otherwise it asks GenCandidatePairs(s) for the ordered candidate
//     list P(s): the unmapped query vertices paired against a single,
//     deterministically chosen data-graph partner (the frontier's
//     largest unmapped id). This is a symmetry-breaking heuristic: fixing
//     one side of each pair prunes the search without losing completeness.
//  3. Each candidate (n, m) is filtered through R0 (label equality) and
//     R1-R4 (the syntactic VF2 look-ahead rules); the first rule that
//     fails skips the candidate without recursing.
//  4. An accepted candidate extends a *cloned* State (solve never mutates
//     the State a caller still holds) and solve recurses; the search
//     backtracks by simply returning to the loop in the parent frame,
//     which still owns its own unmodified State.
//
// Exact isomorphism and subgraph isomorphism share every rule; only the
// strictness of the cardinality comparisons in R2-R4 differs (equality
// vs. less-or-equal), selected by State.sub.
//
// Termination: every recursive call strictly grows the mapped-vertex
// count by one, bounded by the query graph's vertex count, so solve
// always terminates.
package match
