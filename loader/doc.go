// Package loader reads graphs from the line-oriented text format shared by
// the match engine's test fixtures and the vf2iso CLI:
//
//	t # <gid>
//	v <vid> <vlabel>
//	e <uid> <vid> <elabel>
//
// A "t" line closes whatever graph is currently being accumulated (if any)
// and opens a new one; there is no flush at end-of-input, so a trailing
// sentinel "t" line is required to close and return the final graph in the
// stream — a stream missing it silently loses the last graph, matching
// the original reader this format is taken from. Blank lines are ignored.
// Vertex ids must appear in file order starting at 0, matching the order
// Builder.AddVertex assigns them.
//
// Malformed input is always reported as a wrapped ErrMalformedLine or
// ErrVertexOutOfRange, never a panic: a bad input file is the caller's
// problem to report, not a logic-precondition violation in this package or
// in package match.
package loader
