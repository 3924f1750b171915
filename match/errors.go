package match

import (
	"errors"
	"fmt"
)

// Unmapped marks a core-array slot with no partner yet, mirroring the
// original engine's NULL_VIndex sentinel.
const Unmapped = -1

// ErrAlreadyMapped is the panic payload for AddPair called on a query or
// data vertex that is already part of the mapping. This is a logic
// precondition violation (spec §7), not a caller-recoverable error: the
// search driver never calls AddPair this way, so reaching it means a bug
// in this package, and it fails fast and loud rather than silently
// corrupting the mapping. Exported, like graph.ErrVertexOutOfRange and
// loader.ErrMalformedLine, so a caller that does recover from the panic
// can still identify it with errors.Is.
var ErrAlreadyMapped = errors.New("match: vertex already mapped")

// errAlreadyMapped wraps ErrAlreadyMapped with which side and vertex id
// triggered it.
func errAlreadyMappedf(side string, id int) error {
	return fmt.Errorf("%w: %s vertex %d", ErrAlreadyMapped, side, id)
}
