package constraintgraph

import (
	"errors"
	"fmt"
)

// ErrVertexRange is returned when a vertex id passed to a mutation function
// is outside [0, N).
var ErrVertexRange = errors.New("constraintgraph: vertex id out of range")

// ErrSelfEdge is returned when AddDirectedEdge/AddUndirectedEdge is asked to
// connect a vertex to itself.
var ErrSelfEdge = errors.New("constraintgraph: self edges are not allowed")

// ErrZeroCost is returned when a caller attempts to store a cost of 0; cost 0
// means "no penalty" and is represented by the absence of an edge, never by
// a stored edge.
var ErrZeroCost = errors.New("constraintgraph: cost 0 must never be stored")

// ErrInvalidGraph is returned by Parse on any grammar deviation: a stray
// character, a missing newline, an out-of-range id, or a missing/duplicate
// vertex index.
var ErrInvalidGraph = errors.New("constraintgraph: invalid graph text")

// ErrMatchingSize is returned by Evolve when the supplied generic matching
// does not have exactly one entry per vertex.
var ErrMatchingSize = errors.New("constraintgraph: matching size does not match vertex count")

// ErrEvolveTouchedForbiddenEdge indicates that the matching handed to Evolve
// used a pair that was already marked as infinite cost. This can only
// happen if the caller fed Evolve a matching that was not produced by
// solving this exact graph (the solver never selects a forbidden edge), so
// it is treated as a bug rather than a recoverable condition.
var ErrEvolveTouchedForbiddenEdge = errors.New("constraintgraph: evolve matched a forbidden pair")

// wrapf attaches call-site context to a sentinel error without losing its
// identity under errors.Is, following the wrapping convention used
// throughout this module's packages.
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
