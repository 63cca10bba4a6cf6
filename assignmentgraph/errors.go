package assignmentgraph

import (
	"errors"
	"fmt"
)

// ErrCliqueRange is returned when a clique id is outside [0, N).
var ErrCliqueRange = errors.New("assignmentgraph: clique id out of range")

// ErrSelfMatch is returned when an edge would match a clique to itself.
var ErrSelfMatch = errors.New("assignmentgraph: a clique cannot be matched to itself")

// ErrInvalidGraph is returned by Parse on any grammar deviation.
var ErrInvalidGraph = errors.New("assignmentgraph: invalid graph text")

// ErrNoPerfectMatchingPossible is returned when a source or target half
// vertex has no non-forbidden incident edge, meaning no perfect matching
// can possibly exist.
var ErrNoPerfectMatchingPossible = errors.New("assignmentgraph: a half-vertex has no admissible edge")

func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
