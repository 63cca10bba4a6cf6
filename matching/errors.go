package matching

import (
	"errors"
	"fmt"
)

// ErrNoPerfectMatching is returned when the equality-subgraph search
// exhausts the slack array without finding an augmenting path: no perfect
// matching exists on the input graph.
var ErrNoPerfectMatching = errors.New("matching: no perfect matching exists")

// ErrInvalidMatching is returned by CheckPerfectMatchingValidity, and
// internally whenever the solver's own bookkeeping invariants are
// violated. It should never occur if the algorithm is implemented
// correctly; treat it as a bug report, not a recoverable condition.
var ErrInvalidMatching = errors.New("matching: matching violates a perfect-matching invariant")

func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
