package convert

import (
	"errors"
	"fmt"
)

// ErrNotPerfectMatching is returned by ToGenericMatching when the supplied
// edge set does not cover every clique exactly once.
var ErrNotPerfectMatching = errors.New("convert: edge set is not a perfect matching")

func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)
}
