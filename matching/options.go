package matching

import (
	"fmt"
	"io"
)

// solverConfig collects the tunables every Option mutates before a solve
// begins.
type solverConfig struct {
	verbose bool
	log     io.Writer
}

// Option customizes FindRandomPerfectMatching by mutating a solverConfig
// instance before the Hungarian search begins.
type Option func(*solverConfig)

// WithVerbose enables diagnostic logging of each augmentation round: the
// round's starting matching size, the exposed root picked, and the matching
// size after augmenting. Logs go to w; WithVerbose panics on a nil writer
// to surface the mistake immediately rather than silently discarding logs.
func WithVerbose(w io.Writer) Option {
	if w == nil {
		panic("matching: WithVerbose(nil)")
	}
	return func(c *solverConfig) {
		c.verbose = true
		c.log = w
	}
}

func newSolverConfig(opts []Option) *solverConfig {
	c := &solverConfig{}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *solverConfig) logf(format string, args ...interface{}) {
	if c.verbose {
		fmt.Fprintf(c.log, format, args...)
	}
}
