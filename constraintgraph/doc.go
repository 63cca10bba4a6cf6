// Package constraintgraph implements the directed forbidden/penalized-pair
// graph over N densely-numbered items (vertex id == slice index, no holes).
// A missing edge means "no penalty"; a stored edge carries either a finite
// positive cost or the InfiniteCost sentinel, which marks a pair that must
// never be matched together.
//
// Graph owns its vertices as a contiguous arena (one []Edge per vertex,
// indexed by id) rather than a pointer graph — cross-references are plain
// integer ids, never pointers, so there is nothing to invalidate when a
// Graph goes out of scope.
//
// The package also implements the anti-repetition evolution rule: given the
// matching just produced by the solver, it decays existing penalties,
// plants a fresh high-cost penalty on the pair that was just used, and
// optionally breaks up an emerging deterministic cycle. See Evolve.
//
//	go get github.com/sergeyvl/wpm/constraintgraph
package constraintgraph
