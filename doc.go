// Package wpm is a constrained, anti-repetition random perfect-matching
// engine: given N items, it repeatedly produces a random maximum-weight
// perfect assignment subject to hard forbidden-pair constraints, and
// reshapes its own constraints between runs so the same assignment is
// unlikely to recur soon.
//
// 🚀 What is wpm?
//
//	A modern, thread-safe library that brings together:
//		• ConstraintGraph: per-item forbidden/penalty edges with monotone decay
//		• AssignmentGraph: the bipartite view the solver actually runs on
//		• GraphConverter: lossless translation between the two views
//		• MatchingSolver: the Hungarian algorithm, randomized among optima
//
// ✨ Why choose wpm?
//
//   - Thread-safe primitives – R/W locks on every mutable graph
//   - Deterministic core, randomized choice – every step is reproducible
//     given the PRNG draws; only the exposed-root pick varies run to run
//   - Pure Go – no cgo, no hidden deps beyond the solver's own stdlib RNG
//   - Byte-exact serialization – both graph kinds round-trip through a
//     strict textual grammar
//
// Under the hood, everything is organized under four subpackages:
//
//	constraintgraph/ — per-item forbidden/penalty costs, evolve, serialize
//	assignmentgraph/ — bipartite cliques/edges, random ordering, serialize
//	convert/         — ConstraintGraph <-> AssignmentGraph, generic matching
//	matching/        — the Hungarian solver and matching validity checks
//
// The motivating scenario is a rotating gift exchange among N participants
// across many years: each round assigns every participant exactly one
// other participant to give a gift to, no one is ever assigned to
// themselves or to a forbidden pair (spouses, say), and the engine
// deliberately makes whoever you were just assigned to increasingly
// expensive to draw again, so the same pairing doesn't recur for a while.
//
//	go get github.com/sergeyvl/wpm
package wpm
