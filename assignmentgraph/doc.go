// Package assignmentgraph implements the bipartite matching representation:
// N cliques, each owning a source half-vertex and a target half-vertex, with
// directed edges from one clique's source half to a different clique's
// target half carrying an integer score.
//
// Graph is an arena of two contiguous slices — cliques (implicit, indexed by
// id) and edges — with incidence lists holding plain edge indices rather
// than pointers. This sidesteps the classic pitfall of a pointer graph
// where copying a struct silently rebinds its children: there is nothing
// to rebind, because a half-vertex's identity is just "clique id + side",
// and the solver builds its own index lists from a copy of the edge slice
// rather than sharing these.
//
// ScoreMin (the minimum representable int32) marks a forbidden edge. Such
// edges are still stored and indexed — the solver's labeling initializer
// needs to see every clique's full edge set, including forbidden ones, even
// though no admissible matching will ever select them.
//
// The package is also the module's sole source of randomness:
// CliquesInRandomOrder and EdgesInRandomOrder draw from a process-wide
// default *rand.Rand guarded by a mutex (seeded from a non-deterministic
// source at process start), without requiring every caller to thread an
// RNG through — exactly one randomization point, the exposed-root pick in
// the solver, depends on it.
package assignmentgraph
