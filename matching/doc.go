// Package matching implements the Hungarian algorithm (Kuhn-Munkres) over
// an assignmentgraph.Graph: a feasible vertex labeling plus an alternating
// tree, augmented one source vertex at a time until every clique is
// covered. The search runs in two phases per augmentation round — first a
// breadth-first walk of the current equality subgraph from the queued
// candidate source vertices, then, once the labeling is tightened, a scan
// for targets that just became reachable.
//
// There are no pointers into the graph: edges are referenced by their
// position in a flat slice captured once at the start of a solve, and
// every internal structure (the in-progress matching, the alternating
// tree, the labeling, the slack array) stores plain clique ids and edge
// indices. A clique or edge can be freely copied without invalidating
// anything held elsewhere.
//
// CliquesInRandomOrder is the solver's sole source of randomization: the
// exposed source vertex that roots each augmentation round's alternating
// tree is the first exposed clique encountered in a freshly shuffled scan
// order. Edges are scanned in the graph's insertion order and the first
// tight edge to an exposed target closes the path, so which of several
// maximum-score perfect matchings comes back varies across runs but is not
// uniformly distributed among them.
package matching
