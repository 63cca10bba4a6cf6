// Package convert bridges constraintgraph and assignmentgraph: every
// solver run needs the bipartite view to find a matching, and every
// matching needs the constraint view to drive evolve. Both directions
// and the final projection onto a plain permutation live here.
package convert
