package convert

import (
	"strconv"
	"strings"

	"github.com/sergeyvl/wpm/assignmentgraph"
	"github.com/sergeyvl/wpm/constraintgraph"
)

// ToAssignmentGraph builds the bipartite view of a constraint graph. For
// every ordered pair (i, j) with i != j it emits a bipartite edge
// i.source -> j.target scored -cost if a finite constraint exists, 0
// otherwise (the default "no penalty" case). Pairs carrying an infinite
// constraint get no edge at all: a missing edge is this package's
// representation of "forbidden", not an explicit ScoreMin entry, since an
// infinite cost folds into the same sentinel used to skip self-edges.
func ToAssignmentGraph(cg *constraintgraph.Graph) (*assignmentgraph.Graph, error) {
	n := cg.NumVertices()
	ag := assignmentgraph.New(n)

	for i := 0; i < n; i++ {
		constraints, err := cg.Edges(i)
		if err != nil {
			return nil, err
		}
		costFor := make([]uint32, n)
		hasConstraint := make([]bool, n)
		for _, e := range constraints {
			costFor[e.Target] = e.Cost
			hasConstraint[e.Target] = true
		}

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if hasConstraint[j] && costFor[j] == constraintgraph.InfiniteCost {
				continue
			}
			score := int32(0)
			if hasConstraint[j] {
				score = -int32(costFor[j])
			}
			if err := ag.AddDirectedEdge(i, j, score); err != nil {
				return nil, err
			}
		}
	}

	return ag, nil
}

// ToConstraintGraph inverts ToAssignmentGraph. A clique pair with no
// bipartite edge between them is read back as an infinite constraint; an
// existing edge with score s becomes cost -s. Only strictly positive costs
// are emitted (score 0 means "no constraint"). Each unordered pair is
// visited from its smaller-indexed endpoint only, matching the insertion
// order the round-trip property in the package tests depends on.
func ToConstraintGraph(ag *assignmentgraph.Graph) (*constraintgraph.Graph, error) {
	n := ag.NumCliques()
	cg := constraintgraph.New(n)

	for c := 0; c < n; c++ {
		if err := emitConstraintsFromHalf(ag, cg, c, n, true); err != nil {
			return nil, err
		}
		if err := emitConstraintsFromHalf(ag, cg, c, n, false); err != nil {
			return nil, err
		}
	}

	return cg, nil
}

// emitConstraintsFromHalf inspects clique c's source half (isSource) or
// target half and emits, for every other clique id >= c, the implied
// constraint edge. Cliques with no incident bipartite edge to a given
// other clique are treated as infinitely constrained against it: every
// slot starts at the "no edge" sentinel and is overwritten only from the
// edges actually present.
func emitConstraintsFromHalf(ag *assignmentgraph.Graph, cg *constraintgraph.Graph, c, n int, isSource bool) error {
	costs := make([]uint32, n)
	for i := range costs {
		costs[i] = constraintgraph.InfiniteCost
	}

	var edges []assignmentgraph.Edge
	var err error
	if isSource {
		edges, err = ag.EdgesFromSource(c)
	} else {
		edges, err = ag.EdgesToTarget(c)
	}
	if err != nil {
		return err
	}
	for _, e := range edges {
		other := int(e.TargetClique)
		if !isSource {
			other = int(e.SourceClique)
		}
		costs[other] = scoreToCost(e.Score)
	}

	for id := 0; id < n; id++ {
		if id == c || costs[id] == 0 || id < c {
			continue
		}
		if isSource {
			if err := cg.AddDirectedEdge(c, id, costs[id]); err != nil {
				return err
			}
		} else {
			if err := cg.AddDirectedEdge(id, c, costs[id]); err != nil {
				return err
			}
		}
	}

	return nil
}

func scoreToCost(score int32) uint32 {
	if score == assignmentgraph.ScoreMin {
		return constraintgraph.InfiniteCost
	}

	return uint32(-score)
}

// ToGenericMatching projects a perfect matching's edges onto a plain
// permutation: result[edge.SourceClique] = edge.TargetClique. The input
// must contain exactly one edge per clique as a source; any other shape is
// ErrNotPerfectMatching.
func ToGenericMatching(matching []assignmentgraph.Edge, n int) ([]int, error) {
	result := make([]int, n)
	seen := make([]bool, n)
	for _, e := range matching {
		src := int(e.SourceClique)
		if src < 0 || src >= n || seen[src] {
			return nil, wrapf(ErrNotPerfectMatching, "duplicate or out-of-range source %d", src)
		}
		seen[src] = true
		result[src] = int(e.TargetClique)
	}
	for i, ok := range seen {
		if !ok {
			return nil, wrapf(ErrNotPerfectMatching, "clique %d has no outgoing matched edge", i)
		}
	}

	return result, nil
}

// MatchingToString renders a permutation as a comma-separated list of
// decimal integers, e.g. "2,0,1".
func MatchingToString(matching []int) string {
	parts := make([]string, len(matching))
	for i, m := range matching {
		parts[i] = strconv.Itoa(m)
	}

	return strings.Join(parts, ",")
}
