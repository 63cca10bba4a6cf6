package matching

import "github.com/sergeyvl/wpm/assignmentgraph"

// topology is a read-only snapshot of an assignmentgraph.Graph taken once
// at the start of a solve: a flat edge slice plus, for each clique, the
// indices into that slice incident to its source and target halves. The
// solver references edges purely by index into edges, never by clique
// struct identity, so the snapshot can be built once and shared read-only
// across the whole search.
type topology struct {
	n          int
	edges      []assignmentgraph.Edge
	fromSource [][]int
	toTarget   [][]int
}

func newTopology(g *assignmentgraph.Graph) *topology {
	n := g.NumCliques()
	edges := g.Edges()

	t := &topology{
		n:          n,
		edges:      edges,
		fromSource: make([][]int, n),
		toTarget:   make([][]int, n),
	}
	for idx, e := range edges {
		t.fromSource[e.SourceClique] = append(t.fromSource[e.SourceClique], idx)
		t.toTarget[e.TargetClique] = append(t.toTarget[e.TargetClique], idx)
	}

	return t
}

func (t *topology) edge(idx int) assignmentgraph.Edge {
	return t.edges[idx]
}
