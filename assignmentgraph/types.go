package assignmentgraph

import (
	"math"
	"sync"
)

// ScoreMin is the sentinel score denoting a forbidden edge: the minimum
// representable int32, matching the textual grammar's <score> sentinel.
const ScoreMin int32 = math.MinInt32

// Edge links a source half-vertex to a target half-vertex of a different
// clique with an integer score. Score == ScoreMin marks a forbidden edge.
type Edge struct {
	SourceClique uint32
	TargetClique uint32
	Score        int32
}

// Graph is an arena of N cliques and their directed bipartite edges.
// Incidence lists hold indices into edges, not pointers, so the arena can be
// freely copied or discarded without invalidating anything held elsewhere.
type Graph struct {
	mu sync.RWMutex

	numCliques int
	edges      []Edge

	// sourceIncidence[c] / targetIncidence[c] list, in insertion order, the
	// indices into edges incident to clique c's source / target half.
	sourceIncidence [][]int
	targetIncidence [][]int
}

// New creates a graph with n cliques and no edges.
func New(n int) *Graph {
	return &Graph{
		numCliques:      n,
		sourceIncidence: make([][]int, n),
		targetIncidence: make([][]int, n),
	}
}

// NumCliques returns N, the number of cliques in the graph.
func (g *Graph) NumCliques() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numCliques
}
