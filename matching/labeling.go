package matching

import "math"

// vertexLabeling is a feasible labeling l over the graph: for any edge
// (s,t) with score w, l(s)+l(t) >= w. A feasible labeling implicitly
// defines the "equality subgraph" (edges where l(s)+l(t) == w), and a
// perfect matching within that subgraph is a maximum-score perfect
// matching of the whole graph.
type vertexLabeling struct {
	ls []int64 // per source clique
	lt []int64 // per target clique
}

// newVertexLabeling builds a trivially feasible labeling: each source
// clique gets the maximum score among its outgoing edges, each target
// clique gets 0.
func newVertexLabeling(t *topology) *vertexLabeling {
	vl := &vertexLabeling{
		ls: make([]int64, t.n),
		lt: make([]int64, t.n),
	}
	for c := 0; c < t.n; c++ {
		vl.ls[c] = maxEdgeScore(t.fromSource[c], t)
	}

	return vl
}

func maxEdgeScore(edgeIdxs []int, t *topology) int64 {
	max := int64(math.MinInt64)
	for _, idx := range edgeIdxs {
		if s := int64(t.edge(idx).Score); s > max {
			max = s
		}
	}

	return max
}

func (vl *vertexLabeling) sourceLabel(cid int) int64 { return vl.ls[cid] }
func (vl *vertexLabeling) targetLabel(cid int) int64 { return vl.lt[cid] }

// update shifts the labeling by delta: source cliques in the tree's S set
// decrease by delta, target cliques in its T set increase by delta.
func (vl *vertexLabeling) update(delta int64, at *alternatingTree) {
	for c := range vl.ls {
		if at.isInS(c) {
			vl.ls[c] -= delta
		}
	}
	for c := range vl.lt {
		if at.isInT(c) {
			vl.lt[c] += delta
		}
	}
}
