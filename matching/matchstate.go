package matching

// noMatch is the sentinel clique id / edge index meaning "unmatched".
const noMatch = -1

// matchState tracks a partial matching over the cliques in a topology: for
// each source and target half, which clique it is matched to (if any) and
// through which edge index.
type matchState struct {
	sourceMatch []int // clique id matched to this source half, or noMatch
	sourceEdge  []int // edge index realizing that match, or noMatch
	targetMatch []int
	targetEdge  []int
	edges       []int // edge indices currently in the matching
}

func newMatchState(n int) *matchState {
	ms := &matchState{
		sourceMatch: make([]int, n),
		sourceEdge:  make([]int, n),
		targetMatch: make([]int, n),
		targetEdge:  make([]int, n),
		edges:       make([]int, 0, n),
	}
	for i := 0; i < n; i++ {
		ms.sourceMatch[i] = noMatch
		ms.sourceEdge[i] = noMatch
		ms.targetMatch[i] = noMatch
		ms.targetEdge[i] = noMatch
	}

	return ms
}

func (ms *matchState) numEdges() int { return len(ms.edges) }

func (ms *matchState) isSource(cid int) bool { return ms.sourceMatch[cid] != noMatch }
func (ms *matchState) isTarget(cid int) bool { return ms.targetMatch[cid] != noMatch }

func (ms *matchState) edgeFromSource(cid int) int { return ms.sourceEdge[cid] }
func (ms *matchState) edgeFromTarget(cid int) int { return ms.targetEdge[cid] }

// addEdge records edgeIdx as matching t's source half to its target half.
// The caller must ensure neither half is already matched.
func (ms *matchState) addEdge(edgeIdx int, t *topology) error {
	e := t.edge(edgeIdx)
	s, d := int(e.SourceClique), int(e.TargetClique)
	if ms.isSource(s) {
		return wrapf(ErrInvalidMatching, "addEdge: source clique %d already matched", s)
	}
	if ms.isTarget(d) {
		return wrapf(ErrInvalidMatching, "addEdge: target clique %d already matched", d)
	}
	ms.edges = append(ms.edges, edgeIdx)
	ms.sourceMatch[s] = d
	ms.targetMatch[d] = s
	ms.sourceEdge[s] = edgeIdx
	ms.targetEdge[d] = edgeIdx

	return nil
}

// removeEdge undoes addEdge for edgeIdx. A no-op if edgeIdx is not
// currently in the matching.
func (ms *matchState) removeEdge(edgeIdx int, t *topology) {
	for i, idx := range ms.edges {
		if idx == edgeIdx {
			ms.edges = append(ms.edges[:i], ms.edges[i+1:]...)
			break
		}
	}
	e := t.edge(edgeIdx)
	s, d := int(e.SourceClique), int(e.TargetClique)
	if ms.sourceEdge[s] == edgeIdx {
		ms.sourceMatch[s] = noMatch
		ms.sourceEdge[s] = noMatch
	}
	if ms.targetEdge[d] == edgeIdx {
		ms.targetMatch[d] = noMatch
		ms.targetEdge[d] = noMatch
	}
}

// matchingEdges returns a copy of the edge indices currently in the
// matching.
func (ms *matchState) matchingEdges() []int {
	out := make([]int, len(ms.edges))
	copy(out, ms.edges)

	return out
}
