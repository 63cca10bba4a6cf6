package assignmentgraph

// AddDirectedEdge appends one bipartite edge from srcClique's source half to
// dstClique's target half, carrying score. Edges are owned by the graph and
// appended to both cliques' incidence lists; srcClique must differ from
// dstClique, since a clique can never be matched to itself.
func (g *Graph) AddDirectedEdge(srcClique, dstClique int, score int32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.numCliques
	if srcClique < 0 || srcClique >= n || dstClique < 0 || dstClique >= n {
		return wrapf(ErrCliqueRange, "AddDirectedEdge(%d,%d)", srcClique, dstClique)
	}
	if srcClique == dstClique {
		return wrapf(ErrSelfMatch, "AddDirectedEdge(%d,%d)", srcClique, dstClique)
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{
		SourceClique: uint32(srcClique),
		TargetClique: uint32(dstClique),
		Score:        score,
	})
	g.sourceIncidence[srcClique] = append(g.sourceIncidence[srcClique], idx)
	g.targetIncidence[dstClique] = append(g.targetIncidence[dstClique], idx)

	return nil
}

// Edges returns a copy of every edge in the graph, in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgesFromSource returns a copy of the edges incident to clique's source
// half, in insertion order.
func (g *Graph) EdgesFromSource(clique int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if clique < 0 || clique >= g.numCliques {
		return nil, wrapf(ErrCliqueRange, "EdgesFromSource(%d)", clique)
	}
	idxs := g.sourceIncidence[clique]
	out := make([]Edge, len(idxs))
	for i, idx := range idxs {
		out[i] = g.edges[idx]
	}

	return out, nil
}

// EdgesToTarget returns a copy of the edges incident to clique's target
// half, in insertion order.
func (g *Graph) EdgesToTarget(clique int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if clique < 0 || clique >= g.numCliques {
		return nil, wrapf(ErrCliqueRange, "EdgesToTarget(%d)", clique)
	}
	idxs := g.targetIncidence[clique]
	out := make([]Edge, len(idxs))
	for i, idx := range idxs {
		out[i] = g.edges[idx]
	}

	return out, nil
}

// CheckPerfectMatchable verifies that every source half has at least one
// non-forbidden outgoing edge and every target half has at least one
// non-forbidden incoming edge. If either fails for some clique, no perfect
// matching can possibly exist and ErrNoPerfectMatchingPossible is returned.
func (g *Graph) CheckPerfectMatchable() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for c := 0; c < g.numCliques; c++ {
		if !anyAdmissible(g.sourceIncidence[c], g.edges) {
			return wrapf(ErrNoPerfectMatchingPossible, "clique %d has no admissible outgoing edge", c)
		}
		if !anyAdmissible(g.targetIncidence[c], g.edges) {
			return wrapf(ErrNoPerfectMatchingPossible, "clique %d has no admissible incoming edge", c)
		}
	}

	return nil
}

func anyAdmissible(idxs []int, edges []Edge) bool {
	for _, idx := range idxs {
		if edges[idx].Score != ScoreMin {
			return true
		}
	}

	return false
}
