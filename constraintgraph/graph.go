package constraintgraph

// AddDirectedEdge adds one directed penalty edge from src to dst with the
// given cost. cost must be strictly positive (use InfiniteCost for a
// forbidden pair); passing 0 is a programmer error (ErrZeroCost). A second
// call for the same (src,dst) pair overwrites the earlier cost rather than
// appending a duplicate edge, matching the "no duplicate outgoing edges"
// invariant.
func (g *Graph) AddDirectedEdge(src, dst int, cost uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addDirectedEdgeLocked(src, dst, cost)
}

func (g *Graph) addDirectedEdgeLocked(src, dst int, cost uint32) error {
	n := len(g.edges)
	if src < 0 || src >= n || dst < 0 || dst >= n {
		return wrapf(ErrVertexRange, "AddDirectedEdge(%d,%d)", src, dst)
	}
	if src == dst {
		return wrapf(ErrSelfEdge, "AddDirectedEdge(%d,%d)", src, dst)
	}
	if cost == 0 {
		return wrapf(ErrZeroCost, "AddDirectedEdge(%d,%d)", src, dst)
	}
	for i := range g.edges[src] {
		if g.edges[src][i].Target == uint32(dst) {
			g.edges[src][i].Cost = cost
			return nil
		}
	}
	g.edges[src] = append(g.edges[src], Edge{Target: uint32(dst), Cost: cost})

	return nil
}

// AddUndirectedEdge is shorthand for two AddDirectedEdge calls, (a,b) and
// (b,a), both at cost.
func (g *Graph) AddUndirectedEdge(a, b int, cost uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.addDirectedEdgeLocked(a, b, cost); err != nil {
		return err
	}

	return g.addDirectedEdgeLocked(b, a, cost)
}
