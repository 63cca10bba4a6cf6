package constraintgraph

// Evolve implements the anti-repetition rule described in the package docs:
//
//  1. Every finite-cost edge decays by 1; edges that would decay to 0 are
//     removed outright. Infinite-cost edges are untouched.
//  2. The pair each vertex was just matched to (per matching) is penalized
//     back up to NumVertices() — freshly used pairs stay penalized for
//     roughly N rounds.
//  3. If avoidDeterministic is set and a vertex ends up with N-1 outgoing
//     constraints (meaning only one unconstrained target remains for the
//     next solve), every one of that vertex's edges at or below
//     floor(2N/3) is dropped, reintroducing slack.
//
// matching must have exactly NumVertices() entries, matching[i] being the
// target vertex i was just assigned to. Evolve never mutates an
// infinite-cost edge; if matching implies doing so, that is a caller bug
// and is reported as ErrEvolveTouchedForbiddenEdge rather than silently
// applied.
func (g *Graph) Evolve(matching []int, avoidDeterministic bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.edges)
	if len(matching) != n {
		return wrapf(ErrMatchingSize, "Evolve: have %d vertices, matching has %d entries", n, len(matching))
	}

	// Step 1: decay every finite-cost edge, dropping expired penalties.
	for i := range g.edges {
		kept := make([]Edge, 0, len(g.edges[i]))
		for _, e := range g.edges[i] {
			switch {
			case e.Cost == InfiniteCost:
				kept = append(kept, e)
			case e.Cost > 1:
				kept = append(kept, Edge{Target: e.Target, Cost: e.Cost - 1})
			}
			// e.Cost <= 1 and finite: penalty has expired, drop it.
		}
		g.edges[i] = kept
	}

	// Step 2: plant/refresh the high-cost penalty for the pair just used.
	highCost := uint32(n)
	for i := range g.edges {
		matchedID := uint32(matching[i])
		found := false
		for j := range g.edges[i] {
			if g.edges[i][j].Target != matchedID {
				continue
			}
			if g.edges[i][j].Cost == InfiniteCost {
				return wrapf(ErrEvolveTouchedForbiddenEdge, "Evolve: vertex %d", i)
			}
			g.edges[i][j].Cost = highCost
			found = true
			break
		}
		if !found {
			g.edges[i] = append(g.edges[i], Edge{Target: matchedID, Cost: highCost})
		}
	}

	// Step 3: break up an emerging deterministic cycle.
	if avoidDeterministic {
		threshold := (highCost * 2) / 3
		for i := range g.edges {
			if len(g.edges[i]) != n-1 {
				continue
			}
			kept := make([]Edge, 0, len(g.edges[i]))
			for _, e := range g.edges[i] {
				if e.Cost > threshold {
					kept = append(kept, e)
				}
			}
			g.edges[i] = kept
		}
	}

	return nil
}
