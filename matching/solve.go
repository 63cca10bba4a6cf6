package matching

import (
	"github.com/sergeyvl/wpm/assignmentgraph"
)

// findExposedSource scans cliques in a freshly randomized order and
// returns the first one not yet covered as a source by ms, or noMatch if
// every clique is already covered (the matching is perfect). This is the
// search's sole point of randomization: which maximal-score matching comes
// out is determined by which exposed clique gets picked as the root of
// each round's alternating tree.
func findExposedSource(g *assignmentgraph.Graph, ms *matchState) int {
	for _, cid := range g.CliquesInRandomOrder() {
		if !ms.isSource(cid) {
			return cid
		}
	}

	return noMatch
}

// updateLabelingAndSlack tightens the labeling by the slack array's
// current global minimum and folds that delta back into the slack array.
// ok is false when the minimum is zero: the labeling cannot be tightened
// further, which (since the BFS already exhausted the equality subgraph)
// means no perfect matching exists.
func updateLabelingAndSlack(at *alternatingTree, sa *slackArray, vl *vertexLabeling) bool {
	delta, ok := sa.simplify(at)
	if !ok || delta == 0 {
		return false
	}
	vl.update(delta, at)

	return true
}

// findAugmentingPathAroundCandidates performs a breadth-first walk of the
// current equality subgraph starting from the queued candidate source
// vertices, growing the alternating tree as it goes, until it either finds
// an augmenting path or exhausts the queue.
func findAugmentingPathAroundCandidates(queue *[]int, at *alternatingTree, sa *slackArray, ms *matchState, vl *vertexLabeling, t *topology) bool {
	for !at.isAugmentingPathFound() && len(*queue) > 0 {
		sourceCid := (*queue)[0]
		*queue = (*queue)[1:]

		for _, idx := range t.fromSource[sourceCid] {
			e := t.edge(idx)
			targetCid := int(e.TargetClique)
			slackValue := vl.sourceLabel(sourceCid) + vl.targetLabel(targetCid) - int64(e.Score)
			if at.isInT(targetCid) || slackValue != 0 {
				continue
			}
			if !ms.isTarget(targetCid) {
				at.setEndExposedTargetVertex(sourceCid, targetCid, idx)
				break
			}
			edgeTS2 := ms.edgeFromTarget(targetCid)
			matchedCid := ms.targetMatch[targetCid]
			*queue = append(*queue, matchedCid)
			at.addTwoEdges(sourceCid, targetCid, matchedCid, idx, edgeTS2)
			sa.updateWithNewSource(matchedCid, t, vl)
		}
	}

	return at.isAugmentingPathFound()
}

// findAugmentingPathFromNewReachable scans every target clique for one
// that just became reachable in the equality subgraph after the labeling
// was tightened (slack dropped to zero), and extends the alternating tree
// accordingly. Runs after updateLabelingAndSlack, since a tightened
// labeling is exactly what makes new edges tight.
func findAugmentingPathFromNewReachable(queue *[]int, at *alternatingTree, sa *slackArray, ms *matchState, vl *vertexLabeling, t *topology) bool {
	for cid := 0; cid < t.n && !at.isAugmentingPathFound(); cid++ {
		if at.isInT(cid) || sa.value(cid) != 0 {
			continue
		}
		minSlackSource := sa.source(cid)
		edgeS1T := sa.edge(cid)

		if !ms.isTarget(cid) {
			at.setEndExposedTargetVertex(minSlackSource, cid, edgeS1T)
			break
		}
		edgeTS2 := ms.edgeFromTarget(cid)
		matchedCid := ms.targetMatch[cid]
		if !at.isInS(matchedCid) {
			*queue = append(*queue, matchedCid)
			at.addTwoEdges(minSlackSource, cid, matchedCid, edgeS1T, edgeTS2)
			sa.updateWithNewSource(matchedCid, t, vl)
		} else {
			at.addSingleEdge(minSlackSource, cid, edgeS1T)
		}
	}

	return at.isAugmentingPathFound()
}

// augmentMatching grows ms by exactly one edge, or returns (false, nil) if
// no augmenting path exists for the current labeling (meaning no perfect
// matching exists at all, since the labeling is only ever tightened).
func augmentMatching(g *assignmentgraph.Graph, t *topology, ms *matchState, vl *vertexLabeling, cfg *solverConfig) (bool, error) {
	if ms.numEdges() == t.n {
		return false, nil
	}
	cfg.logf("augmentMatching (|matching|=%d):\n", ms.numEdges())

	root := findExposedSource(g, ms)
	if root == noMatch {
		return false, wrapf(ErrInvalidMatching, "augmentMatching: no exposed source vertex despite imperfect matching")
	}
	cfg.logf("  root exposed source = s%d\n", root)

	sa := newSlackArray(t.n, root, t, vl)
	at := newAlternatingTree(t.n, root)

	queue := []int{root}
	for !at.isAugmentingPathFound() {
		if findAugmentingPathAroundCandidates(&queue, at, sa, ms, vl, t) {
			break
		}
		if !updateLabelingAndSlack(at, sa, vl) {
			return false, nil
		}
		if findAugmentingPathFromNewReachable(&queue, at, sa, ms, vl, t) {
			break
		}
	}

	if err := at.applyAugmentingPath(ms, t); err != nil {
		return false, err
	}
	cfg.logf("  new matching size = %d\n", ms.numEdges())

	return true, nil
}

// findPerfectMatching iteratively augments an initially empty matching
// until every clique is covered, one augmentation per round.
func findPerfectMatching(g *assignmentgraph.Graph, cfg *solverConfig) (*topology, []int, error) {
	t := newTopology(g)
	vl := newVertexLabeling(t)
	ms := newMatchState(t.n)

	for i := 0; i < t.n; i++ {
		ok, err := augmentMatching(g, t, ms, vl, cfg)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, wrapf(ErrNoPerfectMatching, "findPerfectMatching: stuck after %d of %d augmentations", i, t.n)
		}
	}

	return t, ms.matchingEdges(), nil
}

// FindRandomPerfectMatching finds a maximum-score perfect matching on g.
// Which of several maximum-score matchings comes back varies across runs
// (the exposed source vertex rooting each augmentation round is drawn at
// random; see CliquesInRandomOrder), but the choice is not uniform among
// them: ties between targets go to the edge inserted first. Returns
// ErrNoPerfectMatching if g has no perfect matching at all.
func FindRandomPerfectMatching(g *assignmentgraph.Graph, opts ...Option) ([]assignmentgraph.Edge, error) {
	if err := g.CheckPerfectMatchable(); err != nil {
		return nil, wrapf(ErrNoPerfectMatching, "FindRandomPerfectMatching: %v", err)
	}

	cfg := newSolverConfig(opts)

	t, edgeIdxs, err := findPerfectMatching(g, cfg)
	if err != nil {
		return nil, err
	}
	if len(edgeIdxs) < g.NumCliques() {
		return nil, wrapf(ErrNoPerfectMatching, "FindRandomPerfectMatching: matching covers %d of %d cliques", len(edgeIdxs), g.NumCliques())
	}

	out := make([]assignmentgraph.Edge, len(edgeIdxs))
	for i, idx := range edgeIdxs {
		out[i] = t.edge(idx)
	}

	return out, nil
}
