package matching

import "math"

// slackArray memorizes, for the current labeling and for each target
// clique t, the minimum of l(s)+l(t)-w(s,t) over every source clique s
// already in the alternating tree's S set. Maintaining it incrementally
// (rather than recomputing from scratch) is what keeps the overall search
// at O(N^3) instead of O(N^4).
type slackArray struct {
	minSlack []int64
	sourceOf []int // source clique achieving the minimum, or noMatch
	edgeOf   []int // edge index achieving the minimum, or noMatch
}

func newSlackArray(n, rootSource int, t *topology, vl *vertexLabeling) *slackArray {
	sa := &slackArray{
		minSlack: make([]int64, n),
		sourceOf: make([]int, n),
		edgeOf:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		sa.minSlack[i] = math.MaxInt64
		sa.sourceOf[i] = noMatch
		sa.edgeOf[i] = noMatch
	}
	for _, idx := range t.fromSource[rootSource] {
		e := t.edge(idx)
		target := int(e.TargetClique)
		sa.minSlack[target] = vl.sourceLabel(rootSource) + vl.targetLabel(target) - int64(e.Score)
		sa.sourceOf[target] = rootSource
		sa.edgeOf[target] = idx
	}

	return sa
}

func (sa *slackArray) value(targetCid int) int64 { return sa.minSlack[targetCid] }
func (sa *slackArray) source(targetCid int) int  { return sa.sourceOf[targetCid] }
func (sa *slackArray) edge(targetCid int) int    { return sa.edgeOf[targetCid] }

// simplify computes the global minimum slack among targets not yet in the
// tree's T set, subtracts it from every such slot, and returns it. ok is
// false if every remaining target has no recorded slack at all, which
// means the search is stuck and no perfect matching exists.
func (sa *slackArray) simplify(at *alternatingTree) (delta int64, ok bool) {
	delta = math.MaxInt64
	for t, src := range sa.sourceOf {
		if src != noMatch && !at.isInT(t) {
			if sa.minSlack[t] < delta {
				delta = sa.minSlack[t]
			}
		}
	}
	if delta == math.MaxInt64 {
		return 0, false
	}
	for t, src := range sa.sourceOf {
		if src != noMatch && !at.isInT(t) {
			sa.minSlack[t] -= delta
		}
	}

	return delta, true
}

// updateWithNewSource refreshes every target's slack after addedSource was
// just added to the alternating tree's S set.
func (sa *slackArray) updateWithNewSource(addedSource int, t *topology, vl *vertexLabeling) {
	for _, idx := range t.fromSource[addedSource] {
		e := t.edge(idx)
		target := int(e.TargetClique)
		candidate := vl.sourceLabel(addedSource) + vl.targetLabel(target) - int64(e.Score)
		if candidate < sa.minSlack[target] {
			sa.minSlack[target] = candidate
			sa.sourceOf[target] = addedSource
			sa.edgeOf[target] = idx
		}
	}
}
