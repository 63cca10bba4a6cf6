package constraintgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeyvl/wpm/constraintgraph"
)

func TestEvolveDecaysAndPlants(t *testing.T) {
	g := constraintgraph.New(3)
	require.NoError(t, g.AddDirectedEdge(0, 1, 2))
	require.NoError(t, g.AddDirectedEdge(0, 2, 1)) // will expire

	require.NoError(t, g.Evolve([]int{2, 0, 1}, false))

	edges, err := g.Edges(0)
	require.NoError(t, err)
	// 0->2 expired (cost was 1, decayed to 0 and dropped); 0->1 decayed to 1
	// then the match 0->2 plants a fresh high-cost edge.
	require.ElementsMatch(t, []constraintgraph.Edge{{Target: 1, Cost: 1}, {Target: 2, Cost: 3}}, edges)
}

func TestEvolveNeverLowersOrTouchesInfiniteCost(t *testing.T) {
	g := constraintgraph.New(2)
	require.NoError(t, g.AddDirectedEdge(0, 1, constraintgraph.InfiniteCost))
	require.NoError(t, g.AddDirectedEdge(1, 0, constraintgraph.InfiniteCost))

	err := g.Evolve([]int{1, 0}, false)
	require.ErrorIs(t, err, constraintgraph.ErrEvolveTouchedForbiddenEdge)
}

func TestEvolveAvoidDeterministicReintroducesSlack(t *testing.T) {
	n := 4
	g := constraintgraph.New(n)
	// Vertex 0 is matched to 1, then 2, then 3. After the third round it
	// holds 1(2), 2(3), 3(4): n-1 == 3 edges, so every edge at or below
	// floor(2*4/3) == 2 is dropped, leaving 2(3) and 3(4).
	for _, matching := range [][]int{{1, 0, 3, 2}, {2, 3, 0, 1}, {3, 2, 1, 0}} {
		require.NoError(t, g.Evolve(matching, true))
	}
	edges, err := g.Edges(0)
	require.NoError(t, err)
	require.ElementsMatch(t, []constraintgraph.Edge{{Target: 2, Cost: 3}, {Target: 3, Cost: 4}}, edges)
}

func TestEvolveRejectsWrongSizeMatching(t *testing.T) {
	g := constraintgraph.New(3)
	require.ErrorIs(t, g.Evolve([]int{0, 1}, false), constraintgraph.ErrMatchingSize)
}

func TestEvolveBound(t *testing.T) {
	n := 5
	g := constraintgraph.New(n)
	matching := []int{1, 2, 3, 4, 0}
	for i := 0; i < 20; i++ {
		require.NoError(t, g.Evolve(matching, true))
		for v := 0; v < n; v++ {
			edges, err := g.Edges(v)
			require.NoError(t, err)
			for _, e := range edges {
				if e.Cost != constraintgraph.InfiniteCost {
					require.LessOrEqual(t, e.Cost, uint32(n))
					require.NotZero(t, e.Cost)
				}
			}
		}
	}
}
