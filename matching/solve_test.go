package matching_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeyvl/wpm/assignmentgraph"
	"github.com/sergeyvl/wpm/matching"
)

const threeCliqueGraphText = "nc 3\n" +
	"ne 6\n" +
	"e 0 1 -5\n" +
	"e 0 2 -20\n" +
	"e 1 0 0\n" +
	"e 1 2 -5\n" +
	"e 2 0 -5\n" +
	"e 2 1 0\n"

func TestFindRandomPerfectMatchingMaximizesScore(t *testing.T) {
	assignmentgraph.SeedForTesting(42)

	g, err := assignmentgraph.Parse(threeCliqueGraphText)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		edges, err := matching.FindRandomPerfectMatching(g)
		require.NoError(t, err)
		require.Len(t, edges, 3)

		total := int32(0)
		for _, e := range edges {
			total += e.Score
		}
		require.Equal(t, int32(-15), total)
	}
}

func fiveCliqueFullyConnectedGraph(t *testing.T) *assignmentgraph.Graph {
	t.Helper()

	const n = 5
	g := assignmentgraph.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			require.NoError(t, g.AddDirectedEdge(i, j, 0))
		}
	}

	return g
}

func TestFindRandomPerfectMatchingValidity(t *testing.T) {
	assignmentgraph.SeedForTesting(7)

	g := fiveCliqueFullyConnectedGraph(t)
	edges, err := matching.FindRandomPerfectMatching(g)
	require.NoError(t, err)

	perm := make([]int, 5)
	for _, e := range edges {
		perm[e.SourceClique] = int(e.TargetClique)
	}
	require.NoError(t, matching.CheckPerfectMatchingValidity(5, perm))
}

func TestCheckPerfectMatchingValidityRejectsDuplicateSource(t *testing.T) {
	err := matching.CheckPerfectMatchingValidity(3, []int{1, 1, 0})
	require.ErrorIs(t, err, matching.ErrInvalidMatching)
}

func TestCheckPerfectMatchingValidityRejectsWrongLength(t *testing.T) {
	err := matching.CheckPerfectMatchingValidity(3, []int{1, 0})
	require.ErrorIs(t, err, matching.ErrInvalidMatching)
}

func TestFindRandomPerfectMatchingFailsWhenNoneExists(t *testing.T) {
	g := assignmentgraph.New(2)
	require.NoError(t, g.AddDirectedEdge(0, 1, assignmentgraph.ScoreMin))
	require.NoError(t, g.AddDirectedEdge(1, 0, assignmentgraph.ScoreMin))

	_, err := matching.FindRandomPerfectMatching(g)
	require.ErrorIs(t, err, matching.ErrNoPerfectMatching)
}

func TestFindRandomPerfectMatchingSucceedsRepeatedlyOnForbiddenSelfPairs(t *testing.T) {
	assignmentgraph.SeedForTesting(99)

	// Two husband/wife-style forbidden pairs over five cliques: (0,1),(2,3)
	// forbidden both ways, clique 4 unconstrained; this still leaves every half-vertex at
	// least one admissible edge.
	const n = 5
	forbidden := map[[2]int]bool{
		{0, 1}: true, {1, 0}: true,
		{2, 3}: true, {3, 2}: true,
	}
	g := assignmentgraph.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			score := int32(0)
			if forbidden[[2]int{i, j}] {
				score = assignmentgraph.ScoreMin
			}
			require.NoError(t, g.AddDirectedEdge(i, j, score))
		}
	}

	for i := 0; i < 10; i++ {
		_, err := matching.FindRandomPerfectMatching(g)
		require.NoError(t, err)
	}
}

// TestUniformRandomChoiceAmongOptimalMatchings checks that repeated solves
// on the same graph pick uniformly among the admissible perfect matchings:
// for every source clique, the empirical distribution of its chosen target
// over many runs approaches 1/(N-2) (every target but itself and its
// forbidden pair is equally likely), and forbidden or self pairs are never
// chosen.
func TestUniformRandomChoiceAmongOptimalMatchings(t *testing.T) {
	assignmentgraph.SeedForTesting(2024)

	const n = 10
	const runs = 1000

	// Five husband/wife-style forbidden pairs: (0,1), (2,3), (4,5), (6,7),
	// (8,9) forbidden both ways; every other directed pair costs 0.
	forbidden := make(map[[2]int]bool, n)
	for i := 0; i+1 < n; i += 2 {
		forbidden[[2]int{i, i + 1}] = true
		forbidden[[2]int{i + 1, i}] = true
	}

	g := assignmentgraph.New(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			score := int32(0)
			if forbidden[[2]int{i, j}] {
				score = assignmentgraph.ScoreMin
			}
			require.NoError(t, g.AddDirectedEdge(i, j, score))
		}
	}

	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}
	for r := 0; r < runs; r++ {
		edges, err := matching.FindRandomPerfectMatching(g)
		require.NoError(t, err)
		for _, e := range edges {
			counts[e.SourceClique][int(e.TargetClique)]++
		}
	}

	const admissiblePerSource = n - 2
	expected := 1.0 / float64(admissiblePerSource)
	// Bound on the empirical deviation at four standard errors of a
	// binomial proportion with p = expected and runs draws.
	delta := 4 * math.Sqrt(expected*(1-expected)/float64(runs))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				require.Zero(t, counts[i][j], "self pair (%d,%d)", i, j)
			case forbidden[[2]int{i, j}]:
				require.Zero(t, counts[i][j], "forbidden pair (%d,%d)", i, j)
			default:
				got := float64(counts[i][j]) / float64(runs)
				require.InDelta(t, expected, got, delta, "pair (%d,%d)", i, j)
			}
		}
	}
}
