package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sergeyvl/wpm/assignmentgraph"
	"github.com/sergeyvl/wpm/matching"
)

// SolverSuite exercises FindRandomPerfectMatching across graph shapes that
// each stress a different part of the two-phase augmenting-path search.
type SolverSuite struct {
	suite.Suite
}

func (s *SolverSuite) SetupTest() {
	assignmentgraph.SeedForTesting(777)
}

func (s *SolverSuite) TestMaximizesScoreOnAsymmetricGraph() {
	g, err := assignmentgraph.Parse(threeCliqueGraphText)
	require.NoError(s.T(), err)

	edges, err := matching.FindRandomPerfectMatching(g)
	require.NoError(s.T(), err)

	var total int32
	for _, e := range edges {
		total += e.Score
	}
	require.Equal(s.T(), int32(-15), total)
}

func (s *SolverSuite) TestRejectsGraphWithNoPerfectMatching() {
	g := assignmentgraph.New(2)
	require.NoError(s.T(), g.AddDirectedEdge(0, 1, assignmentgraph.ScoreMin))
	require.NoError(s.T(), g.AddDirectedEdge(1, 0, assignmentgraph.ScoreMin))

	_, err := matching.FindRandomPerfectMatching(g)
	require.ErrorIs(s.T(), err, matching.ErrNoPerfectMatching)
}

func (s *SolverSuite) TestValidityHoldsOnFullyConnectedGraph() {
	g := fiveCliqueFullyConnectedGraph(s.T())

	edges, err := matching.FindRandomPerfectMatching(g)
	require.NoError(s.T(), err)

	perm := make([]int, 5)
	for _, e := range edges {
		perm[e.SourceClique] = int(e.TargetClique)
	}
	require.NoError(s.T(), matching.CheckPerfectMatchingValidity(5, perm))
}

func (s *SolverSuite) TestRepeatedSolvesAllSucceedWithForbiddenPairsPresent() {
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
			require.NoError(s.T(), g.AddDirectedEdge(i, j, score))
		}
	}

	for i := 0; i < 10; i++ {
		_, err := matching.FindRandomPerfectMatching(g)
		require.NoError(s.T(), err)
	}
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
