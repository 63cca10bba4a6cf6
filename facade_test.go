package wpm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeyvl/wpm"
	"github.com/sergeyvl/wpm/assignmentgraph"
)

func fiveVertexAllPairsGraphText() string {
	return "nv 5\n" +
		"v 0\n" +
		"v 1\n" +
		"v 2\n" +
		"v 3\n" +
		"v 4\n"
}

func TestFindBestPerfectMatchingSucceeds(t *testing.T) {
	assignmentgraph.SeedForTesting(1)

	code, perm, updated, err := wpm.FindBestPerfectMatching(fiveVertexAllPairsGraphText(), true)
	require.NoError(t, err)
	require.Equal(t, wpm.Success, code)
	require.Len(t, perm, 5)
	require.NotEmpty(t, updated)
}

func TestFindBestPerfectMatchingRejectsMalformedText(t *testing.T) {
	code, _, _, err := wpm.FindBestPerfectMatching("garbage", true)
	require.Error(t, err)
	require.Equal(t, wpm.InvalidGraph, code)
}

func TestFindBestPerfectMatchingSuccessiveRounds(t *testing.T) {
	assignmentgraph.SeedForTesting(2)

	text := fiveVertexAllPairsGraphText()
	for i := 0; i < 10; i++ {
		code, perm, updated, err := wpm.FindBestPerfectMatching(text, true)
		require.NoError(t, err, "round %d", i)
		require.Equal(t, wpm.Success, code)
		require.Len(t, perm, 5)
		text = updated
	}
}

func TestFindBestPerfectMatchingFailsOnImpossibleConstraints(t *testing.T) {
	// A 2-vertex graph where both directions are infinitely constrained:
	// no perfect matching is possible.
	text := "nv 2\n" +
		"v 0 1(4294967295)\n" +
		"v 1 0(4294967295)\n"

	code, _, _, err := wpm.FindBestPerfectMatching(text, true)
	require.Error(t, err)
	require.Equal(t, wpm.MatchingFailure, code)
}

func TestResultCodeString(t *testing.T) {
	require.Equal(t, "Success", wpm.Success.String())
	require.Equal(t, "MatchingFailure", wpm.MatchingFailure.String())
}
