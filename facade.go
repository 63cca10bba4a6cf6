package wpm

import (
	"errors"
	"fmt"

	"github.com/sergeyvl/wpm/constraintgraph"
	"github.com/sergeyvl/wpm/convert"
	"github.com/sergeyvl/wpm/matching"
)

// FindBestPerfectMatching runs one full cycle: parse the constraint-graph
// text, convert it to the bipartite view, find a random maximum-score
// perfect matching, validate it, evolve the constraints against it, and
// serialize the updated constraint graph back to text.
//
// The public facade never panics: every failure path returns a result
// code and a non-nil error describing it. avoidDeterministic is threaded
// straight through to Evolve (see constraintgraph.Graph.Evolve).
func FindBestPerfectMatching(graphText string, avoidDeterministic bool, opts ...matching.Option) (code ResultCode, permutation []int, updatedGraphText string, err error) {
	defer func() {
		if r := recover(); r != nil {
			code, permutation, updatedGraphText = UnknownException, nil, ""
			err = fmt.Errorf("wpm: recovered from panic: %v", r)
		}
	}()

	cg, err := constraintgraph.Parse(graphText)
	if err != nil {
		return InvalidGraph, nil, "", err
	}

	ag, err := convert.ToAssignmentGraph(cg)
	if err != nil {
		return KnownException, nil, "", err
	}

	matchedEdges, err := matching.FindRandomPerfectMatching(ag, opts...)
	if err != nil {
		if errors.Is(err, matching.ErrNoPerfectMatching) {
			return MatchingFailure, nil, "", err
		}

		return KnownException, nil, "", err
	}

	perm, err := convert.ToGenericMatching(matchedEdges, cg.NumVertices())
	if err != nil {
		return InvalidMatching, nil, "", err
	}
	if err := matching.CheckPerfectMatchingValidity(cg.NumVertices(), perm); err != nil {
		return InvalidMatching, nil, "", err
	}

	if err := cg.Evolve(perm, avoidDeterministic); err != nil {
		return KnownException, nil, "", err
	}

	return Success, perm, cg.Serialize(), nil
}
