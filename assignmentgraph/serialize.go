package assignmentgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize produces the textual form of the graph:
//
//	nc <N>\n
//	ne <E>\n
//	e <src> <dst> <score>\n    (repeated exactly E times, in insertion order)
func (g *Graph) Serialize() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "nc %d\n", g.numCliques)
	fmt.Fprintf(&b, "ne %d\n", len(g.edges))
	for _, e := range g.edges {
		fmt.Fprintf(&b, "e %d %d %d\n", e.SourceClique, e.TargetClique, e.Score)
	}

	return b.String()
}

// Parse reads the textual form produced by Serialize. Parsing is strict: any
// grammar deviation or out-of-range clique id yields ErrInvalidGraph.
func Parse(text string) (*Graph, error) {
	if !strings.HasSuffix(text, "\n") {
		return nil, wrapf(ErrInvalidGraph, "Parse: text is not newline-terminated")
	}
	lines := strings.Split(text[:len(text)-1], "\n")
	if len(lines) < 2 {
		return nil, wrapf(ErrInvalidGraph, "Parse: missing header lines")
	}

	n, err := parseCountLine(lines[0], "nc")
	if err != nil {
		return nil, err
	}
	e, err := parseCountLine(lines[1], "ne")
	if err != nil {
		return nil, err
	}
	if len(lines) != e+2 {
		return nil, wrapf(ErrInvalidGraph, "Parse: expected %d edge lines, got %d", e, len(lines)-2)
	}

	g := New(n)
	for _, line := range lines[2:] {
		src, dst, score, err := parseEdgeLine(line, n)
		if err != nil {
			return nil, err
		}
		if addErr := g.AddDirectedEdge(src, dst, score); addErr != nil {
			return nil, wrapf(ErrInvalidGraph, "Parse: edge line %q: %v", line, addErr)
		}
	}

	return g, nil
}

func parseCountLine(line, keyword string) (int, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 2 || tokens[0] != keyword {
		return 0, wrapf(ErrInvalidGraph, "Parse: malformed %q line %q", keyword, line)
	}
	if !isDigits(tokens[1]) {
		return 0, wrapf(ErrInvalidGraph, "Parse: malformed count %q", tokens[1])
	}
	n, err := strconv.Atoi(tokens[1])
	if err != nil || n < 0 {
		return 0, wrapf(ErrInvalidGraph, "Parse: malformed count %q", tokens[1])
	}

	return n, nil
}

func parseEdgeLine(line string, n int) (src, dst int, score int32, err error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 4 || tokens[0] != "e" {
		return 0, 0, 0, wrapf(ErrInvalidGraph, "Parse: malformed edge line %q", line)
	}
	if !isDigits(tokens[1]) || !isDigits(tokens[2]) {
		return 0, 0, 0, wrapf(ErrInvalidGraph, "Parse: malformed edge endpoints %q", line)
	}
	s, serr := strconv.Atoi(tokens[1])
	d, derr := strconv.Atoi(tokens[2])
	if serr != nil || derr != nil || s >= n || d >= n {
		return 0, 0, 0, wrapf(ErrInvalidGraph, "Parse: edge endpoints out of range %q", line)
	}
	sc, scerr := strconv.ParseInt(tokens[3], 10, 32)
	if scerr != nil {
		return 0, 0, 0, wrapf(ErrInvalidGraph, "Parse: malformed score %q", tokens[3])
	}

	return s, d, int32(sc), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
