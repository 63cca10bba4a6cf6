package constraintgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize produces the textual form of the graph:
//
//	nv <N>\n
//	v <id> [<tgt>(<cost>)]*\n    (repeated exactly N times, in id order)
//
// Edges for a vertex are emitted in insertion order, exactly as stored.
func (g *Graph) Serialize() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "nv %d\n", len(g.edges))
	for id, edges := range g.edges {
		b.WriteString("v ")
		b.WriteString(strconv.Itoa(id))
		for _, e := range edges {
			fmt.Fprintf(&b, " %d(%d)", e.Target, e.Cost)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Parse reads the textual form produced by Serialize. Parsing is strict: any
// grammar deviation, out-of-range id, or missing/duplicate vertex index
// yields ErrInvalidGraph.
func Parse(text string) (*Graph, error) {
	if !strings.HasSuffix(text, "\n") {
		return nil, wrapf(ErrInvalidGraph, "Parse: text is not newline-terminated")
	}
	lines := strings.Split(text[:len(text)-1], "\n")
	if len(lines) == 0 {
		return nil, wrapf(ErrInvalidGraph, "Parse: empty input")
	}

	n, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	if len(lines) != n+1 {
		return nil, wrapf(ErrInvalidGraph, "Parse: expected %d vertex lines, got %d", n, len(lines)-1)
	}

	g := New(n)
	filled := make([]bool, n)
	for _, line := range lines[1:] {
		id, edges, err := parseVertexLine(line, n)
		if err != nil {
			return nil, err
		}
		if filled[id] {
			return nil, wrapf(ErrInvalidGraph, "Parse: duplicate vertex id %d", id)
		}
		filled[id] = true
		g.edges[id] = edges
	}
	for id, ok := range filled {
		if !ok {
			return nil, wrapf(ErrInvalidGraph, "Parse: missing vertex id %d", id)
		}
	}

	return g, nil
}

func parseHeader(line string) (int, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != 2 || tokens[0] != "nv" {
		return 0, wrapf(ErrInvalidGraph, "Parse: malformed header %q", line)
	}
	n, err := strconv.Atoi(tokens[1])
	if err != nil || n < 0 || !isDigits(tokens[1]) {
		return 0, wrapf(ErrInvalidGraph, "Parse: malformed vertex count %q", tokens[1])
	}

	return n, nil
}

func parseVertexLine(line string, n int) (int, []Edge, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) < 2 || tokens[0] != "v" {
		return 0, nil, wrapf(ErrInvalidGraph, "Parse: malformed vertex line %q", line)
	}
	if !isDigits(tokens[1]) {
		return 0, nil, wrapf(ErrInvalidGraph, "Parse: malformed vertex id %q", tokens[1])
	}
	id, err := strconv.Atoi(tokens[1])
	if err != nil || id >= n {
		return 0, nil, wrapf(ErrInvalidGraph, "Parse: vertex id %q out of range", tokens[1])
	}

	edges := make([]Edge, 0, len(tokens)-2)
	seen := make(map[uint32]bool, len(tokens)-2)
	for _, tok := range tokens[2:] {
		target, cost, err := parseEdgeToken(tok, n)
		if err != nil {
			return 0, nil, err
		}
		if target == uint32(id) {
			return 0, nil, wrapf(ErrInvalidGraph, "Parse: self edge on vertex %d", id)
		}
		if seen[target] {
			return 0, nil, wrapf(ErrInvalidGraph, "Parse: duplicate edge to %d on vertex %d", target, id)
		}
		seen[target] = true
		edges = append(edges, Edge{Target: target, Cost: cost})
	}

	return id, edges, nil
}

// parseEdgeToken parses one "<tgt>(<cost>)" token.
func parseEdgeToken(tok string, n int) (target uint32, cost uint32, err error) {
	open := strings.IndexByte(tok, '(')
	if open <= 0 || tok[len(tok)-1] != ')' {
		return 0, 0, wrapf(ErrInvalidGraph, "Parse: malformed edge token %q", tok)
	}
	targetStr, costStr := tok[:open], tok[open+1:len(tok)-1]
	if !isDigits(targetStr) || !isDigits(costStr) {
		return 0, 0, wrapf(ErrInvalidGraph, "Parse: malformed edge token %q", tok)
	}
	t, err := strconv.ParseUint(targetStr, 10, 32)
	if err != nil || t >= uint64(n) {
		return 0, 0, wrapf(ErrInvalidGraph, "Parse: target %q out of range", targetStr)
	}
	c, err := strconv.ParseUint(costStr, 10, 32)
	if err != nil {
		return 0, 0, wrapf(ErrInvalidGraph, "Parse: malformed cost %q", costStr)
	}
	if c == 0 {
		return 0, 0, fmt.Errorf("Parse: edge token %q: %w: %w", tok, ErrZeroCost, ErrInvalidGraph)
	}

	return uint32(t), uint32(c), nil
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
