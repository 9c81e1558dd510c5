package graph

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// ReadEdges parses the plain edge-triple format: one edge per line, three
// whitespace-separated tokens "src label dst", src/dst signed decimal
// integers. Malformed lines (wrong token count, non-integer src/dst) are
// silently skipped — a documented non-strict parse, not an error; only a
// read failure on r itself is returned as an error.
func ReadEdges(r io.Reader) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		src, label, dst, ok := parseEdgeLine(scanner.Text())
		if !ok {
			continue
		}
		g.AddEdge(src, label, dst)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReadLabelledGraph parses the labelled-graph variant: same triple format,
// but a self-loop labeled "a" marks its vertex as starting and a self-loop
// labeled "c" marks its vertex as accepting, instead of being added as an
// ordinary edge. This lets a test hand the evaluator a pre-flattened
// a·b*·c graph without running product construction.
func ReadLabelledGraph(r io.Reader) (*Graph, error) {
	g := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		src, label, dst, ok := parseEdgeLine(scanner.Text())
		if !ok {
			continue
		}
		if src == dst && label == "a" {
			g.SetStarting(src)
			continue
		}
		if src == dst && label == "c" {
			g.SetAccepting(src)
			continue
		}
		g.AddEdge(src, label, dst)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseEdgeLine(line string) (src VertexID, label string, dst VertexID, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, "", 0, false
	}
	s, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, "", 0, false
	}
	d, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return 0, "", 0, false
	}
	return VertexID(s), fields[1], VertexID(d), true
}
