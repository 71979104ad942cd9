// File: load.go
// Role: Load parses the edge-list file format into a Graph. A custom
// two-token-per-line format has no ecosystem parser in the example pack
// that fits better than a plain bufio.Scanner, so this is the one place
// in the engine that reaches for the standard library over a
// third-party dependency.

package edgelist

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/nucleus/csr"
	"github.com/katalvlaran/nucleus/graph"
)

// Load reads the edge-list file at path and returns the Graph it
// describes. Returns a *ParseError wrapping one of this package's
// sentinel errors on any malformed input; no partial graph is ever
// returned.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0

	nextLine := func() (string, bool) {
		for scanner.Scan() {
			line++

			return scanner.Text(), true
		}

		return "", false
	}

	directiveLine, ok := nextLine()
	if !ok {
		return nil, &ParseError{Line: line + 1, Err: ErrMissingHeader}
	}
	isDirected, err := parseDirective(directiveLine)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}

	countsLine, ok := nextLine()
	if !ok {
		return nil, &ParseError{Line: line + 1, Err: ErrMissingHeader}
	}
	nVertices, nDeclaredEdges, err := parseCounts(countsLine)
	if err != nil {
		return nil, &ParseError{Line: line, Err: err}
	}

	rows := make([]int32, 0, nDeclaredEdges)
	cols := make([]int32, 0, nDeclaredEdges)

	read := 0
	prevU, prevV := int32(-1), int32(-1)
	for {
		edgeLine, ok := nextLine()
		if !ok {
			break
		}
		u, v, err := parseEdgeLine(edgeLine)
		if err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		if u == v {
			return nil, &ParseError{Line: line, Err: ErrSelfLoop}
		}
		if u < 0 || u >= int32(nVertices) || v < 0 || v >= int32(nVertices) {
			return nil, &ParseError{Line: line, Err: ErrVertexOutOfRange}
		}
		if u < prevU || (u == prevU && v <= prevV) {
			return nil, &ParseError{Line: line, Err: ErrUnsortedEdges}
		}
		prevU, prevV = u, v

		rows = append(rows, u)
		cols = append(cols, v)
		if !isDirected {
			rows = append(rows, v)
			cols = append(cols, u)
		}
		read++
	}
	if read != nDeclaredEdges {
		return nil, &ParseError{Line: line, Err: ErrEdgeCountMismatch}
	}

	if !isDirected {
		sortCOOByRowThenCol(rows, cols)
	}

	adjacency, err := csr.NewFromCOO(nVertices, nVertices, rows, cols, nil)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}

	nEdges := nDeclaredEdges
	if !isDirected {
		nEdges *= 2
	}

	return graph.New(nVertices, nEdges, isDirected, adjacency)
}

func parseDirective(s string) (isDirected bool, err error) {
	switch strings.TrimSpace(s) {
	case "% directed":
		return true, nil
	case "% undirected":
		return false, nil
	default:
		return false, ErrUnknownDirective
	}
}

func parseCounts(s string) (nVertices, nEdges int, err error) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(s), "%"))
	if len(fields) != 2 {
		return 0, 0, ErrBadCounts
	}
	n, err1 := strconv.Atoi(fields[0])
	m, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || n < 0 || m < 0 {
		return 0, 0, ErrBadCounts
	}

	return n, m, nil
}

func parseEdgeLine(s string) (u, v int32, err error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, ErrBadEdgeLine
	}
	uu, err1 := strconv.Atoi(fields[0])
	vv, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, ErrBadEdgeLine
	}

	return int32(uu), int32(vv), nil
}

// sortCOOByRowThenCol re-sorts the undirected (u,v)+(v,u) expansion back
// into ascending-row, ascending-column order required by csr.NewFromCOO,
// since appending (v,u) right after (u,v) breaks that order whenever
// v<u.
func sortCOOByRowThenCol(rows, cols []int32) {
	type coord struct{ r, c int32 }
	coords := make([]coord, len(rows))
	for i := range rows {
		coords[i] = coord{rows[i], cols[i]}
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].r != coords[j].r {
			return coords[i].r < coords[j].r
		}

		return coords[i].c < coords[j].c
	})
	for i, c := range coords {
		rows[i] = c.r
		cols[i] = c.c
	}
}
