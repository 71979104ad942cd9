package graphbuild

import "github.com/katalvlaran/nucleus/graph"

// Path returns the path graph on n vertices: i is adjacent to i+1 for
// every 0<=i<n-1. Grounded on the teacher's impl_path.go, which wires
// consecutive ids in construction order; the same edge order is used
// here to build the coordinate stream.
func Path(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}

	pairs := make([][2]int32, 0, n-1)
	for i := 0; i < n-1; i++ {
		pairs = append(pairs, [2]int32{int32(i), int32(i + 1)})
	}

	return fromUndirectedPairs(n, pairs)
}
