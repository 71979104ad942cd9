package graphbuild

import "github.com/katalvlaran/nucleus/graph"

// Cycle returns the cycle graph on n vertices: i is adjacent to
// (i+1)%n for every 0<=i<n, closing the path back on itself. Grounded
// on the teacher's impl_cycle.go, which builds a path and then wires
// the closing edge from the last id back to the first.
func Cycle(n int) (*graph.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}

	pairs := make([][2]int32, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if i < j {
			pairs = append(pairs, [2]int32{int32(i), int32(j)})
		} else {
			pairs = append(pairs, [2]int32{int32(j), int32(i)})
		}
	}

	return fromUndirectedPairs(n, pairs)
}
