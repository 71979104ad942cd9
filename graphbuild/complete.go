package graphbuild

import "github.com/katalvlaran/nucleus/graph"

// Complete returns the complete graph K_n: every pair of distinct
// vertices is adjacent. Grounded on the teacher's impl_complete.go,
// which wires every vertex to every other vertex via cfg.idFn during
// construction; here the same all-pairs edge set is assembled as a
// coordinate stream and frozen in one step.
func Complete(n int) (*graph.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}

	pairs := make([][2]int32, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int32{int32(i), int32(j)})
		}
	}

	return fromUndirectedPairs(n, pairs)
}
