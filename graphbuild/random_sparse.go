package graphbuild

import (
	"github.com/katalvlaran/nucleus/graph"
	"golang.org/x/exp/rand"
)

// RandomSparse returns an Erdős–Rényi-style random graph on n
// vertices, including each unordered pair independently with
// probability p. Grounded on the teacher's impl_random_sparse.go,
// which walks every unordered pair once and flips cfg.rng against the
// configured probability; the accepted pairs are collected into a
// coordinate stream instead of being wired incrementally.
//
// rng may be nil only when p is exactly 0 or exactly 1, since no
// sampling decision is actually needed at either extreme.
func RandomSparse(n int, p float64, rng *rand.Rand) (*graph.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, ErrNeedRandSource
	}

	pairs := make([][2]int32, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == 1:
				pairs = append(pairs, [2]int32{int32(i), int32(j)})
			case p == 0:
				// never included
			case rng.Float64() < p:
				pairs = append(pairs, [2]int32{int32(i), int32(j)})
			}
		}
	}

	return fromUndirectedPairs(n, pairs)
}
