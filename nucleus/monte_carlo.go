// File: monte_carlo.go
// Role: MonteCarlo(T) — a cheap, non-peeling approximation: sample T
// i.i.d. r-clique indices, average their initial s-degree, and
// broadcast that single estimate across the result vector.

package nucleus

import (
	"github.com/katalvlaran/nucleus/graph"
	"golang.org/x/exp/rand"
)

// MonteCarlo approximates the mean s-degree of g's r-cliques by drawing
// t i.i.d. uniform samples from [0,N_r) and averaging their initial
// s-degree (integer division). No peeling is performed. rng is supplied
// by the caller so results are reproducible given a fixed seed, rather
// than relying on any process-global source of randomness.
func MonteCarlo(g *graph.Graph, r, s, t int, rng *rand.Rand) ([]int, error) {
	if err := validateRS(r, s); err != nil {
		return nil, err
	}
	if t < 1 {
		return nil, ErrNonPositiveT
	}

	inc, n, err := buildIncidence(g, r, s)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}

	sum := 0
	for i := 0; i < t; i++ {
		idx := rng.Intn(n)
		sum += inc.sDegree[idx]
	}
	mean := sum / t

	k := make([]int, n)
	for i := range k {
		k[i] = mean
	}

	return k, nil
}
