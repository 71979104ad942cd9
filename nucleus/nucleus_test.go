package nucleus_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/nucleus/csr"
	"github.com/katalvlaran/nucleus/graph"
	"github.com/katalvlaran/nucleus/nucleus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func buildUndirected(t *testing.T, n int, edges [][2]int32) *graph.Graph {
	t.Helper()

	type coord struct{ r, c int32 }
	var coords []coord
	for _, e := range edges {
		coords = append(coords, coord{e[0], e[1]}, coord{e[1], e[0]})
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].r != coords[j].r {
			return coords[i].r < coords[j].r
		}

		return coords[i].c < coords[j].c
	})
	rows := make([]int32, len(coords))
	cols := make([]int32, len(coords))
	for i, c := range coords {
		rows[i] = c.r
		cols[i] = c.c
	}
	adjacency, err := csr.NewFromCOO(n, n, rows, cols, nil)
	require.NoError(t, err)

	g, err := graph.New(n, len(coords), false, adjacency)
	require.NoError(t, err)

	return g
}

// twoTriangles is spec.md §8's disjoint-triangle example: T1={0,1,2},
// T2={3,4,5}.
func twoTriangles(t *testing.T) *graph.Graph {
	return buildUndirected(t, 6, [][2]int32{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
	})
}

func TestExact_TwoDisjointTriangles(t *testing.T) {
	g := twoTriangles(t)
	k, err := nucleus.Exact(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, k)
}

func TestExact_RejectsBadArity(t *testing.T) {
	g := twoTriangles(t)
	_, err := nucleus.Exact(g, 3, 1)
	assert.ErrorIs(t, err, nucleus.ErrRNotLessThanS)

	_, err = nucleus.Exact(g, 0, 3)
	assert.ErrorIs(t, err, nucleus.ErrNonPositiveR)
}

func TestUpdateFree_TwoDisjointTriangles(t *testing.T) {
	g := twoTriangles(t)
	k, err := nucleus.UpdateFree(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, k)
}

func TestLimited_MatchesExactWhenUnbounded(t *testing.T) {
	g := twoTriangles(t)
	exact, err := nucleus.Exact(g, 1, 3)
	require.NoError(t, err)
	limited, err := nucleus.Limited(g, 1, 3, -1)
	require.NoError(t, err)
	assert.Equal(t, exact, limited)
}

func TestLimited_ZeroExaminesNone(t *testing.T) {
	g := twoTriangles(t)
	limited, err := nucleus.Limited(g, 1, 3, 0)
	require.NoError(t, err)
	// With no propagation, every level equals the peel-time current
	// s-degree, which for this symmetric graph is still 1 everywhere.
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, limited)
}

func TestMonteCarlo_ReturnsBroadcastEstimate(t *testing.T) {
	g := twoTriangles(t)
	rng := rand.New(rand.NewSource(1))
	k, err := nucleus.MonteCarlo(g, 1, 3, 50, rng)
	require.NoError(t, err)
	require.Len(t, k, 6)
	for _, v := range k {
		assert.Equal(t, k[0], v, "MonteCarlo broadcasts a single estimate across every index")
	}
	assert.Equal(t, 1, k[0], "every r-clique has initial s-degree 1 in two disjoint triangles")
}

func TestMonteCarlo_RejectsNonPositiveT(t *testing.T) {
	g := twoTriangles(t)
	rng := rand.New(rand.NewSource(1))
	_, err := nucleus.MonteCarlo(g, 1, 3, 0, rng)
	assert.ErrorIs(t, err, nucleus.ErrNonPositiveT)
}

func TestExact_EmptySCliqueSetForcesZero(t *testing.T) {
	// A single edge has no triangles, so S is empty and every r-clique's
	// level must be 0.
	g := buildUndirected(t, 2, [][2]int32{{0, 1}})
	k, err := nucleus.Exact(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, k)
}

func TestDecompose_DispatchesToEachVariant(t *testing.T) {
	g := twoTriangles(t)

	exact, err := nucleus.Decompose(g, 1, 3, nucleus.VariantExact, nucleus.Params{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, exact)

	updateFree, err := nucleus.Decompose(g, 1, 3, nucleus.VariantUpdateFree, nucleus.Params{})
	require.NoError(t, err)
	assert.Equal(t, exact, updateFree)

	limited, err := nucleus.Decompose(g, 1, 3, nucleus.VariantLimited, nucleus.Params{Limit: -1})
	require.NoError(t, err)
	assert.Equal(t, exact, limited)

	rng := rand.New(rand.NewSource(1))
	monteCarlo, err := nucleus.Decompose(g, 1, 3, nucleus.VariantMonteCarlo, nucleus.Params{Samples: 50, RNG: rng})
	require.NoError(t, err)
	require.Len(t, monteCarlo, 6)
}

func TestDecompose_RejectsUnknownVariant(t *testing.T) {
	g := twoTriangles(t)
	_, err := nucleus.Decompose(g, 1, 3, nucleus.Variant(99), nucleus.Params{})
	assert.ErrorIs(t, err, nucleus.ErrUnknownVariant)
}

func TestDecompose_MonteCarloRequiresRNG(t *testing.T) {
	g := twoTriangles(t)
	_, err := nucleus.Decompose(g, 1, 3, nucleus.VariantMonteCarlo, nucleus.Params{Samples: 10})
	assert.ErrorIs(t, err, nucleus.ErrMissingRNG)
}
