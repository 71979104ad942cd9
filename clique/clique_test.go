package clique_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/nucleus/clique"
	"github.com/katalvlaran/nucleus/cliqueset"
	"github.com/katalvlaran/nucleus/csr"
	"github.com/katalvlaran/nucleus/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

// g0 is the worked example from spec.md §8.
func g0(t *testing.T) *graph.Graph {
	return buildUndirected(t, 5, [][2]int32{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 4}, {2, 4}})
}

// complete returns K_n, the complete graph on n vertices.
func complete(t *testing.T, n int) *graph.Graph {
	var edges [][2]int32
	for u := int32(0); u < int32(n); u++ {
		for v := u + 1; v < int32(n); v++ {
			edges = append(edges, [2]int32{u, v})
		}
	}

	return buildUndirected(t, n, edges)
}

func TestEnumerate_K1(t *testing.T) {
	cs, err := clique.Enumerate(g0(t), 1)
	require.NoError(t, err)
	require.Equal(t, 5, cs.Len())
	assert.Equal(t, [][]int32{{0}, {1}, {2}, {3}, {4}}, cs.All())
}

func TestEnumerate_K2(t *testing.T) {
	cs, err := clique.Enumerate(g0(t), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}}, cs.All())
}

func TestEnumerate_K3(t *testing.T) {
	cs, err := clique.Enumerate(g0(t), 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{0, 1, 2}, {2, 3, 4}}, cs.All())
}

func TestEnumerate_K4_Empty(t *testing.T) {
	cs, err := clique.Enumerate(g0(t), 4)
	require.NoError(t, err)
	assert.Equal(t, 0, cs.Len())
}

func TestEnumerate_K4_OnK4(t *testing.T) {
	cs, err := clique.Enumerate(complete(t, 4), 4)
	require.NoError(t, err)
	require.Equal(t, 1, cs.Len())
	assert.Equal(t, []int32{0, 1, 2, 3}, cs.At(0))
}

func TestEnumerate_K3_OnK4_FourTriangles(t *testing.T) {
	cs, err := clique.Enumerate(complete(t, 4), 3)
	require.NoError(t, err)
	assert.Equal(t, 4, cs.Len())
}

func TestEnumerate_ChibaNishizeki_CompleteGraph(t *testing.T) {
	// C(6,5) = 6.
	cs, err := clique.Enumerate(complete(t, 6), 5)
	require.NoError(t, err)
	assert.Equal(t, 6, cs.Len())

	cs6, err := clique.Enumerate(complete(t, 6), 6)
	require.NoError(t, err)
	assert.Equal(t, 1, cs6.Len())
}

func TestEnumerate_RejectsNonPositiveK(t *testing.T) {
	_, err := clique.Enumerate(g0(t), 0)
	assert.ErrorIs(t, err, clique.ErrNonPositiveK)
}

func TestEnumerate_RejectsDirectedGraph(t *testing.T) {
	d, err := graph.MakeDirected(g0(t), graph.ByMaxID)
	require.NoError(t, err)
	_, err = clique.Enumerate(d, 2)
	assert.ErrorIs(t, err, clique.ErrGraphIsDirected)
}

func TestExpand_OnK4_YieldsTheOneFourClique(t *testing.T) {
	k4 := complete(t, 4)
	triangles, err := clique.Enumerate(k4, 3)
	require.NoError(t, err)

	expanded, err := clique.Expand(k4, triangles)
	require.NoError(t, err)
	require.Equal(t, 1, expanded.Len())
	assert.Equal(t, []int32{0, 1, 2, 3}, expanded.At(0))
}

func TestExpand_DelegatesForSmallK(t *testing.T) {
	g := g0(t)
	ones, err := clique.Enumerate(g, 1)
	require.NoError(t, err)

	expanded, err := clique.Expand(g, ones)
	require.NoError(t, err)
	assert.Equal(t, [][]int32{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {2, 4}, {3, 4}}, expanded.All())
}

func TestExpand_RejectsEmptyInput(t *testing.T) {
	empty := cliqueset.New(3, 0)
	_, err := clique.Expand(g0(t), empty)
	assert.ErrorIs(t, err, clique.ErrEmptyCliqueSet)
}
