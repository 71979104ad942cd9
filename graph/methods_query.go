// File: methods_query.go
// Role: read-only queries over Graph — edge lookup, degree vectors,
// neighbour iteration. No mutation anywhere in this file; Graph has none.

package graph

import (
	"sort"

	"github.com/katalvlaran/nucleus/intset"
)

// Edge reports the weight of (u,v) if present, else ok is false. This
// returns an explicit (weight, ok) pair rather than a sentinel -1 weight,
// per spec.md §9's "sum-types to replace sentinels" design note. u==v is
// always !ok with no lookup performed, since self-loops can never be
// present.
//
// Complexity: O(log deg(u)) via binary search over the CSR row.
func (g *Graph) Edge(u, v int32) (weight int32, ok bool) {
	if u == v {
		return 0, false
	}
	row := g.adjacency.Row(int(u))
	i := sort.Search(len(row), func(i int) bool { return row[i] >= v })
	if i >= len(row) || row[i] != v {
		return 0, false
	}
	if ws := g.adjacency.RowWeights(int(u)); ws != nil {
		return ws[i], true
	}

	return 1, true
}

// OutDegrees returns, for every vertex, the number of stored out-arcs —
// for an undirected graph this is simply the row length, since both
// (u,v) and (v,u) are stored. O(n).
func (g *Graph) OutDegrees() []int32 {
	rowPtr := g.adjacency.RowPtr()
	degrees := make([]int32, g.n)
	for v := 0; v < g.n; v++ {
		degrees[v] = rowPtr[v+1] - rowPtr[v]
	}

	return degrees
}

// InDegrees returns, for every vertex, the number of stored in-arcs. For
// an undirected graph this equals OutDegrees (the CSR is symmetric); for a
// directed graph it requires a full column-count pass. O(n+m).
func (g *Graph) InDegrees() []int32 {
	if !g.isDirected {
		return g.OutDegrees()
	}
	degrees := make([]int32, g.n)
	colIdx := g.adjacency.ColIdx()
	for _, v := range colIdx {
		degrees[v]++
	}

	return degrees
}

// Neighbours returns the OrderedIntSet of vertices adjacent to v — for a
// directed graph, its out-neighbours. The CSR row is already ascending, so
// construction is a single bulk copy, O(deg(v)), never a per-element
// insert loop.
func (g *Graph) Neighbours(v int32) intset.Set {
	return intset.FromSortedSlice(g.adjacency.Row(int(v)))
}

// Degree returns deg(v): for an undirected graph, out-degree == in-degree
// == row length. For a directed graph this is the out-degree.
func (g *Graph) Degree(v int32) int32 {
	rowPtr := g.adjacency.RowPtr()

	return rowPtr[v+1] - rowPtr[v]
}
