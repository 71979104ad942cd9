// File: one_two.go
// Role: the two trivial listers, grounded on
// original_source/src/algorithms/clique.c (compute_one_clique,
// compute_two_clique).

package clique

import "github.com/katalvlaran/nucleus/cliqueset"
import "github.com/katalvlaran/nucleus/graph"

// oneCliques emits every vertex id as a singleton clique. O(n).
func oneCliques(g *graph.Graph) *cliqueset.Set {
	cs := cliqueset.New(1, defaultResizeStep)
	for v := int32(0); v < int32(g.NVertices()); v++ {
		_, _ = cs.Insert([]int32{v})
	}

	return cs
}

// twoCliques walks the symmetric CSR and keeps only (u,v) with u<v,
// emitting every undirected edge exactly once. O(m).
func twoCliques(g *graph.Graph) *cliqueset.Set {
	cs := cliqueset.New(2, defaultResizeStep)
	rowPtr := g.CSR().RowPtr()
	colIdx := g.CSR().ColIdx()
	for u := 0; u < g.NVertices(); u++ {
		for _, v := range colIdx[rowPtr[u]:rowPtr[u+1]] {
			if v <= int32(u) {
				continue
			}
			_, _ = cs.Insert([]int32{int32(u), v})
		}
	}

	return cs
}
