// File: triangles.go
// Role: the k=3 specialised lister, grounded on
// original_source/src/algorithms/clique_triangles.c (compute_triangles).

package clique

import (
	"github.com/katalvlaran/nucleus/cliqueset"
	"github.com/katalvlaran/nucleus/graph"
)

// triangles orients g by degree (ties broken by higher id), then for
// every source v and every pair (u,w) of out-neighbours with u earlier
// than w in v's adjacency list, tests whether (u,w) is an edge of the
// original undirected graph. Every triangle has a unique lowest-degree
// pivot under this orientation, so each is discovered exactly once.
// O(m^{3/2}).
func triangles(g *graph.Graph) (*cliqueset.Set, error) {
	directed, err := graph.MakeDirected(g, graph.ByDegreeThenID)
	if err != nil {
		return nil, err
	}

	cs := cliqueset.New(3, defaultResizeStep)
	rowPtr := directed.CSR().RowPtr()
	colIdx := directed.CSR().ColIdx()

	for v := 0; v < g.NVertices(); v++ {
		row := colIdx[rowPtr[v]:rowPtr[v+1]]
		for i := 0; i < len(row); i++ {
			u := row[i]
			for j := i + 1; j < len(row); j++ {
				w := row[j]
				if _, ok := g.Edge(u, w); ok {
					if _, err := cs.Insert([]int32{int32(v), u, w}); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return cs, nil
}
