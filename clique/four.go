// File: four.go
// Role: the k=4 specialised lister. Grounded on spec.md §4.6.4, which
// describes the adaptive strategy the original's three_four_cliques
// collector drives via enumerate_four_cliques (that routine's own source
// was not retained in original_source/ — only its ThreeFourCliques
// collector sink survives, in
// original_source/src/collections/three_four_cliques.c — so the walk
// below follows the spec's algorithmic description directly).

package clique

import (
	"sort"

	"github.com/katalvlaran/nucleus/cliqueset"
	"github.com/katalvlaran/nucleus/graph"
)

// fourCliques orients g by id (target = max(u,v)), then for each source
// u collects, per out-neighbour v1, the later out-neighbours v2 for
// which (v1,v2) is an edge — the triangle apexes of edge (u,v1). Every
// recorded triangle u-v1-v2 is then extended to 4-cliques u-v1-v2-v3 by
// choosing v3 from the same apex buffer, later than v2, with (v2,v3) an
// edge. The inner search adapts: walk the (typically short) remaining
// candidate window directly when v2's own degree is no smaller than it,
// else walk v2's neighbour list and binary-search the candidate window.
func fourCliques(g *graph.Graph) (*cliqueset.Set, error) {
	directed, err := graph.MakeDirected(g, graph.ByMaxID)
	if err != nil {
		return nil, err
	}

	cs := cliqueset.New(4, defaultResizeStep)
	rowPtr := directed.CSR().RowPtr()
	colIdx := directed.CSR().ColIdx()

	for u := 0; u < g.NVertices(); u++ {
		neighboursU := colIdx[rowPtr[u]:rowPtr[u+1]]
		for i, v1 := range neighboursU {
			var triangleEnds []int32
			for j := i + 1; j < len(neighboursU); j++ {
				v2 := neighboursU[j]
				if _, ok := g.Edge(v1, v2); ok {
					triangleEnds = append(triangleEnds, v2)
				}
			}

			for idx2, v2 := range triangleEnds {
				remaining := triangleEnds[idx2+1:]
				if len(remaining) == 0 {
					continue
				}

				degV2 := int(g.Degree(v2))
				if degV2 >= len(remaining) {
					for _, v3 := range remaining {
						if _, ok := g.Edge(v2, v3); ok {
							if _, err := cs.Insert([]int32{int32(u), v1, v2, v3}); err != nil {
								return nil, err
							}
						}
					}
				} else {
					for _, v3 := range g.Neighbours(v2).Slice() {
						k := sort.Search(len(remaining), func(n int) bool { return remaining[n] >= v3 })
						if k < len(remaining) && remaining[k] == v3 {
							if _, err := cs.Insert([]int32{int32(u), v1, v2, v3}); err != nil {
								return nil, err
							}
						}
					}
				}
			}
		}
	}

	return cs, nil
}
