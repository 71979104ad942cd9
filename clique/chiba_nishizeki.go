// File: chiba_nishizeki.go
// Role: the general k>=5 lister, grounded on
// original_source/src/algorithms/clique_chiba_nishizeki.c
// (find_k_cliques / enumerate_k_cliques_chiba_nishizeki).

package clique

import (
	"github.com/katalvlaran/nucleus/cliqueset"
	"github.com/katalvlaran/nucleus/graph"
	"github.com/katalvlaran/nucleus/intset"
	"github.com/katalvlaran/nucleus/kcore"
)

// chibaNishizeki computes the (k-1)-core mask — vertices outside it
// cannot appear in any k-clique — then, for every kept vertex v in
// ascending id order, depth-first expands a growing clique seeded at v
// against candidates restricted to v's neighbours, intersecting the
// candidate set with each newly added vertex's neighbourhood.
func chibaNishizeki(g *graph.Graph, k int) (*cliqueset.Set, error) {
	removed, err := kcore.VerticesNotInKCore(g, k-1)
	if err != nil {
		return nil, err
	}

	cs := cliqueset.New(k, defaultResizeStep)
	clique := make([]int32, 0, k)

	for v := 0; v < g.NVertices(); v++ {
		if removed.Get(v) {
			continue
		}

		clique = append(clique, int32(v))
		candidates := g.Neighbours(int32(v))
		if err := expandChibaNishizeki(g, k, clique, candidates, cs); err != nil {
			return nil, err
		}
		clique = clique[:0]
	}

	return cs, nil
}

// expandChibaNishizeki is the recursive step: emit clique once it holds
// k vertices, otherwise try every remaining candidate greater than
// clique's current maximum (enforcing the canonical ascending order that
// makes each clique discovered exactly once).
func expandChibaNishizeki(g *graph.Graph, k int, clique []int32, candidates intset.Set, cs *cliqueset.Set) error {
	if len(clique) == k {
		tuple := make([]int32, k)
		copy(tuple, clique)
		_, err := cs.Insert(tuple)

		return err
	}

	maxSoFar := clique[len(clique)-1]
	for i := 0; i < candidates.Len(); i++ {
		w := candidates.At(i)
		if w <= maxSoFar {
			continue
		}

		newCandidates := intset.Intersect(candidates, g.Neighbours(w))

		clique = append(clique, w)
		if err := expandChibaNishizeki(g, k, clique, newCandidates, cs); err != nil {
			return err
		}
		clique = clique[:len(clique)-1]
	}

	return nil
}
