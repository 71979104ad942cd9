// File: enumerate.go
// Role: Enumerate dispatches to the size-specialised lister for
// k=1,2,3,4 and to the general Chiba–Nishizeki walk for k>=5.

package clique

import (
	"github.com/katalvlaran/nucleus/cliqueset"
	"github.com/katalvlaran/nucleus/graph"
)

// Enumerate returns a CliqueSet(k) containing exactly the k-vertex
// subsets of g that form complete subgraphs — no duplicates, each tuple
// ascending, the whole set in lexicographic order.
func Enumerate(g *graph.Graph, k int) (*cliqueset.Set, error) {
	if k < 1 {
		return nil, ErrNonPositiveK
	}
	if g.IsDirected() {
		return nil, ErrGraphIsDirected
	}

	switch k {
	case 1:
		return oneCliques(g), nil
	case 2:
		return twoCliques(g), nil
	case 3:
		return triangles(g)
	case 4:
		return fourCliques(g)
	default:
		return chibaNishizeki(g, k)
	}
}
