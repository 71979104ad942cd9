// File: expand.go
// Role: Expand lifts an exact CliqueSet(k) to the (k+1)-cliques it
// spans, grounded on original_source/src/algorithms/clique_expansion.c
// (group_k_cliques / reduce_grouped_k_cliques).

package clique

import (
	"github.com/katalvlaran/nucleus/cliqueset"
	"github.com/katalvlaran/nucleus/graph"
	"github.com/katalvlaran/nucleus/intset"
)

// Expand returns every (k+1)-clique that is the union of two k-cliques
// in cs differing in exactly one vertex. For k<3 it delegates directly
// to the corresponding direct enumerator, mirroring
// expand_cliques' own k=0/k=1 special cases.
//
// Every candidate (k+1)-tuple produced by a completed adjacency group is
// re-verified against g before insertion — callers may hand Expand a
// CliqueSet that is not the *complete* CliqueSet(k) of g, in which case
// grouping alone cannot guarantee every emitted union is an actual
// clique of g.
func Expand(g *graph.Graph, cs *cliqueset.Set) (*cliqueset.Set, error) {
	if cs.Len() == 0 {
		return nil, ErrEmptyCliqueSet
	}

	k := cs.K()
	if k < 3 {
		return Enumerate(g, k+1)
	}

	groups := groupAdjacentCliques(cs.All())

	out := cliqueset.New(k+1, defaultResizeStep)
	for _, group := range groups {
		if len(group) < k+1 {
			continue
		}

		union, ok := intset.UnionTwoSorted(intset.FromSortedSlice(group[0]), intset.FromSortedSlice(group[1]))
		if !ok {
			return nil, ErrArityMismatch
		}
		tuple := union.Slice()
		if !isClique(g, tuple) {
			continue
		}
		if _, err := out.Insert(tuple); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// groupAdjacentCliques scans cliques in the order they arrive (cs.All()
// is already lexicographic) and partitions them into adjacency groups:
// a candidate joins the first group where it differs from every current
// member by exactly one vertex (|symmetric difference|=2).
func groupAdjacentCliques(cliques [][]int32) [][][]int32 {
	var groups [][][]int32

next:
	for _, c := range cliques {
		for gi, group := range groups {
			if isAdjacentToGroup(group, c) {
				groups[gi] = append(groups[gi], c)
				continue next
			}
		}
		groups = append(groups, [][]int32{c})
	}

	return groups
}

// isAdjacentToGroup reports whether c differs from every member of
// group by exactly one vertex. |AΔB|=0 or 1 can never occur for two
// distinct, equal-length, deduplicated cliques and is an internal
// invariant violation if it does.
func isAdjacentToGroup(group [][]int32, c []int32) bool {
	for _, m := range group {
		d := intset.CountSymmetricDifference(intset.FromSortedSlice(m), intset.FromSortedSlice(c))
		if d == 0 || d == 1 {
			panic("clique: adjacency-group invariant violated, |symmetric difference| must be >= 2")
		}
		if d > 2 {
			return false
		}
	}

	return true
}

// isClique reports whether every pair of vertices in tuple is an edge
// of g.
func isClique(g *graph.Graph, tuple []int32) bool {
	for i := 0; i < len(tuple); i++ {
		for j := i + 1; j < len(tuple); j++ {
			if _, ok := g.Edge(tuple[i], tuple[j]); !ok {
				return false
			}
		}
	}

	return true
}
