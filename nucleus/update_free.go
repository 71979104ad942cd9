// File: update_free.go
// Role: the update-free nucleus-decomposition variant: peel order is
// fixed once from the initial s-degrees, so no live s-degree mutation is
// ever needed — only the definition of "processed" advances.

package nucleus

import (
	"sort"

	"github.com/katalvlaran/nucleus/graph"
)

// UpdateFree computes nucleus levels in ascending order of the *initial*
// s-degree, with no in-loop s-degree updates (contrast Exact, which
// decrements other r-cliques' s-degrees as it peels). Ties in the
// initial order are broken by lowest index (sort.SliceStable preserves
// original relative order, which is already ascending by index).
//
// Each r-clique's level is the number of its s-cliques that contain no
// already-processed r-clique, raised to the last level assigned if it
// falls below it, so levels never decrease along the peel order (as in
// Exact, where an s-degree is never decremented below the level just
// assigned).
//
// See ProcessedByStableIndex for this package's resolution of the
// "already processed" ambiguity spec.md §9 calls out: an r-clique counts
// as processed iff its position in this fixed order is strictly earlier
// than the position currently being peeled.
func UpdateFree(g *graph.Graph, r, s int) ([]int, error) {
	if err := validateRS(r, s); err != nil {
		return nil, err
	}

	inc, n, err := buildIncidence(g, r, s)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return inc.sDegree[order[a]] < inc.sDegree[order[b]] })

	processed := make([]bool, n)
	k := make([]int, n)

	level := 0
	for _, i := range order {
		count := 0
		for _, j := range inc.rMap[i].Slice() {
			if !anyProcessedIn(inc.sMap[int(j)], processed) {
				count++
			}
		}
		if count > level {
			level = count
		}
		k[i] = level
		processed[i] = true
	}

	return k, nil
}
