// File: exact.go
// Role: the exact nucleus-decomposition peeling loop, spec.md §4.7's
// primary algorithm.

package nucleus

import (
	"github.com/katalvlaran/nucleus/graph"
	"github.com/katalvlaran/nucleus/intset"
)

// Exact computes the (r,s)-nucleus decomposition of g: returns k[0..N_r)
// where N_r=|CliqueSet_r(g)| and k[i] is the nucleus level of the i-th
// r-clique, under the canonical peeling policy:
//
//  1. Build the r<->s incidence index and initial s-degrees.
//  2. Repeatedly select the unprocessed r-clique with the smallest
//     current s-degree (ties broken by lowest index), assign it that
//     s-degree as its level, and for every s-clique it participates in
//     that has no already-processed r-clique, decrement the s-degree of
//     every other r-clique sharing that s-clique whose s-degree is
//     still larger than the level just assigned.
//
// An empty CliqueSet_r returns an empty vector; an empty CliqueSet_s
// forces every level to 0 (no s-clique ever contains any r-clique, so
// every initial s-degree is already 0 and no peeling step can fire).
func Exact(g *graph.Graph, r, s int) ([]int, error) {
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

	sDegree := append([]int(nil), inc.sDegree...)
	processed := make([]bool, n)
	k := make([]int, n)

	for remaining := n; remaining > 0; remaining-- {
		iStar := argminUnprocessed(sDegree, processed)
		k[iStar] = sDegree[iStar]

		for _, j := range inc.rMap[iStar].Slice() {
			if anyProcessedIn(inc.sMap[int(j)], processed) {
				continue
			}
			for _, ip := range inc.sMap[int(j)].Slice() {
				i2 := int(ip)
				if sDegree[i2] > k[iStar] {
					sDegree[i2]--
				}
			}
		}

		processed[iStar] = true
	}

	return k, nil
}

// argminUnprocessed returns the unprocessed index with the smallest
// sDegree, breaking ties by the lowest index.
func argminUnprocessed(sDegree []int, processed []bool) int {
	best := -1
	for i, p := range processed {
		if p {
			continue
		}
		if best == -1 || sDegree[i] < sDegree[best] {
			best = i
		}
	}

	return best
}

// anyProcessedIn reports whether any member of set is already processed.
func anyProcessedIn(set intset.Set, processed []bool) bool {
	for _, v := range set.Slice() {
		if processed[int(v)] {
			return true
		}
	}

	return false
}
