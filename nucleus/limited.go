// File: limited.go
// Role: Limited(L) — the exact peeling loop, but step 4c only ever
// walks the first L entries of rMap[i*], trading completeness for a
// bounded amount of work per peeled r-clique.

package nucleus

import "github.com/katalvlaran/nucleus/graph"

// Limited computes nucleus levels identically to Exact, except that
// when propagating a peel, at most l entries of the peeled r-clique's
// s-clique membership are examined. l==0 examines none (levels degrade
// to the initial s-degree for every r-clique, in peel order); l<0 is
// treated as unbounded, equivalent to Exact.
func Limited(g *graph.Graph, r, s, l int) ([]int, error) {
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

		members := inc.rMap[iStar].Slice()
		if l >= 0 && l < len(members) {
			members = members[:l]
		}
		for _, j := range members {
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
