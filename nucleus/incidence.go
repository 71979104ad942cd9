// File: incidence.go
// Role: builds the bipartite (r-clique)<->(s-clique) incidence index
// every variant peels over, grounded on spec.md §4.7 step 1-3 and the
// IncidenceMaps data model of spec.md §3.

package nucleus

import (
	"github.com/katalvlaran/nucleus/clique"
	"github.com/katalvlaran/nucleus/graph"
	"github.com/katalvlaran/nucleus/intset"
)

// incidence holds the two parallel index arrays: rMap[i] lists the
// indices of s-cliques containing the i-th r-clique; sMap[j] lists the
// indices of r-cliques contained in the j-th s-clique. sDegree[i] is the
// initial |rMap[i]|, i.e. the number of s-cliques the i-th r-clique
// participates in.
type incidence struct {
	rMap    []intset.Set
	sMap    []intset.Set
	sDegree []int
}

// buildIncidence enumerates R:=CliqueSet_r(g) and S:=CliqueSet_s(g) and
// records, for every pair (R[i],S[j]) with
// count_symmetric_difference(R[i],S[j])==s-r (equivalently R[i]⊂S[j]),
// i in sMap[j] and j in rMap[i]. O(|R|·|S|·(r+s)).
func buildIncidence(g *graph.Graph, r, s int) (inc incidence, nR int, err error) {
	R, err := clique.Enumerate(g, r)
	if err != nil {
		return incidence{}, 0, err
	}
	S, err := clique.Enumerate(g, s)
	if err != nil {
		return incidence{}, 0, err
	}

	nR, nS := R.Len(), S.Len()
	rMap := make([]intset.Set, nR)
	sMap := make([]intset.Set, nS)
	for i := range rMap {
		rMap[i] = intset.New(0)
	}
	for j := range sMap {
		sMap[j] = intset.New(0)
	}

	diff := s - r
	for i := 0; i < nR; i++ {
		ri := intset.FromSortedSlice(R.At(i))
		for j := 0; j < nS; j++ {
			sj := intset.FromSortedSlice(S.At(j))
			if intset.CountSymmetricDifference(ri, sj) == diff {
				rMap[i].Insert(int32(j))
				sMap[j].Insert(int32(i))
			}
		}
	}

	sDegree := make([]int, nR)
	for i := range rMap {
		sDegree[i] = rMap[i].Len()
	}

	return incidence{rMap: rMap, sMap: sMap, sDegree: sDegree}, nR, nil
}

// validateRS checks the r<s contract shared by every variant.
func validateRS(r, s int) error {
	if r < 1 {
		return ErrNonPositiveR
	}
	if r >= s {
		return ErrRNotLessThanS
	}

	return nil
}
