// File: methods.go
// Role: the binary-search membership/insertion core of Set, grounded on
// clique_set.c's clique_set_insert — sort the incoming tuple, binary
// search the sorted tuple list for its lexicographic position, and
// memmove (here: slice insert) the remainder up by one.

package cliqueset

import "sort"

// normalize returns a sorted copy of raw, matching clique_set_insert's
// `qsort(clique_to_insert, k, ...)` step that lets every equivalent
// permutation of a clique collide on lookup.
func normalize(raw []int32) []int32 {
	t := make([]int32, len(raw))
	copy(t, raw)
	sort.Slice(t, func(i, j int) bool { return t[i] < t[j] })

	return t
}

// compare returns -1, 0, or 1 as a<b, a==b, a>b under lexicographic order
// over same-length tuples, mirroring _compare_cliques.
func compare(a, b []int32) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}

	return 0
}

// search returns the index at which tuple belongs in s.tuples (the
// insertion point preserving lexicographic order) and whether an equal
// tuple is already present at that index.
func (s *Set) search(tuple []int32) (idx int, found bool) {
	lo, hi := 0, len(s.tuples)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if compare(s.tuples[mid], tuple) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.tuples) && compare(s.tuples[lo], tuple) == 0 {
		return lo, true
	}

	return lo, false
}

// Contains reports whether tuple (in any vertex order) is already present
// in s. Returns ErrWrongArity if len(tuple)!=s.k. O(k log n).
func (s *Set) Contains(tuple []int32) (bool, error) {
	if len(tuple) != s.k {
		return false, ErrWrongArity
	}
	_, found := s.search(normalize(tuple))

	return found, nil
}

// Insert adds tuple (in any vertex order) to s, normalizing it to
// ascending order first. Returns (true, nil) if the clique was newly
// inserted, (false, nil) if an equal clique was already present, and
// (false, ErrWrongArity) if len(tuple)!=s.k. O(k log n) for the search,
// O(n) worst case for the shift.
func (s *Set) Insert(tuple []int32) (bool, error) {
	if len(tuple) != s.k {
		return false, ErrWrongArity
	}
	t := normalize(tuple)
	idx, found := s.search(t)
	if found {
		return false, nil
	}

	s.growCapacity()
	s.tuples = append(s.tuples, nil)
	copy(s.tuples[idx+1:], s.tuples[idx:])
	s.tuples[idx] = t

	return true, nil
}
