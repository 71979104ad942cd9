// File: algebra.go
// Role: set algebra over two ascending Sets via a single linear merge.
//
// Every operation here walks a and b with two cursors, advancing whichever
// cursor points at the smaller element (or both, on a tie). None of them
// call Insert in a loop — that would cost O(n log n) shifting; a linear
// merge against two already-sorted inputs is O(|a|+|b|) with a single
// pre-sized allocation.

package intset

// Union returns the ascending merge of a and b with duplicates collapsed.
// O(|a|+|b|).
func Union(a, b Set) Set {
	out := make([]int32, 0, len(a.elems)+len(b.elems))
	i, j := 0, 0
	for i < len(a.elems) && j < len(b.elems) {
		switch {
		case a.elems[i] < b.elems[j]:
			out = append(out, a.elems[i])
			i++
		case a.elems[i] > b.elems[j]:
			out = append(out, b.elems[j])
			j++
		default:
			out = append(out, a.elems[i])
			i++
			j++
		}
	}
	// Bulk-copy whichever tail remains; no further comparisons are needed.
	out = append(out, a.elems[i:]...)
	out = append(out, b.elems[j:]...)

	return Set{elems: out}
}

// Intersect returns the elements common to a and b, sized by the smaller
// input. O(|a|+|b|).
func Intersect(a, b Set) Set {
	cap := len(a.elems)
	if len(b.elems) < cap {
		cap = len(b.elems)
	}
	out := make([]int32, 0, cap)
	i, j := 0, 0
	for i < len(a.elems) && j < len(b.elems) {
		switch {
		case a.elems[i] < b.elems[j]:
			i++
		case a.elems[i] > b.elems[j]:
			j++
		default:
			out = append(out, a.elems[i])
			i++
			j++
		}
	}

	return Set{elems: out}
}

// Difference returns a\b (elements of a not in b), sized by |a|. O(|a|+|b|).
func Difference(a, b Set) Set {
	out := make([]int32, 0, len(a.elems))
	i, j := 0, 0
	for i < len(a.elems) && j < len(b.elems) {
		switch {
		case a.elems[i] < b.elems[j]:
			out = append(out, a.elems[i])
			i++
		case a.elems[i] > b.elems[j]:
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a.elems[i:]...)

	return Set{elems: out}
}

// SymmetricDifference returns aΔb, sized by |a|+|b|. O(|a|+|b|).
func SymmetricDifference(a, b Set) Set {
	out := make([]int32, 0, len(a.elems)+len(b.elems))
	i, j := 0, 0
	for i < len(a.elems) && j < len(b.elems) {
		switch {
		case a.elems[i] < b.elems[j]:
			out = append(out, a.elems[i])
			i++
		case a.elems[i] > b.elems[j]:
			out = append(out, b.elems[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a.elems[i:]...)
	out = append(out, b.elems[j:]...)

	return Set{elems: out}
}

// CountSymmetricDifference returns |aΔb| without materialising the result.
// This is the adjacency predicate used by clique expansion (two k-cliques
// belong to the same (k+1)-clique iff their symmetric difference has size
// exactly 2) and by nucleus incidence construction (an r-clique is
// contained in an s-clique iff their symmetric difference has size exactly
// s−r). O(|a|+|b|), O(1) extra space.
func CountSymmetricDifference(a, b Set) int {
	count := 0
	i, j := 0, 0
	for i < len(a.elems) && j < len(b.elems) {
		switch {
		case a.elems[i] < b.elems[j]:
			count++
			i++
		case a.elems[i] > b.elems[j]:
			count++
			j++
		default:
			i++
			j++
		}
	}
	count += len(a.elems) - i
	count += len(b.elems) - j

	return count
}

// UnionTwoSorted merges a and b into their ascending union and reports
// whether |aΔb| was exactly 2 — the precondition under which that union is
// the lift of two k-cliques differing in one vertex into a (k+1)-clique.
// When the precondition does not hold, ok is false and the returned Set
// should be discarded: callers use ok to skip the union entirely instead of
// asserting, since a failed precondition here is caller error, not a fatal
// invariant violation of this package.
func UnionTwoSorted(a, b Set) (union Set, ok bool) {
	if CountSymmetricDifference(a, b) != 2 {
		return Set{}, false
	}

	return Union(a, b), true
}
