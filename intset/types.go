package intset

// Set is a sorted, duplicate-free sequence of int32 vertex ids.
//
// The zero value is an empty set ready to use. Set is a value type wrapping
// a slice; callers that need independent copies should call Clone.
//
// Invariant: for every i<j, s.elems[i] < s.elems[j].
type Set struct {
	elems []int32
}

// New returns an empty Set with room for capHint elements before the first
// reallocation. capHint<=0 is treated as 0.
func New(capHint int) Set {
	if capHint < 0 {
		capHint = 0
	}
	return Set{elems: make([]int32, 0, capHint)}
}

// FromSortedSlice builds a Set from a slice that is already strictly
// ascending, taking ownership of a copy of it (O(n), no per-element
// insertion). Callers that already hold a CSR row slice use this to avoid
// re-validating or re-sorting data the CSR invariant already guarantees.
func FromSortedSlice(sorted []int32) Set {
	elems := make([]int32, len(sorted))
	copy(elems, sorted)

	return Set{elems: elems}
}

// Len returns the number of elements in s.
func (s Set) Len() int { return len(s.elems) }

// At returns the i-th smallest element. Panics if i is out of range, same
// as a slice index out of range would.
func (s Set) At(i int) int32 { return s.elems[i] }

// Slice returns the backing ascending slice. Callers must not mutate it;
// take Clone first if mutation is required.
func (s Set) Slice() []int32 { return s.elems }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	elems := make([]int32, len(s.elems))
	copy(elems, s.elems)

	return Set{elems: elems}
}

// search returns the index of v in s.elems, or the index at which v would
// be inserted to keep the slice ascending, and whether v was found.
func (s Set) search(v int32) (idx int, found bool) {
	lo, hi := 0, len(s.elems)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.elems[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s.elems) && s.elems[lo] == v {
		return lo, true
	}

	return lo, false
}

// Contains reports whether v is a member of s. O(log n).
func (s Set) Contains(v int32) bool {
	_, found := s.search(v)

	return found
}

// Insert adds v to s, keeping elems ascending. Returns false (no-op) if v
// was already present. Amortized O(n) worst case (shift), O(log n) for the
// search itself, matching the original ordered_set's binary-search-then-
// memmove insertion.
func (s *Set) Insert(v int32) bool {
	idx, found := s.search(v)
	if found {
		return false
	}

	s.elems = append(s.elems, 0)
	copy(s.elems[idx+1:], s.elems[idx:])
	s.elems[idx] = v

	return true
}

// Remove deletes v from s if present. Returns false (no-op) if v was absent.
func (s *Set) Remove(v int32) bool {
	idx, found := s.search(v)
	if !found {
		return false
	}
	s.elems = append(s.elems[:idx], s.elems[idx+1:]...)

	return true
}
