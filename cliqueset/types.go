package cliqueset

import "errors"

// ErrWrongArity indicates a tuple whose length does not equal the Set's k
// was passed to Insert or Contains.
var ErrWrongArity = errors.New("cliqueset: tuple length does not match Set.K()")

// defaultResizeStep is used by New when resizeHint<=0, matching the
// original's assert(resize_value > 0) contract with a sane default instead
// of panicking on a zero hint.
const defaultResizeStep = 8

// Set is a sorted, duplicate-free collection of k-tuples of vertex ids.
// Every stored tuple is kept internally sorted ascending (so
// {2,0,1} and {0,1,2} collide as the same clique) and the collection
// itself is kept sorted lexicographically by tuple, enabling binary-search
// membership and insertion.
//
// The zero value is not ready to use; construct with New.
type Set struct {
	k          int
	tuples     [][]int32
	resizeStep int
}

// New returns an empty Set of k-tuples. resizeHint seeds the Set's growth
// step: once the backing slice's spare capacity is exhausted, Insert grows
// it additively by resizeHint rather than doubling, mirroring
// clique_set_new/clique_set_insert's capacity += resize_value policy.
// resizeHint<=0 falls back to defaultResizeStep.
func New(k int, resizeHint int) *Set {
	if k <= 0 {
		k = 1
	}
	if resizeHint <= 0 {
		resizeHint = defaultResizeStep
	}

	return &Set{
		k:          k,
		tuples:     make([][]int32, 0, resizeHint),
		resizeStep: resizeHint,
	}
}

// K returns the fixed tuple arity of s.
func (s *Set) K() int { return s.k }

// Len returns the number of distinct cliques stored in s.
func (s *Set) Len() int { return len(s.tuples) }

// At returns the i-th tuple in lexicographic order. The returned slice is
// owned by s; callers must not mutate it. Panics if i is out of range.
func (s *Set) At(i int) []int32 { return s.tuples[i] }

// All returns every stored tuple in lexicographic order. The returned
// slices are owned by s; callers must not mutate them.
func (s *Set) All() [][]int32 { return s.tuples }

// Clone returns an independent copy of s, including independent copies of
// every stored tuple (mirroring clique_set_copy's deep-copy semantics).
func (s *Set) Clone() *Set {
	out := &Set{
		k:          s.k,
		tuples:     make([][]int32, len(s.tuples)),
		resizeStep: s.resizeStep,
	}
	for i, t := range s.tuples {
		cp := make([]int32, len(t))
		copy(cp, t)
		out.tuples[i] = cp
	}

	return out
}

// growCapacity ensures the backing slice has room for one more tuple,
// growing additively by s.resizeStep on overflow rather than relying on
// Go's default (doubling) append growth — grounded on clique_set_insert's
// `clique_set->capacity += clique_set->resize_value` reallocation.
func (s *Set) growCapacity() {
	if len(s.tuples) < cap(s.tuples) {
		return
	}
	grown := make([][]int32, len(s.tuples), cap(s.tuples)+s.resizeStep)
	copy(grown, s.tuples)
	s.tuples = grown
}
