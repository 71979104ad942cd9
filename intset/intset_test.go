package intset_test

import (
	"testing"

	"github.com/katalvlaran/nucleus/intset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromInts(vs ...int32) intset.Set {
	s := intset.New(len(vs))
	for _, v := range vs {
		s.Insert(v)
	}

	return s
}

func TestInsert_AscendingNoDuplicates(t *testing.T) {
	s := intset.New(0)
	assert.True(t, s.Insert(5))
	assert.True(t, s.Insert(1))
	assert.True(t, s.Insert(3))
	assert.False(t, s.Insert(3), "duplicate insert must be a no-op")
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []int32{1, 3, 5}, s.Slice())
}

func TestContains(t *testing.T) {
	s := fromInts(2, 4, 6, 8)
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(8))
	assert.False(t, s.Contains(5))
	assert.False(t, s.Contains(0))
}

func TestRemove(t *testing.T) {
	s := fromInts(1, 2, 3)
	assert.True(t, s.Remove(2))
	assert.False(t, s.Remove(2))
	assert.Equal(t, []int32{1, 3}, s.Slice())
}

func TestUnion(t *testing.T) {
	a := fromInts(1, 3, 5)
	b := fromInts(2, 3, 4)
	got := intset.Union(a, b)
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, got.Slice())
}

func TestIntersect(t *testing.T) {
	a := fromInts(1, 2, 3, 4)
	b := fromInts(2, 4, 6)
	got := intset.Intersect(a, b)
	assert.Equal(t, []int32{2, 4}, got.Slice())
}

func TestDifference(t *testing.T) {
	a := fromInts(1, 2, 3, 4)
	b := fromInts(2, 4)
	got := intset.Difference(a, b)
	assert.Equal(t, []int32{1, 3}, got.Slice())
}

func TestSymmetricDifference(t *testing.T) {
	a := fromInts(1, 2, 3)
	b := fromInts(2, 3, 4)
	got := intset.SymmetricDifference(a, b)
	assert.Equal(t, []int32{1, 4}, got.Slice())
}

func TestCountSymmetricDifference(t *testing.T) {
	a := fromInts(1, 2, 3)
	b := fromInts(2, 3, 4)
	assert.Equal(t, 2, intset.CountSymmetricDifference(a, b))

	empty := intset.New(0)
	assert.Equal(t, 3, intset.CountSymmetricDifference(a, empty))
}

func TestUnionTwoSorted(t *testing.T) {
	a := fromInts(1, 2, 3)
	b := fromInts(1, 2, 4)
	union, ok := intset.UnionTwoSorted(a, b)
	require.True(t, ok)
	assert.Equal(t, []int32{1, 2, 3, 4}, union.Slice())

	c := fromInts(9, 9, 9) // not a clique-shape difference vs a
	_, ok = intset.UnionTwoSorted(a, c)
	assert.False(t, ok)
}

func TestFromSortedSlice_IndependentCopy(t *testing.T) {
	backing := []int32{1, 2, 3}
	s := intset.FromSortedSlice(backing)
	backing[0] = 99
	assert.Equal(t, int32(1), s.At(0), "Set must not alias the caller's backing slice")
}
