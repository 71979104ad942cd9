package csr_test

import (
	"testing"

	"github.com/katalvlaran/nucleus/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromCOO_Basic(t *testing.T) {
	// 0 -> 1, 0 -> 2, 1 -> 2
	rows := []int32{0, 0, 1}
	cols := []int32{1, 2, 2}
	m, err := csr.NewFromCOO(3, 3, rows, cols, nil)
	require.NoError(t, err)
	require.True(t, m.IsSet())
	assert.Equal(t, 3, m.NNZ())
	assert.Equal(t, []int32{1, 2}, m.Row(0))
	assert.Equal(t, []int32{2}, m.Row(1))
	assert.Equal(t, []int32{}, m.Row(2))
}

func TestFreeze_RejectsSelfLoop(t *testing.T) {
	b := csr.NewBuilder(2, 2, false)
	require.NoError(t, b.Add(0, 0, 0))
	_, err := b.Freeze()
	assert.ErrorIs(t, err, csr.ErrSelfLoop)
}

func TestFreeze_RejectsUnsorted(t *testing.T) {
	b := csr.NewBuilder(3, 3, false)
	require.NoError(t, b.Add(0, 2, 0))
	require.NoError(t, b.Add(0, 1, 0)) // descending within row 0
	_, err := b.Freeze()
	assert.ErrorIs(t, err, csr.ErrUnsortedInput)
}

func TestFreeze_RejectsOutOfRange(t *testing.T) {
	b := csr.NewBuilder(2, 2, false)
	require.NoError(t, b.Add(0, 5, 0))
	_, err := b.Freeze()
	assert.ErrorIs(t, err, csr.ErrOutOfRange)
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	coordRows := []int32{0, 0, 1, 3, 3, 3}
	rowPtr := csr.CompressRowPtrs(coordRows, 4)
	assert.Equal(t, []int32{0, 2, 3, 3, 6}, rowPtr)

	back := csr.DecompressRowPtrs(rowPtr)
	assert.Equal(t, coordRows, back)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := csr.NewFromCOO(2, 2, []int32{0}, []int32{1}, nil)
	require.NoError(t, err)
	clone := m.Clone()
	assert.True(t, m.Equal(clone))
}

func TestEqual(t *testing.T) {
	a, err := csr.NewFromCOO(3, 3, []int32{0, 1}, []int32{1, 2}, nil)
	require.NoError(t, err)
	b, err := csr.NewFromCOO(3, 3, []int32{0, 1}, []int32{1, 2}, nil)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := csr.NewFromCOO(3, 3, []int32{0, 1}, []int32{2, 2}, nil)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))
}

func TestWeighted(t *testing.T) {
	m, err := csr.NewFromCOO(2, 2, []int32{0}, []int32{1}, []int32{7})
	require.NoError(t, err)
	assert.True(t, m.Weighted())
	assert.Equal(t, []int32{7}, m.RowWeights(0))
}

func TestProject_PreservesIDsSkipsRemoved(t *testing.T) {
	// Triangle 0-1-2 plus pendant 1-3, stored symmetrically and sorted by
	// (row, col) as CSR requires.
	b := csr.NewBuilder(4, 4, false)
	entries := [][2]int32{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {1, 3}, {2, 0}, {2, 1}, {3, 1}}
	for _, e := range entries {
		require.NoError(t, b.Add(e[0], e[1], 0))
	}
	g, err := b.Freeze()
	require.NoError(t, err)

	removed := []bool{false, false, false, true} // drop vertex 3
	proj := g.Project(removed)

	assert.Equal(t, []int32{1, 2}, proj.Row(0))
	assert.Equal(t, []int32{0, 2}, proj.Row(1)) // 1-3 dropped
	assert.Equal(t, []int32{0, 1}, proj.Row(2))
	assert.Equal(t, []int32{}, proj.Row(3)) // removed row is empty but id preserved
	assert.Equal(t, 4, proj.NRows())
}
