package bitvec_test

import (
	"testing"

	"github.com/katalvlaran/nucleus/bitvec"
	"github.com/stretchr/testify/assert"
)

func TestMask_SetGet(t *testing.T) {
	m := bitvec.New(8)
	assert.Equal(t, 8, m.Len())
	for i := 0; i < 8; i++ {
		assert.False(t, m.Get(i), "zero value must start clear")
	}

	m.Set(3, true)
	m.Set(7, true)
	assert.True(t, m.Get(3))
	assert.True(t, m.Get(7))
	assert.False(t, m.Get(0))

	m.Set(3, false)
	assert.False(t, m.Get(3))
}

func TestMask_Count(t *testing.T) {
	m := bitvec.New(5)
	assert.Equal(t, 0, m.Count())

	m.Set(0, true)
	m.Set(2, true)
	m.Set(4, true)
	assert.Equal(t, 3, m.Count())

	m.Set(2, false)
	assert.Equal(t, 2, m.Count())
}

func TestMask_ToBoolSlice(t *testing.T) {
	m := bitvec.New(4)
	m.Set(1, true)
	m.Set(3, true)

	assert.Equal(t, []bool{false, true, false, true}, m.ToBoolSlice())
}
