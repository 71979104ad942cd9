package bitvec

import "github.com/soniakeys/bits"

// Mask is a dense bitset of fixed length n, addressed by int index in
// [0,n). The zero value is not usable; construct with New.
type Mask struct {
	bits bits.Bits
	n    int
}

// New returns a Mask of length n with every bit clear.
func New(n int) Mask {
	return Mask{bits: bits.New(n), n: n}
}

// Len returns the number of addressable indices.
func (m Mask) Len() int { return m.n }

// Get reports whether bit i is set.
func (m Mask) Get(i int) bool {
	return m.bits.Bit(i) == 1
}

// Set sets bit i to v.
func (m Mask) Set(i int, v bool) {
	bit := 0
	if v {
		bit = 1
	}
	m.bits.SetBit(i, bit)
}

// Count returns the number of set bits. O(n).
func (m Mask) Count() int {
	c := 0
	for i := 0; i < m.n; i++ {
		if m.Get(i) {
			c++
		}
	}

	return c
}

// ToBoolSlice materialises the mask as a []bool, the shape spec.md's
// K-core peeler contract (`vertices_not_in_k_core`) documents its return
// value as.
func (m Mask) ToBoolSlice() []bool {
	out := make([]bool, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.Get(i)
	}

	return out
}
