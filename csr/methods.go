package csr

// CompressRowPtrs turns a coordinate-row array (already ascending, one
// entry per nonzero, grouped by row) into a row_ptr array of length
// nRows+1. It assumes — does not verify — that coordRows is ascending;
// Builder.Freeze is where that assumption is checked for untrusted input.
func CompressRowPtrs(coordRows []int32, nRows int) []int32 {
	rowPtr := make([]int32, nRows+1)
	for _, r := range coordRows {
		rowPtr[r+1]++
	}
	for i := 0; i < nRows; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	return rowPtr
}

// DecompressRowPtrs expands row_ptr back into a coordinate-row array: one
// entry per nonzero giving the row that nonzero belongs to. This is the
// left inverse of CompressRowPtrs — DecompressRowPtrs(CompressRowPtrs(x))
// reproduces x for any x that was already ascending — the round-trip
// property spec.md §8 calls out explicitly.
func DecompressRowPtrs(rowPtr []int32) []int32 {
	nnz := int(rowPtr[len(rowPtr)-1])
	coordRows := make([]int32, 0, nnz)
	for row := 0; row < len(rowPtr)-1; row++ {
		for n := rowPtr[row]; n < rowPtr[row+1]; n++ {
			coordRows = append(coordRows, int32(row))
		}
	}

	return coordRows
}

// Clone returns a deep, independent copy of c.
func (c CSR) Clone() CSR {
	out := CSR{nRows: c.nRows, nCols: c.nCols, isSet: c.isSet}
	out.rowPtr = append([]int32(nil), c.rowPtr...)
	out.colIdx = append([]int32(nil), c.colIdx...)
	if c.weight != nil {
		out.weight = append([]int32(nil), c.weight...)
	}

	return out
}

// Equal reports whether c and other have identical dimensions, row
// pointers, column indices, and weights (element-wise).
func (c CSR) Equal(other CSR) bool {
	if c.nRows != other.nRows || c.nCols != other.nCols {
		return false
	}
	if !equalInt32(c.rowPtr, other.rowPtr) || !equalInt32(c.colIdx, other.colIdx) {
		return false
	}
	if (c.weight == nil) != (other.weight == nil) {
		return false
	}

	return c.weight == nil || equalInt32(c.weight, other.weight)
}

func equalInt32(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Project returns a new nRows×nCols CSR with the same vertex ids, but with
// every row and column named by removed excised: removed rows become
// empty, and any column referencing a removed vertex is skipped. Row and
// column ids are preserved (not renumbered) so the result can still be
// indexed by the original vertex ids, per spec.md §4.1's "project out a
// set of removed vertices into a new CSR with id preserved."
func (c CSR) Project(removed []bool) CSR {
	b := NewBuilder(c.nRows, c.nCols, c.Weighted())
	for row := 0; row < c.nRows; row++ {
		if row < len(removed) && removed[row] {
			continue
		}
		cols := c.Row(row)
		weights := c.RowWeights(row)
		for i, col := range cols {
			if int(col) < len(removed) && removed[col] {
				continue
			}
			var w int32
			if weights != nil {
				w = weights[i]
			}
			// Entries are already ascending within the row (CSR invariant)
			// and rows are visited ascending, so Add sees a sorted stream.
			_ = b.Add(row, col, w)
		}
	}
	// Construction from an already-valid CSR's own rows can only fail on
	// an internal bug, never on caller input, so reconstruction here never
	// needs to resurface an error to Project's caller.
	out, err := b.Freeze()
	if err != nil {
		panic("csr: Project produced an invalid CSR: " + err.Error())
	}

	return out
}
