package csr

import "errors"

// Sentinel errors for contract violations and malformed construction input,
// per spec.md §7's "malformed input" vs "contract violation" split.
var (
	// ErrUnsortedInput indicates the coordinate stream handed to Freeze was
	// not ascending by row then column.
	ErrUnsortedInput = errors.New("csr: coordinate input not sorted ascending")

	// ErrSelfLoop indicates a diagonal (i,i) entry, forbidden by spec.md §3.
	ErrSelfLoop = errors.New("csr: self-loop entries are forbidden")

	// ErrOutOfRange indicates a row or column index outside [0,n).
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrCSRNotFrozen indicates an operation was attempted on a CSR whose
	// IsSet() is false — the matrix is still being built.
	ErrCSRNotFrozen = errors.New("csr: matrix is not frozen (is_set=false)")

	// ErrAlreadyFrozen indicates Builder.Add was called after Freeze.
	ErrAlreadyFrozen = errors.New("csr: matrix already frozen")
)

// CSR is an immutable compressed-sparse-row store for an nRows×nCols
// sparse boolean (optionally weighted) matrix. The zero value is not
// usable directly; build one with NewBuilder / NewFromCOO.
type CSR struct {
	nRows, nCols int
	rowPtr       []int32 // len nRows+1, rowPtr[nRows] == nnz
	colIdx       []int32 // len nnz, ascending within each row
	weight       []int32 // len nnz, nil if the matrix carries no weights
	isSet        bool
}

// NRows returns the row count.
func (c CSR) NRows() int { return c.nRows }

// NCols returns the column count.
func (c CSR) NCols() int { return c.nCols }

// NNZ returns the number of stored nonzeros. Requires IsSet().
func (c CSR) NNZ() int { return len(c.colIdx) }

// IsSet reports whether the matrix has been fully populated via Freeze.
func (c CSR) IsSet() bool { return c.isSet }

// Weighted reports whether this CSR carries a parallel weight array.
func (c CSR) Weighted() bool { return c.weight != nil }

// RowPtr returns the row-pointer array (length NRows()+1). The caller must
// not mutate the returned slice.
func (c CSR) RowPtr() []int32 { return c.rowPtr }

// ColIdx returns the column-index array (length NNZ()). The caller must
// not mutate the returned slice.
func (c CSR) ColIdx() []int32 { return c.colIdx }

// Row returns the ascending column-index slice for row i, i.e.
// colIdx[rowPtr[i]:rowPtr[i+1]]. Requires IsSet() and 0<=i<NRows().
func (c CSR) Row(i int) []int32 {
	return c.colIdx[c.rowPtr[i]:c.rowPtr[i+1]]
}

// RowWeights returns the weight slice parallel to Row(i), or nil if this
// CSR is unweighted.
func (c CSR) RowWeights(i int) []int32 {
	if c.weight == nil {
		return nil
	}

	return c.weight[c.rowPtr[i]:c.rowPtr[i+1]]
}
