package csr

// Builder accumulates a coordinate (row, col[, weight]) stream and freezes
// it into an immutable CSR. Callers must append entries in ascending
// (row, col) order — Freeze validates this once rather than sorting, per
// spec.md §4.1: "compressing a coordinate-row array assumes it is
// ascending ... otherwise the result is undefined" and §7: unsorted input
// is a fatal malformed-input error, not something the core silently fixes.
type Builder struct {
	nRows, nCols int
	weighted     bool
	rows         []int32
	cols         []int32
	weights      []int32
	frozen       bool
}

// NewBuilder returns a Builder for an nRows×nCols matrix. If weighted is
// true, Add requires (and Freeze preserves) a weight per entry.
func NewBuilder(nRows, nCols int, weighted bool) *Builder {
	return &Builder{nRows: nRows, nCols: nCols, weighted: weighted}
}

// Add appends one (row, col, weight) entry. weight is ignored when the
// builder is unweighted. Entries must arrive in ascending (row, col) order;
// Freeze is where that ordering is actually checked.
func (b *Builder) Add(row, col, weight int32) error {
	if b.frozen {
		return ErrAlreadyFrozen
	}
	b.rows = append(b.rows, row)
	b.cols = append(b.cols, col)
	if b.weighted {
		b.weights = append(b.weights, weight)
	}

	return nil
}

// Freeze validates the accumulated coordinate stream and compresses it
// into row_ptr/col_idx form, returning the resulting CSR. The Builder must
// not be reused afterward (a second Freeze returns ErrAlreadyFrozen).
//
// Validation, in order: row/col bounds, no self-loops (row==col), and
// ascending (row, col) order. Any failure is fatal per spec.md §7 — no
// partial CSR is returned.
func (b *Builder) Freeze() (CSR, error) {
	if b.frozen {
		return CSR{}, ErrAlreadyFrozen
	}
	b.frozen = true

	nnz := len(b.rows)
	for i := 0; i < nnz; i++ {
		r, c := b.rows[i], b.cols[i]
		if r < 0 || int(r) >= b.nRows || c < 0 || int(c) >= b.nCols {
			return CSR{}, ErrOutOfRange
		}
		if r == c {
			return CSR{}, ErrSelfLoop
		}
		if i > 0 {
			pr, pc := b.rows[i-1], b.cols[i-1]
			if r < pr || (r == pr && c <= pc) {
				return CSR{}, ErrUnsortedInput
			}
		}
	}

	rowPtr := CompressRowPtrs(b.rows, b.nRows)
	colIdx := make([]int32, nnz)
	copy(colIdx, b.cols)

	var weight []int32
	if b.weighted {
		weight = make([]int32, nnz)
		copy(weight, b.weights)
	}

	return CSR{
		nRows:  b.nRows,
		nCols:  b.nCols,
		rowPtr: rowPtr,
		colIdx: colIdx,
		weight: weight,
		isSet:  true,
	}, nil
}

// NewFromCOO builds and freezes a CSR directly from parallel coordinate
// arrays in one call — a convenience used by edgelist and graphbuild, both
// of which already produce a fully-sorted coordinate stream up front.
func NewFromCOO(nRows, nCols int, rows, cols, weights []int32) (CSR, error) {
	weighted := weights != nil
	b := NewBuilder(nRows, nCols, weighted)
	for i := range rows {
		var w int32
		if weighted {
			w = weights[i]
		}
		if err := b.Add(rows[i], cols[i], w); err != nil {
			return CSR{}, err
		}
	}

	return b.Freeze()
}
