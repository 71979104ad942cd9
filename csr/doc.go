// SPDX-License-Identifier: MIT
//
// Package csr implements an immutable compressed-sparse-row store for an
// n×n sparse boolean (optionally weighted) matrix.
//
// Contract:
//   - row_ptr[0..n] is strictly nondecreasing, row_ptr[n]==nnz.
//   - col_idx[row_ptr[i]..row_ptr[i+1]) is strictly ascending within row i
//     (no diagonal / self-loop entries).
//   - For a symmetric (undirected) matrix, (i,j) present implies (j,i)
//     present.
//
// A CSR is built incrementally through Builder, then frozen with Freeze,
// which checks index bounds, the absence of diagonal entries, and
// ascending (row, col) order once, and flips IsSet. Freeze does not check
// symmetry; an undirected caller supplies both (i,j) and (j,i) itself.
// The CSR methods do not check IsSet themselves; graph.New refuses a CSR
// that is not frozen, returning graph.ErrNotFrozen.
package csr
