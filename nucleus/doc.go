// Package nucleus computes the (r,s)-nucleus decomposition of a Graph:
// given 1<=r<s, it assigns to every r-clique an integer "nucleus level"
// derived from its s-clique degree under iterative peeling.
//
// Grounded on original_source/src/algorithms/nucleus_decomposition.c —
// the retained copy of that file on disk is a stub (run_nucleus_decomposition
// prints and returns); the full peeling algorithm is only specified in
// prose (spec.md §4.7), which this package follows directly. Exact,
// UpdateFree, Limited, and MonteCarlo all share the same
// incidence-building step (incidence.go) and differ only in how they
// traverse/peel it.
package nucleus
