package clique

import "errors"

// Sentinel errors — contract violations per spec.md §7.
var (
	// ErrNonPositiveK indicates Enumerate was called with k<1.
	ErrNonPositiveK = errors.New("clique: k must be >= 1")

	// ErrEmptyCliqueSet indicates Expand was given a CliqueSet with no
	// tuples; there is no k to infer expansion from.
	ErrEmptyCliqueSet = errors.New("clique: Expand requires a non-empty CliqueSet")

	// ErrArityMismatch indicates an internal invariant violation surfaced
	// defensively: Expand found two members of a completed adjacency
	// group whose symmetric difference is not exactly 2.
	ErrArityMismatch = errors.New("clique: internal arity invariant violated")

	// ErrGraphIsDirected indicates Enumerate was called on a directed
	// Graph; clique enumeration is defined over undirected graphs only,
	// matching clique_triangles.c's assert(graph->is_directed == false).
	ErrGraphIsDirected = errors.New("clique: Enumerate requires an undirected graph")
)

// defaultResizeStep seeds every cliqueset.New call in this package; the
// enumerators have no better a-priori size estimate than the original's
// own default resize_value, so the same constant is reused throughout.
const defaultResizeStep = 16
