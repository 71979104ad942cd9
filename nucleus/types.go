package nucleus

import "errors"

// Sentinel errors — contract violations per spec.md §7.
var (
	// ErrRNotLessThanS indicates r>=s was passed; nucleus decomposition
	// requires a strictly smaller "inner" clique size than the "outer"
	// one, so r>=s is always a programmer error.
	ErrRNotLessThanS = errors.New("nucleus: r must be strictly less than s")

	// ErrNonPositiveR indicates r<1 was passed.
	ErrNonPositiveR = errors.New("nucleus: r must be >= 1")

	// ErrNonPositiveT indicates MonteCarlo was called with t<1 samples.
	ErrNonPositiveT = errors.New("nucleus: t must be >= 1")
)

// ProcessedByStableIndex documents UpdateFree's resolution of spec.md
// §9's known-ambiguous "already processed" check: an r-clique is
// considered processed iff its position in the (fixed, precomputed)
// ascending-initial-s-degree order is strictly less than the position of
// the r-clique currently being peeled — not a dynamically recomputed
// s-degree, since the update-free variant never mutates s-degree values
// after the initial build.
const ProcessedByStableIndex = true
