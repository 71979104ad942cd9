package graphbuild

import "errors"

// ErrTooFewVertices indicates n is smaller than the minimum the
// requested generator requires (1 for Complete/RandomSparse, 2 for
// Path, 3 for Cycle).
var ErrTooFewVertices = errors.New("graphbuild: n too small for this generator")

// ErrInvalidProbability indicates p is outside the closed interval
// [0,1] in RandomSparse.
var ErrInvalidProbability = errors.New("graphbuild: probability out of [0,1]")

// ErrNeedRandSource indicates RandomSparse was called with a nil *rand.Rand
// while 0<p<1, where sampling genuinely requires randomness.
var ErrNeedRandSource = errors.New("graphbuild: rng is required for 0<p<1")
