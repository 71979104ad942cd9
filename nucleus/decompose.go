package nucleus

import (
	"errors"

	"github.com/katalvlaran/nucleus/graph"
	"golang.org/x/exp/rand"
)

// Variant names one of the four nucleus-decomposition peeling policies
// spec.md §6 exposes as the engine's programmatic surface.
type Variant int

const (
	// VariantExact runs the canonical live-updating peel (Exact).
	VariantExact Variant = iota
	// VariantUpdateFree runs the fixed-initial-order peel (UpdateFree).
	VariantUpdateFree
	// VariantLimited runs the bounded-propagation peel (Limited).
	VariantLimited
	// VariantMonteCarlo runs the sampling-based approximation (MonteCarlo).
	VariantMonteCarlo
)

// ErrUnknownVariant indicates Decompose was called with a Variant value
// other than the four named constants.
var ErrUnknownVariant = errors.New("nucleus: unknown variant")

// ErrMissingRNG indicates Decompose was called with VariantMonteCarlo
// and a nil Params.RNG.
var ErrMissingRNG = errors.New("nucleus: monte-carlo variant requires Params.RNG")

// Params bundles the extra, variant-specific arguments Decompose needs
// beyond (g, r, s): Limit for VariantLimited, and Samples/RNG for
// VariantMonteCarlo. Fields unused by the selected variant are ignored.
type Params struct {
	// Limit is the propagation bound passed to Limited.
	Limit int
	// Samples is the sample count passed to MonteCarlo.
	Samples int
	// RNG is the pseudo-random source passed to MonteCarlo. Required
	// (non-nil) when Variant is VariantMonteCarlo.
	RNG *rand.Rand
}

// Decompose is the unified nucleus-decomposition entry point spec.md §6
// and SPEC_FULL.md §6.2 name as the core's programmatic surface: it
// dispatches to Exact, UpdateFree, Limited, or MonteCarlo per variant,
// so callers (cmd/nucleusctl among them) select a policy through one
// function instead of wiring each variant by hand.
func Decompose(g *graph.Graph, r, s int, variant Variant, params Params) ([]int, error) {
	switch variant {
	case VariantExact:
		return Exact(g, r, s)
	case VariantUpdateFree:
		return UpdateFree(g, r, s)
	case VariantLimited:
		return Limited(g, r, s, params.Limit)
	case VariantMonteCarlo:
		if params.RNG == nil {
			return nil, ErrMissingRNG
		}

		return MonteCarlo(g, r, s, params.Samples, params.RNG)
	default:
		return nil, ErrUnknownVariant
	}
}
