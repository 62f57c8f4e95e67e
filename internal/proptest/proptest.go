// Package proptest provides property-based testing parameters and the
// generators used to build random shape requests.
package proptest

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// TestParameters returns the standard parameters for property tests.
// Default: 500 iterations; exhaustive searches keep each run small.
func TestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 500
	return params
}

// FastTestParameters returns parameters for quick runs (-short, CI smoke).
func FastTestParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	return params
}

// Dimensions generates dimension counts in [0, 5].
func Dimensions() gopter.Gen {
	return gen.IntRange(0, 5)
}

// MinSize generates lower bounds in [1, 8].
func MinSize() gopter.Gen {
	return gen.IntRange(1, 8)
}

// Span generates the width max_size-min_size in [0, 8].
func Span() gopter.Gen {
	return gen.IntRange(0, 8)
}

// Divisor generates GCD targets in [1, 6].
func Divisor() gopter.Gen {
	return gen.IntRange(1, 6)
}

// Target generates product targets in [1, 720].
func Target() gopter.Gen {
	return gen.IntRange(1, 720)
}

// Seed generates RNG seeds.
func Seed() gopter.Gen {
	return gen.Int64()
}
