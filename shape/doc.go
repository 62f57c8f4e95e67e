// Package shape generates random tensor shapes under arithmetic constraints.
//
// 🚀 What is a constrained shape?
//
//	A shape is a tuple of positive integers, one per axis. The generator
//	draws a tuple of a requested length such that:
//	  • every axis lies in [min_size, max_size] (default [1,10])
//	  • optionally, the product of all axes equals total_elements
//	  • optionally, the GCD of all axes equals gcd_constraint, with at least
//	    one axis equal to it
//
//	Typical uses: fuzzing and property-based tests of tensor code, where
//	shapes must be random yet reproducible under a seed.
//
// ✨ Key features:
//   - uniform selection over the whole feasible set, never weighted by
//     search order
//   - backtracking search with product-bound, divisibility and dead-end pruning
//   - injected randomness (Source); *rand.Rand works as-is
//   - reusable Sampler for drawing many shapes from one request
//   - exhaustive Enumerate and a Validate membership check
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shapegen/shape"
//
//	s, err := shape.Generate(3,
//	  shape.WithBounds(2, 12),
//	  shape.WithTotalElements(48),
//	  shape.WithSeed(42),
//	)
//	if errors.Is(err, shape.ErrInfeasible) {
//	  // no shape satisfies the constraints
//	}
//
// Performance:
//
//   - Independent / Indexed: O(n) per draw, bounds may span the whole int range
//   - Enumerated: exponential in n in the worst case; pruning keeps the
//     bound ranges intended here (tens of values) fast.
//
// There is no cancellation: callers that need bounded latency should keep the
// admissible set small.
package shape
