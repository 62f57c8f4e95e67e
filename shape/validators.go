// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// validators.go — validation and feasibility helpers run before any search.
// Each helper returns a wrapped sentinel via shapeErrorf.

package shape

// validateRequest checks the structural preconditions in a fixed order:
// dimension count, min size, bound order, product target, GCD target.
//
// Complexity: O(1).
func validateRequest(method string, numDimensions int, cfg config) error {
	if numDimensions < 0 {
		return shapeErrorf(method, ErrInvalidArgument, "num_dimensions must be ≥ 0, got %d", numDimensions)
	}
	if cfg.minSize < 1 {
		return shapeErrorf(method, ErrInvalidArgument, "min_size must be ≥ 1, got %d", cfg.minSize)
	}
	if cfg.maxSize < cfg.minSize {
		return shapeErrorf(method, ErrInvalidArgument, "max_size %d < min_size %d", cfg.maxSize, cfg.minSize)
	}
	if cfg.hasTotal && cfg.totalElements < 1 {
		return shapeErrorf(method, ErrInvalidArgument, "total_elements must be ≥ 1, got %d", cfg.totalElements)
	}
	if cfg.hasGCD && cfg.gcd < 1 {
		return shapeErrorf(method, ErrInvalidArgument, "gcd_constraint must be ≥ 1, got %d", cfg.gcd)
	}

	return nil
}

// checkZeroDimensions applies the empty-shape rules: the empty product is 1
// and the GCD of an empty shape is undefined.
func checkZeroDimensions(method string, cfg config) error {
	if cfg.hasTotal && cfg.totalElements != 1 {
		return shapeErrorf(method, ErrInfeasible, "empty shape has product 1, total_elements=%d", cfg.totalElements)
	}
	if cfg.hasGCD {
		return shapeErrorf(method, ErrInfeasible, "gcd_constraint=%d is undefined for an empty shape", cfg.gcd)
	}

	return nil
}

// checkProductBounds fails fast on product targets that no tuple over the
// admissible set can reach, and on product/GCD targets that contradict each
// other. set must be non-empty.
//
// Complexity: O(log n).
func checkProductBounds(method string, n int, set progression, cfg config) error {
	if !cfg.hasTotal {
		return nil
	}
	lo := powSat(set.first, n)
	hi := powSat(set.last(), n)
	if cfg.totalElements < lo || cfg.totalElements > hi {
		return shapeErrorf(method, ErrInfeasible,
			"total_elements=%d outside reachable range [%d,%d] for %d dimensions",
			cfg.totalElements, lo, hi, n)
	}
	if cfg.hasGCD {
		// Every axis is a multiple of gcd, so gcd^n divides the product.
		unit := powSat(cfg.gcd, n)
		if unit > cfg.totalElements || cfg.totalElements%unit != 0 {
			return shapeErrorf(method, ErrIncompatibleConstraints,
				"total_elements=%d not divisible by gcd_constraint^%d", cfg.totalElements, n)
		}
	}

	return nil
}
