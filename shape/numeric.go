// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// numeric.go — integer helpers for the feasibility bounds.
//
// All products are saturating: once a value would exceed math.MaxInt it is
// clamped to math.MaxInt. Targets are ≤ math.MaxInt, so a saturated bound
// compares correctly against any target ("too large").

package shape

import "math"

// gcd returns the greatest common divisor of two non-negative integers
// using the Euclidean algorithm. gcd(0, b) == b.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mulSat returns a*b for non-negative operands, clamped to math.MaxInt.
//
// Complexity: O(1).
func mulSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}

// powSat returns base^exp for base ≥ 0 and exp ≥ 0, clamped to math.MaxInt.
// Uses square-and-multiply; stops early once the result saturates.
//
// Complexity: O(log exp).
func powSat(base, exp int) int {
	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			result = mulSat(result, base)
		}
		exp >>= 1
		if exp > 0 {
			base = mulSat(base, base)
		}
	}
	return result
}
