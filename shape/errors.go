// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// errors.go — sentinel errors for the shape package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Operations attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Every infeasibility sentinel wraps ErrInfeasible, so a caller that only
//     cares about "no shape exists" checks a single value.
//   • Operations never panic; only option constructors do (nil sources).

package shape

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a structurally malformed request: a negative
// dimension count, min size below 1, inverted bounds, or a non-positive
// product/GCD target. Detected before any search, independent of randomness.
var ErrInvalidArgument = errors.New("shape: invalid argument")

// ErrInfeasible indicates a well-formed request for which no shape exists.
var ErrInfeasible = errors.New("shape: infeasible constraints")

// ErrIncompatibleConstraints indicates that the product and GCD targets
// cannot hold at the same time within the bounds.
var ErrIncompatibleConstraints = fmt.Errorf("%w: total_elements and gcd_constraint cannot be simultaneously satisfied", ErrInfeasible)

// ErrNoSolution indicates that an exhaustive search found no shape.
var ErrNoSolution = fmt.Errorf("%w: no tuple satisfies constraints", ErrInfeasible)

// Canonical method tags used as error prefixes.
const (
	MethodGenerate   = "Generate"
	MethodNewSampler = "NewSampler"
	MethodEnumerate  = "Enumerate"
	MethodValidate   = "Validate"
)

// shapeErrorf formats "<method>: <detail>: <sentinel>" keeping sentinel
// reachable through errors.Is.
func shapeErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
