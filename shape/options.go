// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// options.go — functional options for the shape package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC only on nil sources; numeric values are
//     stored verbatim and validated by the operation, so malformed sizes
//     surface as ErrInvalidArgument instead of a panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package shape

import "math/rand"

// Option customizes a generation request by mutating a config before
// validation. Applying N options costs O(N).
type Option func(*config)

// WithMinSize sets the inclusive lower bound for every dimension (default 1).
func WithMinSize(n int) Option {
	return func(c *config) {
		c.minSize = n
	}
}

// WithMaxSize sets the inclusive upper bound for every dimension (default 10).
func WithMaxSize(n int) Option {
	return func(c *config) {
		c.maxSize = n
	}
}

// WithBounds sets both bounds at once.
func WithBounds(minSize, maxSize int) Option {
	return func(c *config) {
		c.minSize, c.maxSize = minSize, maxSize
	}
}

// WithTotalElements activates the product constraint: the product of all
// dimensions must equal n.
func WithTotalElements(n int) Option {
	return func(c *config) {
		c.totalElements = n
		c.hasTotal = true
	}
}

// WithGCD activates the GCD constraint: the greatest common divisor of all
// dimensions must equal n, and at least one dimension must equal n exactly.
func WithGCD(n int) Option {
	return func(c *config) {
		c.gcd = n
		c.hasGCD = true
	}
}

// WithSource injects the randomness source. Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("shape: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithRand injects an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("shape: WithRand(nil)")
	}
	return func(c *config) {
		c.src = r
	}
}

// WithSeed creates a private *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = newSeededRand(seed)
	}
}
