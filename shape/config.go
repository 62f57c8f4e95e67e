// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// config.go — internal request configuration and deterministic defaults.
//
// Defaults:
//   • minSize = 1
//   • maxSize = 10
//   • totalElements, gcd = inactive
//   • src = DefaultSource()

package shape

// config aggregates every knob of a single request.
type config struct {
	minSize int
	maxSize int

	totalElements int
	hasTotal      bool

	gcd    int
	hasGCD bool

	src Source
}

// Named defaults.
const (
	DefaultMinSize = 1
	DefaultMaxSize = 10
)

// newConfig starts from the defaults and applies opts in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		minSize: DefaultMinSize,
		maxSize: DefaultMaxSize,
		src:     DefaultSource(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// bothTargets reports whether product and GCD constraints are both active.
func (c config) bothTargets() bool {
	return c.hasTotal && c.hasGCD
}
