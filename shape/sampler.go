// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// sampler.go — request resolution and uniform selection.
//
// Pipeline (shared by Generate, NewSampler and Enumerate):
//   1) validateRequest       — ErrInvalidArgument, no randomness consumed.
//   2) zero-dimension rules  — empty shape or ErrInfeasible.
//   3) admissibleSet         — per-axis candidates, ErrInfeasible if none.
//   4) checkProductBounds    — reachable range and gcd^n | total.
//   5) strategy selection    — see Strategy.
//
// Side effects: none beyond consuming entropy from the configured Source.

package shape

import "math"

// Sampler draws shapes from a resolved request. Resolution, including any
// exhaustive search, happens once in NewSampler; Next only draws.
//
// A Sampler is safe for concurrent use iff its Source is (the default
// source and LockedSource are; a bare *rand.Rand is not).
type Sampler struct {
	n         int
	set       progression
	space     *feasibleSpace
	src       Source
	solutions []Shape
	stats     Stats
}

// Generate returns one shape of numDimensions axes drawn uniformly from every
// shape satisfying the configured bounds, product and GCD targets.
//
// Errors:
//   - ErrInvalidArgument          — malformed sizes or targets.
//   - ErrIncompatibleConstraints  — product and GCD targets contradict.
//   - ErrNoSolution               — exhaustive search found nothing.
//   - ErrInfeasible               — any other unsatisfiable request
//     (all three infeasibility cases match errors.Is(err, ErrInfeasible)).
//
// Example:
//
//	s, err := shape.Generate(3, shape.WithMaxSize(20), shape.WithTotalElements(60), shape.WithSeed(7))
func Generate(numDimensions int, opts ...Option) (Shape, error) {
	s, err := newSampler(MethodGenerate, numDimensions, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	return s.Next(), nil
}

// NewSampler resolves a request once so that many shapes can be drawn from
// it without repeating validation or search.
func NewSampler(numDimensions int, opts ...Option) (*Sampler, error) {
	return newSampler(MethodNewSampler, numDimensions, newConfig(opts...))
}

// Enumerate returns every feasible shape in lexicographic order. The search
// is exhaustive: without a product target the result has up to |A|^n
// entries, and a request whose |A|^n does not fit in an int is rejected
// with ErrInvalidArgument.
func Enumerate(numDimensions int, opts ...Option) ([]Shape, error) {
	cfg := newConfig(opts...)
	if err := validateRequest(MethodEnumerate, numDimensions, cfg); err != nil {
		return nil, err
	}
	if numDimensions == 0 {
		if err := checkZeroDimensions(MethodEnumerate, cfg); err != nil {
			return nil, err
		}
		return []Shape{{}}, nil
	}
	set, err := admissibleSet(MethodEnumerate, cfg)
	if err != nil {
		return nil, err
	}
	if err = checkProductBounds(MethodEnumerate, numDimensions, set, cfg); err != nil {
		return nil, err
	}

	if !cfg.hasTotal && powSat(set.count, numDimensions) == math.MaxInt {
		return nil, shapeErrorf(MethodEnumerate, ErrInvalidArgument,
			"%d^%d candidate shapes cannot be listed", set.count, numDimensions)
	}

	values := searchValues(set, cfg)
	if len(values) == 0 {
		return nil, noSolutionError(MethodEnumerate, cfg)
	}
	solutions := newSearcher(numDimensions, values, cfg).run()
	if len(solutions) == 0 {
		return nil, noSolutionError(MethodEnumerate, cfg)
	}
	return solutions, nil
}

// newSampler runs the resolution pipeline under the given method tag.
func newSampler(method string, n int, cfg config) (*Sampler, error) {
	if err := validateRequest(method, n, cfg); err != nil {
		return nil, err
	}
	if n == 0 {
		if err := checkZeroDimensions(method, cfg); err != nil {
			return nil, err
		}
		return &Sampler{src: cfg.src, stats: Stats{Strategy: Independent}}, nil
	}

	set, err := admissibleSet(method, cfg)
	if err != nil {
		return nil, err
	}
	if err = checkProductBounds(method, n, set, cfg); err != nil {
		return nil, err
	}

	s := &Sampler{
		n:     n,
		set:   set,
		src:   cfg.src,
		stats: Stats{Admissible: set.count},
	}
	switch {
	case cfg.hasTotal:
		values := searchValues(set, cfg)
		if len(values) == 0 {
			return nil, noSolutionError(method, cfg)
		}
		srch := newSearcher(n, values, cfg)
		s.solutions = srch.run()
		s.stats = srch.stats
		s.stats.Admissible = set.count
		if len(s.solutions) == 0 {
			return nil, noSolutionError(method, cfg)
		}
	case cfg.hasGCD:
		s.stats.Strategy = Indexed
		s.space = newFeasibleSpace(set, cfg.gcd, n)
		s.stats.Solutions = s.space.small
	default:
		s.stats.Strategy = Independent
	}

	return s, nil
}

// noSolutionError picks the specific diagnostic when both targets are active.
func noSolutionError(method string, cfg config) error {
	if cfg.bothTargets() {
		return shapeErrorf(method, ErrIncompatibleConstraints,
			"no tuple in [%d,%d] has product %d and gcd %d",
			cfg.minSize, cfg.maxSize, cfg.totalElements, cfg.gcd)
	}
	return shapeErrorf(method, ErrNoSolution, "exhaustive search over [%d,%d] found nothing",
		cfg.minSize, cfg.maxSize)
}

// Next draws one shape. The returned slice is owned by the caller.
func (s *Sampler) Next() Shape {
	switch s.stats.Strategy {
	case Enumerated:
		return s.solutions[s.src.Intn(len(s.solutions))].Clone()
	case Indexed:
		out := make(Shape, s.n)
		s.space.draw(s.src, out)
		return out
	default:
		out := make(Shape, s.n)
		for i := range out {
			out[i] = s.set.at(s.src.Intn(s.set.count))
		}
		return out
	}
}

// NumDimensions returns the length of every drawn shape.
func (s *Sampler) NumDimensions() int {
	return s.n
}

// Stats reports how the solution space was built.
func (s *Sampler) Stats() Stats {
	return s.stats
}
