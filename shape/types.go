// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// types.go — Shape, Strategy and Stats.

package shape

import (
	"strconv"
	"strings"
)

// Shape is the ordered per-axis sizes of a tensor, e.g. (2, 3, 4).
type Shape []int

// NumElements returns the product of all dimensions.
// The empty shape has product 1 (empty-product convention).
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// GCD returns the greatest common divisor of all dimensions, or 0 for the
// empty shape. Negative entries are taken by absolute value.
func (s Shape) GCD() int {
	g := 0
	for _, d := range s {
		if d < 0 {
			d = -d
		}
		g = gcd(g, d)
	}
	return g
}

// Clone returns an independent copy; nil stays nil.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Equal reports whether s and other have the same length and entries.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the shape as "(2, 3, 4)"; the empty shape is "()".
func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, d := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(')')
	return b.String()
}

// Strategy identifies how a Sampler draws shapes. Every strategy is uniform
// over the feasible set.
//
//   - Independent — no product/GCD target: each axis is drawn uniformly from
//     the admissible values, which is uniform over their Cartesian power.
//   - Indexed     — GCD target only: one index over the m^n - (m-1)^n feasible
//     tuples is drawn and decoded (see indexed.go).
//   - Enumerated  — product target active: every solution is collected by a
//     pruned backtracking search, then one index is drawn uniformly.
type Strategy int

const (
	Independent Strategy = iota
	Indexed
	Enumerated
)

// String returns the strategy name.
func (st Strategy) String() string {
	switch st {
	case Independent:
		return "Independent"
	case Indexed:
		return "Indexed"
	case Enumerated:
		return "Enumerated"
	default:
		return "Strategy(" + strconv.Itoa(int(st)) + ")"
	}
}

// Stats describes how a Sampler built its solution space.
type Stats struct {
	// Strategy chosen for the request.
	Strategy Strategy
	// Admissible is the number of per-axis candidate values.
	Admissible int
	// Solutions is the size of the feasible set when it is known: the
	// enumerated set, or the Indexed count (0 when it exceeds an int).
	Solutions int
	// Nodes counts search states visited.
	Nodes int
	// Pruned counts candidate extensions rejected by the product bounds.
	Pruned int
	// MemoHits counts subtrees skipped because the same state was already
	// known to have no solution.
	MemoHits int
}
