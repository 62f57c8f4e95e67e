// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// admissible.go — the per-axis candidate set as an arithmetic progression.
//
// The set is never materialized unless a search needs it: bounds may span
// the whole int range, so draws index the progression directly.
//
// All arithmetic stays within [minSize, maxSize]; no step may overflow.

package shape

// progression is the ascending set {first + i·step : 0 ≤ i < count}.
type progression struct {
	first int
	step  int
	count int
}

// at returns the i-th member; 0 ≤ i < count.
func (p progression) at(i int) int {
	return p.first + i*p.step
}

// last returns the largest member; count must be positive.
func (p progression) last() int {
	return p.at(p.count - 1)
}

// contains reports whether v is a member.
func (p progression) contains(v int) bool {
	return p.count > 0 && v >= p.first && v <= p.last() && (v-p.first)%p.step == 0
}

// indexOf returns the position of member v.
func (p progression) indexOf(v int) int {
	return (v - p.first) / p.step
}

// values materializes every member. Memory grows with count.
func (p progression) values() []int {
	out := make([]int, 0, min(p.count, 1024))
	for i := 0; i < p.count; i++ {
		out = append(out, p.at(i))
	}
	return out
}

// divisorsOf returns the ascending members that divide total. It either
// scans the progression or trial-divides total, whichever is shorter.
//
// Complexity: O(min(count, √total)).
func (p progression) divisorsOf(total int) []int {
	var out []int
	if p.count <= total/p.count {
		for i := 0; i < p.count; i++ {
			v := p.at(i)
			if v > total {
				break
			}
			if total%v == 0 {
				out = append(out, v)
			}
		}
		return out
	}

	var large []int
	for d := 1; d <= total/d; d++ {
		if total%d != 0 {
			continue
		}
		if p.contains(d) {
			out = append(out, d)
		}
		if q := total / d; q != d && p.contains(q) {
			large = append(large, q)
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		out = append(out, large[i])
	}
	return out
}

// admissibleSet returns the per-axis candidates: every integer of
// [minSize, maxSize], or only the multiples of gcd when it is active.
// An empty set, or a gcd outside the bounds, is infeasible.
//
// Complexity: O(1).
func admissibleSet(method string, cfg config) (progression, error) {
	if !cfg.hasGCD {
		// minSize ≥ 1, so the span cannot overflow.
		return progression{first: cfg.minSize, step: 1, count: cfg.maxSize - cfg.minSize + 1}, nil
	}

	// Multiples q·gcd with ceil(minSize/gcd) ≤ q ≤ floor(maxSize/gcd).
	lo := cfg.minSize / cfg.gcd
	if cfg.minSize%cfg.gcd != 0 {
		lo++
	}
	hi := cfg.maxSize / cfg.gcd
	if lo > hi {
		return progression{}, shapeErrorf(method, ErrInfeasible,
			"no candidate value satisfies the bounds/GCD combination: no multiple of %d in [%d,%d]",
			cfg.gcd, cfg.minSize, cfg.maxSize)
	}
	if cfg.gcd < cfg.minSize || cfg.gcd > cfg.maxSize {
		return progression{}, shapeErrorf(method, ErrInfeasible,
			"gcd_constraint=%d outside [%d,%d]: no dimension can equal it",
			cfg.gcd, cfg.minSize, cfg.maxSize)
	}

	return progression{first: lo * cfg.gcd, step: cfg.gcd, count: hi - lo + 1}, nil
}

// searchValues returns the ascending values the backtracking search may
// place on an axis. With a product target only divisors of it qualify.
func searchValues(p progression, cfg config) []int {
	if cfg.hasTotal {
		return p.divisorsOf(cfg.totalElements)
	}
	return p.values()
}
