// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// search.go — backtracking enumeration of every feasible shape.
//
// State per level: prefix, running product, running GCD (0 before the first
// axis) and whether some axis equals the GCD target.
//
// Pruning (product target active, values ascending):
//   • product·v > total                    → stop (larger v only grow).
//   • total mod (product·v) ≠ 0            → skip v.
//   • product·v·min(A)^r > total           → stop, r = remaining axes.
//   • product·v·max(A)^r < total           → skip v.
//
// A state whose subtree yielded nothing is remembered in a dead-end set
// keyed by (depth, product, gcd, hit); its subtree depends on nothing else.
//
// Solutions are emitted in lexicographic order.

package shape

// searchState is the memo key of a partial assignment.
type searchState struct {
	depth   int
	product int
	gcd     int
	hit     bool
}

// searcher holds the immutable request and the mutable DFS buffers.
type searcher struct {
	n      int
	values []int
	cfg    config

	// minPow[r] = min(A)^r, maxPow[r] = max(A)^r, saturated.
	minPow []int
	maxPow []int

	prefix    []int
	solutions []Shape
	dead      map[searchState]struct{}
	stats     Stats
}

// newSearcher prepares the power tables for n axes over ascending values.
func newSearcher(n int, values []int, cfg config) *searcher {
	s := &searcher{
		n:      n,
		values: values,
		cfg:    cfg,
		minPow: make([]int, n+1),
		maxPow: make([]int, n+1),
		prefix: make([]int, 0, n),
		dead:   make(map[searchState]struct{}),
	}
	lo, hi := values[0], values[len(values)-1]
	s.minPow[0], s.maxPow[0] = 1, 1
	for r := 1; r <= n; r++ {
		s.minPow[r] = mulSat(s.minPow[r-1], lo)
		s.maxPow[r] = mulSat(s.maxPow[r-1], hi)
	}
	s.stats.Strategy = Enumerated
	s.stats.Admissible = len(values)
	return s
}

// run enumerates every solution and returns them in lexicographic order.
func (s *searcher) run() []Shape {
	s.descend(0, 1, 0, false)
	s.stats.Solutions = len(s.solutions)
	return s.solutions
}

// descend extends the prefix at depth and returns the number of solutions
// found below it.
func (s *searcher) descend(depth, product, g int, hit bool) int {
	s.stats.Nodes++
	if depth == s.n {
		if !s.accept(product, g, hit) {
			return 0
		}
		sol := make(Shape, s.n)
		copy(sol, s.prefix)
		s.solutions = append(s.solutions, sol)
		return 1
	}

	key := searchState{depth: depth, product: product, gcd: g, hit: hit}
	if _, ok := s.dead[key]; ok {
		s.stats.MemoHits++
		return 0
	}

	total := s.cfg.totalElements
	remaining := s.n - depth - 1
	found := 0
	for _, v := range s.values {
		next := product
		if s.cfg.hasTotal {
			next = mulSat(product, v)
			if next > total {
				s.stats.Pruned++
				break
			}
			if total%next != 0 {
				s.stats.Pruned++
				continue
			}
			if remaining > 0 {
				if mulSat(next, s.minPow[remaining]) > total {
					s.stats.Pruned++
					break
				}
				if mulSat(next, s.maxPow[remaining]) < total {
					s.stats.Pruned++
					continue
				}
			}
		}

		ng, nh := g, hit
		if s.cfg.hasGCD {
			ng = gcd(g, v)
			nh = hit || v == s.cfg.gcd
		}

		s.prefix = append(s.prefix, v)
		found += s.descend(depth+1, next, ng, nh)
		s.prefix = s.prefix[:len(s.prefix)-1]
	}

	if found == 0 {
		s.dead[key] = struct{}{}
	}
	return found
}

// accept checks a complete tuple against the active targets.
func (s *searcher) accept(product, g int, hit bool) bool {
	if s.cfg.hasTotal && product != s.cfg.totalElements {
		return false
	}
	if s.cfg.hasGCD && (g != s.cfg.gcd || !hit) {
		return false
	}
	return true
}
