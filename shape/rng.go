// SPDX-License-Identifier: MIT
// Package: shapegen/shape
//
// rng.go — randomness sources shared by all samplers.
//
// Goals:
//   - Injection: every draw goes through a Source supplied by the caller.
//   - Determinism: a seeded *rand.Rand yields identical shapes for identical
//     requests.
//   - Safety: the default source is backed by math/rand's top-level
//     functions, which are safe for concurrent use.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a seeded *rand.Rand
//     across goroutines; wrap it with NewLockedSource instead.

package shape

import (
	"math/rand"
	"sync"
)

// Source is the randomness capability consumed by the generator.
// Intn must return a uniform value in [0, n) for n > 0.
// *math/rand.Rand satisfies Source.
type Source interface {
	Intn(n int) int
}

// globalSource draws from the process-wide math/rand generator.
type globalSource struct{}

// Intn delegates to rand.Intn (concurrency-safe).
func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}

// DefaultSource returns the process-wide source used when no option supplies one.
// Its consumption order across concurrent callers is unspecified, so callers
// that need reproducibility must use WithSeed or WithRand.
func DefaultSource() Source {
	return globalSource{}
}

// LockedSource serializes access to a private *rand.Rand so a single seeded
// stream can be shared by several goroutines.
type LockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedSource returns a goroutine-safe source seeded with seed.
func NewLockedSource(seed int64) *LockedSource {
	return &LockedSource{r: newSeededRand(seed)}
}

// Intn returns a uniform value in [0, n).
func (l *LockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// newSeededRand returns a deterministic *rand.Rand. The seed is used verbatim.
//
// Complexity: O(1).
func newSeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
