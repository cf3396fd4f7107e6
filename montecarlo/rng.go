// Package montecarlo - RNG utilities for the simulator.
//
// This file centralizes random-source construction so that no time-based
// source hides inside the sampling loops.
//
// Goals:
//   - Determinism: a seeded simulator reproduces draw sequences exactly.
//   - Encapsulation: one factory; sampling code never touches seeds.
//   - Isolation: every Run owns a private source, so concurrent Run calls
//     on one instance never interleave draws.
//
// Concurrency:
//   - x/exp/rand.Rand is not goroutine-safe. Sources built here are
//     per-call and must not escape the Run that created them.
package montecarlo

import (
	"time"

	"golang.org/x/exp/rand"
)

// rngFromSeed returns a deterministic *rand.Rand for the given seed.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// entropySeed produces a fresh non-deterministic seed for unseeded
// simulators. Wall-clock nanoseconds are sufficient here: the simulator
// makes no security claims, and callers wanting reproducibility use
// WithSeed.
//
// Complexity: O(1).
func entropySeed() uint64 {
	return uint64(time.Now().UnixNano())
}
