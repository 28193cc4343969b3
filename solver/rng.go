// Package solver - RNG utilities for stochastic acceptance.
//
// Determinism: a fixed seed yields an identical run, given a deterministic
// neighborhood and objective. A nil seed draws a fresh stream per Solve call.
//
// Concurrency: math/rand.Rand is not goroutine-safe; every Solve call owns
// its own generator.
package solver

import "math/rand"

// rngFromSeed returns a generator for a run. A nil seed is drawn from the
// auto-seeded global source; any other seed, zero included, is used as is.
//
// Complexity: O(1).
func rngFromSeed(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(int64(*seed)))
}
