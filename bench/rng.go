// SPDX-License-Identifier: MIT

// Package bench - RNG utilities for input-vector generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical input vector on every platform.
//   - No hidden global generator: every Run owns its *rand.Rand.
//   - Unseeded runs draw a fresh seed from the wall clock and report it in
//     Result.Seed, so any run can be replayed with WithSeed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The harness is single-threaded and
//     never hands its generator to a kernel.
package bench

import (
	"math/rand"
	"time"
)

// Default bounds for generated vector entries.
const (
	DefaultValueLo = -1000.0
	DefaultValueHi = 1000.0
)

// defaultRNGSeed is used by RandomVector when rng==nil.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic, caller-owned *rand.Rand.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// freshSeed returns a seed for unseeded runs.
func freshSeed() int64 {
	return time.Now().UnixNano()
}

// RandomVector returns n values drawn uniformly from [lo, hi) using rng.
// If rng==nil, a deterministic stream seeded with defaultRNGSeed is used.
// Bounds are not validated here; Run validates them through WithValueRange.
//
// Complexity: O(n) time, O(n) space.
func RandomVector(n int, rng *rand.Rand, lo, hi float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	r := rng
	if r == nil {
		r = rngFromSeed(defaultRNGSeed)
	}

	v := make([]float64, n)
	span := hi - lo
	var i int
	for i = 0; i < n; i++ {
		v[i] = lo + r.Float64()*span
	}

	return v
}
