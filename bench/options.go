// SPDX-License-Identifier: MIT

// Package bench: functional configuration for the benchmark harness.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions, which applies setters and enforces invariants.
//
// Design goals:
//   - Deterministic behavior when a seed is given; no global state.
//   - Constructors never panic: values usually come straight from command-line
//     flags, so invalid ones are reported by Run as ErrConfiguration.
//   - Last writer wins when an option is repeated.
package bench

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWarmups is the number of untimed kernel calls before timing.
	DefaultWarmups = 1

	// DefaultRuns is the number of timed kernel calls.
	DefaultRuns = 10
)

// Option mutates harness options.
type Option func(*options)

// options is the effective configuration after applying Option setters.
type options struct {
	warmups int
	runs    int

	seed   int64
	seeded bool      // false ⇒ draw a fresh seed per Run
	vector []float64 // caller-provided input; nil ⇒ generate
	lo, hi float64   // value range for generated input
	clock  Clock
}

// defaultOptions returns the zero-config harness policy.
func defaultOptions() options {
	return options{
		warmups: DefaultWarmups,
		runs:    DefaultRuns,
		lo:      DefaultValueLo,
		hi:      DefaultValueHi,
		clock:   WallClock(),
	}
}

// WithWarmups sets the number of untimed warm-up calls (>= 0).
func WithWarmups(n int) Option {
	return func(o *options) { o.warmups = n }
}

// WithRuns sets the number of timed calls (> 0).
func WithRuns(n int) Option {
	return func(o *options) { o.runs = n }
}

// WithSeed fixes the seed of the input-vector generator.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed, o.seeded = seed, true }
}

// WithClock replaces the wall clock, e.g. with a fake in tests.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithVector supplies the input vector instead of generating one.
// The slice is used as-is (not copied) and must not change during Run.
func WithVector(v []float64) Option {
	return func(o *options) { o.vector = v }
}

// WithValueRange sets the generator range [lo, hi) (lo <= hi, both finite).
func WithValueRange(lo, hi float64) Option {
	return func(o *options) { o.lo, o.hi = lo, hi }
}

// configErrorf wraps a detail sentinel under ErrConfiguration.
func configErrorf(detail error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %w", fmt.Sprintf(format, args...), ErrConfiguration, detail)
}

// gatherOptions applies setters over defaults and validates the result.
// Order: runs -> warmups -> range -> clock.
func gatherOptions(opts ...Option) (options, error) {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	if o.runs <= 0 {
		return o, configErrorf(ErrBadRuns, "runs=%d", o.runs)
	}
	if o.warmups < 0 {
		return o, configErrorf(ErrBadWarmups, "warmups=%d", o.warmups)
	}
	if math.IsNaN(o.lo) || math.IsInf(o.lo, 0) || math.IsNaN(o.hi) || math.IsInf(o.hi, 0) || o.lo > o.hi {
		return o, configErrorf(ErrBadRange, "range=[%g,%g)", o.lo, o.hi)
	}
	if o.clock == nil {
		return o, configErrorf(ErrNilClock, "clock")
	}

	return o, nil
}
