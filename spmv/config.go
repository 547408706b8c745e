// SPDX-License-Identifier: MIT

// Package spmv - explicit parallel configuration.
//
// Design goals:
//   - No ambient state: thread count, policy and chunk size travel with the
//     call, so a kernel's behavior is a pure function of its arguments.
//   - Fail fast: Validate runs before any worker starts and before any output
//     row is written.

package spmv

import (
	"fmt"
	"runtime"
)

// Config controls the parallel kernel.
//
// Fields:
//   - Threads  - number of worker goroutines (> 0). Capped at the row count
//     at run time so no worker starts without rows to claim.
//   - Schedule - Static, Dynamic or Guided.
//   - Chunk    - rows per scheduling decision (>= 0). Zero selects the policy
//     default: Static splits rows into one contiguous block per worker,
//     Dynamic claims one row at a time, Guided shrinks down to one row.
type Config struct {
	Threads  int
	Schedule Schedule
	Chunk    int
}

// DefaultConfig returns a static, default-chunk configuration with one worker
// per available CPU (runtime.GOMAXPROCS(0)).
func DefaultConfig() Config {
	return Config{
		Threads:  runtime.GOMAXPROCS(0),
		Schedule: Static,
		Chunk:    0,
	}
}

// configErrorf wraps a detail sentinel under ErrConfiguration.
func configErrorf(tag string, detail error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrConfiguration, detail)
}

// Validate checks the configuration.
// Order: threads -> schedule -> chunk.
//
// Errors: ErrConfiguration wrapping ErrBadThreads, ErrUnknownSchedule or ErrBadChunk.
// Complexity: O(1).
func (c Config) Validate() error {
	if c.Threads <= 0 {
		return configErrorf(fmt.Sprintf("Config.Validate: threads=%d", c.Threads), ErrBadThreads)
	}
	if !c.Schedule.Valid() {
		return configErrorf(fmt.Sprintf("Config.Validate: %v", c.Schedule), ErrUnknownSchedule)
	}
	if c.Chunk < 0 {
		return configErrorf(fmt.Sprintf("Config.Validate: chunk=%d", c.Chunk), ErrBadChunk)
	}

	return nil
}

// String renders "schedule/chunk=N/threads=T".
func (c Config) String() string {
	return fmt.Sprintf("%v/chunk=%d/threads=%d", c.Schedule, c.Chunk, c.Threads)
}
