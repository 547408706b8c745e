// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.

package bench

import (
	"errors"

	"github.com/katalvlaran/spmvbench/spmv"
)

var (
	// ErrConfiguration is spmv.ErrConfiguration: every invalid harness option
	// and every invalid kernel configuration in a sweep matches it.
	ErrConfiguration = spmv.ErrConfiguration

	// ErrBadRuns indicates a non-positive timed run count.
	ErrBadRuns = errors.New("bench: timed runs must be > 0")

	// ErrBadWarmups indicates a negative warm-up count.
	ErrBadWarmups = errors.New("bench: warm-ups must be >= 0")

	// ErrBadRange indicates lo > hi or a non-finite bound for vector values.
	ErrBadRange = errors.New("bench: invalid value range")

	// ErrNilClock indicates WithClock(nil).
	ErrNilClock = errors.New("bench: nil clock")

	// ErrNilKernel indicates a nil spmv.Kernel was passed to Run.
	ErrNilKernel = errors.New("bench: nil kernel")

	// ErrVectorLength indicates WithVector with len != matrix columns.
	ErrVectorLength = errors.New("bench: input vector length mismatch")

	// ErrEmptyGrid indicates Sweep was given no configurations.
	ErrEmptyGrid = errors.New("bench: empty configuration grid")
)
