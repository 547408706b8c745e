// SPDX-License-Identifier: MIT
// Package spmv: sentinel error set.
// Configuration problems always match ErrConfiguration and are reported
// before any row of the output is written.

package spmv

import (
	"errors"

	"github.com/katalvlaran/spmvbench/csr"
)

var (
	// ErrConfiguration is the coarse class for an unusable parallel
	// configuration (thread count, schedule policy, chunk size).
	ErrConfiguration = errors.New("spmv: invalid configuration")

	// ErrBadThreads indicates Threads <= 0.
	ErrBadThreads = errors.New("spmv: thread count must be > 0")

	// ErrUnknownSchedule indicates a schedule value outside Static/Dynamic/Guided.
	ErrUnknownSchedule = errors.New("spmv: unknown schedule policy")

	// ErrBadChunk indicates Chunk < 0.
	ErrBadChunk = errors.New("spmv: chunk size must be >= 0")

	// ErrNotStatic is returned by Partition for policies whose block
	// ownership is only known at run time.
	ErrNotStatic = errors.New("spmv: schedule has no fixed partition")

	// ErrDimensionMismatch indicates len(v) != Cols() or len(c) != Rows().
	ErrDimensionMismatch = errors.New("spmv: dimension mismatch")

	// ErrNilMatrix is csr.ErrNilMatrix, re-exported so callers of this
	// package need not import csr just to match it.
	ErrNilMatrix = csr.ErrNilMatrix
)
