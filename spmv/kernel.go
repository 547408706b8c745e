// SPDX-License-Identifier: MIT

package spmv

import (
	"fmt"

	"github.com/katalvlaran/spmvbench/csr"
)

// Operation tags for error wrapping.
const (
	opSequential    = "Sequential"
	opParallel      = "Parallel"
	opMulSequential = "MulSequential"
	opMulParallel   = "MulParallel"
	opKernel        = "ParallelKernel"
)

// spmvErrorf wraps err with an operation tag, preserving it for errors.Is.
func spmvErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Kernel is the common shape of both SpMV variants: it overwrites c with a·v.
// The benchmark harness times values of this type.
type Kernel func(a *csr.Matrix, v, c []float64) error

// SequentialKernel returns Sequential as a Kernel.
func SequentialKernel() Kernel {
	return Sequential
}

// ParallelKernel binds cfg to Parallel after validating it once up front,
// so a bad configuration is rejected before the kernel is ever scheduled.
//
// Errors: ErrConfiguration.
func ParallelKernel(cfg Config) (Kernel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, spmvErrorf(opKernel, err)
	}

	return func(a *csr.Matrix, v, c []float64) error {
		return Parallel(a, v, c, cfg)
	}, nil
}

// validateOperands checks a != nil, len(v) == Cols and len(c) == Rows.
func validateOperands(a *csr.Matrix, v, c []float64) error {
	if a == nil {
		return ErrNilMatrix
	}
	if len(v) != a.Cols() {
		return fmt.Errorf("len(v)=%d, cols=%d: %w", len(v), a.Cols(), ErrDimensionMismatch)
	}
	if len(c) != a.Rows() {
		return fmt.Errorf("len(c)=%d, rows=%d: %w", len(c), a.Rows(), ErrDimensionMismatch)
	}

	return nil
}

// mulRows computes c[i] for every i in [lo, hi).
// Each row is accumulated from 0.0 in ascending k. The explicit float64
// conversion of the product forbids fused multiply-add, keeping every
// partial sum a plain IEEE-754 double rounding on all architectures.
func mulRows(rowPtr, colInd []int, values, v, c []float64, lo, hi int) {
	var (
		i, k int     // row and nonzero iterators
		sum  float64 // row accumulator
	)
	for i = lo; i < hi; i++ {
		sum = 0
		for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
			sum += float64(values[k] * v[colInd[k]])
		}
		c[i] = sum
	}
}

// Sequential overwrites c with a·v on the calling goroutine.
// MAIN DESCRIPTION:
//   - c[i] = Σ values[k]*v[colInd[k]] over k in [rowPtr[i], rowPtr[i+1]),
//     accumulated in ascending k. Rows with no entries yield 0.
//
// Inputs:
//   - a: CSR matrix (read-only).
//   - v: dense input, len a.Cols().
//   - c: dense output, len a.Rows(); fully overwritten.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch. c is untouched on error.
//
// Determinism:
//   - Bit-identical output for fixed (a, v); repeated calls are idempotent.
//
// Complexity:
//   - Time O(rows + nnz), Space O(1).
func Sequential(a *csr.Matrix, v, c []float64) error {
	if err := validateOperands(a, v, c); err != nil {
		return spmvErrorf(opSequential, err)
	}
	mulRows(a.RowPtr(), a.ColInd(), a.Values(), v, c, 0, a.Rows())

	return nil
}

// MulSequential allocates c and runs Sequential.
func MulSequential(a *csr.Matrix, v []float64) ([]float64, error) {
	if a == nil {
		return nil, spmvErrorf(opMulSequential, ErrNilMatrix)
	}
	c := make([]float64, a.Rows())
	if err := Sequential(a, v, c); err != nil {
		return nil, spmvErrorf(opMulSequential, err)
	}

	return c, nil
}

// MulParallel allocates c and runs Parallel.
func MulParallel(a *csr.Matrix, v []float64, cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, spmvErrorf(opMulParallel, err)
	}
	if a == nil {
		return nil, spmvErrorf(opMulParallel, ErrNilMatrix)
	}
	c := make([]float64, a.Rows())
	if err := Parallel(a, v, c, cfg); err != nil {
		return nil, spmvErrorf(opMulParallel, err)
	}

	return c, nil
}
