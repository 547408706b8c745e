// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//  - Single source of truth for shape, range and CSR-invariant checks.
//  - Builders and FromArrays delegate here; kernels in package spmv rely on
//    the invariants being true for every *Matrix that exists.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing beyond the error value.
//  - ValidateArrays is O(rows + nnz).

package csr

import (
	"fmt"

	"github.com/katalvlaran/spmvbench/coo"
)

// csrErrorf wraps an underlying error with the given tag.
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// malformed wraps a detail sentinel under ErrMalformedInput so both match errors.Is.
func malformed(tag string, detail error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrMalformedInput, detail)
}

// ValidateShape ensures rows>0 and cols>0.
//
// Errors: ErrMalformedInput wrapping ErrBadShape.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return malformed(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrBadShape)
	}

	return nil
}

// ValidateTriplets ensures every triplet lies in [0,rows)×[0,cols).
// The first offending triplet is reported by its position in ts.
//
// Implementation: assumes the shape itself was validated by ValidateShape.
// Errors: ErrMalformedInput wrapping ErrOutOfRange.
// Complexity: O(len(ts)).
func ValidateTriplets(ts []coo.Triplet, rows, cols int) error {
	var (
		k int         // triplet position
		t coo.Triplet // current entry
	)
	for k, t = range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return malformed(fmt.Sprintf("ValidateTriplets: triplet %d %v in %dx%d", k, t, rows, cols), ErrOutOfRange)
		}
	}

	return nil
}

// ValidateArrays checks raw CSR arrays against every invariant of Matrix:
//   - len(rowPtr)==rows+1, len(colInd)==len(values)==rowPtr[rows];
//   - rowPtr[0]==0 and rowPtr non-decreasing;
//   - column indices in [0,cols) and non-decreasing within each row
//     (equal neighbours are legal: duplicates are never merged).
//
// Errors: ErrMalformedInput wrapping ErrBadShape, ErrInconsistent or ErrOutOfRange.
// Complexity: O(rows + nnz).
func ValidateArrays(rows, cols int, rowPtr, colInd []int, values []float64) error {
	if err := ValidateShape(rows, cols); err != nil {
		return csrErrorf("ValidateArrays", err)
	}
	if len(rowPtr) != rows+1 {
		return malformed(fmt.Sprintf("ValidateArrays: len(rowPtr)=%d, want %d", len(rowPtr), rows+1), ErrInconsistent)
	}
	if rowPtr[0] != 0 {
		return malformed("ValidateArrays: rowPtr[0] != 0", ErrInconsistent)
	}
	nnz := rowPtr[rows]
	if len(colInd) != nnz || len(values) != nnz {
		return malformed(fmt.Sprintf("ValidateArrays: nnz=%d, len(colInd)=%d, len(values)=%d",
			nnz, len(colInd), len(values)), ErrInconsistent)
	}

	var i, k int // row and nonzero iterators
	for i = 0; i < rows; i++ {
		if rowPtr[i+1] < rowPtr[i] || rowPtr[i+1] > nnz {
			return malformed(fmt.Sprintf("ValidateArrays: rowPtr[%d]=%d breaks monotonicity", i+1, rowPtr[i+1]), ErrInconsistent)
		}
		for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
			if colInd[k] < 0 || colInd[k] >= cols {
				return malformed(fmt.Sprintf("ValidateArrays: colInd[%d]=%d", k, colInd[k]), ErrOutOfRange)
			}
			if k > rowPtr[i] && colInd[k] < colInd[k-1] {
				return malformed(fmt.Sprintf("ValidateArrays: row %d columns unsorted at %d", i, k), ErrInconsistent)
			}
		}
	}

	return nil
}

// Validate re-checks every invariant of an existing Matrix.
// Errors: ErrNilMatrix, or whatever ValidateArrays reports.
func Validate(m *Matrix) error {
	if m == nil {
		return csrErrorf("Validate", ErrNilMatrix)
	}
	if m.nnz != len(m.values) {
		return malformed("Validate: nnz field disagrees with values", ErrInconsistent)
	}

	return ValidateArrays(m.rows, m.cols, m.rowPtr, m.colInd, m.values)
}
