// SPDX-License-Identifier: MIT

// Package csr - COO → CSR construction.
//
// Algorithm (sort-based grouping + prefix offsets):
//   1. Validate shape and every triplet index (fail fast, no partial result).
//   2. Copy and stable-sort triplets by (row, col). Equal coordinates keep
//      their input order and are both retained.
//   3. Single linear scan appending col/value; whenever the scan's row moves
//      past the previous one, every skipped rowPtr slot is backfilled with the
//      current offset (rows with no entries get an empty range).
//   4. Backfill the remaining rowPtr slots through index rows with nnz.
//
// Complexity: Time O(nnz log nnz + rows), Space O(nnz + rows).

package csr

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/spmvbench/coo"
)

const (
	opBuild          = "Build"
	opBuildFromStore = "BuildFromStore"
)

// Build converts triplets of a rows×cols matrix into CSR.
// The input slice is left untouched; the sort runs on a private copy.
//
// Errors:
//   - ErrMalformedInput wrapping ErrBadShape when rows<=0 or cols<=0.
//   - ErrMalformedInput wrapping ErrOutOfRange for the first out-of-range triplet.
func Build(triplets []coo.Triplet, rows, cols int) (*Matrix, error) {
	// Validate before any allocation proportional to the input.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, csrErrorf(opBuild, err)
	}
	if err := ValidateTriplets(triplets, rows, cols); err != nil {
		return nil, csrErrorf(opBuild, err)
	}

	sorted := slices.Clone(triplets)
	slices.SortStableFunc(sorted, compareTriplets)

	nnz := len(sorted)
	m := &Matrix{
		rows:   rows,
		cols:   cols,
		nnz:    nnz,
		rowPtr: make([]int, rows+1),
		colInd: make([]int, nnz),
		values: make([]float64, nnz),
	}

	var (
		current int // last row whose start offset has been written
		k       int // position in sorted
	)
	for k = 0; k < nnz; k++ {
		m.colInd[k] = sorted[k].Col
		m.values[k] = sorted[k].Val
		// Row advanced: every row in (current, sorted[k].Row] starts at k.
		for current < sorted[k].Row {
			current++
			m.rowPtr[current] = k
		}
	}
	// Trailing rows (and the terminator) end at nnz.
	for current++; current <= rows; current++ {
		m.rowPtr[current] = nnz
	}

	return m, nil
}

// BuildFromStore consumes a coo.Store. The store is not modified and may be
// discarded afterwards.
//
// Errors: ErrNilStore, or any error of Build.
func BuildFromStore(s *coo.Store) (*Matrix, error) {
	if s == nil {
		return nil, csrErrorf(opBuildFromStore, ErrNilStore)
	}
	rows, cols := s.Dims()
	m, err := Build(s.Triplets(), rows, cols)
	if err != nil {
		return nil, csrErrorf(opBuildFromStore, err)
	}

	return m, nil
}

// compareTriplets orders by row, then column.
func compareTriplets(a, b coo.Triplet) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}

	return cmp.Compare(a.Col, b.Col)
}
