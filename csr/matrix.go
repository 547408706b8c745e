// SPDX-License-Identifier: MIT

// Package csr - immutable Compressed Sparse Row storage & safe accessors.
//
// Purpose:
//   - Hold a sparse matrix as rowPtr/colInd/values with the invariants checked
//     by ValidateArrays, so SpMV kernels can index without bounds checks of their own.
//   - Guarantee safety at the public surface: At/RowNNZ return errors instead of panicking.
//   - Never mutate after construction; a *Matrix may be shared by any number of
//     concurrent readers without locking.
//
// Complexity quicksheet:
//   - Rows/Cols/NNZ/RowPtr/ColInd/Values: O(1); RowNNZ: O(1);
//     At: O(log(row nnz)) + duplicates; ToDense: O(rows*cols).

package csr

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxRowNNZ = "RowNNZ" // method tag used in error wrappers
)

// Matrix is a CSR sparse matrix of float64 values.
//   - rowPtr has rows+1 entries; row i owns nonzeros [rowPtr[i], rowPtr[i+1]).
//   - colInd/values are parallel arrays of length nnz, sorted by column within a row.
type Matrix struct {
	rows, cols int       // declared shape (both > 0)
	nnz        int       // number of stored entries, duplicates included
	rowPtr     []int     // row offsets, len rows+1
	colInd     []int     // column index per stored entry, len nnz
	values     []float64 // value per stored entry, len nnz
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// FromArrays builds a Matrix from caller-owned CSR arrays.
// MAIN DESCRIPTION:
//   - Validate the arrays against every CSR invariant, then deep-copy them so
//     later caller mutations cannot break immutability.
//
// Inputs:
//   - rows, cols: positive shape.
//   - rowPtr, colInd, values: raw CSR arrays.
//
// Errors:
//   - ErrMalformedInput wrapping ErrBadShape / ErrInconsistent / ErrOutOfRange.
//
// Complexity:
//   - Time O(rows + nnz), Space O(rows + nnz).
func FromArrays(rows, cols int, rowPtr, colInd []int, values []float64) (*Matrix, error) {
	if err := ValidateArrays(rows, cols, rowPtr, colInd, values); err != nil {
		return nil, csrErrorf("FromArrays", err)
	}

	return &Matrix{
		rows:   rows,
		cols:   cols,
		nnz:    len(values),
		rowPtr: append([]int(nil), rowPtr...),
		colInd: append([]int(nil), colInd...),
		values: append([]float64(nil), values...),
	}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored entries (duplicates counted separately).
func (m *Matrix) NNZ() int { return m.nnz }

// RowPtr returns the row offset array (len Rows()+1). Read-only.
func (m *Matrix) RowPtr() []int { return m.rowPtr }

// ColInd returns the column index array (len NNZ()). Read-only.
func (m *Matrix) ColInd() []int { return m.colInd }

// Values returns the value array (len NNZ()). Read-only.
func (m *Matrix) Values() []float64 { return m.values }

// RowNNZ returns the number of stored entries in row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
func (m *Matrix) RowNNZ(i int) (int, error) {
	if i < 0 || i >= m.rows {
		return 0, fmt.Errorf("Matrix.%s(%d): %w", ctxRowNNZ, i, ErrOutOfRange)
	}

	return m.rowPtr[i+1] - m.rowPtr[i], nil
}

// At returns the logical value at (i, j): the sum of every stored entry at
// that coordinate, or 0 when none is stored.
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: binary search the first entry with column >= j inside row i.
//   - Stage 3: accumulate while the column equals j (duplicates are adjacent).
//
// Errors: ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	k := lo + sort.SearchInts(m.colInd[lo:hi], j)

	var sum float64
	for ; k < hi && m.colInd[k] == j; k++ {
		sum += m.values[k]
	}

	return sum, nil
}

// ToDense expands the matrix into a rows×cols row-major [][]float64.
// Duplicates are summed in storage order, matching At.
//
// Complexity: Time O(rows*cols + nnz), Space O(rows*cols).
func (m *Matrix) ToDense() [][]float64 {
	out := make([][]float64, m.rows)
	buf := make([]float64, m.rows*m.cols) // one backing block, sliced per row

	var i, k int // loop iterators
	for i = 0; i < m.rows; i++ {
		out[i] = buf[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			out[i][m.colInd[k]] += m.values[k]
		}
	}

	return out
}

// String renders the matrix as one line per row listing "col:value" pairs.
// Intended for debugging small matrices.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSR %dx%d nnz=%d\n", m.rows, m.cols, m.nnz)

	var i, k int
	for i = 0; i < m.rows; i++ {
		sb.WriteString("[")
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if k > m.rowPtr[i] {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d:%g", m.colInd[k], m.values[k])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
