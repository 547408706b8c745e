// SPDX-License-Identifier: MIT
// Package csr_test contains test helpers
//
// Purpose:
//   • Small deterministic triplet fixtures and invariant checkers.

package csr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spmvbench/coo"
	"github.com/katalvlaran/spmvbench/csr"
	"github.com/stretchr/testify/require"
)

// MustBuild builds a CSR matrix or fails the test.
func MustBuild(t testing.TB, ts []coo.Triplet, rows, cols int) *csr.Matrix {
	t.Helper()
	m, err := csr.Build(ts, rows, cols)
	require.NoError(t, err)

	return m
}

// RandomTriplets returns nnz triplets with deterministic U(-1,1) values by seed.
// Coordinates are drawn independently, so duplicates and empty rows occur naturally.
func RandomTriplets(rows, cols, nnz int, seed int64) []coo.Triplet {
	rng := rand.New(rand.NewSource(seed))
	out := make([]coo.Triplet, nnz)
	var k int
	for k = 0; k < nnz; k++ {
		out[k] = coo.Triplet{
			Row: rng.Intn(rows),
			Col: rng.Intn(cols),
			Val: rng.Float64()*2 - 1, // [-1,1)
		}
	}

	return out
}

// RequireInvariants asserts every CSR invariant directly on the exported arrays.
func RequireInvariants(t *testing.T, m *csr.Matrix) {
	t.Helper()
	rowPtr, colInd, values := m.RowPtr(), m.ColInd(), m.Values()

	require.Len(t, rowPtr, m.Rows()+1)
	require.Len(t, colInd, m.NNZ())
	require.Len(t, values, m.NNZ())
	require.Equal(t, 0, rowPtr[0])
	require.Equal(t, m.NNZ(), rowPtr[m.Rows()])

	var i, k int
	for i = 0; i < m.Rows(); i++ {
		require.LessOrEqualf(t, rowPtr[i], rowPtr[i+1], "rowPtr decreases at %d", i)
		for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
			require.GreaterOrEqual(t, colInd[k], 0)
			require.Less(t, colInd[k], m.Cols())
			if k > rowPtr[i] {
				require.LessOrEqualf(t, colInd[k-1], colInd[k], "row %d unsorted at %d", i, k)
			}
		}
	}
	require.NoError(t, csr.Validate(m))
}
