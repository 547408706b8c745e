// SPDX-License-Identifier: MIT
// Package spmv_test contains test helpers
//
// Purpose:
//   • Deterministic sparse fixtures with skewed row densities so every
//     schedule policy actually interleaves work.

package spmv_test

import (
	"math"
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

// SkewedMatrix returns a rows×cols matrix where row i holds about
// (i % 7)^2 entries, every 5th row is empty and some coordinates repeat.
// Values are deterministic U(-1000,1000) by seed.
func SkewedMatrix(t testing.TB, rows, cols int, seed int64) *csr.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	s := coo.NewStore(rows, cols, rows*8)
	var i, k int
	for i = 0; i < rows; i++ {
		if i%5 == 4 {
			continue
		}
		for k = 0; k < (i%7)*(i%7)+1; k++ {
			s.Append(i, rng.Intn(cols), rng.Float64()*2000-1000)
		}
	}
	m, err := csr.BuildFromStore(s)
	require.NoError(t, err)

	return m
}

// RandVec returns n deterministic U(-1000,1000) values by seed.
func RandVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()*2000 - 1000
	}

	return v
}

// NaNVec returns n NaNs; used to detect untouched outputs.
func NaNVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = math.NaN()
	}

	return v
}

// RequireBitIdentical compares float64 slices by bit pattern.
func RequireBitIdentical(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.Float64bits(want[i]) != math.Float64bits(got[i]) {
			t.Fatalf("c[%d]: got %v (%#x), want %v (%#x)",
				i, got[i], math.Float64bits(got[i]), want[i], math.Float64bits(want[i]))
		}
	}
}
