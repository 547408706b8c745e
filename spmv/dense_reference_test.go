// SPDX-License-Identifier: MIT
package spmv_test

import (
	"testing"

	"github.com/katalvlaran/spmvbench/spmv"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// TestParallel_MatchesDenseReference checks the kernels against an
// independent dense product. Summation order differs from the dense BLAS
// path, so values are compared within a relative tolerance.
func TestParallel_MatchesDenseReference(t *testing.T) {
	t.Parallel()

	const rows, cols = 97, 61
	a := SkewedMatrix(t, rows, cols, 11)
	v := RandVec(cols, 12)

	data := make([]float64, 0, rows*cols)
	for _, row := range a.ToDense() {
		data = append(data, row...)
	}
	var want mat.VecDense
	want.MulVec(mat.NewDense(rows, cols, data), mat.NewVecDense(cols, v))

	c := make([]float64, rows)
	require.NoError(t, spmv.Parallel(a, v, c, spmv.Config{Threads: 4, Schedule: spmv.Guided, Chunk: 3}))
	for i := 0; i < rows; i++ {
		require.True(t, scalar.EqualWithinAbsOrRel(want.AtVec(i), c[i], 1e-6, 1e-12),
			"row %d: dense=%v csr=%v", i, want.AtVec(i), c[i])
	}
}
