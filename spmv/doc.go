// SPDX-License-Identifier: MIT

// Package spmv implements sparse matrix–vector multiplication c = A·v over
// csr.Matrix, sequentially and with a row-parallel worker pool.
//
// What & Why:
//
//	Sequential is the reference kernel. Parallel splits the row range across
//	Config.Threads goroutines under one of three schedule policies (Static,
//	Dynamic, Guided) with a configurable chunk size, mirroring the classic
//	OpenMP loop schedules. Because each row is still summed by one worker in
//	ascending nonzero order, Parallel is bit-identical to Sequential for every
//	configuration; only wall-clock behavior differs.
//
// Configuration is explicit: nothing reads environment variables or global
// state. A bad Config fails with ErrConfiguration before any output row is
// written.
//
// Complexity:
//
//	Both kernels are O(rows + nnz) work; Parallel spawns min(Threads, rows)
//	goroutines per call and joins them before returning.
package spmv
