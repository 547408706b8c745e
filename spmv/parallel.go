// SPDX-License-Identifier: MIT

// Package spmv - row-parallel SpMV.
//
// Decomposition:
//   - Rows are the unit of work. Row i writes only c[i], so workers share the
//     read-only matrix and input vector and never contend on output slots;
//     the only synchronization is the work-distribution counter (Dynamic,
//     Guided) and the final WaitGroup join.
//   - Every row is summed by exactly one worker with the same mulRows loop as
//     Sequential, so results are bit-identical to it for any Config.

package spmv

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/spmvbench/csr"
)

// Parallel overwrites c with a·v using cfg.Threads worker goroutines.
// Implementation:
//   - Stage 1: cfg.Validate(), then operand checks. Nothing is written on error.
//   - Stage 2: cap workers at a.Rows().
//   - Stage 3: dispatch to the static, dynamic or guided runner; join.
//
// Errors:
//   - ErrConfiguration (checked first), ErrNilMatrix, ErrDimensionMismatch.
//
// Concurrency:
//   - a and v are only read; c[i] is written by exactly one worker.
//   - Returns only after every worker has finished; no goroutine outlives the call.
//
// Complexity:
//   - Time O((rows + nnz)/threads) ideal, Space O(threads).
func Parallel(a *csr.Matrix, v, c []float64, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return spmvErrorf(opParallel, err)
	}
	if err := validateOperands(a, v, c); err != nil {
		return spmvErrorf(opParallel, err)
	}

	rows := a.Rows()
	workers := min(cfg.Threads, rows)
	rowPtr, colInd, values := a.RowPtr(), a.ColInd(), a.Values()
	run := func(lo, hi int) { mulRows(rowPtr, colInd, values, v, c, lo, hi) }

	switch cfg.Schedule {
	case Static:
		runStatic(rows, workers, cfg.Chunk, run)
	case Dynamic:
		runDynamic(rows, workers, cfg.Chunk, run)
	case Guided:
		runGuided(rows, workers, cfg.Chunk, run)
	}

	return nil
}

// forWorkers starts n goroutines running body(w) and waits for all of them.
func forWorkers(n int, body func(w int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for w := 0; w < n; w++ {
		go func(w int) {
			defer wg.Done()
			body(w)
		}(w)
	}
	wg.Wait()
}

// staticChunk resolves the static block size; chunk==0 means one contiguous
// block per worker (ceil(rows/workers)). The result never exceeds rows, so
// block offsets and strides stay far from int overflow.
func staticChunk(rows, workers, chunk int) int {
	if chunk > 0 {
		return min(chunk, rows)
	}

	return (rows + workers - 1) / workers
}

// dynamicChunk resolves the dynamic block size: chunk, at least 1, at most rows.
func dynamicChunk(rows, chunk int) int {
	return min(max(chunk, 1), rows)
}

// runStatic deals blocks b = w, w+workers, w+2*workers, ... to worker w.
func runStatic(rows, workers, chunk int, run func(lo, hi int)) {
	size := staticChunk(rows, workers, chunk)
	stride := size * workers
	forWorkers(workers, func(w int) {
		for lo := w * size; lo < rows; lo += stride {
			run(lo, min(lo+size, rows))
		}
	})
}

// runDynamic lets workers claim fixed blocks from a shared counter.
func runDynamic(rows, workers, chunk int, run func(lo, hi int)) {
	size := dynamicChunk(rows, chunk)
	var next atomic.Int64
	forWorkers(workers, func(int) {
		for {
			lo := int(next.Add(int64(size))) - size
			if lo >= rows {
				return
			}
			run(lo, min(lo+size, rows))
		}
	})
}

// guidedSize is the block claimed when remaining rows are still unassigned:
// ceil(remaining/workers), never below the minimum chunk nor above remaining.
func guidedSize(remaining, workers, chunk int) int {
	size := max((remaining+workers-1)/workers, chunk, 1)

	return min(size, remaining)
}

// runGuided lets workers claim shrinking blocks with a compare-and-swap loop.
func runGuided(rows, workers, chunk int, run func(lo, hi int)) {
	var next atomic.Int64
	forWorkers(workers, func(int) {
		for {
			lo := int(next.Load())
			if lo >= rows {
				return
			}
			hi := lo + guidedSize(rows-lo, workers, chunk)
			if next.CompareAndSwap(int64(lo), int64(hi)) {
				run(lo, hi)
			}
		}
	})
}
