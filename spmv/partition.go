// SPDX-License-Identifier: MIT

package spmv

import (
	"fmt"

	"github.com/katalvlaran/spmvbench/csr"
)

// Block is a half-open row range [Lo, Hi) handed out by one scheduling decision.
type Block struct {
	Lo, Hi int
}

// Len returns Hi - Lo.
func (b Block) Len() int { return b.Hi - b.Lo }

// String renders "[lo,hi)".
func (b Block) String() string { return fmt.Sprintf("[%d,%d)", b.Lo, b.Hi) }

// validateRows rejects rows <= 0 the same way the CSR builder does.
func validateRows(rows int) error {
	if rows <= 0 {
		return fmt.Errorf("rows=%d: %w", rows, csr.ErrBadShape)
	}

	return nil
}

// Blocks returns the sequence of blocks the runtime hands out for a rows-row
// matrix under cfg, in claim order. For Static and Dynamic the sequence is
// fixed; for Guided it is the sequence produced when claims are served one at
// a time (concurrent claims yield the same sizes in the same order because
// every size depends only on the rows still unassigned).
//
// Errors: ErrConfiguration, csr.ErrBadShape.
// Complexity: O(number of blocks).
func Blocks(rows int, cfg Config) ([]Block, error) {
	if err := cfg.Validate(); err != nil {
		return nil, spmvErrorf("Blocks", err)
	}
	if err := validateRows(rows); err != nil {
		return nil, spmvErrorf("Blocks", err)
	}
	workers := min(cfg.Threads, rows)

	var out []Block
	switch cfg.Schedule {
	case Static:
		size := staticChunk(rows, workers, cfg.Chunk)
		for lo := 0; lo < rows; lo += size {
			out = append(out, Block{Lo: lo, Hi: min(lo+size, rows)})
		}
	case Dynamic:
		size := dynamicChunk(rows, cfg.Chunk)
		for lo := 0; lo < rows; lo += size {
			out = append(out, Block{Lo: lo, Hi: min(lo+size, rows)})
		}
	case Guided:
		for lo := 0; lo < rows; {
			hi := lo + guidedSize(rows-lo, workers, cfg.Chunk)
			out = append(out, Block{Lo: lo, Hi: hi})
			lo = hi
		}
	}

	return out, nil
}

// Partition returns the static round-robin assignment: element w lists the
// blocks worker w processes, in order. The outer slice has min(Threads, rows)
// entries; a worker may own no blocks when Chunk is large.
//
// Errors: ErrConfiguration, ErrNotStatic for Dynamic/Guided (ownership is
// decided at run time there), csr.ErrBadShape.
func Partition(rows int, cfg Config) ([][]Block, error) {
	if err := cfg.Validate(); err != nil {
		return nil, spmvErrorf("Partition", err)
	}
	if cfg.Schedule != Static {
		return nil, spmvErrorf("Partition", fmt.Errorf("%v: %w", cfg.Schedule, ErrNotStatic))
	}
	blocks, err := Blocks(rows, cfg)
	if err != nil {
		return nil, spmvErrorf("Partition", err)
	}

	workers := min(cfg.Threads, rows)
	out := make([][]Block, workers)
	for b, blk := range blocks {
		out[b%workers] = append(out[b%workers], blk)
	}

	return out, nil
}
