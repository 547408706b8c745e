// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/spmvbench/csr"
	"github.com/katalvlaran/spmvbench/spmv"
)

const opSweep = "Sweep"

// Case pairs one parallel configuration with its measurements.
type Case struct {
	Config spmv.Config
	Result *Result
}

// Grid expands the cartesian product of schedules × chunks × threads, in that
// nesting order (threads vary fastest), matching how job scripts usually
// sweep a thread range for each schedule/chunk pair.
func Grid(threads []int, schedules []spmv.Schedule, chunks []int) []spmv.Config {
	out := make([]spmv.Config, 0, len(threads)*len(schedules)*len(chunks))
	for _, s := range schedules {
		for _, ch := range chunks {
			for _, th := range threads {
				out = append(out, spmv.Config{Threads: th, Schedule: s, Chunk: ch})
			}
		}
	}

	return out
}

// Sweep runs the harness once per configuration, strictly one after another.
// Implementation:
//   - Stage 1: validate every configuration before anything runs.
//   - Stage 2: resolve a single seed (WithSeed, or a fresh one) so every case
//     multiplies the same input vector.
//   - Stage 3: Run each case with opts plus the shared seed.
//
// Errors:
//   - ErrEmptyGrid, ErrConfiguration (index of the first bad config), or the
//     first Run error. Results gathered before a Run error are discarded.
func Sweep(a *csr.Matrix, cfgs []spmv.Config, opts ...Option) ([]Case, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("%s: %w", opSweep, ErrEmptyGrid)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSweep, err)
	}

	kernels := make([]spmv.Kernel, len(cfgs))
	for i, cfg := range cfgs {
		if kernels[i], err = spmv.ParallelKernel(cfg); err != nil {
			return nil, fmt.Errorf("%s: config %d (%v): %w", opSweep, i, cfg, err)
		}
	}

	seed := o.seed
	if !o.seeded {
		seed = freshSeed()
	}
	runOpts := append(append([]Option(nil), opts...), WithSeed(seed))

	out := make([]Case, len(cfgs))
	for i, cfg := range cfgs {
		res, err := Run(kernels[i], a, runOpts...)
		if err != nil {
			return nil, fmt.Errorf("%s: config %d (%v): %w", opSweep, i, cfg, err)
		}
		out[i] = Case{Config: cfg, Result: res}
	}

	return out, nil
}
