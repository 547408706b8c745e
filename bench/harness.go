// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"time"

	"github.com/katalvlaran/spmvbench/csr"
	"github.com/katalvlaran/spmvbench/spmv"
)

const opRun = "Run"

// Result holds the raw measurements of one harness run. No aggregation is
// done here; summaries belong to the reporting side.
type Result struct {
	// Durations has one entry per timed run, in execution order.
	Durations []time.Duration

	// Warmups is the number of untimed calls that preceded timing.
	Warmups int

	// Seed is the generator seed used for Input (meaningless when the input
	// vector was supplied with WithVector).
	Seed int64

	// Input is the dense vector every call multiplied.
	Input []float64

	// Output is the result vector after the last timed run.
	Output []float64
}

// Millis returns Durations converted to float64 milliseconds.
func (r *Result) Millis() []float64 {
	out := make([]float64, len(r.Durations))
	for i, d := range r.Durations {
		out[i] = float64(d) / float64(time.Millisecond)
	}

	return out
}

// Run benchmarks k on a.
// Implementation:
//   - Stage 1: resolve options; validate kernel, matrix and input vector.
//   - Stage 2: build the input vector (len a.Cols()) from a per-call generator
//     unless WithVector supplied one; allocate the output (len a.Rows()).
//   - Stage 3: call k Warmups times untimed.
//   - Stage 4: call k Runs times, each bracketed by two Clock.Now readings.
//
// Behavior highlights:
//   - Calls never overlap; the harness itself is single-threaded.
//   - Input and output vectors are reused by every call.
//   - Output correctness is not checked here.
//
// Errors:
//   - ErrConfiguration (bad options), ErrNilKernel, csr.ErrNilMatrix,
//     ErrVectorLength, or the first kernel error (wrapped with the call index).
//
// Complexity:
//   - (Warmups + Runs) kernel calls; O(rows + cols) extra space.
func Run(k spmv.Kernel, a *csr.Matrix, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRun, err)
	}
	if k == nil {
		return nil, fmt.Errorf("%s: %w", opRun, ErrNilKernel)
	}
	if a == nil {
		return nil, fmt.Errorf("%s: %w", opRun, csr.ErrNilMatrix)
	}

	seed := o.seed
	if !o.seeded {
		seed = freshSeed()
	}
	v := o.vector
	if v == nil {
		v = RandomVector(a.Cols(), rngFromSeed(seed), o.lo, o.hi)
	} else if len(v) != a.Cols() {
		return nil, fmt.Errorf("%s: len=%d, cols=%d: %w", opRun, len(v), a.Cols(), ErrVectorLength)
	}
	c := make([]float64, a.Rows())

	var i int
	for i = 0; i < o.warmups; i++ {
		if err = k(a, v, c); err != nil {
			return nil, fmt.Errorf("%s: warm-up %d: %w", opRun, i, err)
		}
	}

	durations := make([]time.Duration, o.runs)
	var start, end time.Time
	for i = 0; i < o.runs; i++ {
		start = o.clock.Now()
		err = k(a, v, c)
		end = o.clock.Now()
		if err != nil {
			return nil, fmt.Errorf("%s: run %d: %w", opRun, i, err)
		}
		durations[i] = end.Sub(start)
	}

	return &Result{
		Durations: durations,
		Warmups:   o.warmups,
		Seed:      seed,
		Input:     v,
		Output:    c,
	}, nil
}
