// SPDX-License-Identifier: MIT
package bench_test

import (
	"testing"

	"github.com/katalvlaran/spmvbench/bench"
	"github.com/katalvlaran/spmvbench/spmv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_Order(t *testing.T) {
	t.Parallel()

	got := bench.Grid([]int{1, 2}, []spmv.Schedule{spmv.Static, spmv.Guided}, []int{0, 4})
	want := []spmv.Config{
		{Threads: 1, Schedule: spmv.Static, Chunk: 0},
		{Threads: 2, Schedule: spmv.Static, Chunk: 0},
		{Threads: 1, Schedule: spmv.Static, Chunk: 4},
		{Threads: 2, Schedule: spmv.Static, Chunk: 4},
		{Threads: 1, Schedule: spmv.Guided, Chunk: 0},
		{Threads: 2, Schedule: spmv.Guided, Chunk: 0},
		{Threads: 1, Schedule: spmv.Guided, Chunk: 4},
		{Threads: 2, Schedule: spmv.Guided, Chunk: 4},
	}
	assert.Equal(t, want, got)
	assert.Empty(t, bench.Grid(nil, spmv.Schedules(), []int{1}))
}

// TestSweep_SharedInput checks every case multiplies the same vector and
// produces the same output.
func TestSweep_SharedInput(t *testing.T) {
	t.Parallel()

	a := fixture(t)
	cfgs := bench.Grid([]int{1, 2, 4}, spmv.Schedules(), []int{0, 1})
	cases, err := bench.Sweep(a, cfgs, bench.WithRuns(2), bench.WithWarmups(0))
	require.NoError(t, err)
	require.Len(t, cases, len(cfgs))

	first := cases[0].Result
	for i, cs := range cases {
		assert.Equal(t, cfgs[i], cs.Config)
		require.Len(t, cs.Result.Durations, 2)
		assert.Equal(t, first.Seed, cs.Result.Seed)
		assert.Equal(t, first.Input, cs.Result.Input)
		assert.Equal(t, first.Output, cs.Result.Output, "case %d (%v)", i, cs.Config)
	}
}

func TestSweep_FixedSeed(t *testing.T) {
	t.Parallel()

	cases, err := bench.Sweep(fixture(t), []spmv.Config{{Threads: 2, Schedule: spmv.Dynamic}},
		bench.WithSeed(5), bench.WithRuns(1))
	require.NoError(t, err)
	assert.Equal(t, int64(5), cases[0].Result.Seed)
}

// TestSweep_RejectsBeforeRunning: one bad config anywhere in the grid fails
// the whole sweep without any kernel call.
func TestSweep_RejectsBeforeRunning(t *testing.T) {
	t.Parallel()

	ctrl := newStrictClock(t)
	cfgs := []spmv.Config{
		{Threads: 2, Schedule: spmv.Static},
		{Threads: 0, Schedule: spmv.Static},
	}
	cases, err := bench.Sweep(fixture(t), cfgs, bench.WithClock(ctrl))
	require.Nil(t, cases)
	require.ErrorIs(t, err, bench.ErrConfiguration)
	require.ErrorIs(t, err, spmv.ErrBadThreads)
	assert.Contains(t, err.Error(), "config 1")
}

func TestSweep_Errors(t *testing.T) {
	t.Parallel()

	_, err := bench.Sweep(fixture(t), nil)
	require.ErrorIs(t, err, bench.ErrEmptyGrid)

	_, err = bench.Sweep(fixture(t), []spmv.Config{spmv.DefaultConfig()}, bench.WithRuns(0))
	require.ErrorIs(t, err, bench.ErrBadRuns)

	_, err = bench.Sweep(nil, []spmv.Config{spmv.DefaultConfig()})
	require.Error(t, err)
}
