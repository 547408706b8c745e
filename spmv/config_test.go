// SPDX-License-Identifier: MIT
// Package spmv_test covers Config and Schedule parsing.
package spmv_test

import (
	"testing"

	"github.com/katalvlaran/spmvbench/spmv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchedule(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]spmv.Schedule{
		"static":   spmv.Static,
		"dynamic":  spmv.Dynamic,
		"guided":   spmv.Guided,
		" Guided ":  spmv.Guided,
		"DYNAMIC":  spmv.Dynamic,
	} {
		got, err := spmv.ParseSchedule(in)
		require.NoErrorf(t, err, "ParseSchedule(%q)", in)
		assert.Equal(t, want, got)
	}

	for _, bad := range []string{"", "bogus", "auto", "runtime"} {
		_, err := spmv.ParseSchedule(bad)
		require.ErrorIs(t, err, spmv.ErrConfiguration)
		require.ErrorIs(t, err, spmv.ErrUnknownSchedule)
	}
}

func TestSchedule_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "static", spmv.Static.String())
	assert.Equal(t, "dynamic", spmv.Dynamic.String())
	assert.Equal(t, "guided", spmv.Guided.String())
	assert.Equal(t, "schedule(9)", spmv.Schedule(9).String())
	assert.False(t, spmv.Schedule(9).Valid())
}

func TestConfig_ValidateAndString(t *testing.T) {
	t.Parallel()

	def := spmv.DefaultConfig()
	require.NoError(t, def.Validate())
	assert.Equal(t, spmv.Static, def.Schedule)
	assert.Positive(t, def.Threads)

	cfg := spmv.Config{Threads: 8, Schedule: spmv.Guided, Chunk: 100}
	assert.Equal(t, "guided/chunk=100/threads=8", cfg.String())

	// priority: threads before schedule before chunk
	err := spmv.Config{Threads: 0, Schedule: spmv.Schedule(7), Chunk: -1}.Validate()
	require.ErrorIs(t, err, spmv.ErrBadThreads)
	err = spmv.Config{Threads: 1, Schedule: spmv.Schedule(7), Chunk: -1}.Validate()
	require.ErrorIs(t, err, spmv.ErrUnknownSchedule)
	err = spmv.Config{Threads: 1, Chunk: -1}.Validate()
	require.ErrorIs(t, err, spmv.ErrBadChunk)
}
