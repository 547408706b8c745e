// SPDX-License-Identifier: MIT

// Package bench drives SpMV kernels through the warm-up + timed-runs loop and
// records raw per-run latencies.
//
// The bench package provides:
//
//   - Run: one kernel, one matrix, Warmups untimed calls followed by Runs
//     timed calls, returning every duration (no aggregation).
//   - Grid / Sweep: the schedule × chunk × threads configuration grid, run
//     sequentially over one shared input vector.
//   - RandomVector: uniform input generation from a caller-owned generator.
//   - Clock: the timing source, replaceable in tests.
//
// Seeds are explicit: WithSeed makes a run reproducible; without it each Run
// draws a fresh seed and reports it in Result.Seed. No package-level
// generator exists.
package bench
