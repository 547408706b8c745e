// SPDX-License-Identifier: MIT

// Package report turns benchmark measurements into output artifacts:
// CSV lines, summary statistics, an ordered record table and latency plots.
//
// The package knows nothing about matrices or kernels; callers describe each
// measurement as a Record (matrix name, kernel label, schedule, chunk,
// threads, per-run milliseconds).
//
// CSV layout, one line per record:
//
//	matrix,kernel,schedule,chunk,threads,t1,...,tN
//
// A sequential record leaves schedule empty and uses chunk=0, threads=1.
package report
