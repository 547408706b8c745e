// Package spmvbench measures sparse matrix-vector multiplication (SpMV)
// latency under different concurrency settings.
//
// What is in the module?
//
//	coo/    - triplet (row, col, value) store filled by input readers
//	csr/    - COO -> CSR construction, validation and accessors
//	spmv/   - sequential and parallel kernels (static, dynamic, guided)
//	bench/  - warm-up + N timed runs, configuration sweeps
//	mtx/    - Matrix-Market coordinate reader
//	report/ - CSV output, summary statistics, ordered tables, box plots
//	cmd/spmvbench - command-line driver
//
// Data flow:
//
//	.mtx --mtx--> coo.Store --csr.Build--> csr.Matrix
//	     --bench.Run(spmv kernel)--> durations --report--> CSV / plot
//
// Guarantees:
//
//   - Every parallel configuration produces output bit-identical to the
//     sequential kernel: each row is summed by one worker in ascending order.
//   - Duplicate (row, col) entries are kept and contribute additively.
//   - Invalid configurations are rejected before any row is computed.
//
//	go install github.com/katalvlaran/spmvbench/cmd/spmvbench@latest
package spmvbench
