// SPDX-License-Identifier: MIT

// Package csr provides an immutable Compressed Sparse Row matrix and the
// COO → CSR builder that produces it.
//
// The csr package provides:
//
//   - Matrix: rowPtr/colInd/values storage with read-only accessors, At,
//     RowNNZ, ToDense and a debug String.
//   - Build / BuildFromStore: sort-based grouping of coo triplets plus
//     row-pointer construction with backfill for empty and trailing rows.
//   - FromArrays / Validate: adopt and re-check raw CSR arrays.
//
// Invariants held by every *Matrix:
//
//	rowPtr[0] == 0, rowPtr[rows] == nnz, rowPtr non-decreasing;
//	within a row, column indices ascend (equal neighbours are duplicates);
//	0 <= colInd[k] < cols.
//
// Duplicate triplets are never merged. They stay adjacent in their row and
// contribute additively to At, ToDense and every SpMV kernel.
//
// Errors are package sentinels matched with errors.Is; structurally invalid
// input always matches ErrMalformedInput.
package csr
