// SPDX-License-Identifier: MIT

// Package coo holds sparse matrices in coordinate (COO) form: an unordered
// list of (row, col, value) triplets plus the declared shape.
//
// What & Why:
//
//	COO is the natural ingestion format: readers (see package mtx) append
//	entries in file order without any sorting or bookkeeping. A Store is
//	consumed exactly once by csr.BuildFromStore and then discarded.
//
// Policy:
//   - Indices are 0-based. Readers normalize 1-based input before Append.
//   - Append performs NO validation; the CSR builder is the single place
//     where shape and index checks happen.
//   - Duplicate (row, col) entries are kept as separate triplets. They are
//     never merged here or in the builder; SpMV sums them additively.
//
// Complexity:
//
//	Append is amortized O(1); Len/Dims are O(1).
package coo
