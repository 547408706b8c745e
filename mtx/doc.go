// SPDX-License-Identifier: MIT

// Package mtx reads Matrix-Market coordinate files into a coo.Store.
//
// Supported input:
//
//	%%MatrixMarket matrix coordinate real general   (optional banner)
//	% comment lines and blank lines are skipped
//	rows cols nnz
//	i j v                                           (nnz lines, 1-based)
//
// The field may be real, integer or pattern (pattern entries carry no value
// and are stored as 1.0). Only general symmetry is accepted; symmetric,
// skew-symmetric and hermitian files are reported as ErrUnsupported rather
// than silently read as half a matrix.
//
// Indices are converted to 0-based on the way into the store. Duplicate
// entries are kept as-is; the CSR builder does not merge them either.
package mtx
