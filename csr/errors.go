// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// Every failure surfaced by this package matches one of the sentinels below
// via errors.Is. Builders wrap detail sentinels under ErrMalformedInput so a
// caller can either branch on the coarse class or on the exact reason.

package csr

import "errors"

// NOTE ON WRAPPING
// ----------------
// Messages are prefixed with "csr: ..." for grep-ability. Detection sites wrap
// with fmt.Errorf("%s: %w", tag, err) (see csrErrorf); callers use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> triplet index range -> array consistency.

var (
	// ErrMalformedInput is the coarse class for structurally invalid triplet or
	// dimension data. Build never returns a partial Matrix alongside it.
	ErrMalformedInput = errors.New("csr: malformed input")

	// ErrBadShape is returned when rows<=0 or cols<=0.
	ErrBadShape = errors.New("csr: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the declared bounds.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrInconsistent signals CSR arrays that break a structural invariant
	// (row pointer bounds, monotonicity, column order, array lengths).
	ErrInconsistent = errors.New("csr: inconsistent arrays")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrNilStore indicates that a nil *coo.Store was passed to BuildFromStore.
	ErrNilStore = errors.New("csr: nil triplet store")
)
