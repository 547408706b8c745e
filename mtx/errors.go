// SPDX-License-Identifier: MIT
// Package mtx: sentinel error set.

package mtx

import "errors"

var (
	// ErrMalformed indicates text that does not follow the coordinate layout:
	// missing or short size line, too few entries, unparsable numbers or
	// indices outside the declared shape. The wrapping error names the line.
	ErrMalformed = errors.New("mtx: malformed input")

	// ErrUnsupported indicates a well-formed banner this reader does not
	// handle (array format, complex field, symmetric storage, ...).
	ErrUnsupported = errors.New("mtx: unsupported matrix type")
)
