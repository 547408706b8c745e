// SPDX-License-Identifier: MIT

package spmv

// Test bridge: exposes unexported block-size helpers to spmv_test only.
var (
	ExportedGuidedSize  = guidedSize
	ExportedStaticChunk = staticChunk
)
