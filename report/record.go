// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/rs/xid"
)

// Kernel labels used in records.
const (
	KernelSequential = "seq"
	KernelParallel   = "par"
)

// Record is one benchmark measurement series.
type Record struct {
	ID       string // unique run id (xid)
	Matrix   string
	Kernel   string // KernelSequential or KernelParallel
	Schedule string // empty for sequential
	Chunk    int
	Threads  int
	Millis   []float64 // per timed run, execution order
}

// NewRecord fills a Record and assigns it a fresh ID.
func NewRecord(matrix, kernel, schedule string, chunk, threads int, millis []float64) Record {
	return Record{
		ID:       xid.New().String(),
		Matrix:   matrix,
		Kernel:   kernel,
		Schedule: schedule,
		Chunk:    chunk,
		Threads:  threads,
		Millis:   millis,
	}
}

// Label is a short human-readable name, e.g. "bcsstk17 par/guided/c100/t8".
func (r Record) Label() string {
	if r.Kernel == KernelSequential || r.Schedule == "" {
		return fmt.Sprintf("%s %s", r.Matrix, r.Kernel)
	}

	return fmt.Sprintf("%s %s/%s/c%d/t%d", r.Matrix, r.Kernel, r.Schedule, r.Chunk, r.Threads)
}
