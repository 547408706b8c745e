// SPDX-License-Identifier: MIT

package report

import (
	"cmp"

	"github.com/google/btree"
)

// tableDegree is the B-tree branching factor; tables hold at most a few
// thousand records.
const tableDegree = 8

// Key identifies a record within a Table.
type Key struct {
	Matrix   string
	Kernel   string
	Schedule string
	Chunk    int
	Threads  int
}

// KeyOf extracts the table key of r.
func KeyOf(r Record) Key {
	return Key{Matrix: r.Matrix, Kernel: r.Kernel, Schedule: r.Schedule, Chunk: r.Chunk, Threads: r.Threads}
}

// kernelRank puts the sequential baseline ahead of every other kernel.
func kernelRank(kernel string) int {
	if kernel == KernelSequential {
		return 0
	}

	return 1
}

// compare orders keys field by field in declaration order; within a matrix
// the sequential baseline sorts first.
func (k Key) compare(o Key) int {
	if c := cmp.Compare(k.Matrix, o.Matrix); c != 0 {
		return c
	}
	if c := cmp.Compare(kernelRank(k.Kernel), kernelRank(o.Kernel)); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Kernel, o.Kernel); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Schedule, o.Schedule); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Chunk, o.Chunk); c != 0 {
		return c
	}

	return cmp.Compare(k.Threads, o.Threads)
}

// entry adapts a Record to btree.Item.
type entry struct {
	key Key
	rec Record
}

// Less implements btree.Item.
func (e *entry) Less(than btree.Item) bool {
	return e.key.compare(than.(*entry).key) < 0
}

// Table is an ordered set of records, one per Key. Iteration is ascending by
// (matrix, kernel, schedule, chunk, threads) regardless of insertion order,
// with the sequential kernel ahead of the parallel one.
// The zero value is not usable; call NewTable. Not safe for concurrent use.
type Table struct {
	tree *btree.BTree
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{tree: btree.New(tableDegree)}
}

// Add inserts r, replacing a record with the same key. It reports whether a
// record was replaced.
func (t *Table) Add(r Record) bool {
	return t.tree.ReplaceOrInsert(&entry{key: KeyOf(r), rec: r}) != nil
}

// Get returns the record stored under k.
func (t *Table) Get(k Key) (Record, bool) {
	it := t.tree.Get(&entry{key: k})
	if it == nil {
		return Record{}, false
	}

	return it.(*entry).rec, true
}

// Len returns the number of records.
func (t *Table) Len() int {
	return t.tree.Len()
}

// Records returns all records in ascending key order.
func (t *Table) Records() []Record {
	out := make([]Record, 0, t.tree.Len())
	t.tree.Ascend(func(it btree.Item) bool {
		out = append(out, it.(*entry).rec)
		return true
	})

	return out
}
