// SPDX-License-Identifier: MIT

package coo

import "fmt"

// Triplet is one stored entry of a sparse matrix, 0-based.
type Triplet struct {
	Row int     // row index in [0, rows)
	Col int     // column index in [0, cols)
	Val float64 // stored value (may be zero; structural nonzero)
}

// String implements fmt.Stringer as "(row,col)=val".
func (t Triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%g", t.Row, t.Col, t.Val)
}

// Store is a growable triplet list with a declared shape.
// The zero value is an empty 0×0 store; use NewStore to declare a shape.
type Store struct {
	rows, cols int       // declared dimensions (validated by the builder, not here)
	data       []Triplet // entries in insertion order
}

// NewStore creates an empty store for a rows×cols matrix.
// capHint preallocates room for that many entries (negative is treated as 0).
//
// Complexity: O(capHint) for the allocation.
func NewStore(rows, cols, capHint int) *Store {
	if capHint < 0 {
		capHint = 0
	}

	return &Store{
		rows: rows,
		cols: cols,
		data: make([]Triplet, 0, capHint),
	}
}

// Dims returns the declared shape.
func (s *Store) Dims() (rows, cols int) {
	return s.rows, s.cols
}

// Len returns the number of stored triplets (nnz, duplicates included).
func (s *Store) Len() int {
	return len(s.data)
}

// Append records one entry. Out-of-range indices are accepted here and
// rejected later by the CSR builder.
func (s *Store) Append(row, col int, v float64) {
	s.data = append(s.data, Triplet{Row: row, Col: col, Val: v})
}

// Triplets returns the backing slice in insertion order.
// The slice is shared with the store; callers must treat it as read-only.
func (s *Store) Triplets() []Triplet {
	return s.data
}

// Reset drops all entries and sets a new declared shape, keeping capacity.
func (s *Store) Reset(rows, cols int) {
	s.rows, s.cols = rows, cols
	s.data = s.data[:0]
}
