// SPDX-License-Identifier: MIT

// Package matrix - ordered CSR index maintenance.
//
// Purpose:
//   - Own the three parallel arrays (values, colIndex, rowOffset) and every
//     invariant-preserving mutation on them.
//   - Keep the O(nnz) shifting strategy behind a small unexported type so the
//     public CSR surface does not depend on how a row is indexed.
//
// Invariants (checked by validate):
//   - len(rowOffset) == rows+1, rowOffset[0] == 0, rowOffset non-decreasing.
//   - rowOffset[rows] == len(values) == len(colIndex).
//   - colIndex is strictly increasing inside each row slice.
//   - no stored value equals the zero value.
//
// Complexity quicksheet:
//   - find: O(log k) for a row with k entries.
//   - insert/remove: O(nnz + rows) (array shift + offset rebase).
//   - truncate: O(nnz + rows), single forward pass.

package matrix

import (
	"fmt"
	"slices"
)

type csrIndex[T Number] struct {
	values    []T   // nonzero values, row-major
	colIndex  []int // column of values[i]
	rowOffset []int // row r occupies [rowOffset[r], rowOffset[r+1])
}

// newCSRIndex returns an empty (all-zero) index for the given row count.
func newCSRIndex[T Number](rows int) *csrIndex[T] {
	return &csrIndex[T]{rowOffset: make([]int, rows+1)}
}

func (x *csrIndex[T]) nnz() int { return len(x.values) }

// span returns the [start, end) slice bounds of row.
func (x *csrIndex[T]) span(row int) (int, int) {
	return x.rowOffset[row], x.rowOffset[row+1]
}

// find locates col inside row. pos is the absolute position of the entry when
// found, otherwise the absolute insertion point that keeps the row sorted.
// The binary search never looks past the first column greater than col.
func (x *csrIndex[T]) find(row, col int) (pos int, found bool) {
	start, end := x.span(row)
	rel, found := slices.BinarySearch(x.colIndex[start:end], col)

	return start + rel, found
}

// insert materializes (row, col, v) at pos and shifts every later row by +1.
func (x *csrIndex[T]) insert(row, pos, col int, v T) {
	x.values = slices.Insert(x.values, pos, v)
	x.colIndex = slices.Insert(x.colIndex, pos, col)
	for r := row + 1; r < len(x.rowOffset); r++ {
		x.rowOffset[r]++
	}
}

// remove deletes the entry at pos of row and shifts every later row by -1.
func (x *csrIndex[T]) remove(row, pos int) {
	x.values = slices.Delete(x.values, pos, pos+1)
	x.colIndex = slices.Delete(x.colIndex, pos, pos+1)
	for r := row + 1; r < len(x.rowOffset); r++ {
		x.rowOffset[r]--
	}
}

// grow appends empty rows until the index covers rows rows.
func (x *csrIndex[T]) grow(rows int) {
	nnz := x.nnz()
	for len(x.rowOffset) < rows+1 {
		x.rowOffset = append(x.rowOffset, nnz)
	}
}

// truncate drops every element with row >= rows or col >= cols.
//
// Implementation:
//   - Stage 1: walk surviving rows in order; inside each row, copy entries
//     forward until the first column >= cols (ascending order lets us stop).
//   - Stage 2: the compaction cursor becomes each surviving row's new end offset.
//   - Stage 3: cut the arrays to the compacted length and the offsets to rows+1.
func (x *csrIndex[T]) truncate(rows, cols int) {
	if rows > len(x.rowOffset)-1 {
		rows = len(x.rowOffset) - 1
	}
	var (
		w     int // write position of the compaction
		start int // pre-compaction start of the current row
		end   int // pre-compaction end of the current row
		i     int
	)
	for r := 0; r < rows; r++ {
		end = x.rowOffset[r+1]
		for i = start; i < end; i++ {
			if x.colIndex[i] >= cols {
				break // ascending columns: the rest of the row is out of bounds
			}
			x.values[w] = x.values[i]
			x.colIndex[w] = x.colIndex[i]
			w++
		}
		x.rowOffset[r+1] = w
		start = end
	}
	x.values = x.values[:w]
	x.colIndex = x.colIndex[:w]
	x.rowOffset = x.rowOffset[:rows+1]
}

// clone deep-copies all three arrays.
func (x *csrIndex[T]) clone() *csrIndex[T] {
	return &csrIndex[T]{
		values:    slices.Clone(x.values),
		colIndex:  slices.Clone(x.colIndex),
		rowOffset: slices.Clone(x.rowOffset),
	}
}

// validate checks every structural invariant for the declared shape.
func (x *csrIndex[T]) validate(rows, cols int) error {
	var zero T
	if len(x.rowOffset) != rows+1 {
		return fmt.Errorf("rowOffset length %d, want %d", len(x.rowOffset), rows+1)
	}
	if x.rowOffset[0] != 0 {
		return fmt.Errorf("rowOffset[0] = %d, want 0", x.rowOffset[0])
	}
	if len(x.values) != len(x.colIndex) {
		return fmt.Errorf("len(values) %d != len(colIndex) %d", len(x.values), len(x.colIndex))
	}
	if x.rowOffset[rows] != len(x.values) {
		return fmt.Errorf("rowOffset[%d] = %d, want nnz %d", rows, x.rowOffset[rows], len(x.values))
	}
	for r := 0; r < rows; r++ {
		start, end := x.span(r)
		if start > end {
			return fmt.Errorf("rowOffset decreases at row %d", r)
		}
		for i := start; i < end; i++ {
			if x.colIndex[i] < 0 || x.colIndex[i] >= cols {
				return fmt.Errorf("row %d: column %d outside [0,%d)", r, x.colIndex[i], cols)
			}
			if i > start && x.colIndex[i] <= x.colIndex[i-1] {
				return fmt.Errorf("row %d: columns not strictly increasing at %d", r, i)
			}
			if x.values[i] == zero {
				return fmt.Errorf("row %d col %d: explicit zero stored", r, x.colIndex[i])
			}
		}
	}

	return nil
}
