// SPDX-License-Identifier: MIT

// Package matrix - CSR storage (compressed sparse row) & safe accessors.
//
// Purpose:
//   - Keep only nonzero values, their column indices and per-row start offsets.
//   - Guarantee safety at the public surface: At/Put return errors instead of panicking.
//   - Never materialize an explicit zero: Put with zero deletes, zero on absent is a no-op.
//   - Deep-copy all three backing arrays on Clone (no aliasing between clones).
//
// AI-Hints:
//   - Walk nonzeros with Iterator()/All() instead of At loops when the algorithm allows it.
//   - Put on a fresh coordinate shifts the arrays (O(nnz)); build row by row in
//     ascending column order to keep shifts at the tail.
//
// Complexity quicksheet:
//   - NewCSR: O(rows); At: O(log k); Put: O(nnz + rows); Resize: O(nnz + rows); Clone: O(nnz + rows).

package matrix

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxPut    = "Put"    // method tag used in error wrappers
	ctxResize = "Resize" // method tag used in error wrappers
)

// csrErrorf wraps an error with a uniform CSR context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Returns:
//   - error formatted as "CSR.<method>(row,col): <sentinel>"; preserves the sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// CSR is a compressed-sparse-row matrix.
//   - r,c hold dimensions (rows, cols); r == 0 iff c == 0.
//   - idx owns values/colIndex/rowOffset and every ordered mutation on them.
type CSR[T Number] struct {
	r, c int          // row and column counts (>=0)
	idx  *csrIndex[T] // exclusive; never shared between matrices
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*CSR[int])(nil)
	_ fmt.Stringer = (*CSR[int])(nil)
)

// normalizeShape validates (rows, cols) and folds any shape with one zero
// dimension into the canonical 0×0 null matrix.
func normalizeShape(rows, cols int) (int, int, error) {
	if rows < 0 || cols < 0 {
		return 0, 0, ErrInvalidDimensions
	}
	if rows == 0 || cols == 0 {
		return 0, 0, nil
	}

	return rows, cols, nil
}

// NewCSR creates an all-zero rows×cols matrix.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation; no values are allocated.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; fold one-zero shapes into 0×0.
//   - Stage 2: allocate rowOffset of length rows+1 (all zeros).
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(rows), Space O(rows).
func NewCSR[T Number](rows, cols int) (*CSR[T], error) {
	rows, cols, err := normalizeShape(rows, cols)
	if err != nil {
		return nil, err
	}

	return &CSR[T]{r: rows, c: cols, idx: newCSRIndex[T](rows)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *CSR[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *CSR[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *CSR[T]) Shape() (rows, cols int) { return m.r, m.c }

// Kind reports KindSparse.
func (m *CSR[T]) Kind() Kind { return KindSparse }

// NNZ returns the number of stored nonzeros. Complexity: O(1).
func (m *CSR[T]) NNZ() int { return m.idx.nnz() }

// checkBounds returns ErrOutOfRange unless 0 ≤ row < r and 0 ≤ col < c.
func (m *CSR[T]) checkBounds(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col), the zero value if absent, or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read; binary search over the row's sorted column slice.
//
// Behavior highlights:
//   - Never panics on out-of-range; never clamps.
//
// Complexity:
//   - Time O(log k) where k is the number of nonzeros in the row.
func (m *CSR[T]) At(row, col int) (T, error) {
	var zero T
	if err := m.checkBounds(row, col); err != nil {
		return zero, csrErrorf(ctxAt, row, col, err)
	}
	if pos, found := m.idx.find(row, col); found {
		return m.idx.values[pos], nil
	}

	return zero, nil
}

// Put stores v at (row, col) and reports whether the stored value changed.
// MAIN DESCRIPTION:
//   - The central CSR mutation; keeps every index invariant.
//
// Implementation:
//   - Stage 1: bounds check.
//   - Stage 2: locate col (or its insertion point) inside the row.
//   - Stage 3: dispatch on (found, v == 0):
//     found, v != 0  → overwrite in place, no shift;
//     found, v == 0  → delete from all arrays, later row offsets −1;
//     absent, v != 0 → insert into all arrays, later row offsets +1;
//     absent, v == 0 → no-op.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates).
//
// Complexity:
//   - Overwrite O(log k); insert/delete O(nnz + rows).
func (m *CSR[T]) Put(row, col int, v T) (bool, error) {
	var zero T
	if err := m.checkBounds(row, col); err != nil {
		return false, csrErrorf(ctxPut, row, col, err)
	}
	pos, found := m.idx.find(row, col)
	switch {
	case found && v != zero:
		if m.idx.values[pos] == v {
			return false, nil
		}
		m.idx.values[pos] = v
	case found:
		m.idx.remove(row, pos)
	case v != zero:
		m.idx.insert(row, pos, col, v)
	default:
		return false, nil
	}

	return true, nil
}

// Resize changes the shape to rows×cols.
// MAIN DESCRIPTION:
//   - Growing only extends the implicit-zero space; shrinking drops every
//     element with row >= rows or col >= cols and rebases the offsets.
//
// Implementation:
//   - Stage 1: validate and normalize the new shape (one zero dim → 0×0).
//   - Stage 2: if any dimension shrinks, compact the index in a single pass.
//   - Stage 3: if rows grow, append nnz-valued offsets for the new rows.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension). The matrix is unchanged on error.
//
// Complexity:
//   - Time O(nnz + rows), Space O(1) extra (in-place compaction).
func (m *CSR[T]) Resize(newRows, newCols int) error {
	rows, cols, err := normalizeShape(newRows, newCols)
	if err != nil {
		return csrErrorf(ctxResize, newRows, newCols, err)
	}
	if rows < m.r || cols < m.c {
		m.idx.truncate(rows, cols)
	}
	if rows > m.r {
		m.idx.grow(rows)
	}
	m.r, m.c = rows, cols

	return nil
}

// SetZero removes every stored element; the shape is kept.
func (m *CSR[T]) SetZero() {
	m.idx = newCSRIndex[T](m.r)
}

// SetIdentity overwrites m with the identity. Requires a square shape.
func (m *CSR[T]) SetIdentity() error {
	if m.r != m.c {
		return fmt.Errorf("CSR.SetIdentity: %w", ErrNonSquare)
	}
	// Build the arrays directly: one entry per row, already in CSR order.
	idx := &csrIndex[T]{
		values:    make([]T, m.r),
		colIndex:  make([]int, m.r),
		rowOffset: make([]int, m.r+1),
	}
	for i := 0; i < m.r; i++ {
		idx.values[i] = 1
		idx.colIndex[i] = i
		idx.rowOffset[i+1] = i + 1
	}
	m.idx = idx

	return nil
}

// Iterator returns a fresh cursor over the nonzeros in row-major order.
// The cursor reads the live arrays; do not mutate m while it is in use.
func (m *CSR[T]) Iterator() Iterator[T] { return newCSRCursor(m.idx) }

// Clone returns a deep copy (three fresh arrays).
// Complexity: O(nnz + rows).
func (m *CSR[T]) Clone() Matrix[T] { return m.Copy() }

// Copy is Clone with the concrete return type.
func (m *CSR[T]) Copy() *CSR[T] {
	return &CSR[T]{r: m.r, c: m.c, idx: m.idx.clone()}
}

// String renders m with Format.
func (m *CSR[T]) String() string { return Format[T](m) }
