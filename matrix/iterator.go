// SPDX-License-Identifier: MIT

// Package matrix - lazy traversal over stored nonzeros.
//
// Purpose:
//   - Give the algebra layer one traversal contract for every storage variant.
//   - Produce (row, col, value) triples in row-major order, ascending column.
//   - Yield exactly NNZ() triples; zeros are never produced.
//
// Behavior:
//   - A cursor reads the store's arrays in place (no copy). Mutating the store
//     while a cursor is live gives an undefined traversal.
//   - Cursors are restartable by construction: call Iterator() again.
//   - After exhaustion Next keeps returning (Entry{}, false).

package matrix

import "iter"

// Iterator is a finite forward cursor over the nonzeros of a matrix.
type Iterator[T Number] interface {
	// HasNext reports whether another entry is available.
	HasNext() bool

	// Next returns the next entry. ok is false once the cursor is exhausted.
	Next() (e Entry[T], ok bool)
}

// All adapts m.Iterator() to a range-over-func sequence.
//
//	for e := range matrix.All(m) { ... }
func All[T Number](m Matrix[T]) iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		it := m.Iterator()
		for {
			e, ok := it.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// ---------- CSR cursor ----------

// csrCursor walks values/colIndex by position and advances row so that
// rowOffset[row] <= pos < rowOffset[row+1] always holds while pos < nnz.
type csrCursor[T Number] struct {
	idx *csrIndex[T]
	pos int // next position in values/colIndex
	row int // row owning pos
}

func newCSRCursor[T Number](idx *csrIndex[T]) *csrCursor[T] {
	c := &csrCursor[T]{idx: idx}
	c.syncRow()

	return c
}

// syncRow skips empty rows until rowOffset[row+1] > pos.
func (c *csrCursor[T]) syncRow() {
	last := len(c.idx.rowOffset) - 1
	for c.row < last && c.idx.rowOffset[c.row+1] <= c.pos {
		c.row++
	}
}

func (c *csrCursor[T]) HasNext() bool { return c.pos < len(c.idx.values) }

func (c *csrCursor[T]) Next() (Entry[T], bool) {
	if !c.HasNext() {
		return Entry[T]{}, false
	}
	e := Entry[T]{Row: c.row, Col: c.idx.colIndex[c.pos], Value: c.idx.values[c.pos]}
	c.pos++
	c.syncRow()

	return e, true
}

// ---------- Tridiagonal cursor ----------

// Slots inside one row of the band, in ascending column order.
const (
	slotLower = iota // (i, i-1)
	slotMain         // (i, i)
	slotUpper        // (i, i+1)
	slotCount
)

// triCursor interleaves the three diagonals row by row and skips zeros.
// The next candidate is (row, slot); pending holds a prefetched entry.
type triCursor[T Number] struct {
	t       *Tridiagonal[T]
	row     int
	slot    int
	pending Entry[T]
	has     bool
}

func newTriCursor[T Number](t *Tridiagonal[T]) *triCursor[T] {
	c := &triCursor[T]{t: t, slot: slotLower}
	c.advance()

	return c
}

// advance moves to the next nonzero band element, if any.
func (c *triCursor[T]) advance() {
	var zero T
	n := len(c.t.main)
	c.has = false
	for c.row < n {
		var (
			v   T
			col int
			ok  bool
		)
		switch c.slot {
		case slotLower:
			if c.row > 0 {
				v, col, ok = c.t.lower[c.row-1], c.row-1, true
			}
		case slotMain:
			v, col, ok = c.t.main[c.row], c.row, true
		case slotUpper:
			if c.row < n-1 {
				v, col, ok = c.t.upper[c.row], c.row+1, true
			}
		}
		row := c.row
		c.slot++
		if c.slot == slotCount {
			c.slot = slotLower
			c.row++
		}
		if ok && v != zero {
			c.pending = Entry[T]{Row: row, Col: col, Value: v}
			c.has = true

			return
		}
	}
}

func (c *triCursor[T]) HasNext() bool { return c.has }

func (c *triCursor[T]) Next() (Entry[T], bool) {
	if !c.has {
		return Entry[T]{}, false
	}
	e := c.pending
	c.advance()

	return e, true
}
