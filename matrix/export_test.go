// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the storage internals.
//
// Purpose:
//   - Expose the raw arrays and the invariant checker to matrix_test ONLY.
//   - Keep the production API free of accessors that would leak the arrays.

import "fmt"

// CheckInvariants verifies every structural invariant of a store.
//   - *CSR: offsets, strict column order, no explicit zeros, nnz bookkeeping.
//   - *Tridiagonal: diagonal lengths n-1, n, n-1.
func CheckInvariants[T Number](m Matrix[T]) error {
	switch s := m.(type) {
	case *CSR[T]:
		if (s.r == 0) != (s.c == 0) {
			return fmt.Errorf("degenerate shape %dx%d", s.r, s.c)
		}
		return s.idx.validate(s.r, s.c)
	case *Tridiagonal[T]:
		n := len(s.main)
		if len(s.lower) != bandLen(n) || len(s.upper) != bandLen(n) {
			return fmt.Errorf("diagonal lengths %d/%d/%d for n=%d", len(s.lower), n, len(s.upper), n)
		}
		return nil
	default:
		return fmt.Errorf("unknown store %T", m)
	}
}

// CSRArrays returns copies of (values, colIndex, rowOffset).
func CSRArrays[T Number](m *CSR[T]) ([]T, []int, []int) {
	x := m.idx.clone()

	return x.values, x.colIndex, x.rowOffset
}

// DiagLens returns the lengths of (lower, main, upper).
func DiagLens[T Number](t *Tridiagonal[T]) (int, int, int) {
	return len(t.lower), len(t.main), len(t.upper)
}
