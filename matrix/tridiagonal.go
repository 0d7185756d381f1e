// SPDX-License-Identifier: MIT

// Package matrix - banded tridiagonal storage.
//
// Purpose:
//   - Store the restricted case where only |row-col| <= 1 may be nonzero.
//   - Keep three fixed-width diagonals: lower (n-1), main (n), upper (n-1).
//   - Reject (not widen) nonzero writes outside the band: ErrBandViolation.
//
// Policy:
//   - Always square. Reads beyond the current size return zero; on-band nonzero
//     writes beyond the size grow all three diagonals first (never shrink-on-write).
//   - Diagonal slots may hold zeros; NNZ and iteration count only nonzeros.
//
// Complexity quicksheet:
//   - At/Put: O(1) (Put is O(n) when it grows); Transpose: O(1); Det: O(n).

package matrix

import (
	"fmt"
	"slices"
)

// triErrorf wraps an error with a uniform Tridiagonal context and coordinates.
func triErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Tridiagonal.%s(%d,%d): %w", method, row, col, err)
}

// Tridiagonal is a square banded matrix.
// lower[i] sits at (i+1, i), main[i] at (i, i), upper[i] at (i, i+1).
type Tridiagonal[T Number] struct {
	lower []T
	main  []T
	upper []T
}

var (
	_ Matrix[int]  = (*Tridiagonal[int])(nil)
	_ fmt.Stringer = (*Tridiagonal[int])(nil)
)

// bandLen is the off-diagonal length for an n×n band.
func bandLen(n int) int { return max(n-1, 0) }

// NewTridiagonal creates an all-zero n×n tridiagonal matrix.
// Errors: ErrInvalidDimensions for n < 0.
func NewTridiagonal[T Number](n int) (*Tridiagonal[T], error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Tridiagonal[T]{
		lower: make([]T, bandLen(n)),
		main:  make([]T, n),
		upper: make([]T, bandLen(n)),
	}, nil
}

// FromDiags builds a tridiagonal matrix from its three diagonals, given in
// (upper, main, lower) order. The slices are copied.
// Errors: ErrDimensionMismatch unless len(upper) == len(lower) == len(main)-1
// (or all three are empty).
func FromDiags[T Number](upper, main, lower []T) (*Tridiagonal[T], error) {
	n := len(main)
	if len(upper) != bandLen(n) || len(lower) != bandLen(n) {
		return nil, fmt.Errorf("FromDiags: upper=%d main=%d lower=%d: %w",
			len(upper), len(main), len(lower), ErrDimensionMismatch)
	}

	return &Tridiagonal[T]{
		lower: slices.Clone(lower),
		main:  slices.Clone(main),
		upper: slices.Clone(upper),
	}, nil
}

// Rows returns n.
func (t *Tridiagonal[T]) Rows() int { return len(t.main) }

// Cols returns n.
func (t *Tridiagonal[T]) Cols() int { return len(t.main) }

// Kind reports KindTridiagonal.
func (t *Tridiagonal[T]) Kind() Kind { return KindTridiagonal }

// OnBand reports whether (row, col) lies within |row-col| <= 1.
func (t *Tridiagonal[T]) OnBand(row, col int) bool {
	d := row - col

	return d >= -1 && d <= 1
}

// slot returns the diagonal slice and offset holding (row, col).
// The caller guarantees OnBand(row, col) and min(row, col) inside the slice.
func (t *Tridiagonal[T]) slot(row, col int) ([]T, int) {
	switch {
	case row == col:
		return t.main, row
	case row > col:
		return t.lower, col
	default:
		return t.upper, row
	}
}

// At returns the element at (row, col).
// Off-band coordinates and coordinates beyond the current size read as zero;
// negative coordinates return ErrOutOfRange.
func (t *Tridiagonal[T]) At(row, col int) (T, error) {
	var zero T
	if row < 0 || col < 0 {
		return zero, triErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	n := len(t.main)
	if !t.OnBand(row, col) || row >= n || col >= n {
		return zero, nil
	}
	diag, i := t.slot(row, col)

	return diag[i], nil
}

// Put stores v at (row, col) and reports whether the stored value changed.
//
// Behavior:
//   - Off-band nonzero → (false, ErrBandViolation); the matrix is unchanged.
//   - Off-band zero, or zero beyond the current size → no-op.
//   - On-band nonzero beyond the current size → grow to max(row,col)+1, then write.
func (t *Tridiagonal[T]) Put(row, col int, v T) (bool, error) {
	var zero T
	if row < 0 || col < 0 {
		return false, triErrorf(ctxPut, row, col, ErrOutOfRange)
	}
	if !t.OnBand(row, col) {
		if v == zero {
			return false, nil
		}
		return false, triErrorf(ctxPut, row, col, ErrBandViolation)
	}
	if need := max(row, col) + 1; need > len(t.main) {
		if v == zero {
			return false, nil
		}
		t.grow(need)
	}
	diag, i := t.slot(row, col)
	if diag[i] == v {
		return false, nil
	}
	diag[i] = v

	return true, nil
}

// grow extends all three diagonals with zeros to size n.
func (t *Tridiagonal[T]) grow(n int) {
	t.main = append(t.main, make([]T, n-len(t.main))...)
	t.lower = append(t.lower, make([]T, bandLen(n)-len(t.lower))...)
	t.upper = append(t.upper, make([]T, bandLen(n)-len(t.upper))...)
}

// Resize grows or truncates all three diagonals to rows×cols.
// Errors: ErrInvalidDimensions (negative), ErrNonSquare (rows != cols).
// A zero dimension yields the 0×0 null matrix, like CSR.
func (t *Tridiagonal[T]) Resize(rows, cols int) error {
	r, c, err := normalizeShape(rows, cols)
	if err != nil {
		return triErrorf(ctxResize, rows, cols, err)
	}
	if r != c {
		return triErrorf(ctxResize, rows, cols, ErrNonSquare)
	}
	if r >= len(t.main) {
		t.grow(r)
		return nil
	}
	t.main = t.main[:r]
	t.lower = t.lower[:bandLen(r)]
	t.upper = t.upper[:bandLen(r)]

	return nil
}

// NNZ counts nonzero band elements. Complexity: O(n).
func (t *Tridiagonal[T]) NNZ() int {
	var zero T
	n := 0
	for _, d := range [][]T{t.lower, t.main, t.upper} {
		for _, v := range d {
			if v != zero {
				n++
			}
		}
	}

	return n
}

// TransposeInPlace reflects t across the main diagonal by swapping the lower
// and upper slices. O(1); no element is copied.
func (t *Tridiagonal[T]) TransposeInPlace() {
	t.lower, t.upper = t.upper, t.lower
}

// Det returns the determinant with the three-term recurrence
//
//	D[0] = 1, D[1] = main[0], D[i] = main[i-1]·D[i-1] − lower[i-2]·upper[i-2]·D[i-2].
//
// It is valid for every size, including 0 (→ 1). Complexity: O(n).
func (t *Tridiagonal[T]) Det() T {
	n := len(t.main)
	var prev T = 1 // D[i-2]
	if n == 0 {
		return prev
	}
	cur := t.main[0] // D[i-1]
	for i := 1; i < n; i++ {
		prev, cur = cur, t.main[i]*cur-t.lower[i-1]*t.upper[i-1]*prev
	}

	return cur
}

// Diagonals returns copies of (upper, main, lower), mirroring FromDiags.
func (t *Tridiagonal[T]) Diagonals() (upper, main, lower []T) {
	return slices.Clone(t.upper), slices.Clone(t.main), slices.Clone(t.lower)
}

// Iterator returns a fresh cursor over nonzero band elements in row-major order.
func (t *Tridiagonal[T]) Iterator() Iterator[T] { return newTriCursor(t) }

// Clone returns a deep copy of all three diagonals.
func (t *Tridiagonal[T]) Clone() Matrix[T] { return t.Copy() }

// Copy is Clone with the concrete return type.
func (t *Tridiagonal[T]) Copy() *Tridiagonal[T] {
	return &Tridiagonal[T]{
		lower: slices.Clone(t.lower),
		main:  slices.Clone(t.main),
		upper: slices.Clone(t.upper),
	}
}

// String renders t with Format.
func (t *Tridiagonal[T]) String() string { return Format[T](t) }
