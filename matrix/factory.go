// SPDX-License-Identifier: MIT

// Package matrix - construction by storage kind.
//
// Purpose:
//   - Build either store from a Kind with one switch; there is no registry.
//   - Keep the kind-specific rules in one place:
//     KindSparse accepts any shape;
//     KindTridiagonal requires rows == cols (ErrNonSquare) and only fills band cells.
//
// AI-Hints:
//   - Prefer FromRows for small literal matrices in tests and examples.
//   - For large CSR builds, Build visits cells row by row in ascending column
//     order, so every Put appends at the tail of the arrays.

package matrix

import "fmt"

const (
	opNew      = "New"
	opIdentity = "Identity"
	opFilled   = "Filled"
	opBuild    = "Build"
	opFromRows = "FromRows"
)

// New returns an all-zero rows×cols matrix of the given kind.
// Errors: ErrInvalidDimensions, ErrNonSquare (tridiagonal), ErrUnknownKind.
func New[T Number](kind Kind, rows, cols int) (Matrix[T], error) {
	switch kind {
	case KindSparse:
		m, err := NewCSR[T](rows, cols)
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		return m, nil
	case KindTridiagonal:
		r, c, err := normalizeShape(rows, cols)
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		if r != c {
			return nil, matrixErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrNonSquare))
		}
		t, err := NewTridiagonal[T](r)
		if err != nil {
			return nil, matrixErrorf(opNew, err)
		}
		return t, nil
	default:
		return nil, matrixErrorf(opNew, fmt.Errorf("kind %d: %w", int(kind), ErrUnknownKind))
	}
}

// Zero is an alias of New that reads better at call sites building a zero matrix.
func Zero[T Number](kind Kind, rows, cols int) (Matrix[T], error) {
	return New[T](kind, rows, cols)
}

// Identity returns the n×n identity of the given kind.
func Identity[T Number](kind Kind, n int) (Matrix[T], error) {
	m, err := New[T](kind, n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < m.Rows(); i++ {
		_, _ = m.Put(i, i, 1) // safe: diagonal, inside shape
	}

	return m, nil
}

// Filled returns a rows×cols matrix whose addressable cells all hold v:
// every cell for KindSparse, every band cell for KindTridiagonal.
func Filled[T Number](kind Kind, rows, cols int, v T) (Matrix[T], error) {
	m, err := Build[T](kind, rows, cols, func(int, int) T { return v })
	if err != nil {
		return nil, matrixErrorf(opFilled, err)
	}

	return m, nil
}

// Build returns a rows×cols matrix with m[r][c] = fn(r, c) for every
// addressable cell (band cells only for KindTridiagonal). fn is called in
// row-major order.
func Build[T Number](kind Kind, rows, cols int, fn func(row, col int) T) (Matrix[T], error) {
	m, err := New[T](kind, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opBuild, err)
	}
	band := kind == KindTridiagonal
	var r, c int
	for r = 0; r < m.Rows(); r++ {
		lo, hi := 0, m.Cols()
		if band {
			lo, hi = max(r-1, 0), min(r+2, m.Cols())
		}
		for c = lo; c < hi; c++ {
			if _, err = m.Put(r, c, fn(r, c)); err != nil {
				return nil, matrixErrorf(opBuild, err)
			}
		}
	}

	return m, nil
}

// FromRows builds a matrix from a row-major literal.
// Errors:
//   - ErrDimensionMismatch for ragged input;
//   - ErrNonSquare / ErrBandViolation for a tridiagonal kind whose input is
//     not square or holds a nonzero off the band.
func FromRows[T Number](kind Kind, data [][]T) (Matrix[T], error) {
	rows, cols := len(data), 0
	if rows > 0 {
		cols = len(data[0])
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
	}
	m, err := New[T](kind, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if _, err = m.Put(r, c, data[r][c]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}
