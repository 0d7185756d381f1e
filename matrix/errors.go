// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// call-site context via %w) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Stores wrap with "<Store>.<Method>(row,col): %w",
// algebra kernels wrap with "<Op>: %w"; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch / non-square -> band violation
// -> numeric (not invertible).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// A zero dimension is legal and normalizes to the 0×0 null matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Put) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (determinant, trace, power, cofactor, inverse, tridiagonal shapes).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrBandViolation signals a nonzero write outside |row-col| <= 1 on a
	// tridiagonal store. The store is left unchanged; the condition is recoverable.
	ErrBandViolation = errors.New("matrix: write outside tridiagonal band")

	// ErrNotInvertible is returned when an inverse is requested for a matrix
	// whose determinant is zero.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrInvalidExponent is returned by Pow for exponents smaller than 2.
	ErrInvalidExponent = errors.New("matrix: exponent must be >= 2")

	// ErrUnknownKind is returned by the factories for a Kind outside the enum.
	ErrUnknownKind = errors.New("matrix: unknown storage kind")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
