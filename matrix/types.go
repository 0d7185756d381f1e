// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by both storage engines and the algebra layer.
// This file intentionally contains ONLY domain-facing types (number constraint,
// entries, storage kinds) and the public Matrix interface. Errors live in
// errors.go, traversal in iterator.go.
package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the element type set accepted by every store.
// Integer instantiations give exact arithmetic; the zero value of T is the
// additive identity and is never materialized by a store.
type Number interface {
	constraints.Signed | constraints.Float
}

// Entry is one (row, col, value) triple produced by an Iterator.
type Entry[T Number] struct {
	Row   int // zero-based row
	Col   int // zero-based column
	Value T   // stored (nonzero) value
}

// Kind enumerates the storage variants. It is a closed set: construction
// dispatches with a switch in factory.go, never through a string-keyed registry.
type Kind int

const (
	// KindSparse is the general Compressed-Sparse-Row store (*CSR).
	KindSparse Kind = iota
	// KindTridiagonal is the banded store with |row-col| <= 1 (*Tridiagonal).
	KindTridiagonal
)

// String returns a stable lower-case name for logs and CLI output.
func (k Kind) String() string {
	switch k {
	case KindSparse:
		return "sparse"
	case KindTridiagonal:
		return "tridiagonal"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of String. Matching is case-insensitive;
// anything else wraps ErrUnknownKind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sparse":
		return KindSparse, nil
	case "tridiagonal":
		return KindTridiagonal, nil
	default:
		return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
	}
}

// Matrix is the storage contract consumed by the algebra layer.
// Both *CSR and *Tridiagonal implement it.
//
// Shape invariant: Rows() == 0 if and only if Cols() == 0 (the 0×0 null matrix);
// no partially-degenerate shapes exist.
//
// Complexity notes: Rows/Cols/Kind are O(1); At/Put are store-specific
// (see csr.go / tridiagonal.go); Clone is a deep copy of every backing array.
type Matrix[T Number] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Kind reports the storage variant.
	Kind() Kind

	// At retrieves the element at (row, col), or the zero value if absent.
	At(row, col int) (T, error)

	// Put stores v at (row, col). It reports whether the stored value changed.
	Put(row, col int, v T) (bool, error)

	// NNZ returns the number of explicitly stored nonzero elements.
	NNZ() int

	// Iterator returns a fresh cursor positioned before the first nonzero.
	Iterator() Iterator[T]

	// Resize changes the shape, dropping elements that fall outside it.
	Resize(rows, cols int) error

	// Clone returns an independent deep copy.
	Clone() Matrix[T]
}
