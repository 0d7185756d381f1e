// SPDX-License-Identifier: MIT

// Package matrix - structural predicates.
//
// Every predicate is a pure scan: the positional ones walk the iterator once
// and stop at the first stored entry that breaks the pattern. A nil matrix
// satisfies none of them.

package matrix

// IsNull reports whether m is the 0×0 null matrix.
func IsNull[T Number](m Matrix[T]) bool {
	return !isNil(m) && m.Rows() == 0
}

// IsSquare reports Rows == Cols.
func IsSquare[T Number](m Matrix[T]) bool {
	return !isNil(m) && m.Rows() == m.Cols()
}

// IsTraceable reports whether Trace is defined for m (square).
func IsTraceable[T Number](m Matrix[T]) bool { return IsSquare(m) }

// IsZero reports whether no element is stored.
func IsZero[T Number](m Matrix[T]) bool {
	return !isNil(m) && m.NNZ() == 0
}

// IsPositive reports whether every stored entry is > 0.
// Implicit zeros are not considered; the null matrix is positive.
func IsPositive[T Number](m Matrix[T]) bool {
	var zero T

	return noneMatch(m, func(e Entry[T]) bool { return e.Value <= zero })
}

// IsIdentity reports a square matrix with exactly one stored 1 per row on the diagonal.
func IsIdentity[T Number](m Matrix[T]) bool {
	if !IsSquare(m) || m.NNZ() != m.Rows() {
		return false
	}

	return noneMatch(m, func(e Entry[T]) bool { return e.Row != e.Col || e.Value != 1 })
}

// IsDiagonal reports a square matrix with no stored entry off the main diagonal.
func IsDiagonal[T Number](m Matrix[T]) bool {
	return IsSquare(m) && noneMatch(m, func(e Entry[T]) bool { return e.Row != e.Col })
}

// IsLowerTriangular reports that no stored entry lies above the main diagonal.
// Defined for any shape.
func IsLowerTriangular[T Number](m Matrix[T]) bool {
	return noneMatch(m, func(e Entry[T]) bool { return e.Col > e.Row })
}

// IsUpperTriangular reports that no stored entry lies below the main diagonal.
// Defined for any shape.
func IsUpperTriangular[T Number](m Matrix[T]) bool {
	return noneMatch(m, func(e Entry[T]) bool { return e.Row > e.Col })
}

// IsLowerHessenberg reports a square matrix with zeros above the first superdiagonal.
func IsLowerHessenberg[T Number](m Matrix[T]) bool {
	return IsSquare(m) && noneMatch(m, func(e Entry[T]) bool { return e.Col > e.Row+1 })
}

// IsUpperHessenberg reports a square matrix with zeros below the first subdiagonal.
func IsUpperHessenberg[T Number](m Matrix[T]) bool {
	return IsSquare(m) && noneMatch(m, func(e Entry[T]) bool { return e.Row > e.Col+1 })
}

// IsSymmetric reports a square matrix with m[r][c] == m[c][r] for every stored entry.
// Complexity: O(nnz · cost(At)).
func IsSymmetric[T Number](m Matrix[T]) bool {
	if !IsSquare(m) {
		return false
	}
	if t, ok := m.(*Tridiagonal[T]); ok {
		for i := range t.lower {
			if t.lower[i] != t.upper[i] {
				return false
			}
		}
		return true
	}

	return noneMatch(m, func(e Entry[T]) bool {
		v, _ := m.At(e.Col, e.Row) // safe: square, mirrored coordinate in range
		return v != e.Value
	})
}

// IsInvertible reports a square matrix with a nonzero determinant.
func IsInvertible[T Number](m Matrix[T]) bool {
	if !IsSquare(m) {
		return false
	}
	d, err := Det(m)

	return err == nil && d != 0
}

// IsOrthogonal reports a square matrix with m·mᵀ == I.
func IsOrthogonal[T Number](m Matrix[T]) bool {
	if !IsSquare(m) {
		return false
	}
	mt, err := Transpose(m)
	if err != nil {
		return false
	}
	p, err := Mul(m, mt)
	if err != nil {
		return false
	}

	return IsIdentity(p)
}

// noneMatch reports whether no iterated entry satisfies bad. False for nil.
func noneMatch[T Number](m Matrix[T], bad func(Entry[T]) bool) bool {
	if isNil(m) {
		return false
	}
	for e := range All(m) {
		if bad(e) {
			return false
		}
	}

	return true
}
