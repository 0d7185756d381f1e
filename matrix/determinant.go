// SPDX-License-Identifier: MIT

// Package matrix - determinant engine.
//
// Dispatch (fixed priority order):
//  1. non-square            → ErrNonSquare
//  2. n == 0                → 1 (empty product)
//  3. n == 1, 2, 3, 4       → closed-form cofactor expansions (no minor construction)
//  4. n > 4, *Tridiagonal   → O(n) three-term recurrence
//  5. n > 4, any other kind → Bareiss fraction-free elimination, O(n^3)
//
// Exactness:
//   - For integer T every Bareiss division is exact, so the result is the exact
//     determinant as long as intermediate products fit in T.

package matrix

const opDet = "Det"

// Det returns the determinant of a square matrix.
func Det[T Number](m Matrix[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	n := m.Rows()
	if n == 0 {
		return 1, nil
	}
	if n <= 4 {
		a := denseOf(m)
		switch n {
		case 1:
			return a[0][0], nil
		case 2:
			return det2(a), nil
		case 3:
			return det3(a), nil
		default:
			return det4(a), nil
		}
	}
	if t, ok := m.(*Tridiagonal[T]); ok {
		return t.Det(), nil
	}

	return bareiss(denseOf(m)), nil
}

// denseOf materializes m into a row-major [][]T scratch buffer via the iterator.
func denseOf[T Number](m Matrix[T]) [][]T {
	rows, cols := m.Rows(), m.Cols()
	buf := make([]T, rows*cols)
	a := make([][]T, rows)
	for i := range a {
		a[i] = buf[i*cols : (i+1)*cols]
	}
	it := m.Iterator()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		a[e.Row][e.Col] = e.Value
	}

	return a
}

// det2 = ad − bc.
func det2[T Number](a [][]T) T {
	return a[0][0]*a[1][1] - a[0][1]*a[1][0]
}

// det3 expands along the first row.
func det3[T Number](a [][]T) T {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// det4 expands along the first row; the 3×3 cofactors are written in terms of
// the six 2×2 minors of rows 2 and 3 (sIJ uses columns I and J).
func det4[T Number](a [][]T) T {
	s01 := a[2][0]*a[3][1] - a[2][1]*a[3][0]
	s02 := a[2][0]*a[3][2] - a[2][2]*a[3][0]
	s03 := a[2][0]*a[3][3] - a[2][3]*a[3][0]
	s12 := a[2][1]*a[3][2] - a[2][2]*a[3][1]
	s13 := a[2][1]*a[3][3] - a[2][3]*a[3][1]
	s23 := a[2][2]*a[3][3] - a[2][3]*a[3][2]

	c0 := a[1][1]*s23 - a[1][2]*s13 + a[1][3]*s12
	c1 := a[1][0]*s23 - a[1][2]*s03 + a[1][3]*s02
	c2 := a[1][0]*s13 - a[1][1]*s03 + a[1][3]*s01
	c3 := a[1][0]*s12 - a[1][1]*s02 + a[1][2]*s01

	return a[0][0]*c0 - a[0][1]*c1 + a[0][2]*c2 - a[0][3]*c3
}

// bareiss computes det(a) by fraction-free Gaussian elimination, in place.
//
// Implementation:
//   - Stage 1: for each pivot k, swap in the first row i>=k with a[i][k] != 0
//     (flip the sign per swap); no such row means det == 0.
//   - Stage 2: a[i][j] = (a[i][j]·a[k][k] − a[i][k]·a[k][j]) / prev for i,j > k,
//     where prev is the previous pivot (1 initially). The division is exact.
//   - Stage 3: det = sign · a[n-1][n-1].
func bareiss[T Number](a [][]T) T {
	var zero T
	n := len(a)
	var sign, prev T = 1, 1
	for k := 0; k < n-1; k++ {
		if a[k][k] == zero {
			p := k + 1
			for p < n && a[p][k] == zero {
				p++
			}
			if p == n {
				return zero
			}
			a[k], a[p] = a[p], a[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				a[i][j] = (a[i][j]*a[k][k] - a[i][k]*a[k][j]) / prev
			}
		}
		prev = a[k][k]
	}

	return sign * a[n-1][n-1]
}
