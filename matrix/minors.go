// SPDX-License-Identifier: MIT

// Package matrix - minors, cofactors, adjugate, inverse and rank.
//
// Inverse is returned in fraction-free form: (adj(A), det(A)) with
// A⁻¹ = adj(A) / det(A). This keeps integer instantiations exact.

package matrix

import "fmt"

const (
	opMinorSubmatrix = "MinorSubmatrix"
	opMinor          = "Minor"
	opCofactor       = "Cofactor"
	opAdjugate       = "Adjugate"
	opInverse        = "Inverse"
	opRank           = "Rank"
)

// MinorSubmatrix returns m with row and col removed, as a (rows-1)×(cols-1) CSR.
// Coordinates past the removed row/column shift down by one.
// Errors: ErrOutOfRange if (row, col) is outside m.
func MinorSubmatrix[T Number](m Matrix[T], row, col int) (*CSR[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinorSubmatrix, err)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opMinorSubmatrix, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	res, err := NewCSR[T](m.Rows()-1, m.Cols()-1)
	if err != nil {
		return nil, matrixErrorf(opMinorSubmatrix, err)
	}
	if res.r == 0 {
		return res, nil
	}
	// Row-major input keeps the remapped output row-major: append directly.
	idx := res.idx
	for e := range All(m) {
		if e.Row == row || e.Col == col {
			continue
		}
		r, c := e.Row, e.Col
		if r > row {
			r--
		}
		if c > col {
			c--
		}
		idx.values = append(idx.values, e.Value)
		idx.colIndex = append(idx.colIndex, c)
		idx.rowOffset[r+1]++
	}
	for r := 0; r < res.r; r++ {
		idx.rowOffset[r+1] += idx.rowOffset[r]
	}

	return res, nil
}

// Minor returns det(MinorSubmatrix(m, row, col)) for a square m.
func Minor[T Number](m Matrix[T], row, col int) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opMinor, err)
	}
	sub, err := MinorSubmatrix(m, row, col)
	if err != nil {
		return zero, matrixErrorf(opMinor, err)
	}
	d, err := Det[T](sub)
	if err != nil {
		return zero, matrixErrorf(opMinor, err)
	}

	return d, nil
}

// Cofactor returns (-1)^(row+col) · Minor(m, row, col).
func Cofactor[T Number](m Matrix[T], row, col int) (T, error) {
	minor, err := Minor(m, row, col)
	if err != nil {
		return minor, matrixErrorf(opCofactor, err)
	}
	if (row+col)%2 == 1 {
		return -minor, nil
	}

	return minor, nil
}

// Adjugate returns the transposed cofactor matrix of a square m.
// adj of the 1×1 matrix is [1]; adj of the null matrix is the null matrix.
// Complexity: n² determinants of size n-1.
func Adjugate[T Number](m Matrix[T]) (*CSR[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.Rows()
	res, err := NewCSR[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	if n == 1 {
		_, _ = res.Put(0, 0, 1)
		return res, nil
	}
	var c T
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			// adj[i][j] = cofactor(j, i)
			if c, err = Cofactor(m, j, i); err != nil {
				return nil, matrixErrorf(opAdjugate, err)
			}
			_, _ = res.Put(i, j, c)
		}
	}

	return res, nil
}

// Inverse returns (adj, det) such that m⁻¹ = adj / det.
// Errors: ErrNonSquare, ErrNotInvertible (det == 0).
func Inverse[T Number](m Matrix[T]) (*CSR[T], T, error) {
	var zero T
	d, err := Det(m)
	if err != nil {
		return nil, zero, matrixErrorf(opInverse, err)
	}
	if d == zero {
		return nil, zero, matrixErrorf(opInverse, ErrNotInvertible)
	}
	adj, err := Adjugate(m)
	if err != nil {
		return nil, zero, matrixErrorf(opInverse, err)
	}

	return adj, d, nil
}

// Rank returns the number of linearly independent rows, using the same
// fraction-free elimination as the general determinant, on a dense copy.
//
// Implementation:
//   - For each column, pick the first nonzero at or below the current pivot row.
//   - Eliminate below it with a[i][j] = (a[i][j]·p − a[i][c]·a[r][j]) / prev,
//     where prev is the previous pivot. Columns without a pivot are skipped.
//   - The rank is the number of pivots found.
func Rank[T Number](m Matrix[T]) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	var zero T
	a := denseOf(m)
	rows, cols := m.Rows(), m.Cols()
	rank := 0
	var prev T = 1
	for c := 0; c < cols && rank < rows; c++ {
		p := rank
		for p < rows && a[p][c] == zero {
			p++
		}
		if p == rows {
			continue
		}
		a[rank], a[p] = a[p], a[rank]
		piv := a[rank][c]
		for i := rank + 1; i < rows; i++ {
			for j := c + 1; j < cols; j++ {
				a[i][j] = (a[i][j]*piv - a[i][c]*a[rank][j]) / prev
			}
			a[i][c] = zero
		}
		prev = piv
		rank++
	}

	return rank, nil
}
