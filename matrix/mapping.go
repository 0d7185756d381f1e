// SPDX-License-Identifier: MIT

package matrix

const (
	opMap         = "Map"
	opMapDiagonal = "MapDiagonal"
	opMapNonZero  = "MapNonZero"
)

// Map returns a copy of m with fn applied to every addressable cell
// (every cell for CSR, every band cell for a tridiagonal store), zeros included.
// fn receives the current value and its coordinates.
func Map[T Number](m Matrix[T], fn func(v T, row, col int) T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	res := m.Clone()
	band := m.Kind() == KindTridiagonal
	var (
		r, c int
		v    T
		err  error
	)
	for r = 0; r < m.Rows(); r++ {
		lo, hi := 0, m.Cols()
		if band {
			lo, hi = max(r-1, 0), min(r+2, m.Cols())
		}
		for c = lo; c < hi; c++ {
			v, _ = m.At(r, c) // safe: bounds ensured
			if _, err = res.Put(r, c, fn(v, r, c)); err != nil {
				return nil, matrixErrorf(opMap, err)
			}
		}
	}

	return res, nil
}

// MapDiagonal returns a copy of m with fn applied to each main-diagonal cell.
func MapDiagonal[T Number](m Matrix[T], fn func(v T, i int) T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMapDiagonal, err)
	}
	res := m.Clone()
	for i := 0; i < min(m.Rows(), m.Cols()); i++ {
		v, _ := m.At(i, i) // safe: bounds ensured
		if _, err := res.Put(i, i, fn(v, i)); err != nil {
			return nil, matrixErrorf(opMapDiagonal, err)
		}
	}

	return res, nil
}

// MapNonZero returns a copy of m with fn applied to each stored nonzero only.
// Complexity: O(nnz · cost(Put)).
func MapNonZero[T Number](m Matrix[T], fn func(v T, row, col int) T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMapNonZero, err)
	}
	res := m.Clone()
	for e := range All(m) {
		if _, err := res.Put(e.Row, e.Col, fn(e.Value, e.Row, e.Col)); err != nil {
			return nil, matrixErrorf(opMapNonZero, err)
		}
	}

	return res, nil
}
