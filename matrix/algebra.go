// SPDX-License-Identifier: MIT

// Package matrix - algebra layer over the Matrix contract.
//
// Purpose:
//   - Element-wise Add/Sub, scalar AddScalar/MulScalar, Mul, Pow, Transpose and
//     the reductions (Trace, Sum, Diagonal), all built only from
//     Rows/Cols/At/Put/NNZ/Iterator.
//   - Operand resolves "matrix or scalar" once, so Plus/Minus/Times never
//     inspect dynamic types of their right-hand side.
//
// Contract:
//   - Inputs are never mutated; every operation returns a new matrix.
//   - Errors are sentinels wrapped as "<Op>: <validator>: <sentinel>".
//
// Result kinds:
//   - Add/Sub/AddScalar/MulScalar keep the kind of the left operand, except that a
//     tridiagonal left operand meeting a non-tridiagonal right operand is promoted
//     to CSR first (the sum may leave the band).
//   - Mul and Pow always return *CSR; Transpose keeps the kind.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddScalar = "AddScalar"
	opMulScalar = "MulScalar"
	opMul       = "Mul"
	opPow       = "Pow"
	opTranspose = "Transpose"
	opTrace     = "Trace"
	opSum       = "Sum"
	opDiagonal  = "Diagonal"
	opBandOf    = "BandOf"
	opToCSR     = "ToCSR"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Operand ----------

// Operand is the right-hand side of Plus, Minus and Times: either a scalar or
// a matrix. Build it with Scalar or Of.
type Operand[T Number] struct {
	value T
	m     Matrix[T]
}

// Scalar wraps a plain value as an Operand.
func Scalar[T Number](v T) Operand[T] { return Operand[T]{value: v} }

// Of wraps a matrix as an Operand.
func Of[T Number](m Matrix[T]) Operand[T] { return Operand[T]{m: m} }

// IsScalar reports whether o holds a scalar.
func (o Operand[T]) IsScalar() bool { return o.m == nil }

// Value returns the scalar held by o (zero for matrix operands).
func (o Operand[T]) Value() T { return o.value }

// Matrix returns the matrix held by o (nil for scalar operands).
func (o Operand[T]) Matrix() Matrix[T] { return o.m }

// Plus returns m + o: AddScalar for a scalar operand, Add for a matrix operand.
func Plus[T Number](m Matrix[T], o Operand[T]) (Matrix[T], error) {
	if o.IsScalar() {
		return AddScalar(m, o.value)
	}

	return Add(m, o.m)
}

// Minus returns m - o: AddScalar(m, -v) for a scalar operand, Sub for a matrix operand.
func Minus[T Number](m Matrix[T], o Operand[T]) (Matrix[T], error) {
	if o.IsScalar() {
		return AddScalar(m, -o.value)
	}

	return Sub(m, o.m)
}

// Times returns m · o: MulScalar for a scalar operand, Mul for a matrix operand.
func Times[T Number](m Matrix[T], o Operand[T]) (Matrix[T], error) {
	if o.IsScalar() {
		return MulScalar(m, o.value)
	}

	return Mul(m, o.m)
}

// ---------- element-wise ----------

// Add returns the element-wise sum a + b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): clone a (promoting a tridiagonal a to CSR when b is not tridiagonal).
// Stage 3 (Execute): fold b's iterator into the clone with At/Put.
// Complexity: O(nnz(b) · cost(Put)).
func Add[T Number](a, b Matrix[T]) (Matrix[T], error) {
	return foldInto(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference a - b. Same stages as Add.
func Sub[T Number](a, b Matrix[T]) (Matrix[T], error) {
	return foldInto(opSub, a, b, func(x, y T) T { return x - y })
}

// foldInto is the shared Add/Sub kernel.
func foldInto[T Number](op string, a, b Matrix[T], f func(x, y T) T) (Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	res, err := resultFor(a, b)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	for e := range All(b) {
		cur, err := res.At(e.Row, e.Col)
		if err != nil {
			return nil, matrixErrorf(op, err)
		}
		if _, err = res.Put(e.Row, e.Col, f(cur, e.Value)); err != nil {
			return nil, matrixErrorf(op, err)
		}
	}

	return res, nil
}

// resultFor picks the storage for a binary element-wise result seeded with a.
func resultFor[T Number](a, b Matrix[T]) (Matrix[T], error) {
	if a.Kind() == KindTridiagonal && b.Kind() != KindTridiagonal {
		return ToCSR(a)
	}

	return a.Clone(), nil
}

// AddScalar returns m with v added to every addressable cell: every cell of a
// CSR matrix, every band cell of a tridiagonal one (off-band cells stay zero).
// Complexity: O(rows·cols · cost(Put)) for CSR, O(n) for tridiagonal.
func AddScalar[T Number](m Matrix[T], v T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddScalar, err)
	}
	res := m.Clone()
	var (
		i, j int
		cur  T
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		lo, hi := 0, m.Cols()
		if m.Kind() == KindTridiagonal {
			lo, hi = max(i-1, 0), min(i+2, m.Cols())
		}
		for j = lo; j < hi; j++ {
			cur, _ = m.At(i, j) // safe: bounds ensured
			if _, err = res.Put(i, j, cur+v); err != nil {
				return nil, matrixErrorf(opAddScalar, err)
			}
		}
	}

	return res, nil
}

// MulScalar returns m with every stored value multiplied by v.
// Only the iterator is walked: zero cells stay zero. Complexity: O(nnz · cost(Put)).
func MulScalar[T Number](m Matrix[T], v T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulScalar, err)
	}
	res := m.Clone()
	for e := range All(m) {
		if _, err := res.Put(e.Row, e.Col, e.Value*v); err != nil {
			return nil, matrixErrorf(opMulScalar, err)
		}
	}

	return res, nil
}

// ---------- products ----------

// Mul performs standard matrix multiplication a × b and returns a CSR result.
// Stage 1 (Validate): nil-checks and a.Cols == b.Rows.
// Stage 2 (Execute): triple loop over At; each result row is written in
// ascending column order, so every insert lands at the tail of the arrays.
// Complexity: O(r·n·c · log k) time, O(nnz(result)) memory.
func Mul[T Number](a, b Matrix[T]) (Matrix[T], error) {
	res, err := mulCSR(a, b)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func mulCSR[T Number](a, b Matrix[T]) (*CSR[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewCSR[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  T
		sum     T
		zero    T
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = zero
			for k = 0; k < inner; k++ {
				av, _ = a.At(i, k) // safe: bounds ensured
				if av == zero {
					continue
				}
				bv, _ = b.At(k, j) // safe: bounds ensured
				sum += av * bv
			}
			_, _ = res.Put(i, j, sum) // safe: within bounds
		}
	}

	return res, nil
}

// Pow returns m^k for a square m and an integer exponent k >= 2.
//
// Implementation:
//   - Binary exponentiation: square the running base and multiply it into the
//     result for each set bit of k. O(log k) products of O(n^3) each.
//
// Errors:
//   - ErrNonSquare, ErrInvalidExponent (k < 2), ErrNilMatrix.
func Pow[T Number](m Matrix[T], k int) (Matrix[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k < 2 {
		return nil, matrixErrorf(opPow, fmt.Errorf("k=%d: %w", k, ErrInvalidExponent))
	}
	var (
		result Matrix[T]
		base   = m
		err    error
	)
	for k > 0 {
		if k&1 == 1 {
			if result == nil {
				result = base
			} else if result, err = Mul(result, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}
	if result == m {
		return m.Clone(), nil
	}

	return result, nil
}

// ---------- structure ----------

// Transpose returns mᵀ.
//   - *Tridiagonal: clone + TransposeInPlace, O(n).
//   - anything else: a CSR built by a counting pass over the iterator, O(nnz + cols).
func Transpose[T Number](m Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if t, ok := m.(*Tridiagonal[T]); ok {
		c := t.Copy()
		c.TransposeInPlace()

		return c, nil
	}

	return transposeCSR(m), nil
}

// transposeCSR buckets the entries by column. Iteration is row-major, so each
// bucket (a row of the result) receives its columns in ascending order.
func transposeCSR[T Number](m Matrix[T]) *CSR[T] {
	rows, cols := m.Cols(), m.Rows()
	nnz := m.NNZ()
	idx := &csrIndex[T]{
		values:    make([]T, nnz),
		colIndex:  make([]int, nnz),
		rowOffset: make([]int, rows+1),
	}
	for e := range All(m) {
		idx.rowOffset[e.Col+1]++
	}
	for r := 0; r < rows; r++ {
		idx.rowOffset[r+1] += idx.rowOffset[r]
	}
	next := make([]int, rows)
	copy(next, idx.rowOffset[:rows])
	for e := range All(m) {
		p := next[e.Col]
		idx.values[p] = e.Value
		idx.colIndex[p] = e.Row
		next[e.Col]++
	}

	return &CSR[T]{r: rows, c: cols, idx: idx}
}

// ToCSR converts any matrix into an independent *CSR with the same contents.
// Entries arrive in row-major order, so the arrays are appended without shifting.
func ToCSR[T Number](m Matrix[T]) (*CSR[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToCSR, err)
	}
	if c, ok := m.(*CSR[T]); ok {
		return c.Copy(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	idx := &csrIndex[T]{
		values:    make([]T, 0, m.NNZ()),
		colIndex:  make([]int, 0, m.NNZ()),
		rowOffset: make([]int, rows+1),
	}
	for e := range All(m) {
		idx.values = append(idx.values, e.Value)
		idx.colIndex = append(idx.colIndex, e.Col)
		idx.rowOffset[e.Row+1]++
	}
	for r := 0; r < rows; r++ {
		idx.rowOffset[r+1] += idx.rowOffset[r]
	}

	return &CSR[T]{r: rows, c: cols, idx: idx}, nil
}

// BandOf extracts the tridiagonal band of a square matrix; everything outside
// |row-col| <= 1 is dropped.
func BandOf[T Number](m Matrix[T]) (*Tridiagonal[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opBandOf, err)
	}
	t, err := NewTridiagonal[T](m.Rows())
	if err != nil {
		return nil, matrixErrorf(opBandOf, err)
	}
	for e := range All(m) {
		if t.OnBand(e.Row, e.Col) {
			_, _ = t.Put(e.Row, e.Col, e.Value) // safe: on band, inside size
		}
	}

	return t, nil
}

// ---------- reductions ----------

// Trace returns the sum of the main diagonal of a square matrix.
func Trace[T Number](m Matrix[T]) (T, error) {
	var sum T
	if err := ValidateSquareNonNil(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	for e := range All(m) {
		if e.Row == e.Col {
			sum += e.Value
		}
	}

	return sum, nil
}

// Sum returns the sum of every element.
func Sum[T Number](m Matrix[T]) (T, error) {
	var sum T
	if err := ValidateNotNil(m); err != nil {
		return sum, matrixErrorf(opSum, err)
	}
	for e := range All(m) {
		sum += e.Value
	}

	return sum, nil
}

// Diagonal returns the main-diagonal values (length min(rows, cols)).
func Diagonal[T Number](m Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	d := make([]T, min(m.Rows(), m.Cols()))
	for e := range All(m) {
		if e.Row == e.Col {
			d[e.Row] = e.Value
		}
	}

	return d, nil
}
