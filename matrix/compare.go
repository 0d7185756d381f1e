// SPDX-License-Identifier: MIT

package matrix

// Equal reports whether a and b have the same shape and the same elements.
// Both iterators run in the same canonical order, so the check walks them in
// lockstep and stops at the first difference. Stores of different kinds compare
// by content. Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(nnz(a) + nnz(b)).
func Equal[T Number](a, b Matrix[T]) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.NNZ() != b.NNZ() {
		return false
	}
	ia, ib := a.Iterator(), b.Iterator()
	for {
		ea, okA := ia.Next()
		eb, okB := ib.Next()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if ea != eb {
			return false
		}
	}
}
