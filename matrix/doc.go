// Package matrix offers sparse matrix storage and exact arithmetic over it.
//
// The matrix package provides:
//
//   - CSR, a compressed-sparse-row store (three parallel arrays) with O(log k)
//     lookup and ordered insert/delete under sparsity.
//   - Tridiagonal, a banded store for |row-col| <= 1 with O(1) transpose and an
//     O(n) determinant recurrence. Nonzero writes outside the band are rejected
//     with ErrBandViolation.
//   - Iterator and All, a row-major traversal over stored nonzeros shared by
//     both stores.
//   - An algebra layer built only on the Matrix contract: Add, Sub, Mul, Pow,
//     scalar operations through Operand, Det, Transpose, minors, adjugate,
//     fraction-free Inverse, Rank, predicates, Equal and Format.
//   - Factories keyed by the closed Kind enum, including seeded Random generation.
//
// Element types are signed integers or floats. Integer instantiations are exact:
// no kernel divides except the fraction-free elimination, whose divisions are exact.
//
// See the examples in this package for usage patterns.
package matrix
