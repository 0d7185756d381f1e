// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the store and algebra tests.
//   • Provide exact reference kernels (dense Laplace expansion) independent of the
//     code under test.

package matrix_test

import (
	"testing"

	"github.com/rubynetix/sparse-matrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use it to force the generic paths (e.g. Bareiss instead of the tridiagonal
// recurrence) in code that switches on *CSR / *Tridiagonal.
type hide[T matrix.Number] struct{ matrix.Matrix[T] }

// mustCSR allocates an r×c *CSR or fails the test.
func mustCSR[T matrix.Number](t *testing.T, r, c int) *matrix.CSR[T] {
	t.Helper()
	m, err := matrix.NewCSR[T](r, c)
	require.NoError(t, err)

	return m
}

// mustRows builds a matrix of the given kind from a row-major literal or fails the test.
func mustRows[T matrix.Number](t *testing.T, kind matrix.Kind, rows [][]T) matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(kind, rows)
	require.NoError(t, err)

	return m
}

// mustDiags builds a *Tridiagonal from (upper, main, lower) or fails the test.
func mustDiags[T matrix.Number](t *testing.T, upper, main, lower []T) *matrix.Tridiagonal[T] {
	t.Helper()
	m, err := matrix.FromDiags(upper, main, lower)
	require.NoError(t, err)

	return m
}

// requireInvariants fails the test if the store breaks a structural invariant.
func requireInvariants[T matrix.Number](t *testing.T, m matrix.Matrix[T]) {
	t.Helper()
	require.NoError(t, matrix.CheckInvariants(m))
}

// dense materializes m with At (not the iterator), as an independent view.
func dense[T matrix.Number](t *testing.T, m matrix.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// laplaceDet is the exact reference determinant by first-row cofactor expansion.
// Exponential; keep n small.
func laplaceDet(a [][]int64) int64 {
	n := len(a)
	if n == 0 {
		return 1
	}
	if n == 1 {
		return a[0][0]
	}
	var det int64
	sign := int64(1)
	for j := 0; j < n; j++ {
		sub := make([][]int64, 0, n-1)
		for i := 1; i < n; i++ {
			row := make([]int64, 0, n-1)
			row = append(row, a[i][:j]...)
			row = append(row, a[i][j+1:]...)
			sub = append(sub, row)
		}
		det += sign * a[0][j] * laplaceDet(sub)
		sign = -sign
	}

	return det
}

// denseMul is the reference product of two dense matrices.
func denseMul(a, b [][]int64) [][]int64 {
	out := make([][]int64, len(a))
	for i := range a {
		out[i] = make([]int64, len(b[0]))
		for j := range b[0] {
			for k := range b {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}
