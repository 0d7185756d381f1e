// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for rendering and equality.
package matrix_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rubynetix/sparse-matrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestFormat covers the null, vector, identity and mixed-width cases.
func TestFormat(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity[int](matrix.KindSparse, 3)
	require.NoError(t, err)

	tests := []struct {
		name string
		m    matrix.Matrix[int]
		want string
	}{
		{"null", mustCSR[int](t, 0, 0), "null\n"},
		{"vector", mustRows(t, matrix.KindSparse, [][]int{{10, 2, 3}}), "10 2 3\n"},
		{"identity", id, "1 0 0\n0 1 0\n0 0 1\n"},
		{"column widths", mustRows(t, matrix.KindSparse, [][]int{{100, 0, 0, 0}, {0, 1, 1, 0}, {0, -1, 0, 0}}),
			"100  0 0 0\n  0  1 1 0\n  0 -1 0 0\n"},
		{"tridiagonal", mustDiags(t, []int{1, 2}, []int{3, 4, 5}, []int{6, 7}), "3 1 0\n6 4 2\n0 7 5\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := matrix.Format(tc.m)
			require.Equal(t, tc.want, s)
			require.Equal(t, tc.want, fmt.Sprint(tc.m))

			lines := strings.SplitAfter(s, "\n")
			lines = lines[:len(lines)-1]
			require.Len(t, lines, max(tc.m.Rows(), 1))
			for _, l := range lines[1:] {
				require.Len(t, l, len(lines[0]))
			}
		})
	}
}

// TestFormat_Float renders float values with fmt's shortest representation.
func TestFormat_Float(t *testing.T) {
	t.Parallel()

	m := mustRows(t, matrix.KindSparse, [][]float64{{1.5, 0}, {0, -2}})
	require.Equal(t, "1.5  0\n  0 -2\n", matrix.Format(m))
}

// TestEqual covers shape, content and cross-kind comparisons.
func TestEqual(t *testing.T) {
	t.Parallel()

	tri := mustDiags(t, []int{1, 2}, []int{3, 4, 5}, []int{6, 7})
	same := mustRows(t, matrix.KindSparse, [][]int{{3, 1, 0}, {6, 4, 2}, {0, 7, 5}})
	diffValue := mustRows(t, matrix.KindSparse, [][]int{{3, 1, 0}, {6, 4, 2}, {0, 7, 6}})
	diffPos := mustRows(t, matrix.KindSparse, [][]int{{3, 1, 0}, {6, 4, 2}, {7, 0, 5}})
	wide := mustCSR[int](t, 3, 4)

	require.True(t, matrix.Equal[int](tri, same))
	require.True(t, matrix.Equal[int](same, tri))
	require.False(t, matrix.Equal(same, diffValue))
	require.False(t, matrix.Equal(same, diffPos))
	require.False(t, matrix.Equal[int](same, wide))
	require.True(t, matrix.Equal[int](nil, nil))
	require.False(t, matrix.Equal(same, nil))
	require.True(t, matrix.Equal[int](mustCSR[int](t, 0, 0), mustDiags[int](t, nil, nil, nil)))
}
