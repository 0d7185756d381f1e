// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the tridiagonal store.
package matrix_test

import (
	"testing"

	"github.com/rubynetix/sparse-matrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestFromDiags_DetRecurrence builds upper=[1,2], main=[3,4,5], lower=[6,7]:
// D0=1, D1=3, D2=4·3−6·1·1=6, D3=5·6−7·2·3=−12.
func TestFromDiags_DetRecurrence(t *testing.T) {
	t.Parallel()

	m := mustDiags(t, []int{1, 2}, []int{3, 4, 5}, []int{6, 7})
	require.Equal(t, [][]int{
		{3, 1, 0},
		{6, 4, 2},
		{0, 7, 5},
	}, dense[int](t, m))
	require.Equal(t, -12, m.Det())

	d, err := matrix.Det[int](m)
	require.NoError(t, err)
	require.Equal(t, -12, d)
}

// TestTridiagonal_PutOffBandRejected writes at (0,2) and checks nothing changed.
func TestTridiagonal_PutOffBandRejected(t *testing.T) {
	t.Parallel()

	m := mustDiags(t, []int{1, 2}, []int{3, 4, 5}, []int{6, 7})
	before := m.Copy()

	changed, err := m.Put(0, 2, 9)
	require.ErrorIs(t, err, matrix.ErrBandViolation)
	require.False(t, changed)
	require.True(t, matrix.Equal[int](before, m))
	requireInvariants[int](t, m)

	// Zero off the band is a defined no-op, not an error.
	changed, err = m.Put(2, 0, 0)
	require.NoError(t, err)
	require.False(t, changed)
}

// TestFromDiags_LengthMismatch rejects inconsistent diagonal lengths.
func TestFromDiags_LengthMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		upper, main, lower []int
	}{
		{"short upper", []int{1}, []int{1, 2, 3}, []int{1, 2}},
		{"long lower", []int{1, 2}, []int{1, 2, 3}, []int{1, 2, 3}},
		{"off-diagonals without main", []int{1}, nil, []int{1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.FromDiags(tc.upper, tc.main, tc.lower)
			require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
		})
	}

	empty, err := matrix.FromDiags[int](nil, nil, nil)
	require.NoError(t, err)
	require.True(t, matrix.IsNull[int](empty))
}

// TestFromDiags_CopiesInput checks that the caller's slices are not aliased.
func TestFromDiags_CopiesInput(t *testing.T) {
	t.Parallel()

	main := []int{1, 2}
	m := mustDiags(t, []int{3}, main, []int{4})
	main[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	up, mn, lo := m.Diagonals()
	require.Equal(t, []int{3}, up)
	require.Equal(t, []int{1, 2}, mn)
	require.Equal(t, []int{4}, lo)
	mn[1] = 42
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

// TestTridiagonal_AtPolicy covers off-band, beyond-size and negative reads.
func TestTridiagonal_AtPolicy(t *testing.T) {
	t.Parallel()

	m := mustDiags(t, []int{1, 2}, []int{3, 4, 5}, []int{6, 7})
	tests := []struct {
		name    string
		r, c    int
		want    int
		wantErr error
	}{
		{"main", 1, 1, 4, nil},
		{"lower", 2, 1, 7, nil},
		{"upper", 0, 1, 1, nil},
		{"off band", 2, 0, 0, nil},
		{"beyond size", 5, 5, 0, nil},
		{"negative row", -1, 0, 0, matrix.ErrOutOfRange},
		{"negative col", 0, -1, 0, matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		v, err := m.At(tc.r, tc.c)
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr, tc.name)
			continue
		}
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, v, tc.name)
	}
}

// TestTridiagonal_GrowOnWrite writes beyond the size on the band.
func TestTridiagonal_GrowOnWrite(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewTridiagonal[int](2)
	require.NoError(t, err)

	// Zero beyond the size: no growth.
	changed, err := m.Put(4, 4, 0)
	require.NoError(t, err)
	require.False(t, changed)
	require.Equal(t, 2, m.Rows())

	changed, err = m.Put(4, 3, 8)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 5, m.Rows())
	require.Equal(t, 5, m.Cols())
	lo, mn, up := matrix.DiagLens(m)
	require.Equal(t, []int{4, 5, 4}, []int{lo, mn, up})
	v, err := m.At(4, 3)
	require.NoError(t, err)
	require.Equal(t, 8, v)
	require.Equal(t, 1, m.NNZ())
	requireInvariants[int](t, m)
}

// TestTridiagonal_Resize covers grow, truncate and the non-square rejection.
func TestTridiagonal_Resize(t *testing.T) {
	t.Parallel()

	m := mustDiags(t, []int{1, 2}, []int{3, 4, 5}, []int{6, 7})
	require.ErrorIs(t, m.Resize(3, 4), matrix.ErrNonSquare)
	require.ErrorIs(t, m.Resize(-1, -1), matrix.ErrInvalidDimensions)

	require.NoError(t, m.Resize(2, 2))
	require.Equal(t, [][]int{{3, 1}, {6, 4}}, dense[int](t, m))
	requireInvariants[int](t, m)

	require.NoError(t, m.Resize(4, 4))
	require.Equal(t, [][]int{
		{3, 1, 0, 0},
		{6, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, dense[int](t, m))
	requireInvariants[int](t, m)

	require.NoError(t, m.Resize(0, 3))
	require.True(t, matrix.IsNull[int](m))
	requireInvariants[int](t, m)
}

// TestTridiagonal_TransposeInPlace swaps lower and upper.
func TestTridiagonal_TransposeInPlace(t *testing.T) {
	t.Parallel()

	m := mustDiags(t, []int{1, 2}, []int{3, 4, 5}, []int{6, 7})
	m.TransposeInPlace()
	require.Equal(t, [][]int{
		{3, 6, 0},
		{1, 4, 7},
		{0, 2, 5},
	}, dense[int](t, m))
	m.TransposeInPlace()
	require.Equal(t, [][]int{
		{3, 1, 0},
		{6, 4, 2},
		{0, 7, 5},
	}, dense[int](t, m))
}

// TestTridiagonal_NNZCountsNonzeros ignores zero slots on the band.
func TestTridiagonal_NNZCountsNonzeros(t *testing.T) {
	t.Parallel()

	m := mustDiags(t, []int{0, 2}, []int{3, 0, 5}, []int{6, 0})
	require.Equal(t, 4, m.NNZ())
	_, err := m.Put(1, 1, 9)
	require.NoError(t, err)
	require.Equal(t, 5, m.NNZ())
	_, err = m.Put(1, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, m.NNZ())
}

// TestTridiagonal_CloneIsDeep mutates a clone and checks the source is untouched.
func TestTridiagonal_CloneIsDeep(t *testing.T) {
	t.Parallel()

	src := mustDiags(t, []int{1}, []int{2, 3}, []int{4})
	cp := src.Clone()
	_, err := cp.Put(0, 1, 10)
	require.NoError(t, err)
	cp.(*matrix.Tridiagonal[int]).TransposeInPlace()

	require.Equal(t, [][]int{{2, 1}, {4, 3}}, dense[int](t, src))
}
