// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weige258/RMath/matrix"
	"github.com/weige258/RMath/numeric"
)

// TestNewInvalidDimensions ensures that New rejects non-positive dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[float64](0, 5)                  // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.New[int](5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.Identity[int](0)                     // empty identity
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestShapeQueries verifies Rows, Cols, Shape, Size, Bytes and Kind.
func TestShapeQueries(t *testing.T) {
	m, err := matrix.New[int16](3, 4)
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, 3, m.Rows())  // rows
	require.Equal(t, 4, m.Cols())  // cols
	require.Equal(t, 3, r)         // shape rows
	require.Equal(t, 4, c)         // shape cols
	require.Equal(t, 12, m.Size()) // Rows*Cols
	require.Equal(t, 24, m.Bytes()) // 12 × sizeof(int16)
	require.Equal(t, numeric.Int16, m.Kind())
	require.False(t, m.IsSquare())
}

func TestFromSliceAndRows(t *testing.T) {
	m, err := matrix.FromSlice(2, 2, []int{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.Rows2D())

	_, err = matrix.FromSlice(2, 2, []int{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrSizeMismatch) // 3 != 2*2

	n, err := matrix.FromRows(2, 3, [][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2, 3, 4, 5, 6}, n.Values())

	_, err = matrix.FromRows(3, 3, [][]float32{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrRowCountMismatch) // 2 rows for 3

	_, err = matrix.FromRows(2, 3, [][]float32{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, matrix.ErrSizeMismatch) // short second row

	f, err := matrix.Filled(2, 3, uint8(9))
	require.NoError(t, err)
	require.Equal(t, []uint8{9, 9, 9, 9, 9, 9}, f.Values())
}

// TestAtSetOutOfRange ensures At/Set and flat accessors never panic.
func TestAtSetOutOfRange(t *testing.T) {
	m := mustFrom(t, 2, 2, 1.0, 2, 3, 4)

	_, err := m.At(-1, 0)                         // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
	_, err = m.At(0, 2)                           // column past end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.AtFlat(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetFlat(-1, 0), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 30))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 30.0, v) // value stored
	v, err = m.AtFlat(2)
	require.NoError(t, err)
	require.Equal(t, 30.0, v) // flat index 2 is (1,0) in row-major order
}

func TestRowColExtraction(t *testing.T) {
	m := mustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 1, row.Rows()) // 1×Cols
	require.Equal(t, []int{4, 5, 6}, row.Values())

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, 1, col.Cols()) // Rows×1
	require.Equal(t, []int{3, 6}, col.Values())

	rv, err := m.RowVector(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, rv.Values())
	cv, err := m.ColVector(1)
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, cv.Values())

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.ColVector(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestIdentityLikeAndZerosLike(t *testing.T) {
	sq := mustFrom(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	id, err := matrix.IdentityLike(sq)
	require.NoError(t, err)
	require.True(t, matrix.Equal(id, mustIdentity[int](t, 3)))

	_, err = matrix.IdentityLike(mustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	z, err := matrix.ZerosLike(sq)
	require.NoError(t, err)
	require.Equal(t, make([]int, 9), z.Values())
}

func TestCloneIsDeep(t *testing.T) {
	m := mustFrom(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))
	require.True(t, matrix.Equal(m, mustFrom(t, 2, 2, 1, 2, 3, 4))) // original untouched
	require.Same(t, m, m.Fill(7))                                     // Fill chains
	require.Equal(t, []int{7, 7, 7, 7}, m.Values())
}

func TestAllIteratesRowMajor(t *testing.T) {
	m := mustFrom(t, 2, 2, 1, 2, 3, 4)
	var got []int
	for i, x := range m.All() {
		require.Equal(t, i+1, x)
		got = append(got, x)
	}
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestString(t *testing.T) {
	require.Equal(t, "[1, 2,\n 3, 4]", mustFrom(t, 2, 2, 1, 2, 3, 4).String())
	require.Equal(t, "[1.5, -2]", mustFrom(t, 1, 2, 1.5, -2).String())
	require.Equal(t, "[1,\n 2,\n 3]", mustFrom(t, 3, 1, 1, 2, 3).String())
}

func TestEqualCompareAllClose(t *testing.T) {
	a := mustFrom(t, 2, 2, 1, 2, 3, 4)
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, mustFrom(t, 1, 4, 1, 2, 3, 4))) // same data, different shape
	require.False(t, matrix.Equal(a, nil))

	require.Equal(t, 0, matrix.Compare(a, a.Clone()))
	require.Equal(t, 1, matrix.Compare(a, mustFrom(t, 1, 4, 9, 9, 9, 9)))  // more rows wins
	require.Equal(t, -1, matrix.Compare(a, mustFrom(t, 2, 2, 1, 2, 4, 0))) // lexicographic
	require.Equal(t, -1, matrix.Compare(nil, a))
	require.Equal(t, 1, matrix.Compare(a, nil))
	require.Equal(t, 0, matrix.Compare[int](nil, nil))

	x := mustFrom(t, 1, 2, 1.0, 2.0)
	y := mustFrom(t, 1, 2, 1.0+1e-12, 2.0)
	require.True(t, matrix.AllClose(x, y))
	require.False(t, matrix.AllClose(x, y, matrix.WithEpsilon(0)))
	require.True(t, matrix.AllClose(x, mustFrom(t, 1, 2, 1.05, 2.0), matrix.WithEpsilon(0.1)))
	require.False(t, matrix.AllClose(x, nil))
}

func TestConvert(t *testing.T) {
	m := mustFrom(t, 1, 3, 1.7, -1.7, 2.0)
	require.Equal(t, []int{1, -1, 2}, matrix.Convert[int](m).Values()) // truncation
	require.Equal(t, numeric.Float32, matrix.Convert[float32](m).Kind())
	require.Nil(t, matrix.Convert[int, float64](nil))
}
