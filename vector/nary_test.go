// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weige258/RMath/numeric"
	"github.com/weige258/RMath/vector"
)

func TestDot(t *testing.T) {
	a := vector.Of(1, 2, 3)
	b := vector.Of(4, 5, 6)

	d, err := vector.Dot(a, b)
	require.NoError(t, err)
	require.Equal(t, 32, d)

	ba, err := vector.Dot(b, a)
	require.NoError(t, err)
	require.Equal(t, d, ba) // commutative

	// n-ary: Σ a[i]·b[i]·c[i]
	d3, err := vector.Dot(a, b, vector.Of(1, 0, 2))
	require.NoError(t, err)
	require.Equal(t, 4+0+36, d3)

	_, err = vector.Dot(a)
	require.ErrorIs(t, err, vector.ErrTooFewOperands)
	_, err = vector.Dot(a, vector.Of(1, 2))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.Dot(a, nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

func TestHadamard(t *testing.T) {
	h, err := vector.Hadamard(vector.Of(1, 2, 3), vector.Of(2, 2, 2), vector.Of(1, 0, -1))
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, -6}, h.Values())

	_, err = vector.Hadamard(vector.Of(1))
	require.ErrorIs(t, err, vector.ErrTooFewOperands)
	_, err = vector.Hadamard(vector.Of(1), vector.Of(1, 2))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestCat(t *testing.T) {
	c, err := vector.Cat(vector.Of(1, 2), vector.Of(3), vector.Of[int](), vector.Of(4, 5))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, c.Values())
	require.Equal(t, 5, c.Len()) // arity is the sum of operand arities

	e, err := vector.Cat[int]()
	require.NoError(t, err)
	require.Zero(t, e.Len())

	_, err = vector.Cat(vector.Of(1), nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

func TestMixedNary(t *testing.T) {
	a := vector.Of[int8](1, 2, 3)
	b := vector.Of[float32](0.5, 0.5, 2)
	c := vector.Of[uint16](2, 2, 2)

	d, err := vector.DotAs[float64](a, b, c)
	require.NoError(t, err)
	require.Equal(t, 1.0+2.0+12.0, d)

	_, err = vector.DotAs[int32](a, c)
	require.NoError(t, err)
	_, err = vector.DotAs[int16](a, c)
	require.ErrorIs(t, err, numeric.ErrNarrowing) // uint16 outranks int16

	h, err := vector.HadamardAs[float32](a, b)
	require.NoError(t, err)
	require.Equal(t, []float32{0.5, 1, 6}, h.Values())

	_, err = vector.HadamardAs[float32](a, vector.Of[float32](1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = vector.HadamardAs[float32](a)
	require.ErrorIs(t, err, vector.ErrTooFewOperands)

	cat, err := vector.CatAs[float64](a, vector.Of(0.25))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 0.25}, cat.Values())

	_, err = vector.CatAs[int8](a, c)
	require.ErrorIs(t, err, numeric.ErrNarrowing)

	var nilVec *vector.Vector[int8]
	_, err = vector.CatAs[int8](a, nilVec)
	require.ErrorIs(t, err, vector.ErrNilVector) // typed nil inside the interface
}
