// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weige258/RMath/numeric"
	"github.com/weige258/RMath/vector"
)

// TestAddSubMulDiv covers the same-type element-wise kernels.
func TestAddSubMulDiv(t *testing.T) {
	a := vector.Of(1, 2, 3)
	b := vector.Of(4, 5, 6)

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{5, 7, 9}, sum.Values())

	diff, err := vector.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 3}, diff.Values())

	prod, err := vector.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{4, 10, 18}, prod.Values())

	quo, err := vector.Div(b, a)
	require.NoError(t, err)
	require.Equal(t, []int{4, 2, 2}, quo.Values()) // integer division truncates

	// operands are never mutated
	require.Equal(t, []int{1, 2, 3}, a.Values())
	require.Equal(t, []int{4, 5, 6}, b.Values())
}

func TestAddInvariants(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c *vector.Vector[int]
	}{
		{"single", vector.Of(3), vector.Of(-4), vector.Of(9)},
		{"mixed signs", vector.Of(1, -2, 3), vector.Of(4, 4, -1), vector.Of(7, 0, 2)},
		{"zeros", vector.Of(0, 0, 0, 0), vector.Of(5, 6, 7, 8), vector.Of(-1, -1, -1, -1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ab, err := vector.Add(tc.a, tc.b)
			require.NoError(t, err)
			ba, err := vector.Add(tc.b, tc.a)
			require.NoError(t, err)
			require.True(t, vector.Equal(ab, ba)) // a+b == b+a

			left, err := vector.Add(ab, tc.c)
			require.NoError(t, err)
			bc, err := vector.Add(tc.b, tc.c)
			require.NoError(t, err)
			right, err := vector.Add(tc.a, bc)
			require.NoError(t, err)
			require.True(t, vector.Equal(left, right)) // (a+b)+c == a+(b+c)

			zero, err := vector.Sub(tc.a, tc.a)
			require.NoError(t, err)
			want, err := vector.New[int](tc.a.Len())
			require.NoError(t, err)
			require.True(t, vector.Equal(zero, want)) // a−a == 0
		})
	}
}

func TestBinaryErrors(t *testing.T) {
	_, err := vector.Add(vector.Of(1, 2), vector.Of(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.Sub(nil, vector.Of(1))
	require.ErrorIs(t, err, vector.ErrNilVector)

	_, err = vector.Div(vector.Of(1, 2), vector.Of(1, 0))
	require.ErrorIs(t, err, vector.ErrDivideByZero)

	// float division follows IEEE-754
	q, err := vector.Div(vector.Of(1.0), vector.Of(0.0))
	require.NoError(t, err)
	v, _ := q.At(0)
	assert.True(t, v > 1e300)
}

func TestScalarOps(t *testing.T) {
	v := vector.Of(2.0, 4.0, 6.0)

	require.Equal(t, []float64{3, 5, 7}, v.AddScalar(1).Values())
	require.Equal(t, []float64{1, 3, 5}, v.SubScalar(1).Values())
	require.Equal(t, []float64{1, 2, 3}, v.Scale(0.5).Values())
	require.Equal(t, []float64{-2, -4, -6}, v.Neg().Values())

	half, err := v.DivScalar(2)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, half.Values())

	_, err = vector.Of(1, 2).DivScalar(0)
	require.ErrorIs(t, err, vector.ErrDivideByZero)

	require.Equal(t, []float64{2, 4, 6}, v.Values()) // receiver unchanged
}

func TestUnsignedSubScalarWraps(t *testing.T) {
	v := vector.Of[uint8](5, 10)
	require.Equal(t, []uint8{0, 5}, v.SubScalar(5).Values())
	require.Equal(t, []uint8{255, 4}, v.SubScalar(6).Values()) // modular wrap, as Go does
}

func TestInPlace(t *testing.T) {
	v := vector.Of(1, 2, 3)
	out, err := v.AddInPlace(vector.Of(1, 1, 1))
	require.NoError(t, err)
	require.Same(t, v, out) // chaining returns receiver
	require.Equal(t, []int{2, 3, 4}, v.Values())

	_, err = v.SubInPlace(vector.Of(1, 1, 1))
	require.NoError(t, err)
	_, err = v.MulInPlace(vector.Of(2, 2, 2))
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, v.Values())
	_, err = v.DivInPlace(vector.Of(2, 4, 3))
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 2}, v.Values())

	// failures leave the receiver untouched
	_, err = v.AddInPlace(vector.Of(1, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = v.DivInPlace(vector.Of(1, 0, 1))
	require.ErrorIs(t, err, vector.ErrDivideByZero)
	_, err = v.DivScalarInPlace(0)
	require.ErrorIs(t, err, vector.ErrDivideByZero)
	require.Equal(t, []int{1, 1, 2}, v.Values())

	v.AddScalarInPlace(3).SubScalarInPlace(1).ScaleInPlace(10)
	require.Equal(t, []int{30, 30, 40}, v.Values())
	_, err = v.DivScalarInPlace(10)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 4}, v.Values())
}

// TestMixedTypePromotion covers the ...As family and the narrowing guard.
func TestMixedTypePromotion(t *testing.T) {
	ints := vector.Of[int32](1, 2, 3)
	floats := vector.Of[float32](0.5, 0.5, 0.5)

	sum, err := vector.AddAs[float32](ints, floats)
	require.NoError(t, err)
	require.Equal(t, numeric.Float32, sum.Kind())
	require.Equal(t, []float32{1.5, 2.5, 3.5}, sum.Values())

	wide, err := vector.MulAs[float64](ints, floats)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 1, 1.5}, wide.Values()) // wider R is allowed

	_, err = vector.AddAs[int32](ints, floats)
	require.ErrorIs(t, err, numeric.ErrNarrowing) // float operand cannot land in int32

	_, err = vector.SubAs[int16](ints, vector.Of[int8](1, 1, 1))
	require.ErrorIs(t, err, numeric.ErrNarrowing)

	d, err := vector.SubAs[int64](ints, vector.Of[uint32](1, 1, 1))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2}, d.Values())

	q, err := vector.DivAs[float64](vector.Of[int](1, 3), vector.Of[uint8](2, 4))
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.75}, q.Values()) // promoted before dividing

	_, err = vector.DivAs[int64](vector.Of[int](1), vector.Of[int8](0))
	require.ErrorIs(t, err, vector.ErrDivideByZero)

	_, err = vector.AddAs[float64](ints, vector.Of[float64](1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestMixedScalar(t *testing.T) {
	v := vector.Of[int16](2, 4)

	a, err := vector.AddScalarAs[float64](v, float32(0.5))
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 4.5}, a.Values())

	s, err := vector.SubScalarAs[int32](v, int8(1))
	require.NoError(t, err)
	require.Equal(t, []int32{1, 3}, s.Values())

	m, err := vector.MulScalarAs[float32](v, 1.5)
	require.ErrorIs(t, err, numeric.ErrNarrowing) // untyped 1.5 is float64, too wide for float32
	require.Nil(t, m)

	m64, err := vector.MulScalarAs[float64](v, 1.5)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, m64.Values())

	d, err := vector.DivScalarAs[float32](v, int8(4))
	require.NoError(t, err)
	require.Equal(t, []float32{0.5, 1}, d.Values())

	_, err = vector.DivScalarAs[int16](v, int8(0))
	require.ErrorIs(t, err, vector.ErrDivideByZero)

	_, err = vector.AddScalarAs[int8](v, int8(1))
	require.ErrorIs(t, err, numeric.ErrNarrowing)

	var nilVec *vector.Vector[int16]
	_, err = vector.AddScalarAs[int16](nilVec, int16(1))
	require.ErrorIs(t, err, vector.ErrNilVector)
}
