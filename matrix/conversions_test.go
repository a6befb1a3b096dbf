// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/weige258/RMath/matrix"
	"github.com/weige258/RMath/ranges"
)

func TestGonumRoundTrip(t *testing.T) {
	m := mustFrom[int64](t, 2, 3, 1, -2, 3, 4, 5, -6)

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, -6.0, g.At(1, 2))

	back := matrix.FromGonum[int64](g)
	require.True(t, matrix.Equal(m, back))

	_, err = matrix.ToGonum[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	empty, err := m.Slice(ranges.New(0, 0), ranges.New(0, 3))
	require.NoError(t, err)
	_, err = matrix.ToGonum(empty)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // gonum has no empty matrices
}

// TestMulAgainstGonum cross-checks the product kernel with mat.Dense.Mul.
func TestMulAgainstGonum(t *testing.T) {
	a := randomDense(t, 4, 6, 11)
	b := randomDense(t, 6, 3, 12)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ga, gb)

	require.Empty(t, cmp.Diff(want.RawMatrix().Data, got.Values(), cmpopts.EquateApprox(0, 1e-12)))

	// transposed view goes through the generic mat.Matrix path
	tr := matrix.FromGonum[float64](ga.T())
	mt, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(mt, tr))
}
