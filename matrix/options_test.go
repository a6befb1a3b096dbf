// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weige258/RMath/matrix"
)

// TestWithEpsilonPanics verifies strict validation in the option constructor.
func TestWithEpsilonPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithEpsilon(-1) })          // negative
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })  // NaN
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) }) // +Inf
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })        // exact comparisons allowed
}

// TestEpsilonLastWriterWins checks that later options override earlier ones.
func TestEpsilonLastWriterWins(t *testing.T) {
	x := mustFrom(t, 1, 1, 1.0)
	y := mustFrom(t, 1, 1, 1.01)

	require.True(t, matrix.AllClose(x, y, matrix.WithEpsilon(0), matrix.WithEpsilon(0.1)))
	require.False(t, matrix.AllClose(x, y, matrix.WithEpsilon(0.1), matrix.WithEpsilon(0)))
	require.False(t, matrix.AllClose(x, y, nil)) // nil setter ignored, default epsilon
}
