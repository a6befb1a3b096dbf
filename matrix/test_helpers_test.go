// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weige258/RMath/matrix"
	"github.com/weige258/RMath/numeric"
)

// mustFrom builds an r×c matrix from a row-major literal or fails the test.
func mustFrom[T numeric.Number](tb testing.TB, r, c int, flat ...T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromSlice(r, c, flat)
	require.NoError(tb, err) // fixture shape must be valid

	return m
}

// mustIdentity builds I_n or fails the test.
func mustIdentity[T numeric.Number](tb testing.TB, n int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.Identity[T](n)
	require.NoError(tb, err)

	return m
}

// randomDense fills an r×c float64 matrix from a seeded source in [-1, 1).
// The same seed always yields the same matrix.
func randomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.New[float64](r, c)
	require.NoError(tb, err)
	for i := 0; i < r*c; i++ {
		require.NoError(tb, m.SetFlat(i, rng.Float64()*2-1))
	}

	return m
}

// diagDominant returns a random n×n matrix with a dominant diagonal, which
// is guaranteed non-singular.
func diagDominant(tb testing.TB, n int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	m := randomDense(tb, n, n, seed)
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		require.NoError(tb, err)
		require.NoError(tb, m.Set(i, i, v+float64(n)+1))
	}

	return m
}
