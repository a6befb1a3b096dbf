// SPDX-License-Identifier: MIT

// Package matrix: row/column reductions.
//
// Purpose:
//   - RowSums / ColSums in the element type T.
//   - RowMeans / ColMeans in float64, so integer matrices average exactly.
//
// Determinism:
//   - Fixed i-then-j loop order; sums accumulate left to right.
package matrix

import (
	"github.com/samber/lo"

	"github.com/weige258/RMath/numeric"
	"github.com/weige258/RMath/vector"
)

// rowSums is the unchecked kernel behind RowSums.
func rowSums[T numeric.Number](m *Dense[T]) []T {
	return lo.Times(m.r, func(i int) T {
		return lo.Sum(m.data[i*m.c : (i+1)*m.c])
	})
}

// colSums is the unchecked kernel behind ColSums.
func colSums[T numeric.Number](m *Dense[T]) []T {
	out := make([]T, m.c)
	for i := 0; i < m.r; i++ {
		for j, x := range m.data[i*m.c : (i+1)*m.c] {
			out[j] += x
		}
	}

	return out
}

// RowSums returns a vector of length Rows whose i-th element is Σⱼ m[i][j].
// Errors: ErrNilMatrix.
func RowSums[T numeric.Number](m *Dense[T]) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opStatistics, err)
	}

	return vector.Of(rowSums(m)...), nil
}

// ColSums returns a vector of length Cols whose j-th element is Σᵢ m[i][j].
// Errors: ErrNilMatrix.
func ColSums[T numeric.Number](m *Dense[T]) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opStatistics, err)
	}

	return vector.Of(colSums(m)...), nil
}

// RowMeans returns the per-row arithmetic mean in float64.
// Errors: ErrNilMatrix, ErrInvalidDimensions (zero columns).
func RowMeans[T numeric.Number](m *Dense[T]) (*vector.Vector[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opStatistics, err)
	}
	if m.c == 0 {
		return nil, matrixErrorf(opStatistics, ErrInvalidDimensions)
	}
	f := Convert[float64](m)

	return vector.Of(rowSums(f)...).ScaleInPlace(1 / float64(m.c)), nil
}

// ColMeans returns the per-column arithmetic mean in float64.
// Errors: ErrNilMatrix, ErrInvalidDimensions (zero rows).
func ColMeans[T numeric.Number](m *Dense[T]) (*vector.Vector[float64], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opStatistics, err)
	}
	if m.r == 0 {
		return nil, matrixErrorf(opStatistics, ErrInvalidDimensions)
	}
	f := Convert[float64](m)

	return vector.Of(colSums(f)...).ScaleInPlace(1 / float64(m.r)), nil
}
