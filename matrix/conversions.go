// SPDX-License-Identifier: MIT

// Package matrix: conversions between element types and to/from gonum.
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/weige258/RMath/numeric"
)

// Convert returns a copy of m with every element converted to R.
// Conversion follows Go conversion rules; narrowing is the caller's explicit choice.
// A nil matrix converts to nil. Complexity: O(r*c).
func Convert[R, T numeric.Number](m *Dense[T]) *Dense[R] {
	if m == nil {
		return nil
	}
	out := newDense[R](m.r, m.c)
	for i, x := range m.data {
		out.data[i] = R(x)
	}

	return out
}

// ToGonum copies m into a *mat.Dense (float64 elements).
// Errors: ErrNilMatrix; ErrInvalidDimensions for a zero-extent matrix,
// which gonum cannot represent.
func ToGonum[T numeric.Number](m *Dense[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}

	return mat.NewDense(m.r, m.c, Convert[float64](m).data), nil
}

// FromGonum copies any gonum matrix into a Dense[T], converting each element
// with Go conversion rules.
// Complexity: O(r*c).
func FromGonum[T numeric.Number](src mat.Matrix) *Dense[T] {
	r, c := src.Dims()
	out := newDense[T](r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = T(src.At(i, j))
		}
	}

	return out
}
