// SPDX-License-Identifier: MIT

package vector

import (
	"gonum.org/v1/gonum/mat"

	"github.com/weige258/RMath/numeric"
)

// ToVecDense copies v into a gonum column vector (float64 elements).
// gonum has no empty vectors, so an empty v yields ErrInvalidDimensions.
func ToVecDense[T numeric.Number](v *Vector[T]) (*mat.VecDense, error) {
	if v == nil {
		return nil, vectorErrorf("ToVecDense", ErrNilVector)
	}
	if len(v.data) == 0 {
		return nil, vectorErrorf("ToVecDense", ErrInvalidDimensions)
	}
	buf := make([]float64, len(v.data))
	for i, x := range v.data {
		buf[i] = float64(x)
	}

	return mat.NewVecDense(len(buf), buf), nil
}

// FromVecDense copies any gonum vector into a Vector[T], converting each
// element with Go conversion rules.
func FromVecDense[T numeric.Number](src mat.Vector) *Vector[T] {
	out := &Vector[T]{data: make([]T, src.Len())}
	for i := range out.data {
		out.data[i] = T(src.AtVec(i))
	}

	return out
}
