// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/weige258/RMath/numeric"
)

// Operand is any vector regardless of element type. It lets the mixed-type
// n-ary folds (DotAs, HadamardAs, CatAs) accept vectors of different element
// types in one call. The interface is sealed: only *Vector[T] implements it.
type Operand interface {
	Len() int
	Kind() numeric.Kind
	isNil() bool
	elem(i int) any
}

// Compile-time conformance.
var _ Operand = (*Vector[int])(nil)

func (v *Vector[T]) isNil() bool    { return v == nil }
func (v *Vector[T]) elem(i int) any { return v.data[i] }

// sameArity validates an n-ary fold: at least minOps operands, none nil,
// all with the arity of the first one. It returns that arity.
func sameArity(n, minOps int, isNil func(k int) bool, length func(k int) int) (int, error) {
	if n < minOps {
		return 0, fmt.Errorf("got %d: %w", n, ErrTooFewOperands)
	}
	for k := 0; k < n; k++ {
		if isNil(k) {
			return 0, fmt.Errorf("operand %d: %w", k, ErrNilVector)
		}
	}
	if n == 0 {
		return 0, nil
	}
	want := length(0)
	for k := 1; k < n; k++ {
		if got := length(k); got != want {
			return 0, fmt.Errorf("operand %d len %d, want %d: %w", k, got, want, ErrDimensionMismatch)
		}
	}

	return want, nil
}

// validateVectors applies sameArity to same-type operands.
func validateVectors[T numeric.Number](vs []*Vector[T], minOps int) (int, error) {
	return sameArity(len(vs), minOps,
		func(k int) bool { return vs[k] == nil },
		func(k int) int { return len(vs[k].data) })
}

// validateOperands applies sameArity to mixed-type operands.
func validateOperands(vs []Operand, minOps int) (int, error) {
	return sameArity(len(vs), minOps,
		func(k int) bool { return vs[k] == nil || vs[k].isNil() },
		func(k int) int { return vs[k].Len() })
}

// kindsOf lists the element kinds of the operands, in order.
func kindsOf(vs []Operand) []numeric.Kind {
	return lo.Map(vs, func(o Operand, _ int) numeric.Kind { return o.Kind() })
}

// Dot returns Σᵢ v₀[i]·v₁[i]·…·vₖ[i] over two or more equal-arity vectors.
// With exactly two operands it is the ordinary dot product.
//
// Implementation:
//   - Stage 1: validate operand count (≥2), nil-ness and equal arity before any read.
//   - Stage 2: for each i, fold the product of the i-th elements left to right,
//     then accumulate into the sum.
//
// Errors:
//   - ErrTooFewOperands, ErrNilVector, ErrDimensionMismatch.
//
// Complexity: O(N·k) for k operands.
func Dot[T numeric.Number](vs ...*Vector[T]) (T, error) {
	n, err := validateVectors(vs, 2)
	if err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	var sum T
	for i := 0; i < n; i++ {
		p := vs[0].data[i]
		for _, v := range vs[1:] {
			p *= v.data[i]
		}
		sum += p
	}

	return sum, nil
}

// Hadamard returns the element-wise product of two or more equal-arity vectors.
// Errors: ErrTooFewOperands, ErrNilVector, ErrDimensionMismatch.
// Complexity: O(N·k).
func Hadamard[T numeric.Number](vs ...*Vector[T]) (*Vector[T], error) {
	if _, err := validateVectors(vs, 2); err != nil {
		return nil, vectorErrorf(opHadamard, err)
	}
	out := vs[0].Clone()
	for _, v := range vs[1:] {
		for i := range out.data {
			out.data[i] *= v.data[i]
		}
	}

	return out, nil
}

// Cat concatenates the given vectors in order. Arity of the result is the sum
// of the operands' arities; zero operands yield an empty vector.
// Errors: ErrNilVector.
func Cat[T numeric.Number](vs ...*Vector[T]) (*Vector[T], error) {
	for k, v := range vs {
		if v == nil {
			return nil, vectorErrorf(opCat, fmt.Errorf("operand %d: %w", k, ErrNilVector))
		}
	}
	total := lo.SumBy(vs, func(v *Vector[T]) int { return len(v.data) })
	out := &Vector[T]{data: make([]T, 0, total)}
	for _, v := range vs {
		out.data = append(out.data, v.data...)
	}

	return out, nil
}

// ---------- mixed-type n-ary folds ----------

// castAt converts the i-th element of o into R.
func castAt[R numeric.Number](o Operand, i int) (R, error) {
	return numeric.Cast[R](o.elem(i))
}

// DotAs is Dot over operands of possibly different element types, evaluated in R.
// R must absorb every operand kind (numeric.ErrNarrowing otherwise).
func DotAs[R numeric.Number](vs ...Operand) (R, error) {
	n, err := validateOperands(vs, 2)
	if err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	if err = numeric.CheckResult[R](kindsOf(vs)...); err != nil {
		return 0, vectorErrorf(opDot, err)
	}
	var sum, p, x R
	for i := 0; i < n; i++ {
		p = 1
		for _, v := range vs {
			if x, err = castAt[R](v, i); err != nil {
				return 0, vectorErrorf(opDot, err)
			}
			p *= x
		}
		sum += p
	}

	return sum, nil
}

// HadamardAs is Hadamard over operands of possibly different element types,
// evaluated in R.
func HadamardAs[R numeric.Number](vs ...Operand) (*Vector[R], error) {
	n, err := validateOperands(vs, 2)
	if err != nil {
		return nil, vectorErrorf(opHadamard, err)
	}
	if err = numeric.CheckResult[R](kindsOf(vs)...); err != nil {
		return nil, vectorErrorf(opHadamard, err)
	}
	out := &Vector[R]{data: make([]R, n)}
	var x R
	for i := range out.data {
		out.data[i] = 1
		for _, v := range vs {
			if x, err = castAt[R](v, i); err != nil {
				return nil, vectorErrorf(opHadamard, err)
			}
			out.data[i] *= x
		}
	}

	return out, nil
}

// CatAs concatenates vectors of possibly different element types and
// arities into one vector of R, preserving operand order.
func CatAs[R numeric.Number](vs ...Operand) (*Vector[R], error) {
	for k, v := range vs {
		if v == nil || v.isNil() {
			return nil, vectorErrorf(opCat, fmt.Errorf("operand %d: %w", k, ErrNilVector))
		}
	}
	if len(vs) > 0 {
		if err := numeric.CheckResult[R](kindsOf(vs)...); err != nil {
			return nil, vectorErrorf(opCat, err)
		}
	}
	out := &Vector[R]{data: make([]R, 0, lo.SumBy(vs, Operand.Len))}
	for _, v := range vs {
		for i := 0; i < v.Len(); i++ {
			x, err := castAt[R](v, i)
			if err != nil {
				return nil, vectorErrorf(opCat, err)
			}
			out.data = append(out.data, x)
		}
	}

	return out, nil
}
