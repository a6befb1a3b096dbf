// SPDX-License-Identifier: MIT

// Package matrix: element-wise arithmetic.
//
// Purpose:
//   - Same-shape kernels (Add, Sub, Hadamard) and scalar broadcast.
//   - Promoted variants (...As) evaluated in a caller-chosen result type R
//     that must absorb every operand kind (numeric.ErrNarrowing otherwise).
//   - In-place variants that mutate only the receiver.
//
// Determinism & Performance:
//   - Single flat loop over the row-major buffer; one allocation per result.
//   - Inputs are never mutated by the non-InPlace forms.
package matrix

import (
	"fmt"

	"github.com/weige258/RMath/numeric"
)

// zipWith computes out[i] = f(R(a[i]), R(b[i])) after NotNil → SameShape.
func zipWith[R, A, B numeric.Number](tag string, a *Dense[A], b *Dense[B], f func(x, y R) R) (*Dense[R], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := newDense[R](a.r, a.c)
	for i := range out.data {
		out.data[i] = f(R(a.data[i]), R(b.data[i]))
	}

	return out, nil
}

// mapWith computes out[i] = f(R(m[i])).
func mapWith[R, A numeric.Number](tag string, m *Dense[A], f func(x R) R) (*Dense[R], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := newDense[R](m.r, m.c)
	for i, x := range m.data {
		out.data[i] = f(R(x))
	}

	return out, nil
}

func plus[T numeric.Number](x, y T) T  { return x + y }
func minus[T numeric.Number](x, y T) T { return x - y }
func times[T numeric.Number](x, y T) T { return x * y }

// ---------- same-type ----------

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	return zipWith(opAdd, a, b, plus[T])
}

// Sub returns a − b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	return zipWith(opSub, a, b, minus[T])
}

// Hadamard returns the element-wise product a ⊙ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Hadamard[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	return zipWith(opHadamard, a, b, times[T])
}

// HadamardN folds Hadamard left to right over two or more same-shape matrices.
// Errors: ErrTooFewOperands, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(k·r·c) for k operands.
func HadamardN[T numeric.Number](ms ...*Dense[T]) (*Dense[T], error) {
	if len(ms) < 2 {
		return nil, matrixErrorf(opHadamard, fmt.Errorf("got %d: %w", len(ms), ErrTooFewOperands))
	}
	for k, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(opHadamard, fmt.Errorf("operand %d: %w", k, err))
		}
		if err := ValidateSameShape(ms[0], m); err != nil {
			return nil, matrixErrorf(opHadamard, fmt.Errorf("operand %d: %w", k, err))
		}
	}
	out := ms[0].Clone()
	for _, m := range ms[1:] {
		for i := range out.data {
			out.data[i] *= m.data[i]
		}
	}

	return out, nil
}

// AddScalar returns m + s with s broadcast to every element.
func (m *Dense[T]) AddScalar(s T) *Dense[T] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] += s
	}

	return out
}

// SubScalar returns m − s with s broadcast to every element.
func (m *Dense[T]) SubScalar(s T) *Dense[T] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] -= s
	}

	return out
}

// ScalarSub returns s − m, the scalar-on-the-left broadcast.
func ScalarSub[T numeric.Number](s T, m *Dense[T]) (*Dense[T], error) {
	return mapWith(opSub, m, func(x T) T { return s - x })
}

// Scale returns m·s.
func (m *Dense[T]) Scale(s T) *Dense[T] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= s
	}

	return out
}

// DivScalar returns m / s.
// Errors: ErrDivideByZero when T is an integer type and s == 0.
func (m *Dense[T]) DivScalar(s T) (*Dense[T], error) {
	if s == 0 && !numeric.KindOf[T]().IsFloat() {
		return nil, matrixErrorf(opDiv, ErrDivideByZero)
	}

	return mapWith(opDiv, m, func(x T) T { return x / s })
}

// Neg returns −m.
func (m *Dense[T]) Neg() *Dense[T] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] = -out.data[i]
	}

	return out
}

// ---------- promoted (mixed-type) ----------

// AddAs returns a + b evaluated in R.
// R must absorb the kinds of A and B (numeric.ErrNarrowing otherwise).
//
//	sum, err := matrix.AddAs[float64](ints, floats)
func AddAs[R, A, B numeric.Number](a *Dense[A], b *Dense[B]) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return zipWith(opAdd, a, b, plus[R])
}

// SubAs returns a − b evaluated in R.
func SubAs[R, A, B numeric.Number](a *Dense[A], b *Dense[B]) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return zipWith(opSub, a, b, minus[R])
}

// HadamardAs returns a ⊙ b evaluated in R.
func HadamardAs[R, A, B numeric.Number](a *Dense[A], b *Dense[B]) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return zipWith(opHadamard, a, b, times[R])
}

// ScaleAs returns m·s evaluated in R (R absorbs A and S).
func ScaleAs[R, A, S numeric.Number](m *Dense[A], s S) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[S]()); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rs := R(s)

	return mapWith(opScale, m, func(x R) R { return x * rs })
}

// AddScalarAs returns m + s evaluated in R (R absorbs A and S).
func AddScalarAs[R, A, S numeric.Number](m *Dense[A], s S) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[S]()); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	rs := R(s)

	return mapWith(opAdd, m, func(x R) R { return x + rs })
}

// SubScalarAs returns m − s evaluated in R.
func SubScalarAs[R, A, S numeric.Number](m *Dense[A], s S) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[S]()); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rs := R(s)

	return mapWith(opSub, m, func(x R) R { return x - rs })
}

// ScalarSubAs returns s − m evaluated in R.
func ScalarSubAs[R, S, A numeric.Number](s S, m *Dense[A]) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[S](), numeric.KindOf[A]()); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rs := R(s)

	return mapWith(opSub, m, func(x R) R { return rs - x })
}

// DivScalarAs returns m / s evaluated in R.
// Errors: ErrDivideByZero when R is an integer type and s == 0.
func DivScalarAs[R, A, S numeric.Number](m *Dense[A], s S) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[S]()); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}
	rs := R(s)
	if rs == 0 && !numeric.KindOf[R]().IsFloat() {
		return nil, matrixErrorf(opDiv, ErrDivideByZero)
	}

	return mapWith(opDiv, m, func(x R) R { return x / rs })
}

// ---------- in-place (receiver only; unchanged on error) ----------

// AddInPlace performs m += o and returns m.
func (m *Dense[T]) AddInPlace(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return m, matrixErrorf(opAdd, err)
	}
	for i := range m.data {
		m.data[i] += o.data[i]
	}

	return m, nil
}

// SubInPlace performs m −= o and returns m.
func (m *Dense[T]) SubInPlace(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(m, o); err != nil {
		return m, matrixErrorf(opSub, err)
	}
	for i := range m.data {
		m.data[i] -= o.data[i]
	}

	return m, nil
}

// ScaleInPlace performs m *= s and returns m.
func (m *Dense[T]) ScaleInPlace(s T) *Dense[T] {
	for i := range m.data {
		m.data[i] *= s
	}

	return m
}

// MulInPlace replaces m with the matrix product m·o. Both operands must be
// square of the same order so that the shape of m is preserved.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (m unchanged).
// Complexity: O(n³).
func (m *Dense[T]) MulInPlace(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return m, matrixErrorf(opMul, err)
	}
	if err := ValidateSquare(o); err != nil {
		return m, matrixErrorf(opMul, err)
	}
	if err := ValidateSameShape(m, o); err != nil {
		return m, matrixErrorf(opMul, err)
	}
	copy(m.data, mulKernel[T](m, o).data)

	return m, nil
}
