// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/weige258/RMath/numeric"
)

// binaryOp identifies an element-wise arithmetic operator.
type binaryOp uint8

const (
	opPlus binaryOp = iota
	opMinus
	opTimes
	opQuo
)

// tag returns the public operation name used in error wrapping.
func (op binaryOp) tag() string {
	switch op {
	case opPlus:
		return opAdd
	case opMinus:
		return opSub
	case opTimes:
		return opMul
	default:
		return opDiv
	}
}

// apply evaluates x op y in R.
func apply[R numeric.Number](op binaryOp, x, y R) R {
	switch op {
	case opPlus:
		return x + y
	case opMinus:
		return x - y
	case opTimes:
		return x * y
	default:
		return x / y
	}
}

// checkDivisors rejects a zero divisor when R is an integer type; Go would
// panic on it, and a float result would be ±Inf/NaN by IEEE-754 instead.
func checkDivisors[R numeric.Number](divisors []R) error {
	if numeric.KindOf[R]().IsFloat() {
		return nil
	}
	for i, d := range divisors {
		if d == 0 {
			return fmt.Errorf("element %d: %w", i, ErrDivideByZero)
		}
	}

	return nil
}

// elementwise computes out[i] = R(a[i]) op R(b[i]) into a fresh vector.
//
// Implementation:
//   - Stage 1: validatePair (nil, arity).
//   - Stage 2: convert both operands into R; reject integer zero divisors.
//   - Stage 3: single flat loop 0..N-1.
//
// Behavior highlights:
//   - Inputs are never mutated; one result allocation (plus a divisor buffer for opQuo).
//
// Complexity: O(N).
func elementwise[R, A, B numeric.Number](op binaryOp, a *Vector[A], b *Vector[B]) (*Vector[R], error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(op.tag(), err)
	}
	n := len(a.data)
	rhs := make([]R, n)
	for i, y := range b.data {
		rhs[i] = R(y)
	}
	if op == opQuo {
		if err := checkDivisors(rhs); err != nil {
			return nil, vectorErrorf(op.tag(), err)
		}
	}
	out := &Vector[R]{data: make([]R, n)}
	for i, x := range a.data {
		out.data[i] = apply(op, R(x), rhs[i])
	}

	return out, nil
}

// broadcast computes out[i] = R(v[i]) op R(s) into a fresh vector.
func broadcast[R, A, S numeric.Number](op binaryOp, v *Vector[A], s S) (*Vector[R], error) {
	if v == nil {
		return nil, vectorErrorf(op.tag(), ErrNilVector)
	}
	rs := R(s)
	if op == opQuo {
		if err := checkDivisors([]R{rs}); err != nil {
			return nil, vectorErrorf(op.tag(), err)
		}
	}
	out := &Vector[R]{data: make([]R, len(v.data))}
	for i, x := range v.data {
		out.data[i] = apply(op, R(x), rs)
	}

	return out, nil
}

// ---------- same-type arithmetic ----------

// Add returns a + b element-wise. Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(N).
func Add[T numeric.Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise[T](opPlus, a, b)
}

// Sub returns a − b element-wise. Errors: ErrNilVector, ErrDimensionMismatch.
func Sub[T numeric.Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise[T](opMinus, a, b)
}

// Mul returns the element-wise product a ⊙ b (the binary form of Hadamard).
func Mul[T numeric.Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise[T](opTimes, a, b)
}

// Div returns a / b element-wise.
// Errors: ErrNilVector, ErrDimensionMismatch, ErrDivideByZero (integer T only).
func Div[T numeric.Number](a, b *Vector[T]) (*Vector[T], error) {
	return elementwise[T](opQuo, a, b)
}

// AddScalar returns v + s with s broadcast to every element.
func (v *Vector[T]) AddScalar(s T) *Vector[T] {
	out := v.Clone()
	for i := range out.data {
		out.data[i] += s
	}

	return out
}

// SubScalar returns v − s with s broadcast to every element.
func (v *Vector[T]) SubScalar(s T) *Vector[T] { return v.AddScalar(-s) }

// Scale returns v·s.
func (v *Vector[T]) Scale(s T) *Vector[T] {
	out := v.Clone()
	for i := range out.data {
		out.data[i] *= s
	}

	return out
}

// DivScalar returns v / s. Errors: ErrDivideByZero when T is an integer type and s == 0.
func (v *Vector[T]) DivScalar(s T) (*Vector[T], error) {
	return broadcast[T](opQuo, v, s)
}

// Neg returns the element-wise additive inverse −v.
func (v *Vector[T]) Neg() *Vector[T] {
	out := v.Clone()
	for i := range out.data {
		out.data[i] = -out.data[i]
	}

	return out
}

// ---------- in-place (receiver only; unchanged on error) ----------

// inPlace applies v[i] = v[i] op o[i] after validating o.
func (v *Vector[T]) inPlace(op binaryOp, o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(v, o); err != nil {
		return v, vectorErrorf(op.tag(), err)
	}
	if op == opQuo {
		if err := checkDivisors(o.data); err != nil {
			return v, vectorErrorf(op.tag(), err)
		}
	}
	for i := range v.data {
		v.data[i] = apply(op, v.data[i], o.data[i])
	}

	return v, nil
}

// AddInPlace performs v += o and returns v for chaining.
func (v *Vector[T]) AddInPlace(o *Vector[T]) (*Vector[T], error) { return v.inPlace(opPlus, o) }

// SubInPlace performs v −= o and returns v for chaining.
func (v *Vector[T]) SubInPlace(o *Vector[T]) (*Vector[T], error) { return v.inPlace(opMinus, o) }

// MulInPlace performs v ⊙= o and returns v for chaining.
func (v *Vector[T]) MulInPlace(o *Vector[T]) (*Vector[T], error) { return v.inPlace(opTimes, o) }

// DivInPlace performs v /= o and returns v for chaining.
func (v *Vector[T]) DivInPlace(o *Vector[T]) (*Vector[T], error) { return v.inPlace(opQuo, o) }

// AddScalarInPlace performs v += s and returns v.
func (v *Vector[T]) AddScalarInPlace(s T) *Vector[T] {
	for i := range v.data {
		v.data[i] += s
	}

	return v
}

// SubScalarInPlace performs v −= s and returns v.
func (v *Vector[T]) SubScalarInPlace(s T) *Vector[T] {
	for i := range v.data {
		v.data[i] -= s
	}

	return v
}

// ScaleInPlace performs v *= s and returns v.
func (v *Vector[T]) ScaleInPlace(s T) *Vector[T] {
	for i := range v.data {
		v.data[i] *= s
	}

	return v
}

// DivScalarInPlace performs v /= s and returns v.
// Errors: ErrDivideByZero when T is an integer type and s == 0 (v unchanged).
func (v *Vector[T]) DivScalarInPlace(s T) (*Vector[T], error) {
	if err := checkDivisors([]T{s}); err != nil {
		return v, vectorErrorf(opDiv, err)
	}
	for i := range v.data {
		v.data[i] /= s
	}

	return v, nil
}

// ---------- mixed-type (promoted) arithmetic ----------

// AddAs returns a + b in the result type R.
// R must absorb the kinds of A and B (numeric.ErrNarrowing otherwise).
//
//	sum, err := vector.AddAs[float64](ints, floats32)
func AddAs[R, A, B numeric.Number](a *Vector[A], b *Vector[B]) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return elementwise[R](opPlus, a, b)
}

// SubAs returns a − b in the result type R.
func SubAs[R, A, B numeric.Number](a *Vector[A], b *Vector[B]) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return elementwise[R](opMinus, a, b)
}

// MulAs returns a ⊙ b in the result type R.
func MulAs[R, A, B numeric.Number](a *Vector[A], b *Vector[B]) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, vectorErrorf(opMul, err)
	}

	return elementwise[R](opTimes, a, b)
}

// DivAs returns a / b in the result type R.
func DivAs[R, A, B numeric.Number](a *Vector[A], b *Vector[B]) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, vectorErrorf(opDiv, err)
	}

	return elementwise[R](opQuo, a, b)
}

// AddScalarAs returns v + s in the result type R (R absorbs A and S).
func AddScalarAs[R, A, S numeric.Number](v *Vector[A], s S) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[S]()); err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return broadcast[R](opPlus, v, s)
}

// SubScalarAs returns v − s in the result type R.
func SubScalarAs[R, A, S numeric.Number](v *Vector[A], s S) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[S]()); err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return broadcast[R](opMinus, v, s)
}

// MulScalarAs returns v·s in the result type R.
func MulScalarAs[R, A, S numeric.Number](v *Vector[A], s S) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[S]()); err != nil {
		return nil, vectorErrorf(opMul, err)
	}

	return broadcast[R](opTimes, v, s)
}

// DivScalarAs returns v / s in the result type R.
func DivScalarAs[R, A, S numeric.Number](v *Vector[A], s S) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[S]()); err != nil {
		return nil, vectorErrorf(opDiv, err)
	}

	return broadcast[R](opQuo, v, s)
}
