// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/weige258/RMath/numeric"
)

// crossDim is the only arity for which the cross product is defined.
const crossDim = 3

// dot2 returns Σ a[i]*b[i] for equal-length, non-nil operands (unchecked).
func dot2[T numeric.Number](a, b *Vector[T]) T {
	var sum T
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum
}

// LengthSquared returns Σ v[i]², evaluated in float64.
func (v *Vector[T]) LengthSquared() float64 {
	var sum float64
	for _, x := range v.data {
		f := float64(x)
		sum += f * f
	}

	return sum
}

// Length returns the Euclidean norm √(Σ v[i]²). Complexity: O(N).
func (v *Vector[T]) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalize returns v / Length(v).
// A zero-length vector is returned unchanged (as a copy), so normalizing the
// zero vector yields the zero vector; any other vector, however short, is
// scaled to unit length.
// Restricted to floating-point element types: an integer unit vector cannot
// be represented.
func Normalize[F numeric.Float](v *Vector[F]) (*Vector[F], error) {
	if v == nil {
		return nil, vectorErrorf(opNormalize, ErrNilVector)
	}
	length := v.Length()
	if length == 0 {
		return v.Clone(), nil
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] = F(float64(out.data[i]) / length)
	}

	return out, nil
}

// Cross returns the 3-D cross product a × b.
//
// Errors:
//   - ErrNilVector.
//   - ErrDimensionMismatch unless both operands have exactly 3 elements.
//
// Complexity: O(1).
func Cross[T numeric.Number](a, b *Vector[T]) (*Vector[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(opCross, err)
	}
	if len(a.data) != crossDim {
		return nil, vectorErrorf(opCross, fmt.Errorf("len %d, want %d: %w", len(a.data), crossDim, ErrDimensionMismatch))
	}
	x, y := a.data, b.data

	return Of(
		x[1]*y[2]-x[2]*y[1],
		x[2]*y[0]-x[0]*y[2],
		x[0]*y[1]-x[1]*y[0],
	), nil
}

// Distance returns Length(a − b).
// Errors: ErrNilVector, ErrDimensionMismatch.
func Distance[T numeric.Number](a, b *Vector[T]) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, vectorErrorf(opDistance, err)
	}
	var sum float64
	for i := range a.data {
		d := float64(a.data[i]) - float64(b.data[i])
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// Lerp returns a·(1−t) + b·t evaluated in R.
// R must absorb the kinds of A, B and the parameter type S.
//
//	mid, err := vector.Lerp[float64](a, b, 0.5)
func Lerp[R, A, B, S numeric.Number](a *Vector[A], b *Vector[B], t S) (*Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B](), numeric.KindOf[S]()); err != nil {
		return nil, vectorErrorf(opLerp, err)
	}
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(opLerp, err)
	}
	rt := R(t)
	out := &Vector[R]{data: make([]R, len(a.data))}
	for i := range a.data {
		out.data[i] = R(a.data[i])*(1-rt) + R(b.data[i])*rt
	}

	return out, nil
}

// Project returns the projection of a onto b: b · (Dot(a,b) / Dot(b,b)).
// Projecting onto a (numerically) zero vector yields the zero vector.
// Errors: ErrNilVector, ErrDimensionMismatch.
func Project[F numeric.Float](a, b *Vector[F]) (*Vector[F], error) {
	if err := validatePair(a, b); err != nil {
		return nil, vectorErrorf(opProject, err)
	}
	bb := dot2(b, b)
	if numeric.NearZero(bb, numeric.Epsilon) {
		return &Vector[F]{data: make([]F, len(b.data))}, nil
	}

	return b.Scale(dot2(a, b) / bb), nil
}

// Reflect returns a − n·2·Dot(a, n), the reflection of a about the plane
// with normal n (n is expected to be unit length).
// Errors: ErrNilVector, ErrDimensionMismatch.
func Reflect[T numeric.Number](a, n *Vector[T]) (*Vector[T], error) {
	if err := validatePair(a, n); err != nil {
		return nil, vectorErrorf(opReflect, err)
	}
	k := 2 * dot2(a, n)
	out := a.Clone()
	for i := range out.data {
		out.data[i] -= n.data[i] * k
	}

	return out, nil
}
