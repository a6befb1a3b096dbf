// SPDX-License-Identifier: MIT

// Package vector implements Vector[T], a fixed-arity numeric vector, and the
// free-function algorithms over one or more vectors.
//
// The arity N of a Vector is chosen at construction and never changes:
// no operation grows, shrinks or reshapes a value. Operations that need equal
// arity (Add, Dot, Distance, ...) or a particular arity (Cross requires 3)
// check it before reading any element and fail with ErrDimensionMismatch.
//
// Ownership: every producing operation returns a freshly allocated vector;
// there are no views. In-place operations (…InPlace) mutate only their
// receiver and leave it untouched when they fail.
//
// Element types: same-type operations keep T. Mixed-type operations are the
// …As functions; their result type R is chosen by the caller and checked
// against the promotion table in package numeric (R must absorb every
// operand kind).
//
//	a := vector.Of[int32](1, 2, 3)
//	b := vector.Of(0.5, 0.5, 0.5)
//	c, err := vector.AddAs[float64](a, b) // [1.5, 2.5, 3.5]
package vector
