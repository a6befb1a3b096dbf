// SPDX-License-Identifier: MIT

// Package ranges describes lazily enumerated (start, end, step) index
// sequences used to slice vectors and matrices.
//
// Two variants exist:
//
//   - Range[T]: a runtime-evaluated sequence over any numeric type; when
//     T is an integer type it can index containers, and every produced index
//     is validated against the container before any element is read.
//   - Static: an int sequence that carries the maximum container length it
//     is meant for ("bound"). It is validated when it is built, so a
//     package-level MustStatic declaration fails at program initialization
//     rather than at the point of use.
//
// Both report their length analytically (Len) without materializing the
// sequence: zero when step == 0 or when the sign of (end − start) disagrees
// with the sign of step, otherwise ceil(|end − start| / |step|).
// The end bound is exclusive.
package ranges

import (
	"fmt"
	"iter"
	"math"

	"github.com/weige258/RMath/numeric"
)

// Range is a half-open arithmetic sequence start, start+step, ... < end
// (or > end for a negative step). Range is a small value type; copies are
// independent.
type Range[T numeric.Number] struct {
	start, end, step T
}

// New returns the range [start, end) with step 1.
func New[T numeric.Number](start, end T) Range[T] {
	return Range[T]{start: start, end: end, step: 1}
}

// NewStep returns the range from start towards end (exclusive) by step.
// A zero step is legal and describes an empty sequence.
func NewStep[T numeric.Number](start, end, step T) Range[T] {
	return Range[T]{start: start, end: end, step: step}
}

// Start returns the first bound of the range.
func (r Range[T]) Start() T { return r.start }

// End returns the exclusive bound of the range.
func (r Range[T]) End() T { return r.end }

// Step returns the stride of the range.
func (r Range[T]) Step() T { return r.step }

// Len returns the number of produced values, computed analytically.
//
// Implementation:
//   - Stage 1: step == 0, or bounds misordered for the step's sign → 0.
//   - Stage 2: integers use exact ceil division on the uint64 span, so
//     |end − start| and |step| never overflow T; floats use math.Ceil
//     on the float64 quotient.
//
// Complexity: O(1).
func (r Range[T]) Len() int {
	if r.step == 0 || (r.step > 0 && r.start >= r.end) || (r.step < 0 && r.start <= r.end) {
		return 0
	}

	if numeric.KindOf[T]().IsFloat() {
		diff, astep := r.end-r.start, r.step
		if r.step < 0 {
			diff, astep = -diff, -astep
		}

		return int(math.Ceil(float64(diff) / float64(astep)))
	}

	// Conversion to uint64 sign-extends, so the wrapped difference is the
	// exact span for any integer T.
	diff, astep := uint64(r.end)-uint64(r.start), uint64(r.step)
	if r.step < 0 {
		diff, astep = uint64(r.start)-uint64(r.end), -astep
	}

	return int((diff-1)/astep + 1)
}

// SizeInBytes returns Len() times the element size of T.
func (r Range[T]) SizeInBytes() int { return r.Len() * numeric.SizeOf[T]() }

// Empty reports whether the range produces no values.
func (r Range[T]) Empty() bool { return r.Len() == 0 }

// value returns the k-th produced value without bounds checks.
// start + k*step avoids accumulating rounding error for float ranges.
func (r Range[T]) value(k int) T { return r.start + T(k)*r.step }

// At returns the k-th produced value or ErrOutOfBounds.
func (r Range[T]) At(k int) (T, error) {
	if k < 0 || k >= r.Len() {
		return 0, rangeErrorf("Range.At", fmt.Errorf("k=%d len=%d: %w", k, r.Len(), ErrOutOfBounds))
	}

	return r.value(k), nil
}

// Last returns the final produced value; ErrEmpty for an empty range.
func (r Range[T]) Last() (T, error) {
	n := r.Len()
	if n == 0 {
		return 0, rangeErrorf("Range.Last", ErrEmpty)
	}

	return r.value(n - 1), nil
}

// All returns a lazy iterator over the produced values in order.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := r.Len()
		for k := 0; k < n; k++ {
			if !yield(r.value(k)) {
				return
			}
		}
	}
}

// Values materializes the sequence into a fresh slice of length Len().
func (r Range[T]) Values() []T {
	out := make([]T, 0, r.Len())
	for v := range r.All() {
		out = append(out, v)
	}

	return out
}

// String renders the range as "Range(start, end, step)".
func (r Range[T]) String() string {
	return fmt.Sprintf("Range(%v, %v, %v)", r.start, r.end, r.step)
}

// Index returns the k-th produced value as a container index.
// It assumes 0 <= k < Len(); callers validate via Validate first.
func (r Range[T]) Index(k int) int { return int(r.value(k)) }

// Validate checks that every produced index lies in [0, n).
//
// Implementation:
//   - Stage 1: reject non-integer element kinds (ErrNonInteger).
//   - Stage 2: an empty range is always valid.
//   - Stage 3: the sequence is monotone, so checking the first and the last
//     produced value covers all of them.
//
// Complexity: O(1).
func (r Range[T]) Validate(n int) error {
	if !numeric.KindOf[T]().IsInteger() {
		return rangeErrorf("Range.Validate", ErrNonInteger)
	}
	size := r.Len()
	if size == 0 {
		return nil
	}
	first, last := r.value(0), r.value(size-1)
	// Compare in T before converting so unsigned values above MaxInt cannot wrap.
	if first < 0 || last < 0 || uint64(first) >= uint64(n) || uint64(last) >= uint64(n) {
		return rangeErrorf("Range.Validate", fmt.Errorf("%s over length %d: %w", r, n, ErrOutOfBounds))
	}

	return nil
}
