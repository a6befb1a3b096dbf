// SPDX-License-Identifier: MIT

package ranges

import (
	"fmt"
	"iter"
)

// Static is an int index sequence bound to containers of at most Bound()
// elements. Every produced index is proven to lie in [0, bound) when the
// value is built, so a Static that exists is always in range for its bound.
type Static struct {
	start, end, step int
	bound            int
}

// NewStatic builds a bounded sequence from start towards end (exclusive) by
// step, for containers of length bound.
//
// Implementation:
//   - Stage 1: reject step == 0 (ErrZeroStep) and bound < 0 (ErrOutOfBounds).
//   - Stage 2: when the sequence is non-empty, require the first and the last
//     produced index to lie in [0, bound).
//
// Errors:
//   - ErrZeroStep, ErrOutOfBounds.
//
// Complexity: O(1).
func NewStatic(start, end, step, bound int) (Static, error) {
	if step == 0 {
		return Static{}, rangeErrorf("NewStatic", ErrZeroStep)
	}
	if bound < 0 {
		return Static{}, rangeErrorf("NewStatic", fmt.Errorf("bound %d: %w", bound, ErrOutOfBounds))
	}
	s := Static{start: start, end: end, step: step, bound: bound}
	if n := s.Len(); n > 0 {
		last := s.Index(n - 1)
		if start < 0 || start >= bound || last < 0 || last >= bound {
			return Static{}, rangeErrorf("NewStatic",
				fmt.Errorf("%s first=%d last=%d: %w", s, start, last, ErrOutOfBounds))
		}
	}

	return s, nil
}

// MustStatic is like NewStatic but panics on error. It is intended for
// package-level declarations, which are then checked at initialization.
func MustStatic(start, end, step, bound int) Static {
	s, err := NewStatic(start, end, step, bound)
	if err != nil {
		panic(err)
	}

	return s
}

// Start returns the first produced index candidate.
func (s Static) Start() int { return s.start }

// End returns the exclusive end.
func (s Static) End() int { return s.end }

// Step returns the stride (never zero).
func (s Static) Step() int { return s.step }

// Bound returns the container length the sequence was validated for.
func (s Static) Bound() int { return s.bound }

// Len returns the number of produced indices.
func (s Static) Len() int { return NewStep(s.start, s.end, s.step).Len() }

// Index returns the k-th produced index; 0 <= k < Len() is assumed.
func (s Static) Index(k int) int { return s.start + k*s.step }

// All returns a lazy iterator over the produced indices.
func (s Static) All() iter.Seq[int] {
	return NewStep(s.start, s.end, s.step).All()
}

// Validate checks the sequence against a container of length n.
// Indices are already known to be below Bound(), so it suffices that the
// container is at least that long.
func (s Static) Validate(n int) error {
	if s.bound > n {
		return rangeErrorf("Static.Validate", fmt.Errorf("bound %d over length %d: %w", s.bound, n, ErrOutOfBounds))
	}

	return nil
}

// String renders the sequence as "Static(start, end, step; bound)".
func (s Static) String() string {
	return fmt.Sprintf("Static(%d, %d, %d; %d)", s.start, s.end, s.step, s.bound)
}
