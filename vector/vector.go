// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/weige258/RMath/numeric"
	"github.com/weige258/RMath/ranges"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered, fixed-arity tuple of N numeric elements.
//   - data holds exactly N elements; its length never changes after construction.
//   - The zero value is a valid empty vector (N == 0).
type Vector[T numeric.Number] struct {
	data []T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[float64])(nil)

// New returns the zero vector of arity n.
// Errors: ErrInvalidDimensions when n < 0.
// Complexity: O(n).
func New[T numeric.Number](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(opNew, ErrInvalidDimensions)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// Of returns a vector holding exactly the given elements, in order.
// The arity is the number of arguments; the arguments are copied.
func Of[T numeric.Number](vals ...T) *Vector[T] {
	return &Vector[T]{data: append(make([]T, 0, len(vals)), vals...)}
}

// Filled returns a vector of arity n with every element set to v.
// Errors: ErrInvalidDimensions when n < 0.
func Filled[T numeric.Number](n int, v T) (*Vector[T], error) {
	out, err := New[T](n)
	if err != nil {
		return nil, err
	}
	out.Fill(v)

	return out, nil
}

// FromSlice copies src into a new vector of arity n.
// Fixed-size arrays are passed as arr[:].
//
// Errors:
//   - ErrInvalidDimensions when n < 0.
//   - ErrSizeMismatch when len(src) != n.
//
// Complexity: O(n).
func FromSlice[T numeric.Number](n int, src []T) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(opFromSlice, ErrInvalidDimensions)
	}
	if len(src) != n {
		return nil, vectorErrorf(opFromSlice, fmt.Errorf("len %d, want %d: %w", len(src), n, ErrSizeMismatch))
	}

	return Of(src...), nil
}

// FromRange materializes the values produced by r.
func FromRange[T numeric.Number](r ranges.Range[T]) *Vector[T] {
	return &Vector[T]{data: r.Values()}
}

// Convert returns a copy of v with every element converted to R.
// Conversion follows Go conversion rules; narrowing is the caller's explicit choice.
// A nil vector converts to nil.
func Convert[R, T numeric.Number](v *Vector[T]) *Vector[R] {
	if v == nil {
		return nil
	}
	out := &Vector[R]{data: make([]R, len(v.data))}
	for i, x := range v.data {
		out.data[i] = R(x)
	}

	return out
}

// Len returns the arity N. Complexity: O(1).
func (v *Vector[T]) Len() int { return len(v.data) }

// Size is an alias of Len, matching the matrix Size() vocabulary.
func (v *Vector[T]) Size() int { return len(v.data) }

// Bytes returns the storage size of the elements, N·sizeof(T).
func (v *Vector[T]) Bytes() int { return len(v.data) * numeric.SizeOf[T]() }

// Kind reports the element kind of T.
func (v *Vector[T]) Kind() numeric.Kind { return numeric.KindOf[T]() }

// At returns the i-th element or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(opAt, fmt.Errorf("index %d, len %d: %w", i, len(v.data), ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrOutOfRange (v unchanged).
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(opSet, fmt.Errorf("index %d, len %d: %w", i, len(v.data), ErrOutOfRange))
	}
	v.data[i] = x

	return nil
}

// X returns the first component; ErrOutOfRange when N < 1.
func (v *Vector[T]) X() (T, error) { return v.At(0) }

// Y returns the second component; ErrOutOfRange when N < 2.
func (v *Vector[T]) Y() (T, error) { return v.At(1) }

// Z returns the third component; ErrOutOfRange when N < 3.
func (v *Vector[T]) Z() (T, error) { return v.At(2) }

// W returns the fourth component; ErrOutOfRange when N < 4.
func (v *Vector[T]) W() (T, error) { return v.At(3) }

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	return append(make([]T, 0, len(v.data)), v.data...)
}

// All iterates (index, element) pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] { return Of(v.data...) }

// Fill sets every element to x and returns v for chaining.
func (v *Vector[T]) Fill(x T) *Vector[T] {
	for i := range v.data {
		v.data[i] = x
	}

	return v
}

// String renders the vector as "[e0, e1, ...]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Equal reports whether a and b have the same arity and equal elements.
// Two nil vectors are equal; a nil and a non-nil vector are not.
func Equal[T numeric.Number](a, b *Vector[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically: the first differing element
// decides; if one is a prefix of the other, the shorter one is smaller.
// A nil vector orders before every non-nil one. Returns -1, 0 or +1.
func Compare[T numeric.Number](a, b *Vector[T]) int {
	if a == nil || b == nil {
		return compareNil(a == nil, b == nil)
	}
	n := min(len(a.data), len(b.data))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.data), len(b.data))
}

// ApproxEqual reports whether a and b have the same arity and every pair of
// elements differs by at most eps (|eps| is used).
// Returns false when either operand is nil.
func ApproxEqual[T numeric.Number](a, b *Vector[T], eps float64) bool {
	if a == nil || b == nil || len(a.data) != len(b.data) {
		return false
	}
	eps = math.Abs(eps)
	for i := range a.data {
		if math.Abs(float64(a.data[i])-float64(b.data[i])) > eps {
			return false
		}
	}

	return true
}

// compareNil orders nil first; both nil compare equal.
func compareNil(aNil, bNil bool) int {
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	default:
		return 1
	}
}

// validatePair is the shared guard of binary kernels: NotNil(a) → NotNil(b) → SameLen.
func validatePair[A, B numeric.Number](a *Vector[A], b *Vector[B]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return fmt.Errorf("len %d vs %d: %w", len(a.data), len(b.data), ErrDimensionMismatch)
	}

	return nil
}
