// SPDX-License-Identifier: MIT

// Package matrix: Dense is the row-major, fixed-shape matrix implementation.
//
// Contract:
//   - r, c are fixed for the lifetime of the value; len(data) == r*c.
//   - Constructors require r, c > 0. Zero-extent matrices only arise from
//     slicing with an empty index sequence.
//   - At/Set and their flat variants never panic; they return ErrOutOfRange.
package matrix

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"strings"

	"github.com/weige258/RMath/numeric"
	"github.com/weige258/RMath/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen    = "["
	_fmtClose   = "]"
	_fmtSep     = ", "
	_fmtRowSep  = ",\n"
	_fmtRowLead = " "
)

// Dense is a Rows×Cols matrix of T stored row-major in a flat slice.
type Dense[T numeric.Number] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// newDense allocates an r×c zero matrix without validating the extents.
func newDense[T numeric.Number](r, c int) *Dense[T] {
	return &Dense[T]{r: r, c: c, data: make([]T, r*c)}
}

// New creates an r×c matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func New[T numeric.Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}

	return newDense[T](rows, cols), nil
}

// Filled creates an r×c matrix with every element set to v.
func Filled[T numeric.Number](rows, cols int, v T) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}

	return m.Fill(v), nil
}

// FromSlice copies a row-major flat slice into a new rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows or cols ≤ 0.
//   - ErrSizeMismatch if len(flat) != rows*cols.
//
// Complexity: O(r*c).
func FromSlice[T numeric.Number](rows, cols int, flat []T) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(flat) != rows*cols {
		return nil, matrixErrorf(opFromSlice, fmt.Errorf("len %d, want %d: %w", len(flat), rows*cols, ErrSizeMismatch))
	}
	copy(m.data, flat)

	return m, nil
}

// FromRows copies a slice of rows into a new rows×cols matrix.
//
// Implementation:
//   - Stage 1: validate extents, then len(src) == rows.
//   - Stage 2: validate every row has exactly cols elements, then copy.
//
// Errors: ErrInvalidDimensions, ErrRowCountMismatch, ErrSizeMismatch.
func FromRows[T numeric.Number](rows, cols int, src [][]T) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(src) != rows {
		return nil, matrixErrorf(opFromRows, fmt.Errorf("got %d rows, want %d: %w", len(src), rows, ErrRowCountMismatch))
	}
	for i, row := range src {
		if len(row) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d len %d, want %d: %w", i, len(row), cols, ErrSizeMismatch))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions if n ≤ 0.
func Identity[T numeric.Number](n int) (*Dense[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// IdentityLike returns the identity with the shape of m.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T numeric.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return Identity[T](m.r)
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[T numeric.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return newDense[T](m.r, m.c), nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense[T]) Shape() (int, int) { return m.r, m.c }

// Size returns Rows*Cols.
func (m *Dense[T]) Size() int { return len(m.data) }

// Bytes returns the storage size of the elements, Rows·Cols·sizeof(T).
func (m *Dense[T]) Bytes() int { return len(m.data) * numeric.SizeOf[T]() }

// Kind reports the element kind of T.
func (m *Dense[T]) Kind() numeric.Kind { return numeric.KindOf[T]() }

// IsSquare reports Rows == Cols.
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

func (m *Dense[T]) isNil() bool { return m == nil }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col); m is unchanged on error.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// AtFlat reads the i-th element in row-major order.
func (m *Dense[T]) AtFlat(i int) (T, error) {
	if i < 0 || i >= len(m.data) {
		return 0, matrixErrorf(opAt, fmt.Errorf("flat index %d, size %d: %w", i, len(m.data), ErrOutOfRange))
	}

	return m.data[i], nil
}

// SetFlat writes the i-th element in row-major order.
func (m *Dense[T]) SetFlat(i int, v T) error {
	if i < 0 || i >= len(m.data) {
		return matrixErrorf(opSet, fmt.Errorf("flat index %d, size %d: %w", i, len(m.data), ErrOutOfRange))
	}
	m.data[i] = v

	return nil
}

// Row returns row i as a 1×Cols matrix.
func (m *Dense[T]) Row(i int) (*Dense[T], error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opRow, fmt.Errorf("row %d of %d: %w", i, m.r, ErrOutOfRange))
	}
	out := newDense[T](1, m.c)
	copy(out.data, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns column j as a Rows×1 matrix.
func (m *Dense[T]) Col(j int) (*Dense[T], error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opCol, fmt.Errorf("col %d of %d: %w", j, m.c, ErrOutOfRange))
	}
	out := newDense[T](m.r, 1)
	for i := 0; i < m.r; i++ {
		out.data[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RowVector returns row i as a vector of length Cols.
func (m *Dense[T]) RowVector(i int) (*vector.Vector[T], error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}

	return vector.Of(row.data...), nil
}

// ColVector returns column j as a vector of length Rows.
func (m *Dense[T]) ColVector(j int) (*vector.Vector[T], error) {
	col, err := m.Col(j)
	if err != nil {
		return nil, err
	}

	return vector.Of(col.data...), nil
}

// Values returns a row-major copy of the elements.
func (m *Dense[T]) Values() []T {
	return append(make([]T, 0, len(m.data)), m.data...)
}

// Rows2D returns a copy of the elements as a slice of rows.
func (m *Dense[T]) Rows2D() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = append(make([]T, 0, m.c), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// All iterates the elements in row-major order as ((row, col), value).
// The key is the flat index; use i/Cols, i%Cols to split it.
func (m *Dense[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range m.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense[T]) Clone() *Dense[T] {
	out := newDense[T](m.r, m.c)
	copy(out.data, m.data)

	return out
}

// Fill sets every element to v and returns m for chaining.
func (m *Dense[T]) Fill(v T) *Dense[T] {
	for i := range m.data {
		m.data[i] = v
	}

	return m
}

// String renders the matrix as "[a, b,\n c, d]": rows are separated by a
// comma and newline, continuation rows are indented by one space.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
			b.WriteString(_fmtRowLead)
		}
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, m.data[base+j])
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// ---------- comparison ----------

// Equal reports whether a and b have the same shape and equal elements.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
func Equal[T numeric.Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Compare orders a and b: by Rows, then by Cols, then lexicographically over
// the row-major elements. A nil matrix orders first. Returns -1, 0 or +1.
func Compare[T numeric.Number](a, b *Dense[T]) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if c := cmp.Compare(a.r, b.r); c != 0 {
		return c
	}
	if c := cmp.Compare(a.c, b.c); c != 0 {
		return c
	}
	for i := range a.data {
		if c := cmp.Compare(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}

	return 0
}

// AllClose reports whether a and b share a shape and every element pair
// differs by at most eps (DefaultEpsilon unless WithEpsilon is given).
// Returns false when either operand is nil.
func AllClose[T numeric.Number](a, b *Dense[T], opts ...Option) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i := range a.data {
		if math.Abs(float64(a.data[i])-float64(b.data[i])) > eps {
			return false
		}
	}

	return true
}
