// SPDX-License-Identifier: MIT

// Package matrix: shape-level types shared by validators and kernels.
package matrix

// Shaped is the element-type-agnostic view of a matrix used by validators.
// Every *Dense[T] satisfies it, so mixed-type kernels (AddAs, MulAs, ...)
// validate operands of different element types through one code path.
//
// Complexity notes: all methods are expected O(1).
type Shaped interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// isNil reports whether the underlying pointer is nil.
	isNil() bool
}

// Compile-time conformance.
var _ Shaped = (*Dense[float64])(nil)
