// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "vector: ..." so it can be grepped in logs.
// Callers match with errors.Is; operations wrap with the op tag via vectorErrorf.
var (
	// ErrInvalidDimensions indicates a negative requested arity.
	ErrInvalidDimensions = errors.New("vector: dimension must be >= 0")

	// ErrSizeMismatch indicates that a dynamically sized source does not have
	// exactly N elements.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrDimensionMismatch indicates operands of incompatible arity, e.g. Add
	// over different lengths or Cross on non-3-element vectors.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an index outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrNilVector indicates a nil *Vector operand or receiver.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrTooFewOperands is returned by n-ary folds (Dot, Hadamard) given
	// fewer than two operands.
	ErrTooFewOperands = errors.New("vector: at least two operands required")

	// ErrDivideByZero is returned by integer division with a zero divisor.
	// Floating-point division follows IEEE-754 instead.
	ErrDivideByZero = errors.New("vector: integer division by zero")
)

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opFromSlice = "FromSlice"
	opAt        = "At"
	opSet       = "Set"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opCross     = "Cross"
	opDot       = "Dot"
	opHadamard  = "Hadamard"
	opCat       = "Cat"
	opDistance  = "Distance"
	opLerp      = "Lerp"
	opProject   = "Project"
	opReflect   = "Reflect"
	opSlice     = "Slice"
	opNormalize = "Normalize"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
