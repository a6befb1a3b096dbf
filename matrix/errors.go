// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for invalid Option constructors and Must* helpers.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap with matrixErrorf(tag, err) at
// the detection site; callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> numeric (singular, divide by zero, narrowing).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrSizeMismatch indicates a flat source whose length is not Rows*Cols,
	// or a row of FromRows whose length is not Cols.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrRowCountMismatch indicates FromRows was given a row count other than Rows.
	ErrRowCountMismatch = errors.New("matrix: row count mismatch")

	// ErrOutOfRange indicates that an index (row, column or flat) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| is below the configured epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrTooFewOperands is returned by n-ary folds given too few operands.
	ErrTooFewOperands = errors.New("matrix: too few operands")

	// ErrDivideByZero is returned by integer division with a zero divisor.
	ErrDivideByZero = errors.New("matrix: integer division by zero")
)

// Operation tags used by matrixErrorf.
const (
	opNew        = "New"
	opFromSlice  = "FromSlice"
	opFromRows   = "FromRows"
	opIdentity   = "Identity"
	opAt         = "At"
	opSet        = "Set"
	opRow        = "Row"
	opCol        = "Col"
	opAdd        = "Add"
	opSub        = "Sub"
	opHadamard   = "Hadamard"
	opScale      = "Scale"
	opDiv        = "DivScalar"
	opMul        = "Mul"
	opMulVec     = "MulVec"
	opVecMul     = "VecMul"
	opTranspose  = "Transpose"
	opMinor      = "Minor"
	opDet        = "Det"
	opCofactor   = "Cofactor"
	opAdjoint    = "Adjoint"
	opInverse    = "Inverse"
	opTrace      = "Trace"
	opRank       = "Rank"
	opKronecker  = "Kronecker"
	opSlice      = "Slice"
	opToGonum    = "ToGonum"
	opStatistics = "Statistics"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
