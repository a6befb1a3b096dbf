// SPDX-License-Identifier: MIT

// Package numeric defines the element-type vocabulary shared by the vector,
// matrix and ranges packages.
//
// It provides:
//
//   - Type constraints (Signed, Unsigned, Integer, Float, Number) gating every
//     generic container and kernel.
//   - Kind, a runtime tag for the twelve numeric kinds, resolved from any
//     Number type via KindOf.
//   - The promotion table (Promote, Absorbs, CheckResult) used by mixed-type
//     operations to fix their result element type.
//   - Small numeric helpers (Abs, NearZero, Cast) and the package-wide
//     Epsilon threshold used for singularity and zero detection.
//
// Promotion order (lowest to highest rank):
//
//	int8 < uint8 < int16 < uint16 < int32 < uint32 < int < int64 < uint < uint64 < float32 < float64
//
// The common kind of any set of operands is the one with the highest rank,
// which encodes integer widening, then integer→float widening, then float
// widening. At equal width the unsigned kind wins, so int64 and uint
// promote to uint. A mixed-type operation may produce any result type R that absorbs
// all of its operand kinds, i.e. Promote(R, operands...) == R.
package numeric
