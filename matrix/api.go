// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "github.com/weige258/RMath/numeric"

// NewZeros returns a zero-initialized rows×cols matrix (alias of New).
func NewZeros[T numeric.Number](rows, cols int) (*Dense[T], error) {
	return New[T](rows, cols)
}

// NewIdentity returns I_n (alias of Identity).
func NewIdentity[T numeric.Number](n int) (*Dense[T], error) {
	return Identity[T](n)
}

// MustDense is FromSlice that panics on error; intended for package-level
// fixtures and examples whose shape is known to be valid.
func MustDense[T numeric.Number](rows, cols int, flat ...T) *Dense[T] {
	m, err := FromSlice(rows, cols, flat)
	if err != nil {
		panic(err)
	}

	return m
}

// Sum returns a + b.
func Sum[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff returns a − b.
func Diff[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product returns a·b (matrix product).
func Product[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// HadamardProd returns a ⊙ b.
func HadamardProd[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Hadamard(a, b) }

// T returns mᵀ.
func T[E numeric.Number](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }

// InverseOf returns m⁻¹ with the default numeric policy unless opts override it.
func InverseOf[F numeric.Float](m *Dense[F], opts ...Option) (*Dense[F], error) {
	return Inverse(m, opts...)
}

// Symmetrize returns (m + mᵀ)/2 for a square floating-point matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Symmetrize[F numeric.Float](m *Dense[F]) (*Dense[F], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Symmetrize", err)
	}
	t, _ := Transpose(m)
	s, _ := Add(m, t)

	return s.ScaleInPlace(0.5), nil
}
