// SPDX-License-Identifier: MIT

// Package matrix: linear-algebra kernels over Dense[T].
//
// Purpose:
//   - Matrix product and matrix×vector / vector×matrix products.
//   - Transpose, Minor, Det, Cofactor, Adjoint, Inverse, Trace, Rank.
//   - Kronecker product (binary and n-ary, right-to-left).
//
// Contract:
//   - Every kernel validates nil-ness and shape before reading any element.
//   - Det/Cofactor/Adjoint use Laplace expansion: exact for integer T,
//     factorial in the order n. Intended for small n.
//   - Inverse is restricted to floating-point element types at compile time.
//
// AI-Hints:
//   - Inverse(m)·m ≈ I within the configured epsilon; compare with AllClose.
//   - Rank works on a float64 copy, so integer matrices are supported.
package matrix

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/weige258/RMath/numeric"
	"github.com/weige258/RMath/vector"
)

// ---------- products ----------

// mulKernel computes a·b for compatible, non-nil operands (unchecked).
// Loop order i-k-j keeps the inner loop on contiguous rows of b and out.
func mulKernel[T numeric.Number](a, b *Dense[T]) *Dense[T] {
	out := newDense[T](a.r, b.c)
	for i := 0; i < a.r; i++ {
		row := out.data[i*b.c : (i+1)*b.c]
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			bk := b.data[k*b.c : (k+1)*b.c]
			for j := range row {
				row[j] += aik * bk[j]
			}
		}
	}

	return out
}

// Mul returns the matrix product a·b: (R×C)·(C×K) → R×K.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil, a.Cols == b.Rows).
//   - Stage 2: i-k-j triple loop into a fresh result.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(R·C·K).
func Mul[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulKernel(a, b), nil
}

// MulAs returns a·b evaluated in R (R absorbs the kinds of A and B).
func MulAs[R, A, B numeric.Number](a *Dense[A], b *Dense[B]) (*Dense[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mulKernel(Convert[R](a), Convert[R](b)), nil
}

// MulVec returns m·v with v treated as a column vector; the result has
// length Rows.
// Errors: ErrNilMatrix, vector.ErrNilVector, ErrDimensionMismatch.
// Complexity: O(R·C).
func MulVec[T numeric.Number](m *Dense[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	return MulVecAs[T](m, v)
}

// VecMul returns v·m with v treated as a row vector; the result has
// length Cols.
func VecMul[T numeric.Number](v *vector.Vector[T], m *Dense[T]) (*vector.Vector[T], error) {
	return VecMulAs[T](v, m)
}

// MulVecAs is MulVec evaluated in R (R absorbs A and B).
func MulVecAs[R, A, B numeric.Number](m *Dense[A], v *vector.Vector[B]) (*vector.Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	x, err := vecOperand[R](opMulVec, m, v, func(s Shaped) int { return s.Cols() })
	if err != nil {
		return nil, err
	}
	out := make([]R, m.r)
	for i := range out {
		var sum R
		for j := 0; j < m.c; j++ {
			sum += R(m.data[i*m.c+j]) * x[j]
		}
		out[i] = sum
	}

	return vector.Of(out...), nil
}

// VecMulAs is VecMul evaluated in R (R absorbs A and B).
func VecMulAs[R, A, B numeric.Number](v *vector.Vector[A], m *Dense[B]) (*vector.Vector[R], error) {
	if err := numeric.CheckResult[R](numeric.KindOf[A](), numeric.KindOf[B]()); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	x, err := vecOperand[R](opVecMul, m, v, func(s Shaped) int { return s.Rows() })
	if err != nil {
		return nil, err
	}
	out := make([]R, m.c)
	for i, xi := range x {
		for j := range out {
			out[j] += xi * R(m.data[i*m.c+j])
		}
	}

	return vector.Of(out...), nil
}

// vecOperand validates the matrix×vector pair and returns v converted to R.
// want selects the matrix extent the vector length must match.
func vecOperand[R, A, B numeric.Number](tag string, m *Dense[A], v *vector.Vector[B], want func(Shaped) int) ([]R, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if v == nil {
		return nil, matrixErrorf(tag, vector.ErrNilVector)
	}
	if err := ValidateVecLen(v.Len(), want(m)); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return vector.Convert[R](v).Values(), nil
}

// ---------- structural ----------

// Transpose returns mᵀ (Cols×Rows).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose[T numeric.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newDense[T](m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// minor removes row r and column c (unchecked).
func minor[T numeric.Number](m *Dense[T], r, c int) *Dense[T] {
	out := newDense[T](m.r-1, m.c-1)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == r {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == c {
				continue
			}
			out.data[k] = m.data[i*m.c+j]
			k++
		}
	}

	return out
}

// Minor returns m with row r and column c removed: (Rows−1)×(Cols−1).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidDimensions when Rows or Cols is 1 (the result would be empty).
//   - ErrOutOfRange when r or c is outside the shape.
func Minor[T numeric.Number](m *Dense[T], r, c int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opMinor, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidDimensions))
	}
	if _, err := m.indexOf(opMinor, r, c); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return minor(m, r, c), nil
}

// det expands along row 0 (unchecked, square).
// Signs alternate by subtraction so unsigned T wraps consistently.
// The 0×0 determinant is the empty product, 1.
func det[T numeric.Number](m *Dense[T]) T {
	switch m.r {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var sum T
	for j := 0; j < m.c; j++ {
		if m.data[j] == 0 {
			continue
		}
		term := m.data[j] * det(minor(m, 0, j))
		if j%2 == 0 {
			sum += term
		} else {
			sum -= term
		}
	}

	return sum
}

// Det returns the determinant by recursive Laplace expansion along row 0,
// with 1×1 and 2×2 base cases.
//
// A 0×0 matrix (only obtainable by slicing) has determinant 1, so its
// adjugate and inverse are 0×0 as well.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n!) (zero entries of the expansion row are skipped).
func Det[T numeric.Number](m *Dense[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return det(m), nil
}

// cofactor is (−1)^(r+c)·det(minor(m, r, c)) for square m with n ≥ 2 (unchecked).
func cofactor[T numeric.Number](m *Dense[T], r, c int) T {
	d := det(minor(m, r, c))
	if (r+c)%2 == 1 {
		return -d
	}

	return d
}

// Cofactor returns (−1)^(r+c) · Det(Minor(m, r, c)).
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (1×1), ErrOutOfRange.
func Cofactor[T numeric.Number](m *Dense[T], r, c int) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if m.r < 2 {
		return 0, matrixErrorf(opCofactor, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrInvalidDimensions))
	}
	if _, err := m.indexOf(opCofactor, r, c); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactor(m, r, c), nil
}

// adjoint is the unchecked adjugate of a square m.
func adjoint[T numeric.Number](m *Dense[T]) *Dense[T] {
	n := m.r
	out := newDense[T](n, n)
	if n == 1 {
		out.data[0] = 1
		return out
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.data[c*n+r] = cofactor(m, r, c) // transposed cofactor matrix
		}
	}

	return out
}

// Adjoint returns the adjugate: adj[c][r] = Cofactor(m, r, c).
// The adjugate of a 1×1 matrix is [1].
// Errors: ErrNilMatrix, ErrNonSquare.
func Adjoint[T numeric.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return adjoint(m), nil
}

// Inverse returns m⁻¹ = Adjoint(m) · (1/Det(m)).
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: Det; |det| below epsilon (DefaultEpsilon or WithEpsilon) → ErrSingular.
//   - Stage 3: scale the adjugate by 1/det.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n·n!) through the adjugate.
func Inverse[F numeric.Float](m *Dense[F], opts ...Option) (*Dense[F], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d := det(m)
	if eps := gatherOptions(opts...).eps; math.Abs(float64(d)) < eps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det %g: %w", float64(d), ErrSingular))
	}

	return adjoint(m).ScaleInPlace(1 / d), nil
}

// Trace returns Σ m[i][i].
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace[T numeric.Number](m *Dense[T]) (T, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum T
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// Rank returns the number of pivots found by Gaussian elimination with row
// selection on a float64 copy of m.
//
// Implementation:
//   - For each column, pick the first unused row whose entry exceeds epsilon
//     in magnitude; mark it used and eliminate that column from every other
//     unused row.
//
// Errors: ErrNilMatrix.
// Complexity: O(r·c·min(r,c)).
func Rank[T numeric.Number](m *Dense[T], opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	eps := gatherOptions(opts...).eps
	a := Convert[float64](m).data
	used := make([]bool, m.r)
	rank := 0
	for j := 0; j < m.c; j++ {
		p := -1
		for i := 0; i < m.r; i++ {
			if !used[i] && math.Abs(a[i*m.c+j]) > eps {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		used[p] = true
		rank++
		for k := j + 1; k < m.c; k++ {
			a[p*m.c+k] /= a[p*m.c+j]
		}
		for i := 0; i < m.r; i++ {
			if i == p || math.Abs(a[i*m.c+j]) <= eps {
				continue
			}
			f := a[i*m.c+j]
			for k := j + 1; k < m.c; k++ {
				a[i*m.c+k] -= a[p*m.c+k] * f
			}
		}
	}

	return rank, nil
}

// ---------- Kronecker ----------

// kron computes a ⊗ b (unchecked).
func kron[T numeric.Number](a, b *Dense[T]) *Dense[T] {
	rows, cols := a.r*b.r, a.c*b.c
	out := newDense[T](rows, cols)
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			aij := a.data[i*a.c+j]
			for k := 0; k < b.r; k++ {
				dst := out.data[(i*b.r+k)*cols+j*b.c:]
				src := b.data[k*b.c : (k+1)*b.c]
				for l, x := range src {
					dst[l] = aij * x
				}
			}
		}
	}

	return out
}

// KroneckerProduct returns a ⊗ b: (R1·R2)×(C1·C2), with block (i, j) equal
// to a[i][j]·b.
// Errors: ErrNilMatrix.
func KroneckerProduct[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	return kron(a, b), nil
}

// Kronecker folds KroneckerProduct right to left: m0 ⊗ (m1 ⊗ (… ⊗ mk)).
// The product is not commutative; operand order is preserved.
// A single operand is returned as a clone.
// Errors: ErrTooFewOperands (no operands), ErrNilMatrix.
func Kronecker[T numeric.Number](ms ...*Dense[T]) (*Dense[T], error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opKronecker, ErrTooFewOperands)
	}
	for k, m := range ms {
		if err := ValidateNotNil(m); err != nil {
			return nil, matrixErrorf(opKronecker, fmt.Errorf("operand %d: %w", k, err))
		}
	}
	last := len(ms) - 1

	return lo.ReduceRight(ms[:last], func(acc *Dense[T], m *Dense[T], _ int) *Dense[T] {
		return kron(m, acc)
	}, ms[last].Clone()), nil
}
