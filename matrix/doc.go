// SPDX-License-Identifier: MIT

// Package matrix provides Dense, a fixed-shape Rows×Cols matrix over any
// numeric element type, together with the classical linear-algebra suite.
//
// The package offers:
//
//   - Construction from fills, flat slices, row slices, other element types,
//     identities, and gonum matrices (FromGonum / ToGonum).
//   - Element-wise arithmetic (Add, Sub, Hadamard, scalar broadcast) in the
//     operands' own type or, through the ...As functions, in a promoted
//     result type checked against the numeric promotion table.
//   - Matrix product, matrix×vector and vector×matrix products.
//   - Transpose, Minor, Det (Laplace expansion), Cofactor, Adjoint, Inverse,
//     Trace, Rank (Gaussian elimination) and the Kronecker product.
//   - Range-driven slicing: m.Slice(rows, cols) with both index sequences
//     validated against the shape before any element is read.
//
// A Dense never changes shape after construction. Every producing operation
// returns a freshly allocated matrix; the ...InPlace methods mutate only the
// receiver and leave it untouched when they fail.
//
// Det and Adjoint use cofactor expansion and are factorial in the order of
// the matrix; they target the small fixed sizes (2×2, 3×3, 4×4) typical of
// geometry and graphics code.
package matrix
