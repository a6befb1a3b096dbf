// Package rmath is a generic, fixed-dimension vector and matrix algebra
// library for every Go numeric type, from int8 to float64.
//
// What is RMath?
//
//	A small, allocation-honest toolkit that brings together:
//		• Numeric kinds: a promotion lattice for mixed-type arithmetic
//		• Ranges: arithmetic progressions used as slicing index sets
//		• Vectors: element-wise ops, dot/cross products, geometry helpers
//		• Matrices: dense row-major storage, products, determinant,
//		  inverse, rank, Kronecker product and sub-matrix extraction
//
// Guarantees:
//
//   - Every operation returns a fresh value; ...InPlace methods are the only mutators
//   - Shape mismatches are reported as wrapped sentinel errors, never panics
//   - Mixed element types are combined only into an explicitly chosen,
//     non-narrowing result type (AddAs, MulAs, DotAs, ...)
//   - Float-only operations (Normalize, Project, Inverse) are rejected at
//     compile time for integer element types
//
// Everything is organized under four subpackages:
//
//	numeric/ — Number constraint, Kind lattice, promotion and casting
//	ranges/  — Range[T] and Static index sequences for slicing
//	vector/  — Vector[T] and its operations, gonum mat.VecDense bridge
//	matrix/  — Dense[T] and linear algebra, gonum mat.Dense bridge
//
// Quick example:
//
//	a := matrix.MustDense(2, 2, 1.0, 2, 3, 4)
//	inv, _ := matrix.Inverse(a) // [-2, 1, 1.5, -0.5]
//
// See examples/ for runnable demos.
//
//	go get github.com/weige258/RMath
package rmath
