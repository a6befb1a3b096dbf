// SPDX-License-Identifier: MIT

package ranges

import "github.com/samber/lo"

// Indexer is an index sequence that can slice a container of length n.
// Range[T] (integer T) and Static implement it.
//
// Contract:
//   - Validate(n) must succeed before Index is called; slicing kernels call it
//     before touching any element, so a failed slice reads nothing.
//   - Index(k) is defined for 0 <= k < Len().
type Indexer interface {
	Len() int
	Index(k int) int
	Validate(n int) error
}

// Compile-time conformance.
var (
	_ Indexer = Range[int]{}
	_ Indexer = Static{}
)

// Collect materializes the indices of ix. It performs no validation.
func Collect(ix Indexer) []int {
	return lo.Times(ix.Len(), ix.Index)
}
