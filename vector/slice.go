// SPDX-License-Identifier: MIT

package vector

import "github.com/weige258/RMath/ranges"

// Slice returns a new vector holding v[ix.Index(0)], v[ix.Index(1)], ...
// The result owns its storage; no aliasing with v.
//
// Implementation:
//   - Stage 1: ix.Validate(Len) proves every produced index in range before
//     any element is read (for a ranges.Static this is a single bound check).
//   - Stage 2: copy the selected elements in sequence order.
//
// Errors:
//   - ErrNilVector; ranges.ErrOutOfBounds / ranges.ErrNonInteger from Validate.
//
// Complexity: O(ix.Len()).
func (v *Vector[T]) Slice(ix ranges.Indexer) (*Vector[T], error) {
	if v == nil {
		return nil, vectorErrorf(opSlice, ErrNilVector)
	}
	if err := ix.Validate(len(v.data)); err != nil {
		return nil, vectorErrorf(opSlice, err)
	}
	out := &Vector[T]{data: make([]T, ix.Len())}
	for k := range out.data {
		out.data[k] = v.data[ix.Index(k)]
	}

	return out, nil
}
