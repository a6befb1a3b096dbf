// SPDX-License-Identifier: MIT

package matrix

import "github.com/weige258/RMath/ranges"

// Slice returns the sub-matrix selecting rows by rows.Index(0..) and columns
// by cols.Index(0..), in sequence order. The result owns its storage.
//
// Implementation:
//   - Stage 1: rows.Validate(Rows) and cols.Validate(Cols) prove every index
//     in range before any element is read.
//   - Stage 2: gather rows.Len()×cols.Len() elements.
//
// Behavior highlights:
//   - An empty sequence yields a zero-extent matrix.
//   - Reversed or strided sequences are honored (e.g. NewStep(2, -1, -1)).
//
// Errors: ErrNilMatrix; ranges.ErrOutOfBounds, ranges.ErrNonInteger.
// Complexity: O(rows.Len()·cols.Len()).
func (m *Dense[T]) Slice(rows, cols ranges.Indexer) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if err := rows.Validate(m.r); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if err := cols.Validate(m.c); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	ri, ci := ranges.Collect(rows), ranges.Collect(cols)
	out := newDense[T](len(ri), len(ci))
	for i, r := range ri {
		for j, c := range ci {
			out.data[i*out.c+j] = m.data[r*m.c+c]
		}
	}

	return out, nil
}
