// SPDX-License-Identifier: MIT

package ranges

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroStep is returned when a bounded Static range is built with step 0.
	ErrZeroStep = errors.New("ranges: step cannot be zero")

	// ErrOutOfBounds indicates that a produced index falls outside the
	// container (or declared bound) the sequence is applied to.
	ErrOutOfBounds = errors.New("ranges: index out of bounds")

	// ErrEmpty is returned by queries that need at least one produced value.
	ErrEmpty = errors.New("ranges: empty range")

	// ErrNonInteger is returned when a floating-point Range is used to index
	// a container.
	ErrNonInteger = errors.New("ranges: non-integer range cannot index a container")
)

// rangeErrorf tags err with the operation name, preserving it for errors.Is.
func rangeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
