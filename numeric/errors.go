// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrNarrowing is returned when a requested result type cannot absorb
	// every operand kind of a mixed-type operation.
	ErrNarrowing = errors.New("numeric: result type narrower than promoted operand type")

	// ErrUnsupportedKind is returned when a value is not one of the twelve
	// numeric kinds (e.g. a bool, string or complex number).
	ErrUnsupportedKind = errors.New("numeric: unsupported kind")
)
