// SPDX-License-Identifier: MIT

package numeric

// Signed is a constraint for signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint for unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is a constraint for all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint for floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is the element constraint of every vector and matrix.
// uintptr is deliberately excluded; it is an address, not a quantity.
type Number interface {
	Integer | Float
}
