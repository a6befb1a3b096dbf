// SPDX-License-Identifier: MIT

package numeric

import (
	"reflect"
	"strconv"
)

// Kind identifies one of the twelve numeric element kinds.
// The declaration order IS the promotion rank (see Promote).
type Kind uint8

const (
	Invalid Kind = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int
	Int64
	Uint
	Uint64
	Float32
	Float64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Int:     "int",
	Uint:    "uint",
	Int64:   "int64",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// String returns the Go spelling of the kind ("int32", "float64", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the twelve numeric kinds.
func (k Kind) Valid() bool { return k > Invalid && k <= Float64 }

// IsFloat reports whether k is float32 or float64.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// IsInteger reports whether k is any signed or unsigned integer kind.
func (k Kind) IsInteger() bool { return k.Valid() && !k.IsFloat() }

// IsSigned reports whether k can represent negative values.
func (k Kind) IsSigned() bool {
	switch k {
	case Int8, Int16, Int32, Int, Int64, Float32, Float64:
		return true
	default:
		return false
	}
}

// Size returns the storage size of one element of kind k in bytes.
// int and uint follow the platform word size.
func (k Kind) Size() int {
	switch k {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Int, Uint:
		return strconv.IntSize / 8
	default:
		return 0
	}
}

// kindOfReflect maps a reflect.Kind onto the numeric Kind enum.
func kindOfReflect(k reflect.Kind) Kind {
	switch k {
	case reflect.Int8:
		return Int8
	case reflect.Uint8:
		return Uint8
	case reflect.Int16:
		return Int16
	case reflect.Uint16:
		return Uint16
	case reflect.Int32:
		return Int32
	case reflect.Uint32:
		return Uint32
	case reflect.Int:
		return Int
	case reflect.Uint:
		return Uint
	case reflect.Int64:
		return Int64
	case reflect.Uint64:
		return Uint64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		return Invalid
	}
}

// KindOf returns the Kind of the type argument T.
// Named types report their underlying kind (type Celsius float32 → Float32).
// Complexity: O(1).
func KindOf[T Number]() Kind {
	return kindOfReflect(reflect.TypeFor[T]().Kind())
}

// KindOfValue returns the Kind of a boxed value, or Invalid when x is not a
// numeric value.
func KindOfValue(x any) Kind {
	if x == nil {
		return Invalid
	}

	return kindOfReflect(reflect.TypeOf(x).Kind())
}

// SizeOf returns the size in bytes of one element of type T.
func SizeOf[T Number]() int { return KindOf[T]().Size() }
