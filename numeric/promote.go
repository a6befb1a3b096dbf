// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"reflect"
)

// Epsilon is the fixed threshold for singularity and zero detection.
const Epsilon = 1e-9

// Promote returns the common kind of the given operand kinds.
//
// Implementation:
//   - Stage 1: skip Invalid entries.
//   - Stage 2: return the entry with the highest rank (declaration order of Kind).
//
// Behavior highlights:
//   - Promote(k) == k and Promote(k, k) == k for every valid k.
//   - Any float operand yields a float result; float64 dominates float32.
//   - Between integers the wider one wins; equal widths prefer unsigned,
//     and the platform int/uint rank below their fixed 64-bit counterparts.
//   - Returns Invalid for an empty or all-invalid input.
//
// Complexity: O(len(kinds)).
func Promote(kinds ...Kind) Kind {
	out := Invalid
	for _, k := range kinds {
		if k.Valid() && k > out {
			out = k
		}
	}

	return out
}

// Absorbs reports whether target can hold the promoted type of kinds,
// i.e. Promote(target, kinds...) == target.
func Absorbs(target Kind, kinds ...Kind) bool {
	if !target.Valid() {
		return false
	}

	return Promote(append([]Kind{target}, kinds...)...) == target
}

// CheckResult validates R as the result element type of a mixed-type
// operation over operands of the given kinds.
// Returns a wrapped ErrNarrowing when R is narrower than the promoted kind.
//
// AI-Hints:
//   - Call exactly once per operation, before allocating the result.
func CheckResult[R Number](kinds ...Kind) error {
	r := KindOf[R]()
	if !Absorbs(r, kinds...) {
		return fmt.Errorf("result %s, promoted %s: %w", r, Promote(kinds...), ErrNarrowing)
	}

	return nil
}

// Abs returns |v|. For unsigned types it is the identity.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// NearZero reports whether |v| < eps, evaluated in float64.
func NearZero[T Number](v T, eps float64) bool {
	return math.Abs(float64(v)) < eps
}

// Cast converts a boxed numeric value x to R.
// The basic kinds take a type-switch fast path; named numeric types fall back
// to reflection. Non-numeric values yield ErrUnsupportedKind.
// Conversion follows Go conversion rules (float→int truncates toward zero).
func Cast[R Number](x any) (R, error) {
	switch v := x.(type) {
	case int:
		return R(v), nil
	case int8:
		return R(v), nil
	case int16:
		return R(v), nil
	case int32:
		return R(v), nil
	case int64:
		return R(v), nil
	case uint:
		return R(v), nil
	case uint8:
		return R(v), nil
	case uint16:
		return R(v), nil
	case uint32:
		return R(v), nil
	case uint64:
		return R(v), nil
	case float32:
		return R(v), nil
	case float64:
		return R(v), nil
	}

	if KindOfValue(x) == Invalid {
		return 0, fmt.Errorf("Cast(%T): %w", x, ErrUnsupportedKind)
	}
	out, ok := reflect.ValueOf(x).Convert(reflect.TypeFor[R]()).Interface().(R)
	if !ok {
		return 0, fmt.Errorf("Cast(%T): %w", x, ErrUnsupportedKind)
	}

	return out, nil
}
