// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/weige258/RMath/matrix"
	"github.com/weige258/RMath/ranges"
	"github.com/weige258/RMath/vector"
)

func ExampleDet() {
	m := matrix.MustDense(2, 2, 1, 2, 3, 4)
	d, _ := matrix.Det(m)
	fmt.Println(d)
	// Output: -2
}

func ExampleInverse() {
	m := matrix.MustDense(2, 2, 1.0, 2, 3, 4)
	inv, _ := matrix.Inverse(m)
	fmt.Println(inv)
	// Output:
	// [-2, 1,
	//  1.5, -0.5]
}

func ExampleDense_Slice() {
	id, _ := matrix.Identity[int](3)
	top, _ := id.Slice(ranges.New(0, 2), ranges.New(0, 2))
	fmt.Println(top)
	// Output:
	// [1, 0,
	//  0, 1]
}

func ExampleMulVec() {
	rot := matrix.MustDense(2, 2, 0, -1, 1, 0) // 90° rotation
	v, _ := matrix.MulVec(rot, vector.Of(1, 0))
	fmt.Println(v)
	// Output: [0, 1]
}

func ExampleKronecker() {
	a := matrix.MustDense(1, 2, 1, 2)
	b := matrix.MustDense(2, 1, 1, 10)
	k, _ := matrix.Kronecker(a, b)
	fmt.Println(k)
	// Output:
	// [1, 2,
	//  10, 20]
}
