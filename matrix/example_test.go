// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// ExampleSplit splits a 4×4 matrix into quadrants and puts it back together.
func ExampleSplit() {
	m, _ := matrix.NewDenseFromRows([][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	q, err := matrix.Split(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(q[matrix.BottomRight])

	back, _ := matrix.CombineQuadrants(q[matrix.TopLeft], q[matrix.TopRight], q[matrix.BottomLeft], q[matrix.BottomRight], 2)
	fmt.Println(back.Equal(m))
	// Output:
	// [11 12]
	// [15 16]
	// true
}

// ExampleMultiplyClassical multiplies the top-left 2×2 window of A by B.
func ExampleMultiplyClassical() {
	a, _ := matrix.NewDenseFromRows([][]int64{
		{1, 2, 0, 0},
		{3, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	b, _ := matrix.NewDenseFromRows([][]int64{{5, 6}, {7, 8}})

	c, err := matrix.MultiplyClassical(a, b, 0, 0, 0, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19 22]
	// [43 50]
}
