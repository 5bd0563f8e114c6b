// SPDX-License-Identifier: MIT

package strassen_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// ExampleMultiply multiplies two 2×2 matrices, recursing down to scalars.
func ExampleMultiply() {
	a, _ := matrix.NewDenseFromRows([][]int64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]int64{{5, 6}, {7, 8}})

	pool := strassen.NewPool(0)
	defer pool.Close()

	c, err := strassen.Multiply(a, b, 2, 1, strassen.WithPool(pool))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
}

// ExampleEngine reuses one engine for several products.
func ExampleEngine() {
	e, err := strassen.NewEngine(strassen.WithThreshold(16), strassen.WithWorkers(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer e.Close()

	for seed := int64(1); seed <= 3; seed++ {
		a, b, _ := matrix.NewRandomPair(64, 10, seed)
		c, err := e.Multiply(a, b)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		v, _ := c.At(0, 0)
		fmt.Println(seed, v)
	}
}
