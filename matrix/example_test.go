// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmat/matrix"
)

// ExampleNew demonstrates constructing a zero-initialized container and
// writing cells through the checked accessors.
func ExampleNew() {
	m, _ := matrix.New[int](2, 3)

	_ = m.Set(0, 0, 1)
	_ = m.Set(1, 2, 6)

	v, _ := m.At(1, 2)
	fmt.Println("dims:", m.Rows(), "x", m.Cols())
	fmt.Println("cell:", v)
	fmt.Print(m)

	// Output:
	// dims: 2 x 3
	// cell: 6
	// [1, 0, 0]
	// [0, 0, 6]
}

// ExampleFromRows demonstrates building a container from row slices.
func ExampleFromRows() {
	m, _ := matrix.FromRows([][]string{
		{"alpha", "beta"},
		{"gamma", "delta"},
	})

	fmt.Print(m)

	// Output:
	// [alpha, beta]
	// [gamma, delta]
}

// ExampleAdd demonstrates element-wise arithmetic between two containers of
// the same shape.
func ExampleAdd() {
	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.FromRows([][]int{{10, 20}, {30, 40}})

	sum, _ := matrix.Add(a, b)
	fmt.Print(sum)

	// Output:
	// [11, 22]
	// [33, 44]
}

// ExampleAddWith demonstrates mixed-type arithmetic where the caller picks
// the result element type.
func ExampleAddWith() {
	ints, _ := matrix.FromRows([][]int{{1, 2}})
	floats, _ := matrix.FromRows([][]float64{{0.5, 0.25}})

	mixed, _ := matrix.AddWith[float64](ints, floats)
	fmt.Print(mixed)

	// Output:
	// [1.5, 2.25]
}

// ExampleLtScalar demonstrates broadcasting a comparison into a boolean mask.
func ExampleLtScalar() {
	m, _ := matrix.FromRows([][]int{{1, 5}, {9, 2}})

	mask, _ := matrix.LtScalar(m, 5)
	fmt.Print(mask)

	// Output:
	// [true, false]
	// [false, true]
}

// ExampleMatrix_Reserve demonstrates pre-sizing storage so later growth
// avoids reallocation.
func ExampleMatrix_Reserve() {
	m, _ := matrix.New[int](2, 2)
	_ = m.Reserve(4, 4)

	fmt.Println("size:", m.Size())
	fmt.Println("cap: ", m.Cap())

	// Output:
	// size: 16
	// cap:  16
}
