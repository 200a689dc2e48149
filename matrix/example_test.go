package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/stationary/matrix"
)

// ExampleVecMat shows one step of a two-state chain from a point mass.
func ExampleVecMat() {
	p, err := matrix.NewDenseFrom([][]float64{
		{0.4, 0.6},
		{0.2, 0.8},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	y, _ := matrix.VecMat([]float64{1, 0}, p)
	fmt.Println(y)
	// Output:
	// [0.4 0.6]
}

// ExampleValidateRowSums distinguishes a stochastic matrix from a generator.
func ExampleValidateRowSums() {
	q, _ := matrix.NewDenseFrom([][]float64{
		{-1, 1},
		{4, -4},
	})
	fmt.Println(matrix.ValidateRowSums(q, 0) == nil)
	fmt.Println(matrix.ValidateRowSums(q, 1) == nil)
	// Output:
	// true
	// false
}
