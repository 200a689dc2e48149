package gth_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stationary/gth"
	"github.com/katalvlaran/stationary/matrix"
)

// ExampleSolve solves a two-state discrete-time chain.
func ExampleSolve() {
	x, err := gth.Solve([][]float64{
		{0.4, 0.6},
		{0.2, 0.8},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f %.4f\n", x[0], x[1])
	// Output:
	// 0.2500 0.7500
}

// ExampleSolve_generator solves a continuous-time chain given by its generator.
func ExampleSolve_generator() {
	x, _ := gth.Solve([][]float64{
		{-1, 1},
		{4, -4},
	})
	fmt.Printf("%.4f %.4f\n", x[0], x[1])
	// Output:
	// 0.8000 0.2000
}

// ExampleSolve_notSquare shows how shape errors are matched.
func ExampleSolve_notSquare() {
	_, err := gth.Solve([][]float64{{0.4, 0.6}})
	fmt.Println(errors.Is(err, gth.ErrNotSquare), errors.Is(err, gth.ErrInvalidShape))
	// Output:
	// true true
}

// ExampleVerify checks a candidate distribution against the three laws.
func ExampleVerify() {
	p, _ := matrix.NewDenseFrom([][]float64{
		{0.4, 0.6},
		{0.2, 0.8},
	})
	fmt.Println(gth.Verify(p, []float64{0.25, 0.75}, 1e-12))
	fmt.Println(errors.Is(gth.Verify(p, []float64{0.5, 0.5}, 1e-12), gth.ErrNotStationary))
	// Output:
	// <nil>
	// true
}
