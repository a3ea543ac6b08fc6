package eigen_test

import (
	"fmt"

	"github.com/katalvlaran/jacobi/builder"
	"github.com/katalvlaran/jacobi/eigen"
	"github.com/katalvlaran/jacobi/matrix"
)

// ExampleSolve diagonalizes a 2×2 matrix with a single rotation.
func ExampleSolve() {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
	res, err := eigen.Solve(a, eigen.KindRowNormWeighted, 1e-9, 100)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("values=%.4f steps=%d\n", res.Sorted(), res.Steps)
	// Output:
	// values=[1.0000 3.0000] steps=1
}

// ExampleGershgorinBounds prints the disc interval of every row.
func ExampleGershgorinBounds() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, 1, 0},
		{1, 3, -1},
		{0, -1, 1},
	})
	ivs, _ := eigen.GershgorinBounds(a)
	for _, iv := range ivs {
		fmt.Println(iv)
	}
	// Output:
	// 3.00 <= z <= 5.00
	// 1.00 <= z <= 5.00
	// 0.00 <= z <= 2.00
}

// ExampleCyclicSweep shows the pivot order for a 3×3 matrix.
func ExampleCyclicSweep() {
	s := eigen.NewCyclicSweep(3)
	for i := 0; i < 4; i++ {
		p, _ := s.Choose(nil)
		fmt.Print(p, " ")
		s.Update(p, nil)
	}
	fmt.Println()
	// Output:
	// (0,1) (0,2) (1,2) (0,1)
}

// ExamplePowerIteration estimates the dominant eigenvalue of a Hilbert matrix.
func ExamplePowerIteration() {
	h, _ := builder.BuildMatrix(builder.Hilbert(3))
	x0, _ := builder.Constant(3, 1)
	d, err := eigen.PowerIteration(h, x0, 1e-12, 1000)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f\n", d.Value)
	// Output:
	// 1.408319
}
