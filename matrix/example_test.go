package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/jacobi/matrix"
)

// ExampleMul multiplies two small matrices.
func ExampleMul() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewIdentity(2)
	c, _ := matrix.Mul(a, b)
	fmt.Print(c)
	// Output:
	// [1, 2]
	// [3, 4]
}

// ExampleOffDiagonalRowSums shows the per-row quantity the Jacobi stop rule tests.
func ExampleOffDiagonalRowSums() {
	a, _ := matrix.NewDenseFromRows([][]float64{
		{4, -1, 2},
		{-1, 3, 0},
		{2, 0, 1},
	})
	sums, _ := matrix.OffDiagonalRowSums(a)
	tr, _ := matrix.Trace(a)
	fmt.Println(sums, tr)
	// Output:
	// [3 1 2] 8
}
