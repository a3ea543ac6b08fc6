package builder_test

import (
	"fmt"

	"github.com/katalvlaran/jacobi/builder"
)

// ExampleHilbert builds the 3×3 Hilbert matrix.
func ExampleHilbert() {
	m, err := builder.BuildMatrix(builder.Hilbert(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	// Output:
	// [1, 0.5, 0.3333333333333333]
	// [0.5, 0.3333333333333333, 0.25]
	// [0.3333333333333333, 0.25, 0.2]
}

// ExampleByName resolves a generator by its CLI name.
func ExampleByName() {
	ctor, err := builder.ByName(builder.KindRandom, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, _ := builder.BuildMatrix(ctor, builder.WithSeed(1))
	fmt.Println(m.Rows(), m.Cols())
	// Output:
	// 4 4
}
