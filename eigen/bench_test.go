package eigen_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/jacobi/eigen"
)

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{8, 32, 64} {
		a := randomSymmetric(b, n, 1)
		for _, k := range eigen.Kinds() {
			b.Run(fmt.Sprintf("%s/n=%d", k, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := eigen.Solve(a, k, 1e-9, eigen.DefaultMaxIterations(n)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkLargestOffDiagonal_Parallel(b *testing.B) {
	const n = 256
	a := randomSymmetric(b, n, 2)
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				// fixed rotation budget: measures the scan, not convergence
				_, _ = eigen.Solve(a, eigen.KindLargestOffDiagonal, 1e-3, 500, eigen.WithParallelScan(w))
			}
		})
	}
}
