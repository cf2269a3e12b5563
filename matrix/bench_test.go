// Package matrix_test provides benchmarks for Dense matrix arithmetic.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ddt-go/ddt/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{50, 100, 200}

func BenchmarkMulDense(b *testing.B) {
	b.ReportAllocs()
	for _, N := range benchSizes {
		N := N
		b.Run(fmt.Sprintf("Mul %dx%d", N, N), func(b *testing.B) {
			// Stage 2 (Prepare): create two N×N random Dense matrices
			a, _ := matrix.NewDense(N, N)
			c := rand.New(rand.NewSource(42))
			for i := 0; i < N; i++ {
				for j := 0; j < N; j++ {
					_ = a.Set(i, j, c.Float64())
				}
			}
			bm, _ := matrix.NewDense(N, N)
			for i := 0; i < N; i++ {
				for j := 0; j < N; j++ {
					_ = bm.Set(i, j, c.Float64())
				}
			}

			b.ResetTimer()
			// Stage 3 (Execute): multiply matrices
			for i := 0; i < b.N; i++ {
				_, _ = matrix.Mul(a, bm)
			}
		})
	}
}
