// Package assign_test provides benchmarks for the assignment solver,
// using deterministic random fill for cost matrices.
package assign_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/isomatch/isomatch/assign"
	"github.com/isomatch/isomatch/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkAssign *assign.Assignment
	sinkDense  *matrix.Dense
)

func randCosts(b *testing.B, r, c int, seed int64) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewDense(r, c)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	data := d.Data()
	for i := range data {
		data[i] = rng.Float64() * 100
	}

	return d
}

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			costs := randCosts(b, n, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a, err := assign.Solve(costs)
				if err != nil {
					b.Fatal(err)
				}
				sinkAssign = a
			}
		})
	}
}

func BenchmarkSolve_Rectangular(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 64} {
		b.Run(fmt.Sprintf("n=%dx%d", n, 2*n), func(b *testing.B) {
			costs := randCosts(b, n, 2*n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a, err := assign.Solve(costs)
				if err != nil {
					b.Fatal(err)
				}
				sinkAssign = a
			}
		})
	}
}

func BenchmarkConstrainedCosts(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 16, 24} { // limits it so that CI doesn't burn
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			costs := randCosts(b, n, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := assign.ConstrainedCosts(costs)
				if err != nil {
					b.Fatal(err)
				}
				sinkDense = out
			}
		})
	}
}
