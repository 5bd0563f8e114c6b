// Package matrix_test provides benchmarks for the primitive kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var sinkM *matrix.Dense

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustRandom(b, n, 1337)
			B := MustRandom(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkExtractSubmatrix(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustRandom(b, n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.ExtractSubmatrix(A, n/2, n/2, n/2)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyClassical(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustRandom(b, n, 1)
			B := MustRandom(b, n, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MultiplyClassical(A, B, 0, 0, 0, 0, n)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
