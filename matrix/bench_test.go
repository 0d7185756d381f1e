// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the stores and the algebra layer,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/rubynetix/sparse-matrix/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix[int64]
	sinkV int64
	sinkB bool
)

// mustRandom draws an n×n matrix of the given kind with a fixed seed.
func mustRandom(b *testing.B, kind matrix.Kind, n int, fill float64, seed uint64) matrix.Matrix[int64] {
	b.Helper()
	m, err := matrix.Random[int64](kind, rand.New(rand.NewPCG(seed, seed^0x9e3779b9)),
		matrix.WithShape(n, n), matrix.WithFillFactor(fill), matrix.WithValueRange(-9, 9))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkCSR_Put(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(1337, 42))
			m, err := matrix.NewCSR[int64](n, n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				changed, err := m.Put(rng.IntN(n), rng.IntN(n), rng.Int64N(3))
				if err != nil {
					b.Fatal(err)
				}
				sinkB = changed
			}
		})
	}
}

func BenchmarkTridiagonal_Put(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(7, 11))
			m, err := matrix.NewTridiagonal[int64](n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r := rng.IntN(n)
				c := min(max(r+rng.IntN(3)-1, 0), n-1)
				changed, err := m.Put(r, c, rng.Int64N(3))
				if err != nil {
					b.Fatal(err)
				}
				sinkB = changed
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustRandom(b, matrix.KindSparse, n, 10, 1)
			y := mustRandom(b, matrix.KindSparse, n, 10, 2)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustRandom(b, matrix.KindSparse, n, 10, 3)
			y := mustRandom(b, matrix.KindSparse, n, 10, 4)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustRandom(b, matrix.KindSparse, n, 10, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Transpose(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkDet compares the band recurrence with Bareiss on the same band matrix.
func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		tri := mustRandom(b, matrix.KindTridiagonal, n, 100, 6)
		b.Run(fmt.Sprintf("tridiagonal/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(tri)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = d
			}
		})
		b.Run(fmt.Sprintf("bareiss/n=%d", n), func(b *testing.B) {
			generic := hide[int64]{tri}
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det[int64](generic)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = d
			}
		})
	}
}
