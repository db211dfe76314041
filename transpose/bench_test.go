// SPDX-License-Identifier: MIT
// Package transpose_test - kernel benchmarks.
//
// Run with: go test -bench=. -benchmem ./transpose
//
// The interesting number is allocs/op: every kernel promises zero.

package transpose_test

import (
	"testing"

	"github.com/katalvlaran/lvltile/transpose"
)

// benchmarkKernel measures one kernel on one shape with pre-built
// buffers, so the loop times nothing but the traversal itself.
func benchmarkKernel(b *testing.B, k transpose.Kernel, m, n int) {
	a := fillSequential(m, n)
	dst := make([]int32, m*n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := transpose.Run(k, m, n, a, dst); err != nil {
			b.Fatalf("kernel %v on %dx%d: %v", k, m, n, err)
		}
	}
}

func BenchmarkTranspose_Tuned32x32(b *testing.B)    { benchmarkKernel(b, transpose.Tuned, 32, 32) }
func BenchmarkTranspose_Baseline32x32(b *testing.B) { benchmarkKernel(b, transpose.Baseline, 32, 32) }
func BenchmarkTranspose_Tuned64x64(b *testing.B)    { benchmarkKernel(b, transpose.Tuned, 64, 64) }
func BenchmarkTranspose_Baseline64x64(b *testing.B) { benchmarkKernel(b, transpose.Baseline, 64, 64) }
func BenchmarkTranspose_Tuned32x64(b *testing.B)    { benchmarkKernel(b, transpose.Tuned, 32, 64) }
func BenchmarkTranspose_Baseline32x64(b *testing.B) { benchmarkKernel(b, transpose.Baseline, 32, 64) }

// BenchmarkIsTranspose_64x64 measures the verifier on its largest tuned
// input, the all-match worst case.
func BenchmarkIsTranspose_64x64(b *testing.B) {
	const m, n = 64, 64
	a := fillSequential(m, n)
	dst := make([]int32, m*n)
	if err := transpose.Transpose(m, n, a, dst); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !transpose.IsTranspose(m, n, a, dst) {
			b.Fatal("verification unexpectedly failed")
		}
	}
}
