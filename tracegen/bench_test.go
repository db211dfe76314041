// SPDX-License-Identifier: MIT
// Package tracegen_test - trace tooling benchmarks.

package tracegen_test

import (
	"testing"

	"github.com/katalvlaran/lvltile/cachesim"
	"github.com/katalvlaran/lvltile/tracegen"
	"github.com/katalvlaran/lvltile/transpose"
)

// benchmarkCountMisses times the full pipeline (trace generation plus
// replay) for one kernel on the largest tuned shape.
func benchmarkCountMisses(b *testing.B, k transpose.Kernel) {
	cfg := cachesim.DefaultConfig()
	lay := tracegen.DefaultLayout(64, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tracegen.CountMisses(k, 64, 64, cfg, lay); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountMisses_Tuned64x64(b *testing.B)    { benchmarkCountMisses(b, transpose.Tuned) }
func BenchmarkCountMisses_Baseline64x64(b *testing.B) { benchmarkCountMisses(b, transpose.Baseline) }

// BenchmarkGenerate_Tuned64x64 isolates trace construction from replay.
func BenchmarkGenerate_Tuned64x64(b *testing.B) {
	lay := tracegen.DefaultLayout(64, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tracegen.Generate(transpose.Tuned, 64, 64, lay); err != nil {
			b.Fatal(err)
		}
	}
}
