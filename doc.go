// Package lvltile is a small laboratory for cache-conscious matrix
// kernels: fixed-shape transpose routines tuned for a known cache
// geometry, a direct-mapped cache simulator, and the trace tooling that
// ties the two together.
//
// 🚀 What is lvltile?
//
//	A lean, measurement-first library that brings together:
//		• Transpose kernels: tiled traversals for the 32x32, 64x64 and
//		  32x64 shapes, plus an unblocked baseline and a verifier
//		• Cache model: direct-mapped simulation (1 KiB, 32-byte lines)
//		  with hit/miss/eviction accounting
//		• Trace tooling: kernel to address trace to cache stats, so a
//		  tuning claim is a measured number
//
// ✨ Why choose lvltile?
//
//   - Honest numbers – every tiling is replayed against the cache model
//   - Rock-solid contracts – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no unsafe, no hidden deps
//
// Under the hood, everything is organized under three subpackages and
// one command:
//
//	transpose/     — kernels (tuned + baseline), tiling table, verifier
//	cachesim/      — direct-mapped cache: Access, Replay, Stats
//	tracegen/      — kernel access traces and miss counting
//	cmd/transbench — CLI harness: run, verify and measure the kernels
//
// Quick taste:
//
//	a := make([]int32, 32*32) // row-major source, stride 32
//	b := make([]int32, 32*32)
//	if err := transpose.Transpose(32, 32, a, b); err != nil {
//		// ErrInvalidDimensions, ErrShortBuffer or ErrUnsupportedShape
//	}
//	ok := transpose.IsTranspose(32, 32, a, b) // true
//
// Dive into README.md for the tiling table, the cache model, and worked
// miss-count comparisons between the tuned and baseline kernels.
//
//	go get github.com/katalvlaran/lvltile
package lvltile
