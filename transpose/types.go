// SPDX-License-Identifier: MIT
// Package transpose: kernel registry, per-shape tiling table,
// cache-geometry constants, and sentinel errors.
//
// This file is the single source of truth for which shapes carry a tuned
// traversal and for the parameters of that traversal. Kernels and trace
// tooling consult TilingFor instead of re-deriving shape checks.

package transpose

import "errors"

// Geometry of the cache the tuned tilings are sized for. Kernels never
// touch a cache directly; they only order their loads and stores so that
// this particular cache misses as rarely as possible.
const (
	// CacheCapacityBytes is the total capacity of the target cache.
	CacheCapacityBytes = 1024
	// CacheLineBytes is the line (block) size of the target cache.
	CacheLineBytes = 32
	// CacheSets is the number of direct-mapped sets:
	// set(addr) = (addr / CacheLineBytes) mod CacheSets.
	CacheSets = CacheCapacityBytes / CacheLineBytes
	// ElemBytes is the size of one matrix element (int32).
	ElemBytes = 4
	// LineElems is how many elements one cache line holds.
	LineElems = CacheLineBytes / ElemBytes
)

// Sentinel errors returned by the kernels. Priority when several
// conditions hold at once: dimensions, then buffer lengths, then shape
// lookup.
var (
	// ErrInvalidDimensions indicates M <= 0 or N <= 0.
	ErrInvalidDimensions = errors.New("transpose: dimensions must be > 0")
	// ErrShortBuffer indicates a backing slice shorter than the dimensions require.
	ErrShortBuffer = errors.New("transpose: slice shorter than dimensions require")
	// ErrUnsupportedShape indicates no tuned tiling is registered for (M, N).
	ErrUnsupportedShape = errors.New("transpose: no tuned tiling for shape")
	// ErrUnknownKernel indicates a Kernel value outside the registry.
	ErrUnknownKernel = errors.New("transpose: unknown kernel")
)

// Kernel selects a transpose implementation.
type Kernel int

const (
	// Tuned is the cache-conscious tiled kernel. It accepts only the
	// shapes listed in TilingFor and rejects everything else with
	// ErrUnsupportedShape.
	Tuned Kernel = iota
	// Baseline is the unblocked row-major reference scan. It accepts any
	// positive shape and serves as the correctness and miss-count
	// yardstick for Tuned.
	Baseline
)

// kernelNames maps Kernel values to their flag-friendly names.
var kernelNames = [...]string{
	Tuned:    "tuned",
	Baseline: "baseline",
}

// String returns the lower-case kernel name, or "unknown" for values
// outside the registry.
func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return "unknown"
	}

	return kernelNames[k]
}

// ParseKernel maps a name produced by Kernel.String back to its value.
// Anything else yields ErrUnknownKernel.
func ParseKernel(name string) (Kernel, error) {
	for k, n := range kernelNames {
		if n == name {
			return Kernel(k), nil
		}
	}

	return 0, ErrUnknownKernel
}

// Kernels lists every registered kernel in a stable order, Tuned first.
// Harnesses iterate this instead of hardcoding the enum.
func Kernels() []Kernel {
	return []Kernel{Tuned, Baseline}
}

// Tiling holds the traversal parameters of one tuned shape.
type Tiling struct {
	// Rows is the tile height, in rows of A. Divides N exactly for every
	// registered shape.
	Rows int
	// Cols is the tile width, in columns of A. Divides M exactly for
	// every registered shape.
	Cols int
	// DeferDiagonal marks tilings whose main-diagonal tiles write their
	// diagonal elements after the rest of the tile. Only square tilings
	// of square shapes set it, so inside a kernel a tile sits on the
	// diagonal exactly when its row and column offsets are equal.
	DeferDiagonal bool
}

// TilingFor returns the tuned traversal parameters for an A of n rows
// and m columns, and reports whether the shape is tuned at all.
//
// The registered shapes, derived from the package geometry constants:
//
//	M=32, N=32: 8x8 tiles, diagonal deferral. A 32-column row spans 4
//	  lines, so rows 8 apart share a set; an 8x8 tile touches each set
//	  once, and only diagonal tiles have A and B lines colliding.
//	M=64, N=64: 4x4 tiles, diagonal deferral. A 64-column row spans 8
//	  lines, so rows already 4 apart share a set; tiles shrink to 4x4
//	  to keep a tile's working lines distinct.
//	M=32, N=64: 8-row by 4-column tiles, no deferral.
//
// Any other shape reports ok=false; callers choose between rejecting
// (Transpose) and falling back to the always-available Baseline scan.
func TilingFor(m, n int) (Tiling, bool) {
	switch {
	case m == 32 && n == 32:
		return Tiling{Rows: 8, Cols: 8, DeferDiagonal: true}, true
	case m == 64 && n == 64:
		return Tiling{Rows: 4, Cols: 4, DeferDiagonal: true}, true
	case m == 32 && n == 64:
		return Tiling{Rows: 8, Cols: 4, DeferDiagonal: false}, true
	default:
		return Tiling{}, false
	}
}
