// SPDX-License-Identifier: MIT
// Package tracegen: placement of the two matrices in the simulated
// address space.

package tracegen

import "github.com/katalvlaran/lvltile/transpose"

// Layout places the two matrices in the simulated address space. Element
// size is fixed at transpose.ElemBytes (int32): A[i][j] lives at
// ABase + ElemBytes*(i*m+j) and B[j][i] at BBase + ElemBytes*(j*n+i).
type Layout struct {
	// ABase is the byte address of a[0].
	ABase uint64
	// BBase is the byte address of b[0].
	BBase uint64
}

// DefaultLayout places A at address zero and B at the first multiple of
// the target cache capacity at or past A's end. Both matrices then start
// in the same set, the worst-case phase for a direct-mapped cache: on
// the square shapes A[d][d] and B[d][d] collide, which is exactly the
// contention diagonal deferral exists for.
//
// Non-positive dimensions yield the zero Layout; Generate rejects them
// with the proper sentinel.
func DefaultLayout(m, n int) Layout {
	if m <= 0 || n <= 0 {
		return Layout{}
	}
	var (
		aBytes   = uint64(n) * uint64(m) * transpose.ElemBytes // A's footprint
		capacity = uint64(transpose.CacheCapacityBytes)        // alignment unit
	)

	return Layout{
		ABase: 0,
		BBase: (aBytes + capacity - 1) / capacity * capacity,
	}
}
