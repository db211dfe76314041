// SPDX-License-Identifier: MIT

// Package transpose implements cache-conscious matrix transpose kernels
// for a small set of fixed shapes, plus a correctness verifier.
//
// What:
//
//   - Transpose: tiled kernel writing the transpose of A into B for the
//     tuned shapes (M=32,N=32), (M=64,N=64) and (M=32,N=64), where A has
//     N rows and M columns.
//   - TransposeBaseline: unblocked row-major reference scan. Correct for
//     any positive shape, indifferent to the cache.
//   - Run / Walk: dispatch by Kernel value, and a data-free replay of a
//     kernel's exact traversal order for tooling.
//   - IsTranspose: read-only predicate checking B[j][i] == A[i][j].
//
// Memory model:
//
//   - Matrices are caller-allocated flat row-major slices of int32.
//     A is N x M with stride M; B is M x N with stride N. Kernels read a,
//     write b, allocate nothing and keep no state between calls.
//   - Every failure path returns before the first write to b.
//
// Tuning target:
//
//   - Tile sizes come from a 1 KiB direct-mapped cache with 32-byte lines
//     (CacheCapacityBytes, CacheLineBytes, CacheSets). A line holds 8
//     int32, and addresses 1 KiB apart land in the same set. On the
//     square shapes each main-diagonal tile writes its diagonal elements
//     after the rest of the tile (diagonal deferral), since A[d][d] and
//     B[d][d] contend for one set there. TilingFor documents the table.
//
// Errors (sentinels, matched with errors.Is):
//
//   - ErrInvalidDimensions: M <= 0 or N <= 0.
//   - ErrShortBuffer: a or b shorter than the dimensions require.
//   - ErrUnsupportedShape: no tuned tiling registered for (M, N).
//   - ErrUnknownKernel: Kernel value outside the registry.
//
// Complexity: every operation is one deterministic O(N*M) pass with O(1)
// extra memory.
package transpose
