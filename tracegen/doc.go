// SPDX-License-Identifier: MIT

// Package tracegen turns transpose kernels into memory-access traces and
// counts the cache misses those traces incur.
//
// What:
//
//   - Layout: byte addresses of the two matrices in a simulated address
//     space. DefaultLayout aligns both to the target cache capacity, the
//     placement the tuned tilings are built to survive.
//   - Generate: replay a kernel's traversal (transpose.Walk) into one
//     Load and one Store per element copy, in the kernel's exact order.
//   - CountMisses: Generate, cachesim.New and Replay in one call.
//
// Why: the kernels are tuned by ordering their accesses for one concrete
// cache. This package is the measuring bench that attributes a hit,
// miss and eviction count to each kernel, so tuned and baseline can be
// compared on equal inputs.
//
// Errors: the transpose validation sentinels (ErrInvalidDimensions,
// ErrUnsupportedShape, ErrUnknownKernel) plus cachesim.ErrBadGeometry.
//
// Complexity: everything is one O(N*M) pass; Generate allocates the
// 2*M*N-event trace it returns.
package tracegen
