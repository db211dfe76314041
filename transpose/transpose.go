// SPDX-License-Identifier: MIT
// Package transpose - kernels and the traversal cores they share.
//
// This file hosts the public kernels (Transpose, TransposeBaseline, Run),
// the data-free traversal replay (Walk), and the two traversal cores
// behind all of them. Kernels and Walk run the same cores, so the order a
// kernel touches memory and the order Walk reports cannot drift apart.
//
// Design:
//   - Deterministic; no side effects beyond writing b.
//   - Sentinel errors only (types.go); every failure path returns before
//     the first write to b.
//   - No allocation on any path; visitors are the only indirection.

package transpose

// Transpose writes the transpose of a into b using the tuned tiled
// traversal registered for the shape (m, n).
//
// Contract:
//   - a is the source, n rows by m columns, row-major with stride m.
//   - b is the destination, m rows by n columns, row-major with stride n.
//   - Postcondition: b[j*n+i] == a[i*m+j] for all 0 <= i < n, 0 <= j < m.
//   - Aliasing a and b is unsupported; results are undefined then.
//
// Errors: ErrInvalidDimensions, ErrShortBuffer, ErrUnsupportedShape.
//
// Complexity: O(N*M) time, O(1) extra space.
func Transpose(m, n int, a, b []int32) error {
	if err := validateInputs(m, n, a, b); err != nil {
		return err
	}
	t, ok := TilingFor(m, n)
	if !ok {
		return ErrUnsupportedShape
	}
	walkTiled(m, n, t, func(i, j int) { b[j*n+i] = a[i*m+j] })

	return nil
}

// TransposeBaseline writes the transpose of a into b using an unblocked
// row-major scan: for each row i of a, for each column j, copy one
// element. It accepts any positive shape.
//
// Same contract as Transpose, minus the shape restriction.
//
// Errors: ErrInvalidDimensions, ErrShortBuffer.
//
// Complexity: O(N*M) time, O(1) extra space.
func TransposeBaseline(m, n int, a, b []int32) error {
	if err := validateInputs(m, n, a, b); err != nil {
		return err
	}
	walkScan(m, n, func(i, j int) { b[j*n+i] = a[i*m+j] })

	return nil
}

// Run dispatches to the kernel selected by k, with identical contracts.
//
// Errors: the selected kernel's sentinels, or ErrUnknownKernel when k is
// outside the registry.
func Run(k Kernel, m, n int, a, b []int32) error {
	switch k {
	case Tuned:
		return Transpose(m, n, a, b)
	case Baseline:
		return TransposeBaseline(m, n, a, b)
	default:
		return ErrUnknownKernel
	}
}

// Walk replays kernel k's traversal over an n-by-m A without touching any
// data: visit is invoked once per element copy, in the kernel's exact
// order, where (i, j) names the copy b[j*n+i] = a[i*m+j].
//
// Walk validates dimensions and, for Tuned, the shape, but no buffers
// exist to length-check. Trace tooling builds on this to reproduce a
// kernel's memory-access sequence address by address.
//
// Errors: ErrInvalidDimensions, ErrUnsupportedShape (Tuned only),
// ErrUnknownKernel.
//
// Complexity: O(N*M) invocations of visit, O(1) extra space.
func Walk(k Kernel, m, n int, visit func(i, j int)) error {
	if m <= 0 || n <= 0 {
		return ErrInvalidDimensions
	}
	switch k {
	case Tuned:
		t, ok := TilingFor(m, n)
		if !ok {
			return ErrUnsupportedShape
		}
		walkTiled(m, n, t, visit)
	case Baseline:
		walkScan(m, n, visit)
	default:
		return ErrUnknownKernel
	}

	return nil
}

// walkTiled visits every (i, j) of an n-by-m matrix tile by tile. Tiles
// sweep left to right, then top to bottom; inside a tile the scan is
// row-major. When t.DeferDiagonal is set, a tile whose row and column
// offsets coincide skips its diagonal elements during the scan and visits
// them afterwards, in increasing index order. Requires t.Rows | n and
// t.Cols | m, which TilingFor guarantees for every registered shape.
func walkTiled(m, n int, t Tiling, visit func(i, j int)) {
	var (
		i, j   int // top-left corner of the current tile
		ii, jj int // element within the tile
		d      int // deferred diagonal index
	)
	for i = 0; i < n; i += t.Rows {
		for j = 0; j < m; j += t.Cols {
			diag := t.DeferDiagonal && i == j // tile sits on the main diagonal
			for ii = i; ii < i+t.Rows; ii++ {
				for jj = j; jj < j+t.Cols; jj++ {
					if diag && ii == jj {
						continue // written after the tile body
					}
					visit(ii, jj)
				}
			}
			if diag {
				for d = i; d < i+t.Rows; d++ {
					visit(d, d)
				}
			}
		}
	}
}

// walkScan visits every (i, j) of an n-by-m matrix in plain row-major
// order.
func walkScan(m, n int, visit func(i, j int)) {
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			visit(i, j)
		}
	}
}

// validateInputs applies the shared kernel checks in sentinel priority
// order: dimensions first, then backing lengths.
func validateInputs(m, n int, a, b []int32) error {
	if m <= 0 || n <= 0 {
		return ErrInvalidDimensions
	}
	if len(a) < n*m || len(b) < m*n {
		return ErrShortBuffer
	}

	return nil
}
