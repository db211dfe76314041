// SPDX-License-Identifier: MIT
// Package transpose - transpose relation verifier.

package transpose

// IsTranspose reports whether b holds the transpose of a: for every
// 0 <= i < n and 0 <= j < m, a[i*m+j] == b[j*n+i].
//
// Contract:
//   - Read-only predicate: no writes, no allocation, no retained state.
//   - Scans a in row-major order and short-circuits on the first mismatch.
//   - Vacuously true when m <= 0 or n <= 0 (nothing to compare).
//   - False when either backing slice is shorter than the dimensions
//     require; the predicate never panics.
//
// Complexity: O(N*M) worst case, O(1) extra space.
func IsTranspose(m, n int, a, b []int32) bool {
	if m <= 0 || n <= 0 {
		return true
	}
	if len(a) < n*m || len(b) < m*n {
		return false
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if a[i*m+j] != b[j*n+i] {
				return false
			}
		}
	}

	return true
}
