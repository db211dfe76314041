// SPDX-License-Identifier: MIT
// Package tracegen_test - examples tying kernel traces to cache behavior.

package tracegen_test

import (
	"fmt"

	"github.com/katalvlaran/lvltile/cachesim"
	"github.com/katalvlaran/lvltile/tracegen"
	"github.com/katalvlaran/lvltile/transpose"
)

// ExampleGenerate prints the opening of the baseline 32x32 trace.
//
// Scenario:
//
//	DefaultLayout(32, 32) puts A at 0x0 and B at 0x1000. The scan's
//	first copy is B[0][0] = A[0][0], the second B[1][0] = A[0][1]; B's
//	stride is 32 int32 = 128 bytes, hence the 0x80 step between stores.
func ExampleGenerate() {
	lay := tracegen.DefaultLayout(32, 32)
	ev, err := tracegen.Generate(transpose.Baseline, 32, 32, lay)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range ev[:4] {
		fmt.Println(e)
	}

	// Output:
	// L 0x0
	// S 0x1000
	// L 0x4
	// S 0x1080
}

// ExampleCountMisses compares both kernels on the 32x32 shape under the
// default cache geometry and the capacity-aligned layout.
func ExampleCountMisses() {
	cfg := cachesim.DefaultConfig()
	lay := tracegen.DefaultLayout(32, 32)

	tuned, err := tracegen.CountMisses(transpose.Tuned, 32, 32, cfg, lay)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	base, err := tracegen.CountMisses(transpose.Baseline, 32, 32, cfg, lay)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("same work:", tuned.Accesses == base.Accesses)
	fmt.Println("tuned misses less:", tuned.Misses < base.Misses)

	// Output:
	// same work: true
	// tuned misses less: true
}
