// SPDX-License-Identifier: MIT
// Package cachesim_test - runnable examples with verified output.

package cachesim_test

import (
	"fmt"

	"github.com/katalvlaran/lvltile/cachesim"
)

// ExampleCache_Access walks the three outcomes one by one.
//
// Scenario (default geometry, 32-byte lines, 32 sets):
//
//	0x000 is cold, so it misses. 0x004 shares its line, so it hits.
//	0x400 is exactly 1 KiB away: same set, different tag, so it misses
//	and evicts the first line.
func ExampleCache_Access() {
	c, err := cachesim.New(cachesim.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(c.Access(0x000))
	fmt.Println(c.Access(0x004))
	fmt.Println(c.Access(0x400))

	st := c.Stats()
	fmt.Printf("accesses:%d hits:%d misses:%d evictions:%d\n",
		st.Accesses, st.Hits, st.Misses, st.Evictions)

	// Output:
	// false
	// true
	// false
	// accesses:3 hits:1 misses:2 evictions:1
}

// ExampleCache_Replay feeds a small trace in classic notation.
func ExampleCache_Replay() {
	c, err := cachesim.New(cachesim.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	trace := []cachesim.Event{
		{Op: cachesim.Load, Addr: 0x40},
		{Op: cachesim.Store, Addr: 0x44},
		{Op: cachesim.Load, Addr: 0x40},
	}
	for _, e := range trace {
		fmt.Println(e)
	}

	st := c.Replay(trace)
	fmt.Printf("hits:%d misses:%d evictions:%d\n", st.Hits, st.Misses, st.Evictions)

	// Output:
	// L 0x40
	// S 0x44
	// L 0x40
	// hits:2 misses:1 evictions:0
}
