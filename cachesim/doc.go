// SPDX-License-Identifier: MIT

// Package cachesim models a single-level direct-mapped CPU cache and
// replays memory-access traces against it, attributing hits, misses and
// evictions.
//
// What:
//
//   - Cache: a direct-mapped cache built from a Config (capacity and
//     line size in bytes). Only line presence is modeled; no timing, no
//     hierarchy, no coherency.
//   - Access: feed one byte address, learn whether it hit.
//   - Replay: reset, feed a whole []Event trace, collect Stats.
//
// Mapping, for an address addr:
//
//	line = addr / LineBytes
//	set  = line mod (CapacityBytes / LineBytes)
//	tag  = line / numSets
//
// Loads and stores are indistinguishable to the model; Event carries the
// Op anyway so traces print in the classic "L 0x40" / "S 0x44" notation.
//
// Why: the transpose tilings in this repository are sized against one
// concrete geometry. Replaying a kernel's trace here turns the tuning
// into a measured number instead of an asserted one.
//
// Errors:
//
//   - ErrBadGeometry: capacity or line size non-positive, or capacity
//     not a whole multiple of the line size.
//
// Complexity: Access is O(1); Replay is O(len(events)).
package cachesim
