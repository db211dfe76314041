// SPDX-License-Identifier: MIT
// Package cachesim - the direct-mapped cache core.

package cachesim

// Cache is a single-level direct-mapped cache: one way per set, so every
// memory line has exactly one slot it can occupy. Not safe for concurrent
// use.
type Cache struct {
	lineBytes uint64   // line size in bytes
	numSets   uint64   // CapacityBytes / LineBytes
	valid     []bool   // per-set valid bit
	tags      []uint64 // per-set resident tag
	stats     Stats    // counters since the last Reset
}

// New validates cfg and returns an empty cache of that geometry.
//
// Errors: ErrBadGeometry when capacity or line size is non-positive, or
// capacity is not a whole multiple of the line size.
//
// Complexity: O(sets) time and memory.
func New(cfg Config) (*Cache, error) {
	if cfg.CapacityBytes <= 0 || cfg.LineBytes <= 0 || cfg.CapacityBytes%cfg.LineBytes != 0 {
		return nil, ErrBadGeometry
	}
	sets := cfg.CapacityBytes / cfg.LineBytes

	return &Cache{
		lineBytes: uint64(cfg.LineBytes),
		numSets:   uint64(sets),
		valid:     make([]bool, sets),
		tags:      make([]uint64, sets),
	}, nil
}

// Sets returns the number of direct-mapped sets.
func (c *Cache) Sets() int {
	return int(c.numSets)
}

// Access feeds one byte address to the cache and reports whether it hit.
// On a miss the line is installed; displacing a valid line counts as an
// eviction.
//
// Lookup:
//
//	line = addr / lineBytes
//	set  = line mod numSets
//	tag  = line / numSets
//
// Complexity: O(1).
func (c *Cache) Access(addr uint64) bool {
	var (
		line = addr / c.lineBytes // memory line index
		set  = line % c.numSets   // the one slot this line may occupy
		tag  = line / c.numSets   // line identity within the set
	)
	c.stats.Accesses++
	if c.valid[set] && c.tags[set] == tag {
		c.stats.Hits++

		return true
	}
	c.stats.Misses++
	if c.valid[set] {
		c.stats.Evictions++ // a different line owned the slot
	}
	c.valid[set] = true
	c.tags[set] = tag

	return false
}

// Stats returns a copy of the counters accumulated since the last Reset.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Reset invalidates every set and zeroes the counters.
//
// Complexity: O(sets).
func (c *Cache) Reset() {
	var s int
	for s = 0; s < len(c.valid); s++ {
		c.valid[s] = false
		c.tags[s] = 0
	}
	c.stats = Stats{}
}

// Replay resets the cache, feeds every event of the trace in order, and
// returns the resulting stats. The Op of an event does not influence hit
// or miss behavior; presence is all this model tracks.
//
// Complexity: O(len(events)) time, O(1) extra space.
func (c *Cache) Replay(events []Event) Stats {
	c.Reset()
	var i int
	for i = 0; i < len(events); i++ {
		c.Access(events[i].Addr)
	}

	return c.stats
}
