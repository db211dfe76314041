// SPDX-License-Identifier: MIT
// Package cachesim: geometry configuration, trace event types, counters,
// and sentinel errors.

package cachesim

import (
	"errors"
	"fmt"
)

// ErrBadGeometry indicates a non-positive capacity or line size, or a
// capacity that is not a whole multiple of the line size.
var ErrBadGeometry = errors.New("cachesim: capacity must be a positive multiple of line size")

// Config describes the simulated cache geometry in bytes.
type Config struct {
	// CapacityBytes is the total cache capacity.
	CapacityBytes int
	// LineBytes is the line (block) size. CapacityBytes / LineBytes is
	// the number of direct-mapped sets.
	LineBytes int
}

// DefaultConfig returns the geometry the transpose tilings target:
// 1024-byte capacity, 32-byte lines, 32 sets.
func DefaultConfig() Config {
	return Config{CapacityBytes: 1024, LineBytes: 32}
}

// Op distinguishes loads from stores in a trace. The cache treats both
// identically; the Op is carried for reporting.
type Op int

const (
	// Load is a data read.
	Load Op = iota
	// Store is a data write.
	Store
)

// opNames holds the single-letter trace notation.
var opNames = [...]string{
	Load:  "L",
	Store: "S",
}

// String returns "L" or "S", or "?" outside the enum.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "?"
	}

	return opNames[o]
}

// Event is one memory access of a trace: an operation at a byte address.
type Event struct {
	Op   Op
	Addr uint64
}

// String renders the event in trace notation, e.g. "L 0x40".
func (e Event) String() string {
	return fmt.Sprintf("%s 0x%x", e.Op, e.Addr)
}

// Stats accumulates the outcome of the accesses fed to a cache.
type Stats struct {
	// Accesses is the total number of addresses seen.
	Accesses uint64
	// Hits counts accesses whose line was already resident.
	Hits uint64
	// Misses counts accesses that had to install their line.
	Misses uint64
	// Evictions counts misses that displaced a valid line.
	Evictions uint64
}
