// SPDX-License-Identifier: MIT
// Package tracegen - trace generation and miss counting.
//
// Generate rides transpose.Walk, so the address sequence handed to the
// simulator is the same sequence the kernel itself would issue; the two
// cannot drift apart.

package tracegen

import (
	"github.com/katalvlaran/lvltile/cachesim"
	"github.com/katalvlaran/lvltile/transpose"
)

// accessesPerElem is the cost of one element copy: a load of A[i][j]
// followed by a store of B[j][i].
const accessesPerElem = 2

// Generate returns the memory-access trace kernel k performs when
// transposing an n-row, m-column A laid out per lay: per element copy,
// Load(A[i][j]) then Store(B[j][i]), in the kernel's traversal order.
// The trace holds exactly 2*M*N events on success.
//
// Errors: ErrInvalidDimensions, ErrUnsupportedShape (Tuned only),
// ErrUnknownKernel; all from the transpose package. On error the
// returned trace is nil.
//
// Complexity: O(N*M) time and memory.
func Generate(k transpose.Kernel, m, n int, lay Layout) ([]cachesim.Event, error) {
	// Guard the capacity arithmetic; Walk re-checks with the same sentinel.
	if m <= 0 || n <= 0 {
		return nil, transpose.ErrInvalidDimensions
	}

	events := make([]cachesim.Event, 0, accessesPerElem*m*n)
	err := transpose.Walk(k, m, n, func(i, j int) {
		events = append(events,
			cachesim.Event{Op: cachesim.Load, Addr: lay.ABase + uint64(i*m+j)*transpose.ElemBytes},
			cachesim.Event{Op: cachesim.Store, Addr: lay.BBase + uint64(j*n+i)*transpose.ElemBytes},
		)
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

// CountMisses generates kernel k's trace for the shape and layout,
// replays it against a fresh cache of geometry cfg, and returns the
// stats.
//
// Errors: everything Generate returns, plus cachesim.ErrBadGeometry.
//
// Complexity: O(N*M) time, O(N*M) memory for the trace.
func CountMisses(k transpose.Kernel, m, n int, cfg cachesim.Config, lay Layout) (cachesim.Stats, error) {
	events, err := Generate(k, m, n, lay)
	if err != nil {
		return cachesim.Stats{}, err
	}
	c, err := cachesim.New(cfg)
	if err != nil {
		return cachesim.Stats{}, err
	}

	return c.Replay(events), nil
}
