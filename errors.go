// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2003-2005 Colin Percival
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors returned by the diff and patch engines. Callers should
// compare against these with errors.Is; wrapping (via github.com/pkg/errors)
// is applied at the point an error crosses an exported function boundary so
// the sentinel survives the wrap.
var (
	// ErrAlloc is returned when a large allocation (suffix array, LCP,
	// LCP-LR, serializer buffer) cannot be satisfied.
	ErrAlloc = errors.New("andiff: allocation failed")

	// ErrSuffixArray is returned when suffix array construction fails.
	ErrSuffixArray = errors.New("andiff: suffix array construction failed")

	// ErrIncompletePatch is returned by the serializer when it drains every
	// worker queue without covering the whole of target.
	ErrIncompletePatch = errors.New("andiff: incomplete patch: did not cover target")

	// ErrQueueClosed is returned by Queue.Push when the queue has already
	// been closed.
	ErrQueueClosed = errors.New("andiff: push on closed queue")

	// ErrQueueNotDrained is returned by Queue.AssertDrained when items
	// remain in the queue; discarding such a queue is a programming error.
	ErrQueueNotDrained = errors.New("andiff: queue discarded while non-empty")

	// ErrCorruptPatch is returned by Patch when the patch stream is
	// malformed (bad magic, truncated header, inconsistent lengths).
	ErrCorruptPatch = errors.New("andiff: corrupt patch")

	// ErrInternal marks a condition that should be unreachable (arithmetic
	// overflow, index out of range) if the implementation is correct.
	ErrInternal = errors.New("andiff: internal error")
)

// allocSlice makes a slice of n elements, converting a runtime
// out-of-memory panic into ErrAlloc instead of crashing the process. This
// is the only place in the tree that allocates the suffix array, LCP,
// LCP-LR and serializer buffers — all large, input-sized allocations where
// a hostile or merely huge input can plausibly exhaust memory.
func allocSlice[S any](n int) (out []S, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, pkgerrors.Wrapf(ErrAlloc, "%v", r)
		}
	}()
	out = make([]S, n)
	return out, nil
}
