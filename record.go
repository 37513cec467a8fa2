// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

// Index is the integer width used for suffix-array indices and byte
// offsets throughout the diff engine. Diff picks int32 when both inputs
// are at most 2^31-1 bytes and int64 otherwise (Patch always works in
// int64), per
// spec.md §3: the suffix array is the dominant allocation, so halving its
// element width halves peak memory for the common case.
type Index interface {
	~int32 | ~int64
}

// Record is the Go realization of the original diff_meta tuple. Only
// Ctrl, DiffLen, ExtraLen, LastScan and LastPos are written to the wire
// (§6.1); LastOffset and Scan are resume state a worker needs to pick up
// where a neighboring worker (or a previous gap-fill run) left off, and
// are never serialized.
type Record[T Index] struct {
	Ctrl       T // bytes to add from source, starting at LastPos/LastScan
	DiffLen    T // literal bytes taken verbatim from target
	ExtraLen   T // signed jump to apply to the source cursor afterwards
	LastScan   T // absolute target position this record starts at
	LastPos    T // absolute source position this record starts at
	LastOffset T // pos-scan offset in effect when this record was cut
	Scan       T // target position the match search had reached when cut
}

// end returns the exclusive end of the half-open target range
// [LastScan, LastScan+Ctrl+DiffLen) this record accounts for.
func (r Record[T]) end() T {
	return r.LastScan + r.Ctrl + r.DiffLen
}
