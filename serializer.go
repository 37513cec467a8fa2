// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import (
	"io"

	"github.com/pkg/errors"
)

// serialize is the C7 component, ported from
// original_source/src/andiff.hpp's andiff_base::save / save_helper. It
// drains each block's record queue in dispatch order and writes the
// control triple plus diff/extra payload for every record.
//
// A worker's block boundary rarely lines up with where the match-
// extension loop actually decided to cut a record, so consecutive blocks'
// queues can disagree at the seam: the tail of one queue and the head of
// the next may describe overlapping or gapped ranges of target. Records
// that start before the written position are skipped, and a record that
// starts exactly at it and continues the source position is written.
// Otherwise serialize re-runs diffRange locally, seeded with the last
// written record's resume state, until it reproduces a record the
// block's queue already agrees with, then resumes trusting that queue
// directly. If target is still not covered once every queue is drained,
// a last re-run fills the remaining tail.
func serialize[T Index](w io.Writer, source, target []byte, search searcher[T], blocks []block[T]) error {
	if len(blocks) == 0 {
		return nil
	}

	bufSize := len(target) + 1
	if bufSize > 16*1024*1024 {
		bufSize = 16 * 1024 * 1024
	}
	buf, err := allocSlice[byte](bufSize)
	if err != nil {
		return err
	}
	ctrl := make([]byte, 24)

	writeRecord := func(rec Record[T]) (T, error) {
		offtout(int64(rec.Ctrl), ctrl[0:8])
		offtout(int64(rec.DiffLen), ctrl[8:16])
		offtout(int64(rec.ExtraLen), ctrl[16:24])
		if _, err := w.Write(ctrl); err != nil {
			return 0, err
		}

		written := T(0)
		for written != rec.Ctrl {
			n := rec.Ctrl - written
			if n > T(len(buf)) {
				n = T(len(buf))
			}
			for i := T(0); i < n; i++ {
				buf[i] = target[rec.LastScan+written+i] - source[rec.LastPos+written+i]
			}
			if _, err := w.Write(buf[:n]); err != nil {
				return 0, err
			}
			written += n
		}

		written = 0
		for written != rec.DiffLen {
			n := rec.DiffLen - written
			if n > T(len(buf)) {
				n = T(len(buf))
			}
			copy(buf[:n], target[rec.LastScan+rec.Ctrl+written:rec.LastScan+rec.Ctrl+written+n])
			if _, err := w.Write(buf[:n]); err != nil {
				return 0, err
			}
			written += n
		}

		return rec.LastScan + rec.Ctrl + rec.DiffLen, nil
	}

	dm, ok := blocks[0].out.WaitAndPop()
	if !ok {
		if len(target) != 0 {
			return ErrIncompletePatch
		}
		return nil
	}
	nextPosition, err := writeRecord(dm)
	if err != nil {
		return err
	}
	dmOld := dm

	for _, b := range blocks {
	seam:
		for {
			dm, ok := b.out.WaitAndPop()
			if !ok {
				break
			}
			if dm.LastScan < nextPosition {
				continue
			}
			if dm.LastScan == nextPosition && dm.LastPos == dmOld.LastPos+dmOld.Ctrl+dmOld.ExtraLen {
				// dm continues exactly where the last written record ended
				nextPosition, err = writeRecord(dm)
				if err != nil {
					return err
				}
				dmOld = dm
			} else {
				gap := NewQueue[Record[T]]()
				if err := diffRange(source, target, search, gap, dmOld.Scan, dm.LastScan, dmOld.LastScan, dmOld.LastPos, dmOld.LastOffset); err != nil {
					return errors.Wrap(err, "gap-fill")
				}
				for {
					dm1, ok := gap.WaitAndPop()
					if !ok {
						break
					}
					// the re-run's first record re-describes dmOld, which
					// is already written even when it is zero-length
					if dm1.LastScan < nextPosition || dm1 == dmOld {
						continue
					}
					nextPosition, err = writeRecord(dm1)
					if err != nil {
						return err
					}
					dmOld = dm1
				}
			}
			if dmOld == dm {
				break seam
			}
		}

		for {
			dm, ok := b.out.WaitAndPop()
			if !ok {
				break
			}
			nextPosition, err = writeRecord(dm)
			if err != nil {
				return err
			}
			dmOld = dm
		}

		if err := b.out.AssertDrained(); err != nil {
			return errors.Wrap(err, "block queue left non-empty after drain")
		}
	}

	// every queue started behind nextPosition: fill the tail of target
	if nextPosition < T(len(target)) {
		gap := NewQueue[Record[T]]()
		if err := diffRange(source, target, search, gap, dmOld.Scan, T(len(target)), dmOld.LastScan, dmOld.LastPos, dmOld.LastOffset); err != nil {
			return errors.Wrap(err, "gap-fill")
		}
		for dm1, ok := gap.WaitAndPop(); ok; dm1, ok = gap.WaitAndPop() {
			if dm1.LastScan >= nextPosition && dm1 != dmOld {
				if nextPosition, err = writeRecord(dm1); err != nil {
					return err
				}
			}
		}
	}

	if nextPosition != T(len(target)) {
		return ErrIncompletePatch
	}
	return nil
}
