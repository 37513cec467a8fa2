// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2003-2005 Colin Percival
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import "github.com/pkg/errors"

// diffRange is the C5 component: the match-extension loop ported from
// original_source/src/andiff.hpp's andiff_base::diff. It searches target
// starting at start, with its first record beginning at lastScan/lastPos
// (a resumed run passes a previous record's state here), pushes one
// Record per confirmed match boundary to out, and closes out when it
// stops — either because it ran off the end of target or because a cut
// moved lastScan past end (the block boundary for a worker; for a
// serializer gap-fill, the LastScan of the queued record it must reach,
// or len(target) for the final tail).
//
// It is the same algorithm for every caller: the initial per-block pass
// from the work queue, and the serializer's local gap-fill re-run, both
// call this directly.
func diffRange[T Index](source, target []byte, search searcher[T], out *Queue[Record[T]], start, end, lastScan, lastPos, lastOffset T) error {
	defer out.Close()

	tsize := T(len(target))
	ssize := T(len(source))

	var scan, pos, length T
	scan = start

	for scan < tsize {
		oldScore := T(0)

		scsc := scan + length
		scan = scsc
		for ; scan < tsize; scan++ {
			pos, length = search.search(scan)

			for ; scsc < scan+length; scsc++ {
				if scsc+lastOffset < ssize && source[scsc+lastOffset] == target[scsc] {
					oldScore++
				}
			}

			if (length == oldScore && length != 0) || length > oldScore+8 {
				break
			}

			if scan+lastOffset < ssize && source[scan+lastOffset] == target[scan] {
				oldScore--
			}
		}

		if length != oldScore || scan == tsize {
			var s, sf, lenf T
			for i := T(0); lastScan+i < scan && lastPos+i < ssize; {
				if source[lastPos+i] == target[lastScan+i] {
					s++
				}
				i++
				if s*2-i > sf*2-lenf {
					sf = s
					lenf = i
				}
			}

			var lenb T
			if scan < tsize {
				s = 0
				var sb T
				for i := T(1); scan >= lastScan+i && pos >= i; i++ {
					if source[pos-i] == target[scan-i] {
						s++
					}
					if s*2-i > sb*2-lenb {
						sb = s
						lenb = i
					}
				}
			}

			if lastScan+lenf > scan-lenb {
				overlap := (lastScan + lenf) - (scan - lenb)
				s = 0
				var ss, lens T
				for i := T(0); i < overlap; i++ {
					if target[lastScan+lenf-overlap+i] == source[lastPos+lenf-overlap+i] {
						s++
					}
					if target[scan-lenb+i] == source[pos-lenb+i] {
						s--
					}
					if s > ss {
						ss = s
						lens = i + 1
					}
				}
				lenf += lens - overlap
				lenb -= lens
			}

			rec := Record[T]{
				Ctrl:       lenf,
				DiffLen:    (scan - lenb) - (lastScan + lenf),
				ExtraLen:   (pos - lenb) - (lastPos + lenf),
				LastScan:   lastScan,
				LastPos:    lastPos,
				LastOffset: lastOffset,
				Scan:       scan,
			}
			if err := out.Push(rec); err != nil {
				return errors.Wrap(err, "pushing record to closed queue")
			}

			lastOffset = pos - scan
			lastScan = scan - lenb
			lastPos = pos - lenb

			if lastScan > end {
				return nil
			}
		}
	}
	return nil
}
