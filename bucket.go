// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

// buildLetterBucket is the C2 component (spec.md §3): bucket[b] is the
// smallest SA index whose suffix begins with a byte >= b. Because SA is
// sorted lexicographically, the first byte of source[SA[i]] is
// non-decreasing as i increases, so a single linear scan over SA suffices
// — this is the "walks SA positions" construction spec.md §9's Open
// Question allows (the alternative, one lower_bound per byte value as the
// original_source/src/andiff.hpp prepare_specific does, is equivalent but
// O(256 log n) instead of O(n)).
func buildLetterBucket[T Index](sa []T, source []byte) [256]T {
	var bucket [256]T
	n := T(len(source))

	next := byte(0)
	for i, pos := range sa {
		if pos >= n {
			// sentinel slot (empty suffix); does not belong to any byte bucket
			continue
		}
		c := source[pos]
		for next <= c {
			bucket[next] = T(i)
			if next == 255 {
				break
			}
			next++
		}
	}
	for int(next) < 256 {
		bucket[next] = T(len(sa))
		if next == 255 {
			break
		}
		next++
	}
	return bucket
}

// letterRangeEnd returns the SA index one past the band assigned to
// firstByte by buildLetterBucket.
func letterRangeEnd[T Index](bucket [256]T, sa []T, firstByte byte) T {
	if firstByte != 255 {
		return bucket[firstByte+1]
	}
	return T(len(sa))
}

// simpleSearcher implements the C4 pattern searcher's bucket + binary
// search strategy, ported from original_source/src/andiff.hpp's
// search_simple / andiff_simple::search.
type simpleSearcher[T Index] struct {
	sa     []T
	source []byte
	target []byte
	bucket [256]T
}

func newSimpleSearcher[T Index](sa []T, source, target []byte) *simpleSearcher[T] {
	return &simpleSearcher[T]{
		sa:     sa,
		source: source,
		target: target,
		bucket: buildLetterBucket(sa, source),
	}
}

func (s *simpleSearcher[T]) search(scan T) (pos, length T) {
	firstByte := s.target[scan]
	start := s.bucket[firstByte]
	end := letterRangeEnd(s.bucket, s.sa, firstByte)
	if end <= start {
		// empty band: nothing in source starts with this byte
		return 0, 0
	}
	return s.searchRange(scan, start, end-1)
}

// searchRange performs the simple binary search over sa[lo..hi] inclusive,
// maintaining lmin/rmin (bytes already known to match at each bound) so
// each comparison only scans past previously-confirmed prefix bytes.
func (s *simpleSearcher[T]) searchRange(scan, lo, hi T) (pos, length T) {
	pattern := s.target[scan:]
	patLen := T(len(pattern))
	oldSize := T(len(s.source))

	lpos, rpos := lo, hi
	lmin, rmin := T(0), T(0)

	for rpos-lpos > 1 {
		mid := lpos + (rpos-lpos)/2
		oldStart := s.sa[mid]
		cmpLen := min(oldSize-oldStart, patLen)
		i := min(lmin, rmin)

		for ; i < cmpLen; i++ {
			a, b := s.source[oldStart+i], pattern[i]
			if a < b {
				lpos, lmin = mid, i
				break
			} else if a > b {
				rpos, rmin = mid, i
				break
			}
		}
		if i == cmpLen {
			rpos, rmin = mid, i
		}
	}

	rlen := matchLen[T](s.source[s.sa[rpos]:], pattern)
	llen := matchLen[T](s.source[s.sa[lpos]:], pattern)
	if rlen >= llen {
		return s.sa[rpos], rlen
	}
	return s.sa[lpos], llen
}

// matchLen returns the length of the common prefix of a and b.
func matchLen[T Index](a, b []byte) T {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return T(i)
}
