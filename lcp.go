// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

// buildLCP is the Kasai's-algorithm half of C3 (spec.md §3), ported from
// original_source/src/andiff_lcp.hpp's kasai<T>. It returns lcp[i] =
// the length of the common prefix of source[sa[i]:] and source[sa[i+1]:],
// for i in [0, len(source)).
//
// sa is expected to carry the sentinel entry produced by buildSuffixArray
// (one slot, conventionally sa[0], whose position equals len(source) and
// stands for the empty suffix). The reference implementation's kasai
// iterates only the first len(source) of its SA's len(source)+1 slots,
// which is only safe if that build's sentinel sits at the opposite end;
// since the suffix-array builder that original_source paired it with
// isn't part of this corpus, this port instead walks every text position
// including the sentinel's, which is safe under either placement and
// produces the same lcp values (the sentinel's own suffix is length 0 and
// contributes a 0 entry wherever it falls).
func buildLCP[T Index](source []byte, sa []T) ([]T, error) {
	n := T(len(source))
	m := n + 1
	rank, err := allocSlice[T](int(m))
	if err != nil {
		return nil, err
	}
	for i, pos := range sa {
		rank[pos] = T(i)
	}

	lcp, err := allocSlice[T](int(n))
	if err != nil {
		return nil, err
	}
	k := T(0)
	for i := T(0); i < m; i++ {
		r := rank[i]
		if r == m-1 {
			k = 0
			continue
		}
		j := sa[r+1]
		for i+k < n && j+k < n && source[i+k] == source[j+k] {
			k++
		}
		lcp[r] = k
		if k > 0 {
			k--
		}
	}
	return lcp, nil
}

// buildLCPLR builds the midpoint-indexed range-minimum structure the LCP
// search strategy uses to fetch LCP(SA[l], SA[r]) for any binary-search
// bracket [l, r) in O(1), ported from calculate_lcp_lr /
// calculate_lcp_lr_util. It is not a general-purpose RMQ: it is only ever
// queried at the exact midpoints a binary search over SA produces, so it
// stores one value per midpoint instead of a full sparse table.
func buildLCPLR[T Index](lcp []T) ([]T, error) {
	n := T(len(lcp))
	if n < 2 {
		// a one-entry bracket is answered from lcp directly; no midpoints
		return nil, nil
	}
	lcpLR, err := allocSlice[T](int(n))
	if err != nil {
		return nil, err
	}
	mid := n / 2
	left := lcpLRUtil(lcp, lcpLR, 0, mid)
	right := lcpLRUtil(lcp, lcpLR, mid, n)
	lcpLR[mid] = min(left, right)
	return lcpLR, nil
}

func lcpLRUtil[T Index](lcp, lcpLR []T, start, end T) T {
	if end-start == 1 {
		return lcp[start]
	}
	mid := start + (end-start)/2
	left := lcpLRUtil(lcp, lcpLR, start, mid)
	right := lcpLRUtil(lcp, lcpLR, mid, end)
	val := min(left, right)
	lcpLR[mid] = val
	return val
}

// lcpOffset returns LCP(SA[lpos], SA[rpos]) for an adjacent or
// bisected bracket, as produced by buildLCP/buildLCPLR.
func lcpOffset[T Index](lpos, rpos T, lcp, lcpLR []T) T {
	if rpos-lpos == 1 {
		return lcp[lpos]
	}
	return lcpLR[lpos+(rpos-lpos)/2]
}

// comparePattern extends a known-matching prefix of length offset between
// pattern and source[start:] as far as it will go.
func comparePattern[T Index](offset T, pattern []byte, source []byte, start T) T {
	i := offset
	n := T(len(pattern))
	srcLen := T(len(source))
	for i < n && start+i < srcLen && pattern[i] == source[start+i] {
		i++
	}
	return i
}

// lessEq reports whether pattern <= source[start:] given that the two
// already agree on their first lcpOff bytes.
func lessEq[T Index](lcpOff T, pattern []byte, source []byte, start T) bool {
	if lcpOff == T(len(pattern)) {
		return true
	}
	srcLen := T(len(source))
	return start+lcpOff < srcLen && pattern[lcpOff] < source[start+lcpOff]
}

// lcpSearcher implements the C4 pattern searcher's LCP-accelerated
// strategy, ported from original_source/src/andiff_lcp.hpp's search_lcp.
// It must agree with simpleSearcher on match length for every query
// (spec.md §8); the position returned may differ when several source
// offsets tie for longest match, since the two strategies resolve ties by
// different internal comparisons.
type lcpSearcher[T Index] struct {
	sa     []T
	source []byte
	target []byte
	lcp    []T
	lcpLR  []T
}

func newLCPSearcher[T Index](sa []T, source, target []byte) (*lcpSearcher[T], error) {
	lcp, err := buildLCP(source, sa)
	if err != nil {
		return nil, err
	}
	lcpLR, err := buildLCPLR(lcp)
	if err != nil {
		return nil, err
	}
	return &lcpSearcher[T]{
		sa:     sa,
		source: source,
		target: target,
		lcp:    lcp,
		lcpLR:  lcpLR,
	}, nil
}

func (s *lcpSearcher[T]) search(scan T) (pos, length T) {
	pattern := s.target[scan:]
	oldSize := T(len(s.source))

	lpos, rpos := T(0), oldSize
	lcpL := comparePattern[T](0, pattern, s.source, s.sa[0])
	lcpR := comparePattern[T](0, pattern, s.source, s.sa[rpos])

	for rpos-lpos > 1 {
		mid := lpos + (rpos-lpos)/2
		loffset := lcpOffset(lpos, mid, s.lcp, s.lcpLR)
		roffset := lcpOffset(mid, rpos, s.lcp, s.lcpLR)

		if loffset >= roffset {
			switch {
			case lcpL < loffset:
				lpos = mid
			case lcpL > loffset:
				rpos, lcpR = mid, loffset
			default:
				offset := comparePattern(loffset, pattern, s.source, s.sa[mid])
				if lessEq(offset, pattern, s.source, s.sa[mid]) {
					rpos, lcpR = mid, offset
				} else {
					lpos, lcpL = mid, offset
				}
			}
		} else {
			switch {
			case lcpR < roffset:
				rpos = mid
			case lcpR > roffset:
				lpos, lcpL = mid, roffset
			default:
				offset := comparePattern(roffset, pattern, s.source, s.sa[mid])
				if lessEq(offset, pattern, s.source, s.sa[mid]) {
					rpos, lcpR = mid, offset
				} else {
					lpos, lcpL = mid, offset
				}
			}
		}
	}

	rlen := matchLen[T](s.source[s.sa[rpos]+lcpR:], pattern[lcpR:]) + lcpR
	llen := matchLen[T](s.source[s.sa[lpos]+lcpL:], pattern[lcpL:]) + lcpL
	if rlen >= llen {
		return s.sa[rpos], rlen
	}
	return s.sa[lpos], llen
}
