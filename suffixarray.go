// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2003-2005 Colin Percival
// SPDX-FileCopyrightText: 2019 Gabriel Ochsenhofer
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

// buildSuffixArray is the C1 component (spec.md §2, §3): it produces a
// suffix array of source in suffix-lexicographic order. It is kept behind
// a narrow signature deliberately — spec.md treats suffix-array
// construction as a black box the diff core merely consumes, so the rest
// of the engine (C2-C7) only ever sees the returned []T, never this
// algorithm's internals.
//
// The algorithm is Larsson & Sadakane's qsufsort, the same one the
// original bsdiff/andiff family uses, generified over the caller's chosen
// Index width so both the 32-bit and 64-bit code paths share one
// implementation (spec.md §9).
func buildSuffixArray[T Index](source []byte) ([]T, error) {
	n := T(len(source))
	sa, err := allocSlice[T](int(n + 1))
	if err != nil {
		return nil, err
	}
	v, err := allocSlice[T](int(n + 1))
	if err != nil {
		return nil, err
	}

	var buckets [256]T
	for _, b := range source {
		buckets[b]++
	}
	for i := 1; i < 256; i++ {
		buckets[i] += buckets[i-1]
	}
	for i := 255; i > 0; i-- {
		buckets[i] = buckets[i-1]
	}
	buckets[0] = 0

	for i, b := range source {
		buckets[b]++
		sa[buckets[b]] = T(i)
	}
	sa[0] = n

	for i, b := range source {
		v[i] = buckets[b]
	}
	v[n] = 0

	for i := 1; i < 256; i++ {
		if buckets[i] == buckets[i-1]+1 {
			sa[buckets[i]] = -1
		}
	}
	sa[0] = -1

	for h := T(1); sa[0] != -(n + 1); h += h {
		var ln T
		i := T(0)
		for i < n+1 {
			if sa[i] < 0 {
				ln -= sa[i]
				i -= sa[i]
			} else {
				if ln != 0 {
					sa[i-ln] = -ln
				}
				ln = v[sa[i]] + 1 - i
				qsufsortSplit(sa, v, i, ln, h)
				i += ln
				ln = 0
			}
		}
		if ln != 0 {
			sa[i-ln] = -ln
		}
	}

	for i := T(0); i < n+1; i++ {
		sa[v[i]] = i
	}
	return sa, nil
}

// qsufsortSplit is the ternary-split quicksort step of qsufsort, ported
// from the teacher's split() with Index generified in place of int.
func qsufsortSplit[T Index](sa, v []T, start, ln, h T) {
	if ln < 16 {
		var j T
		for k := start; k < start+ln; k += j {
			j = 1
			x := v[sa[k]+h]
			for i := T(1); k+i < start+ln; i++ {
				if v[sa[k+i]+h] < x {
					x = v[sa[k+i]+h]
					j = 0
				}
				if v[sa[k+i]+h] == x {
					sa[k+j], sa[k+i] = sa[k+i], sa[k+j]
					j++
				}
			}
			for i := T(0); i < j; i++ {
				v[sa[k+i]] = k + j - 1
			}
			if j == 1 {
				sa[k] = -1
			}
		}
		return
	}

	x := v[sa[start+(ln/2)]+h]
	var jj, kk T
	for i := start; i < start+ln; i++ {
		if v[sa[i]+h] < x {
			jj++
		} else if v[sa[i]+h] == x {
			kk++
		}
	}
	jj += start
	kk += jj

	i, j, k := start, T(0), T(0)
	for i < jj {
		if v[sa[i]+h] < x {
			i++
		} else if v[sa[i]+h] == x {
			sa[i], sa[jj+j] = sa[jj+j], sa[i]
			j++
		} else {
			sa[i], sa[kk+k] = sa[kk+k], sa[i]
			k++
		}
	}
	for jj+j < kk {
		if v[sa[jj+j]+h] == x {
			j++
		} else {
			sa[jj+j], sa[kk+k] = sa[kk+k], sa[jj+j]
			k++
		}
	}
	if jj > start {
		qsufsortSplit(sa, v, start, jj-start, h)
	}

	for i := T(0); i < kk-jj; i++ {
		v[sa[jj+i]] = kk - 1
	}
	if jj == kk-1 {
		sa[jj] = -1
	}

	if start+ln > kk {
		qsufsortSplit(sa, v, kk, start+ln-kk, h)
	}
}
