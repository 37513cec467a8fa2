// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import "testing"

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

func TestBuildLCPMatchesBruteForce(t *testing.T) {
	source := []byte("banana banana bandana")
	sa, err := buildSuffixArray[int32](source)
	if err != nil {
		t.Fatal(err)
	}
	lcp, err := buildLCP(source, sa)
	if err != nil {
		t.Fatal(err)
	}

	suffix := func(pos int32) []byte {
		if int(pos) >= len(source) {
			return nil
		}
		return source[pos:]
	}

	for i := 0; i < len(lcp); i++ {
		want := commonPrefixLen(suffix(sa[i]), suffix(sa[i+1]))
		if int(lcp[i]) != want {
			t.Fatalf("lcp[%d] = %d, want %d (sa[%d]=%d, sa[%d]=%d)", i, lcp[i], want, i, sa[i], i+1, sa[i+1])
		}
	}
}

func TestLCPSearchMatchesBruteForceBestMatch(t *testing.T) {
	source := []byte("abcabcabcabcabcxyzxyzxyz")
	target := []byte("cabcabcxyzzz")
	sa, err := buildSuffixArray[int32](source)
	if err != nil {
		t.Fatal(err)
	}
	lcpSearch, err := newLCPSearcher(sa, source, target)
	if err != nil {
		t.Fatal(err)
	}

	for scan := 0; scan < len(target); scan++ {
		_, got := lcpSearch.search(int32(scan))

		best := 0
		for start := 0; start <= len(source); start++ {
			l := commonPrefixLen(source[start:], target[scan:])
			if l > best {
				best = l
			}
		}
		if int(got) != best {
			t.Fatalf("scan=%d: lcp search found length %d, brute force best is %d", scan, got, best)
		}
	}
}
