// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import (
	"math/rand"
	"testing"
)

func TestSearchersAgreeOnLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	alphabet := []byte("abcd")
	source := randomBytes(rng, alphabet, 2000)
	target := randomBytes(rng, alphabet, 500)

	sa, err := buildSuffixArray[int32](source)
	if err != nil {
		t.Fatal(err)
	}
	simple := newSimpleSearcher(sa, source, target)
	lcp, err := newLCPSearcher(sa, source, target)
	if err != nil {
		t.Fatal(err)
	}

	for scan := 0; scan < len(target); scan += 7 {
		_, slen := simple.search(int32(scan))
		_, llen := lcp.search(int32(scan))
		if slen != llen {
			t.Fatalf("scan=%d: simple length %d != lcp length %d", scan, slen, llen)
		}
	}
}

func randomBytes(rng *rand.Rand, alphabet []byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return b
}
