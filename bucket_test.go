// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import "testing"

func TestLetterBucketNonDecreasing(t *testing.T) {
	source := []byte("mississippi river")
	sa, err := buildSuffixArray[int32](source)
	if err != nil {
		t.Fatal(err)
	}
	bucket := buildLetterBucket(sa, source)
	for c := 1; c < 256; c++ {
		if bucket[c] < bucket[c-1] {
			t.Fatalf("bucket[%d]=%d < bucket[%d]=%d", c, bucket[c], c-1, bucket[c-1])
		}
	}

	for c := 0; c < 256; c++ {
		end := letterRangeEnd(bucket, sa, byte(c))
		for i := bucket[c]; i < end; i++ {
			pos := sa[i]
			if int(pos) == len(source) {
				continue // sentinel slot
			}
			if source[pos] != byte(c) {
				t.Fatalf("byte %d band contains SA entry for byte %d", c, source[pos])
			}
		}
	}
}
