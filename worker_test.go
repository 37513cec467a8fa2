// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import "testing"

func TestDiffRangeCoversWholeTarget(t *testing.T) {
	source := []byte("the quick brown fox jumps over the lazy dog")
	target := []byte("the quick red fox jumps over the lazy dogs too")

	sa, err := buildSuffixArray[int32](source)
	if err != nil {
		t.Fatal(err)
	}
	search, err := newSearcher[int32](StrategySimple, sa, source, target)
	if err != nil {
		t.Fatal(err)
	}

	out := NewQueue[Record[int32]]()
	if err := diffRange[int32](source, target, search, out, 0, int32(len(target)), 0, 0, 0); err != nil {
		t.Fatalf("diffRange: %v", err)
	}

	var records []Record[int32]
	for {
		rec, ok := out.WaitAndPop()
		if !ok {
			break
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		t.Fatal("diffRange produced no records")
	}

	var covered int32
	for i, rec := range records {
		if rec.LastScan != covered {
			t.Fatalf("record %d starts at %d, want %d (gap/overlap)", i, rec.LastScan, covered)
		}
		covered = rec.end()
	}
	if covered != int32(len(target)) {
		t.Fatalf("records cover up to %d, want %d", covered, len(target))
	}
}
