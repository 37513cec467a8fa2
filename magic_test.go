// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import (
	"math"
	"testing"
)

func TestOfftRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 127, -127, math.MaxInt64, -(math.MaxInt64), 1 << 40, -(1 << 40)}
	buf := make([]byte, 8)
	for _, x := range cases {
		offtout(x, buf)
		if got := offtin(buf); got != x {
			t.Errorf("offtin(offtout(%d)) = %d", x, got)
		}
	}
}

func FuzzOfft(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-1))
	f.Add(int64(math.MaxInt64))
	f.Add(int64(-(math.MaxInt64)))
	f.Fuzz(func(t *testing.T, x int64) {
		if x == math.MinInt64 {
			t.Skip("magnitude-plus-sign encoding cannot represent MinInt64")
		}
		buf := make([]byte, 8)
		offtout(x, buf)
		if got := offtin(buf); got != x {
			t.Fatalf("offtin(offtout(%d)) = %d", x, got)
		}
	})
}
