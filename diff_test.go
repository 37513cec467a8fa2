// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import (
	"bytes"
	"math/rand"
	"testing"
)

func roundTrip(t *testing.T, source, target []byte, opts ...Option) {
	t.Helper()
	patch, err := DiffBytes(source, target, opts...)
	if err != nil {
		t.Fatalf("DiffBytes: %v", err)
	}
	got, err := Patch(source, patch)
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if !bytes.Equal(got, target) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(got), len(target))
	}
}

func TestRoundTripEmpty(t *testing.T) {
	roundTrip(t, nil, nil)
}

func TestRoundTripEmptySourceNonEmptyTarget(t *testing.T) {
	roundTrip(t, nil, []byte("hello, world"))
}

func TestRoundTripNonEmptySourceEmptyTarget(t *testing.T) {
	roundTrip(t, []byte("hello, world"), nil)
}

func TestRoundTripIdentical(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	roundTrip(t, data, data)
}

func TestRoundTripPrefix(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly and at length")
	roundTrip(t, data, data[:20])
	roundTrip(t, data[:20], data)
}

func TestRoundTripRotation(t *testing.T) {
	data := []byte("abcdefghijklmnopqrstuvwxyz0123456789")
	rotated := append(append([]byte{}, data[10:]...), data[:10]...)
	roundTrip(t, data, rotated)
}

func TestRoundTripLarge(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	source := randomBytes(rng, []byte("abcdefgh"), 300_000)
	target := make([]byte, len(source))
	copy(target, source)
	// sprinkle edits throughout so the match-extension loop has to cut
	// plenty of records
	for i := 0; i < 500; i++ {
		pos := rng.Intn(len(target))
		target[pos] = 'z'
	}
	target = append(target, randomBytes(rng, []byte("abcdefgh"), 5000)...)
	roundTrip(t, source, target, WithWorkers(4))
}

func TestRoundTripLCPStrategy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	source := randomBytes(rng, []byte("abcd"), 50_000)
	target := randomBytes(rng, []byte("abcd"), 50_000)
	roundTrip(t, source, target, WithStrategy(StrategyLCP))
}

func TestRoundTripAcrossWorkerCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	source := randomBytes(rng, []byte("abcdefgh"), 200_000)
	target := make([]byte, len(source))
	copy(target, source)
	for i := 0; i < 200; i++ {
		target[rng.Intn(len(target))] = 'x'
	}

	var prev []byte
	for _, workers := range []int{1, 2, 8} {
		got, err := Patch(source, mustDiff(t, source, target, WithWorkers(workers)))
		if err != nil {
			t.Fatalf("workers=%d: Patch: %v", workers, err)
		}
		if !bytes.Equal(got, target) {
			t.Fatalf("workers=%d: round trip mismatch", workers)
		}
		if prev != nil && !bytes.Equal(prev, got) {
			t.Fatalf("workers=%d: target reconstruction differs from previous worker count", workers)
		}
		prev = got
	}
}

func mustDiff(t *testing.T, source, target []byte, opts ...Option) []byte {
	t.Helper()
	patch, err := DiffBytes(source, target, opts...)
	if err != nil {
		t.Fatalf("DiffBytes: %v", err)
	}
	return patch
}

func TestPatchRejectsBadMagic(t *testing.T) {
	_, err := Patch(nil, []byte("not a patch at all, just some bytes"))
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestPatchRejectsTruncatedHeader(t *testing.T) {
	_, err := Patch(nil, magic[:10])
	if err == nil {
		t.Fatal("expected error for truncated header")
	}
}
