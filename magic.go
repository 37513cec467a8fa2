// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2003-2005 Colin Percival
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import "encoding/binary"

// magic is the fixed 16-byte tag at the start of every patch file. It is
// distinct from classical bsdiff's "BSDIFF40" and from the 8-byte header
// used by the original andiff C++ implementation this module descends
// from, to avoid either tool misinterpreting the other's patches.
var magic = [16]byte{'A', 'N', 'D', 'I', 'F', 'F', '1', 0, 'S', 'A', '+', 'L', 'C', 'P', 0, 0}

const headerSize = len(magic) + 8 // magic + int64 target length

// offtout encodes a signed 64-bit integer into 8 little-endian bytes using
// magnitude-plus-sign-bit representation: the absolute value is written
// little-endian, then bit 0x80 of the top byte is set iff x is negative.
// This is not two's complement and cannot represent math.MinInt64.
func offtout(x int64, buf []byte) {
	y := uint64(x)
	if x < 0 {
		y = uint64(-x) | (0x80 << 56)
	}
	binary.LittleEndian.PutUint64(buf, y)
}

// offtin decodes a value written by offtout.
func offtin(buf []byte) int64 {
	y := binary.LittleEndian.Uint64(buf)
	neg := y&(0x80<<56) != 0
	y &^= 0x80 << 56
	x := int64(y)
	if neg {
		x = -x
	}
	return x
}
