// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2003-2005 Colin Percival
// SPDX-FileCopyrightText: 2012 Matthew Endsley
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2019 Gabriel Ochsenhofer
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import (
	"bytes"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/pkg/errors"
)

// Patch applies a patch produced by Diff to source and returns the
// reconstructed target. It is outside the diff engine's own concurrency
// model — original_source's anpatcher runs single-threaded, streaming the
// one bzip2 stream straight through in control-triple order, and this
// port does the same.
func Patch(source []byte, patch []byte) ([]byte, error) {
	if len(patch) < headerSize {
		return nil, errors.Wrap(ErrCorruptPatch, "patch shorter than header")
	}
	if !bytes.Equal(patch[:len(magic)], magic[:]) {
		return nil, errors.Wrap(ErrCorruptPatch, "bad magic")
	}
	targetSize := offtin(patch[len(magic):headerSize])
	if targetSize < 0 {
		return nil, errors.Wrap(ErrCorruptPatch, "negative target size")
	}

	bz, err := bzip2.NewReader(bytes.NewReader(patch[headerSize:]), nil)
	if err != nil {
		return nil, errors.Wrap(err, "opening bzip2 stream")
	}
	defer bz.Close()

	target := make([]byte, targetSize)
	oldPos, newPos := int64(0), int64(0)
	ctrlBuf := make([]byte, 8)
	oldSize := int64(len(source))

	for newPos < targetSize {
		var ctrl [3]int64
		for i := range ctrl {
			n, err := readFull(bz, ctrlBuf)
			if n != len(ctrlBuf) || (err != nil && err != io.EOF) {
				return nil, errors.Wrap(ErrCorruptPatch, "truncated control triple")
			}
			ctrl[i] = offtin(ctrlBuf)
		}

		if ctrl[0] < 0 || ctrl[1] < 0 || newPos+ctrl[0] > targetSize {
			return nil, errors.Wrap(ErrCorruptPatch, "control triple out of range")
		}

		n, err := readFull(bz, target[newPos:newPos+ctrl[0]])
		if int64(n) != ctrl[0] || (err != nil && err != io.EOF) {
			return nil, errors.Wrap(ErrCorruptPatch, "truncated diff bytes")
		}
		for i := int64(0); i < ctrl[0]; i++ {
			if p := oldPos + i; p >= 0 && p < oldSize {
				target[newPos+i] += source[p]
			}
		}
		newPos += ctrl[0]
		oldPos += ctrl[0]

		if newPos+ctrl[1] > targetSize {
			return nil, errors.Wrap(ErrCorruptPatch, "extra length out of range")
		}
		n, err = readFull(bz, target[newPos:newPos+ctrl[1]])
		if int64(n) != ctrl[1] || (err != nil && err != io.EOF) {
			return nil, errors.Wrap(ErrCorruptPatch, "truncated extra bytes")
		}
		newPos += ctrl[1]
		oldPos += ctrl[2]
	}

	return target, nil
}

// readFull mirrors the teacher's zreadall: some bzip2.Reader
// implementations return fewer bytes than requested from a single Read
// even mid-stream, so this keeps calling Read until buf is full, an error
// occurs, or the stream ends.
func readFull(r io.Reader, buf []byte) (int, error) {
	var total int
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
