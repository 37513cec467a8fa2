// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2003-2005 Colin Percival
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2019 Gabriel Ochsenhofer
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import (
	"bytes"
	"context"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/dsnet/compress/bzip2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Diff writes a patch that transforms source into target to w. The
// index width (32 or 64 bit) used internally for suffix-array positions
// is picked automatically from the larger of the two inputs
// (original_source selects this at the call site in main(); here it's
// folded into Diff itself since Go can monomorphise it transparently).
func Diff(source, target []byte, w io.Writer, opts ...Option) error {
	cfg := defaultDiffConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	maxLen := len(source)
	if len(target) > maxLen {
		maxLen = len(target)
	}
	if maxLen <= math.MaxInt32 {
		return diffTyped[int32](source, target, w, cfg)
	}
	return diffTyped[int64](source, target, w, cfg)
}

// DiffBytes is a convenience wrapper over Diff for callers that want the
// patch back as a byte slice rather than streamed to a writer, matching
// the shape of the teacher's Diff(old, new []byte) ([]byte, error).
func DiffBytes(source, target []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Diff(source, target, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func diffTyped[T Index](source, target []byte, w io.Writer, cfg *diffConfig) error {
	p := cfg.progress
	p.infof("diffing %s", sizeSummary(len(source), len(target)))

	p.phase("suffix-sort")
	sa, err := buildSuffixArray[T](source)
	if err != nil {
		return errors.Wrap(ErrSuffixArray, err.Error())
	}

	p.phase("prepare-search")
	search, err := newSearcher[T](cfg.strategy, sa, source, target)
	if err != nil {
		return errors.Wrap(err, "preparing pattern searcher")
	}

	header := make([]byte, headerSize)
	copy(header, magic[:])
	offtout(int64(len(target)), header[len(magic):])
	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "writing patch header")
	}

	bz, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return errors.Wrap(err, "opening bzip2 stream")
	}

	numWorkers := cfg.numWorkers
	if numWorkers < 1 {
		numWorkers = 1
	}
	blocks := partition[T](T(len(target)), numWorkers)

	p.phase("diff")
	p.infof("comparing using %d worker(s) across %d block(s)", numWorkers, len(blocks))

	dispatch := NewQueue[block[T]]()
	for _, b := range blocks {
		if err := dispatch.Push(b); err != nil {
			return errors.Wrap(err, "dispatching blocks")
		}
	}
	dispatch.Close()

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < numWorkers; i++ {
		g.Go(func() error {
			for {
				b, ok := dispatch.WaitAndPop()
				if !ok {
					return nil
				}
				if err := diffRange(source, target, search, b.out, b.start, b.end, b.start, 0, 0); err != nil {
					return errors.Wrap(err, "worker")
				}
			}
		})
	}

	// When enabled, the checksum folds the actual bytes serialize writes to
	// the patch stream — control triples and diff/extra payload, in block
	// and record order — through a running xxhash64, the way
	// tamirms-streamhash's index writer folds each block's real payload
	// hash rather than anything known before the blocks are diffed.
	var hasher *xxhash.Digest
	patchWriter := io.Writer(bz)
	if cfg.checksum {
		hasher = xxhash.New()
		patchWriter = io.MultiWriter(bz, hasher)
	}

	serializeErr := make(chan error, 1)
	go func() {
		p.phase("serialize")
		serializeErr <- serialize[T](patchWriter, source, target, search, blocks)
	}()

	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "comparing blocks")
	}
	if err := <-serializeErr; err != nil {
		return errors.Wrap(err, "serializing patch")
	}
	if cfg.checksum {
		p.infof("patch stream checksum %x", hasher.Sum64())
	}

	if err := bz.Close(); err != nil {
		return errors.Wrap(err, "closing bzip2 stream")
	}

	p.phase("done")
	return nil
}
