// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import "runtime"

// Option configures a Diff call. Grounded on the functional-options style
// streamhash's BuildOption uses.
type Option func(*diffConfig)

type diffConfig struct {
	strategy   Strategy
	numWorkers int
	progress   *Progress
	checksum   bool
}

func defaultDiffConfig() *diffConfig {
	return &diffConfig{
		strategy:   StrategySimple,
		numWorkers: runtime.NumCPU(),
	}
}

// WithStrategy selects the C4 pattern-search strategy. Defaults to
// StrategySimple.
func WithStrategy(s Strategy) Option {
	return func(c *diffConfig) {
		c.strategy = s
	}
}

// WithWorkers sets how many goroutines diff target blocks concurrently.
// Defaults to runtime.NumCPU(); values below 1 are ignored, and Diff
// never runs fewer than one worker, matching the original_source CLI's
// single-thread fallback when hardware_concurrency() reports 0.
func WithWorkers(n int) Option {
	return func(c *diffConfig) {
		if n > 0 {
			c.numWorkers = n
		}
	}
}

// WithProgress attaches phase/progress/log callbacks to a Diff call.
func WithProgress(p *Progress) Option {
	return func(c *diffConfig) {
		c.progress = p
	}
}

// WithChecksum enables folding an xxhash64 of each block's records in
// dispatch order into the progress log, letting two runs over the same
// inputs with a different worker count or scheduling be compared for
// determinism (spec's testable determinism property).
func WithChecksum(enabled bool) Option {
	return func(c *diffConfig) {
		c.checksum = enabled
	}
}
