// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

// Strategy selects which C4 pattern searcher a Diff call uses.
type Strategy int

const (
	// StrategySimple is the letter-bucket + binary search strategy
	// (original_source/src/andiff.hpp's andiff_simple). It is cheaper to
	// set up and is the default.
	StrategySimple Strategy = iota
	// StrategyLCP builds a Kasai LCP array and LCP-LR structure up front
	// to accelerate the same binary search (andiff_lcp). Worthwhile when
	// the source is large enough that the setup cost is amortized over
	// many searches.
	StrategyLCP
)

// searcher is the common shape both C4 strategies expose to the C5 worker
// loop: given a target offset, report the longest source match and its
// position.
type searcher[T Index] interface {
	search(scan T) (pos, length T)
}

func newSearcher[T Index](strategy Strategy, sa []T, source, target []byte) (searcher[T], error) {
	if strategy == StrategyLCP {
		return newLCPSearcher(sa, source, target)
	}
	return newSimpleSearcher(sa, source, target), nil
}
