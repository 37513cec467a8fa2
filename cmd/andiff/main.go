// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/jakule/andiff"
)

func main() {
	lcp := flag.Bool("lcp", false, "use the LCP-accelerated search strategy instead of the letter-bucket one")
	workers := flag.Int("workers", runtime.NumCPU(), "number of goroutines to diff target blocks with")
	checksum := flag.Bool("checksum", false, "log an xxhash64 of the serialized patch stream, for comparing runs")
	verbose := flag.Bool("v", false, "print progress to stderr")
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] oldfile newfile patchfile\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2), *lcp, *workers, *checksum, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(oldfile, newfile, patchfile string, lcp bool, workers int, checksum, verbose bool) error {
	oldbs, err := os.ReadFile(oldfile)
	if err != nil {
		return fmt.Errorf("could not read oldfile %q: %w", oldfile, err)
	}
	newbs, err := os.ReadFile(newfile)
	if err != nil {
		return fmt.Errorf("could not read newfile %q: %w", newfile, err)
	}

	out, err := os.Create(patchfile)
	if err != nil {
		return fmt.Errorf("could not create patchfile %q: %w", patchfile, err)
	}
	defer out.Close()

	strategy := andiff.StrategySimple
	if lcp {
		strategy = andiff.StrategyLCP
	}

	opts := []andiff.Option{
		andiff.WithStrategy(strategy),
		andiff.WithWorkers(workers),
		andiff.WithChecksum(checksum),
	}
	if verbose {
		opts = append(opts, andiff.WithProgress(&andiff.Progress{
			OnPhase:   func(phase string) { fmt.Fprintf(os.Stderr, "[%s]\n", phase) },
			OnMessage: func(level, msg string) { fmt.Fprintf(os.Stderr, "%s: %s\n", level, msg) },
		}))
	}

	if err := andiff.Diff(oldbs, newbs, out, opts...); err != nil {
		return fmt.Errorf("andiff: %w", err)
	}
	return nil
}
