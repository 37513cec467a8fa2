// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2016 Jakub Nyckowski
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package main

import (
	"fmt"
	"os"

	"github.com/jakule/andiff"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Println("usage: " + os.Args[0] + " oldfile newfile patchfile")
		os.Exit(1)
	}
	if err := run(os.Args[1], os.Args[2], os.Args[3]); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(oldfile, newfile, patchfile string) error {
	oldbs, err := os.ReadFile(oldfile)
	if err != nil {
		return fmt.Errorf("could not read oldfile %q: %w", oldfile, err)
	}
	patchbs, err := os.ReadFile(patchfile)
	if err != nil {
		return fmt.Errorf("could not read patchfile %q: %w", patchfile, err)
	}
	newbytes, err := andiff.Patch(oldbs, patchbs)
	if err != nil {
		return fmt.Errorf("andpatch: %w", err)
	}
	if err := os.WriteFile(newfile, newbytes, 0o644); err != nil {
		return fmt.Errorf("could not create newfile %q: %w", newfile, err)
	}
	return nil
}
