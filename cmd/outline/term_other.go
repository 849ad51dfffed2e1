// SPDX-License-Identifier: Unlicense OR MIT

//go:build !unix

package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

// terminalSize reports a standard 80x24 terminal for terminals, since
// the size cannot be queried.
func terminalSize(f *os.File) (cols, rows int, ok bool) {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return 0, 0, false
	}
	return 80, 24, true
}
