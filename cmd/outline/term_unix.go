// SPDX-License-Identifier: Unlicense OR MIT

//go:build unix

package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// terminalSize returns the size in character cells of the terminal
// connected to f.
func terminalSize(f *os.File) (cols, rows int, ok bool) {
	if !isatty.IsTerminal(f.Fd()) {
		return 0, 0, false
	}
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}
