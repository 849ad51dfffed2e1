// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/outline/decl"
	"gioui.org/outline/f32"
)

const rowViews = `avatar 0 10 44 44
title 44 0 287 44
action 331 0 44 44
`

func TestRun(t *testing.T) {
	for _, file := range []string{"row.outline", "row.yaml"} {
		t.Run(file, func(t *testing.T) {
			var buf bytes.Buffer
			opts := options{Size: f32.Pt(375, 44), Cols: 80}
			if err := run(&buf, filepath.Join("testdata", file), opts); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != rowViews {
				t.Errorf("got\n%s\nwant\n%s", got, rowViews)
			}
		})
	}
}

func TestRunOutputs(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		Size:  f32.Pt(375, 44),
		ASCII: true,
		Cols:  75,
		SVG:   filepath.Join(dir, "row.svg"),
		PDF:   filepath.Join(dir, "row.pdf"),
	}
	var buf, logBuf bytes.Buffer
	opts.Log = &logBuf
	if err := run(&buf, filepath.Join("testdata", "row.outline"), opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, rowViews+"\n") {
		t.Errorf("missing view list in\n%s", out)
	}
	if !strings.Contains(out, "|title") {
		t.Errorf("missing ASCII drawing in\n%s", out)
	}
	svg, err := os.ReadFile(opts.SVG)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("invalid SVG output")
	}
	pdf, err := os.ReadFile(opts.PDF)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("invalid PDF output")
	}
	for _, msg := range []string{"laid out 3 views from 4 nodes", "views cover (0,0)-(375,54)"} {
		if !strings.Contains(logBuf.String(), msg) {
			t.Errorf("log output %q does not contain %q", logBuf.String(), msg)
		}
	}
}

func TestRunWaitsForOutputs(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		Size:  f32.Pt(375, 44),
		ASCII: true,
		Cols:  0,
		SVG:   filepath.Join(dir, "row.svg"),
	}
	var buf bytes.Buffer
	if err := run(&buf, filepath.Join("testdata", "row.outline"), opts); err == nil {
		t.Fatal("expected error for zero columns")
	}
	// The SVG is complete even though the ASCII drawing failed.
	svg, err := os.ReadFile(opts.SVG)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("</svg>")) {
		t.Errorf("incomplete SVG output:\n%s", svg)
	}
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer
	opts := options{Size: f32.Pt(100, 100), Cols: 80}
	if err := run(&buf, filepath.Join("testdata", "missing.outline"), opts); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want %v", err, os.ErrNotExist)
	}
	if err := run(&buf, filepath.Join("testdata", "grid.outline"), opts); !errors.Is(err, decl.ErrUnknownKind) {
		t.Errorf("got %v, want %v", err, decl.ErrUnknownKind)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
