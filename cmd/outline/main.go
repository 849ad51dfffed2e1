// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"gioui.org/outline/decl"
	"gioui.org/outline/f32"
	"gioui.org/outline/font/gofont"
	"gioui.org/outline/render"
	"gioui.org/outline/text"
	"gioui.org/outline/unit"
)

var (
	width    = flag.Float64("width", 0, "screen width (default from terminal, or 375)")
	height   = flag.Float64("height", 0, "screen height (default from terminal, or 812)")
	textSize = flag.Float64("size", text.DefaultSize, "font size in sp of text without a size attribute")
	scale    = flag.Float64("scale", 1, "pixels per sp of text sizes")
	ascii    = flag.Bool("ascii", false, "draw the views as ASCII boxes")
	cols     = flag.Int("cols", 0, "columns of the ASCII drawing (default from terminal, or 80)")
	svgPath  = flag.String("svg", "", "write an SVG drawing to `file`")
	pdfPath  = flag.String("pdf", "", "write a PDF drawing to `file`")
	verbose  = flag.Bool("v", false, "print the screen size and timing")
)

const (
	defaultWidth  = 375
	defaultHeight = 812
	defaultCols   = 80
	// cellWidth and cellHeight are the units per terminal character
	// cell.
	cellWidth  = 8
	cellHeight = 16
)

// options are the settings of one run.
type options struct {
	Size     f32.Point
	TextSize float32
	// Scale is the number of pixels per sp.
	Scale    float32
	ASCII    bool
	Cols     int
	SVG, PDF string
	// Log, if not nil, receives progress messages.
	Log io.Writer
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "outline: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	path := flag.Arg(0)
	if path == "" {
		return errors.New("specify a file")
	}
	if flag.NArg() > 1 {
		return fmt.Errorf("unexpected arguments: %v", flag.Args()[1:])
	}
	opts := options{
		Size:     f32.Pt(float32(*width), float32(*height)),
		TextSize: float32(*textSize),
		Scale:    float32(*scale),
		ASCII:    *ascii,
		Cols:     *cols,
		SVG:      *svgPath,
		PDF:      *pdfPath,
	}
	tcols, trows, isTerm := terminalSize(os.Stdout)
	if opts.Size.X <= 0 {
		opts.Size.X = defaultWidth
		if isTerm {
			opts.Size.X = float32(tcols * cellWidth)
		}
	}
	if opts.Size.Y <= 0 {
		opts.Size.Y = defaultHeight
		if isTerm {
			opts.Size.Y = float32(trows * cellHeight)
		}
	}
	if opts.Cols <= 0 {
		opts.Cols = defaultCols
		if isTerm {
			opts.Cols = tcols
		}
	}
	if *verbose {
		opts.Log = os.Stderr
	}
	return run(os.Stdout, path, opts)
}

// run lays out the document at path and prints the views to w.
func run(w io.Writer, path string, opts options) error {
	start := time.Now()
	doc, err := decl.Load(path)
	if err != nil {
		return err
	}
	nodes := 0
	doc.Root.Walk(func(*decl.Node) error {
		nodes++
		return nil
	})
	env := decl.Env{
		Shaper:   text.NewShaper(gofont.Collection()),
		TextSize: opts.TextSize,
		Metric:   unit.Metric{PxPerSp: opts.Scale},
		Dir:      filepath.Dir(path),
	}
	tree, err := decl.Build(doc, env)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	bounds := f32.Rectangle{Max: opts.Size}
	tree.Layout(bounds)
	logf(opts.Log, "laid out %d views from %d nodes in %v on a %v screen", len(tree.Views), nodes, time.Since(start), opts.Size)
	logf(opts.Log, "views cover %v", tree.Bounds())

	var g errgroup.Group
	if opts.SVG != "" {
		g.Go(func() error {
			return writeFile(opts.SVG, func(w io.Writer) error {
				return render.SVG(w, tree.Views, bounds)
			})
		})
	}
	if opts.PDF != "" {
		g.Go(func() error {
			return writeFile(opts.PDF, func(w io.Writer) error {
				return render.PDF(w, tree.Views, bounds)
			})
		})
	}

	if err := errors.Join(list(w, tree, bounds, opts), g.Wait()); err != nil {
		return err
	}
	logf(opts.Log, "done in %v", time.Since(start))
	return nil
}

// list prints the views of tree to w, followed by an ASCII drawing if
// requested.
func list(w io.Writer, tree *decl.Tree, bounds f32.Rectangle, opts options) error {
	bw := bufio.NewWriter(w)
	for _, v := range tree.Views {
		if !v.LaidOut() {
			continue
		}
		r := v.Rect()
		fmt.Fprintf(bw, "%s %g %g %g %g\n", v.Name, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	}
	if opts.ASCII {
		bw.WriteByte('\n')
		if err := render.ASCII(bw, tree.Views, bounds, opts.Cols); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeFile creates the file at path and writes it with write.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return bw.Flush()
}

func logf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "outline: "+format+"\n", args...)
}
