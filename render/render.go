// SPDX-License-Identifier: Unlicense OR MIT

/*
Package render draws laid out views for inspection.

ASCII draws views as character boxes for terminals and tests. SVG
and PDF draw outlined, labelled rectangles through the canvas
package.
*/
package render

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/font/gofont/goregular"

	"gioui.org/outline/f32"
	"gioui.org/outline/widget"
)

const (
	// mmPerUnit maps layout units to millimeters at 96 units per inch.
	mmPerUnit = 25.4 / 96
	// labelSize is the size of view names in points.
	labelSize = 7
	strokeMM  = 0.25
)

// palette holds the outline colors, cycled per view.
var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

var (
	labelOnce   sync.Once
	labelFamily *canvas.FontFamily
	labelErr    error
)

// ASCII draws the views laid out in bounds as boxes on a grid cols
// characters wide. Rows are half as dense as columns, roughly
// matching the aspect ratio of terminal cells. Views are clipped to
// bounds; views that were never laid out or lie outside bounds are
// skipped. Later views overwrite earlier ones.
func ASCII(w io.Writer, views []*widget.View, bounds f32.Rectangle, cols int) error {
	if cols <= 0 {
		return fmt.Errorf("render: invalid column count %d", cols)
	}
	if bounds.Empty() {
		return errors.New("render: empty bounds")
	}
	sx := float64(cols) / float64(bounds.Dx())
	sy := sx / 2
	rows := max(int(math.Round(float64(bounds.Dy())*sy)), 1)
	g := newGrid(cols, rows)
	for _, v := range views {
		r, ok := visible(v, bounds)
		if !ok {
			continue
		}
		c0 := cell(r.Min.X-bounds.Min.X, sx)
		c1 := max(cell(r.Max.X-bounds.Min.X, sx)-1, c0)
		r0 := cell(r.Min.Y-bounds.Min.Y, sy)
		r1 := max(cell(r.Max.Y-bounds.Min.Y, sy)-1, r0)
		g.box(c0, r0, c1, r1)
		if r1-r0 >= 2 {
			g.text(c0+1, r0+1, c1-1, v.Name)
		}
	}
	return g.write(w)
}

// visible returns the part of the rectangle of v inside bounds.
// Rectangles with negative sizes are drawn by their canonical form.
func visible(v *widget.View, bounds f32.Rectangle) (f32.Rectangle, bool) {
	if !v.LaidOut() {
		return f32.Rectangle{}, false
	}
	r := v.Rect().Canon().Intersect(bounds)
	return r, !r.Empty()
}

func cell(v float32, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

type grid struct {
	w, h  int
	cells [][]rune
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([][]rune, h)}
	for i := range g.cells {
		g.cells[i] = []rune(strings.Repeat(" ", w))
	}
	return g
}

func (g *grid) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = r
}

func (g *grid) box(x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		g.set(x, y0, '-')
		g.set(x, y1, '-')
	}
	for y := y0 + 1; y < y1; y++ {
		g.set(x0, y, '|')
		g.set(x1, y, '|')
	}
	g.set(x0, y0, '+')
	g.set(x1, y0, '+')
	g.set(x0, y1, '+')
	g.set(x1, y1, '+')
}

// text writes s at (x, y), clipped at column maxX.
func (g *grid) text(x, y, maxX int, s string) {
	for _, r := range s {
		if x > maxX {
			return
		}
		g.set(x, y, r)
		x++
	}
}

func (g *grid) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.cells {
		bw.WriteString(strings.TrimRight(string(row), " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// SVG draws the views laid out in bounds as an SVG image.
func SVG(w io.Writer, views []*widget.View, bounds f32.Rectangle) error {
	c, err := draw(views, bounds)
	if err != nil {
		return err
	}
	sw := svg.New(w, c.W, c.H, nil)
	c.RenderTo(sw)
	if err := sw.Close(); err != nil {
		return fmt.Errorf("render: writing svg: %w", err)
	}
	return nil
}

// PDF draws the views laid out in bounds as a single page PDF.
func PDF(w io.Writer, views []*widget.View, bounds f32.Rectangle) error {
	c, err := draw(views, bounds)
	if err != nil {
		return err
	}
	pw := pdf.New(w, c.W, c.H, nil)
	c.RenderTo(pw)
	if err := pw.Close(); err != nil {
		return fmt.Errorf("render: writing pdf: %w", err)
	}
	return nil
}

func draw(views []*widget.View, bounds f32.Rectangle) (*canvas.Canvas, error) {
	if bounds.Empty() {
		return nil, errors.New("render: empty bounds")
	}
	family, err := labels()
	if err != nil {
		return nil, err
	}
	c := canvas.New(mm(bounds.Dx()), mm(bounds.Dy()))
	ctx := canvas.NewContext(c)
	// Layout coordinates grow downwards.
	ctx.SetCoordSystem(canvas.CartesianIV)
	for i, v := range views {
		r, ok := visible(v, bounds)
		if !ok {
			continue
		}
		col := palette[i%len(palette)]
		r = r.Sub(bounds.Min)
		x, y := mm(r.Min.X), mm(r.Min.Y)
		ctx.SetFillColor(color.RGBA{})
		ctx.SetStrokeColor(col)
		ctx.SetStrokeWidth(strokeMM)
		ctx.DrawPath(x, y, canvas.Rectangle(mm(r.Dx()), mm(r.Dy())))

		face := family.Face(labelSize, col, canvas.FontRegular, canvas.FontNormal)
		line := canvas.NewTextLine(face, v.Name, canvas.Left)
		ctx.DrawText(x+strokeMM, y+face.Metrics().Ascent, line)
	}
	return c, nil
}

func labels() (*canvas.FontFamily, error) {
	labelOnce.Do(func() {
		f := canvas.NewFontFamily("Go")
		if err := f.LoadFont(goregular.TTF, 0, canvas.FontRegular); err != nil {
			labelErr = fmt.Errorf("render: loading label font: %w", err)
			return
		}
		labelFamily = f
	})
	return labelFamily, labelErr
}

func mm(v float32) float64 {
	return float64(v) * mmPerUnit
}
