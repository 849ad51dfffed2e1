// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"bytes"
	"strings"
	"testing"

	"gioui.org/outline/f32"
	"gioui.org/outline/widget"
)

func laidOut(name string, r f32.Rectangle) *widget.View {
	v := widget.NewView(name)
	v.Layout(r)
	return v
}

func TestASCII(t *testing.T) {
	views := []*widget.View{
		laidOut("a", f32.XYWH(0, 0, 10, 10)),
		laidOut("b", f32.XYWH(10, 0, 10, 10)),
	}
	var buf bytes.Buffer
	if err := ASCII(&buf, views, f32.XYWH(0, 0, 20, 10), 20); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"+--------++--------+",
		"|a       ||b       |",
		"|        ||        |",
		"|        ||        |",
		"+--------++--------+",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestASCIIClipsNames(t *testing.T) {
	views := []*widget.View{
		laidOut("abcdefghijk", f32.XYWH(0, 0, 10, 10)),
		widget.NewView("hidden"),
	}
	var buf bytes.Buffer
	if err := ASCII(&buf, views, f32.XYWH(0, 0, 10, 10), 10); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"+--------+",
		"|abcdefgh|",
		"|        |",
		"|        |",
		"+--------+",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestASCIIClipsViews(t *testing.T) {
	views := []*widget.View{
		laidOut("c", f32.XYWH(-5, -5, 10, 10)),
		laidOut("n", f32.XYWH(5, 10, 5, -5)),
		laidOut("out", f32.XYWH(20, 20, 5, 5)),
	}
	var buf bytes.Buffer
	if err := ASCII(&buf, views, f32.XYWH(0, 0, 10, 10), 10); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"+---+",
		"|c  |",
		"+---+",
		"     +---+",
		"     +---+",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestASCIIErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := ASCII(&buf, nil, f32.XYWH(0, 0, 10, 10), 0); err == nil {
		t.Error("expected error for zero columns")
	}
	if err := ASCII(&buf, nil, f32.Rectangle{}, 10); err == nil {
		t.Error("expected error for empty bounds")
	}
}

func TestSVG(t *testing.T) {
	views := []*widget.View{laidOut("card", f32.XYWH(10, 10, 100, 40))}
	var buf bytes.Buffer
	if err := SVG(&buf, views, f32.XYWH(0, 0, 375, 200)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not an SVG document:\n%s", buf.String())
	}
}

func TestPDF(t *testing.T) {
	views := []*widget.View{laidOut("card", f32.XYWH(10, 10, 100, 40))}
	var buf bytes.Buffer
	if err := PDF(&buf, views, f32.XYWH(0, 0, 375, 200)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output is not a PDF document")
	}
	if err := PDF(&buf, views, f32.Rectangle{}); err == nil {
		t.Error("expected error for empty bounds")
	}
}
