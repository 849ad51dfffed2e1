// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"testing"

	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"gioui.org/outline/font"
)

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name string
		ttf  []byte
		want font.Font
	}{
		{"Regular", goregular.TTF, font.Font{Typeface: "Go"}},
		{"BoldItalic", gobolditalic.TTF, font.Font{Typeface: "Go", Style: font.Italic, Weight: font.Bold}},
		{"Mono", gomono.TTF, font.Font{Typeface: "Go Mono", Variant: "Mono"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			face, err := Parse(test.ttf)
			if err != nil {
				t.Fatal(err)
			}
			if got := face.Font(); got != test.want {
				t.Errorf("got %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestParseCollectionSingle(t *testing.T) {
	faces, err := ParseCollection(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if len(faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(faces))
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("expected error")
	}
}

func TestFaceMetrics(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	small, err := face.Face(10)
	if err != nil {
		t.Fatal(err)
	}
	large, err := face.Face(20)
	if err != nil {
		t.Fatal(err)
	}
	if hs, hl := small.Metrics().Height, large.Metrics().Height; hl <= hs {
		t.Errorf("line height does not grow with size: %v, %v", hs, hl)
	}
}
