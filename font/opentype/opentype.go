// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype loads OpenType and TrueType files into faces
// suitable for text measurement.
package opentype

import (
	"fmt"
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"gioui.org/outline/font"
)

// Face is a thread-safe representation of a loaded font. For efficiency,
// applications should parse a font file once and reuse the Face across
// shapers.
type Face struct {
	font      *sfnt.Font
	family    string
	subfamily string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return newFace(f)
}

// ParseCollection parse an Opentype font file, with support for collections.
// Single font files are supported, returning a slice with length 1.
// The returned fonts are wrapped in a font.FontFace with font metadata
// inferred from the name table.
// BUG: the only Variant that can be detected is "Mono", and only from
// the family name.
func ParseCollection(src []byte) ([]font.FontFace, error) {
	c, err := opentype.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing font collection: %w", err)
	}
	out := make([]font.FontFace, c.NumFonts())
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		ff, err := newFace(f)
		if err != nil {
			return nil, fmt.Errorf("reading font %d of collection: %w", i, err)
		}
		out[i] = font.FontFace{Face: ff, Font: ff.Font()}
	}
	return out, nil
}

func newFace(f *sfnt.Font) (Face, error) {
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return Face{}, fmt.Errorf("reading family name: %w", err)
	}
	// Fonts without a subfamily are regular.
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	return Face{font: f, family: family, subfamily: sub}, nil
}

// Face returns a new face of size ppem. It implements font.Face.
func (f Face) Face(ppem float32) (xfont.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(ppem),
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
}

// Font returns a font.Font with metadata from the name table of the
// font.
func (f Face) Font() font.Font {
	fnt := font.Font{
		Typeface: font.Typeface(f.family),
		Style:    f.style(),
		Weight:   f.weight(),
	}
	if strings.Contains(f.family, "Mono") {
		fnt.Variant = "Mono"
	}
	return fnt
}

func (f Face) style() font.Style {
	sub := strings.ToLower(f.subfamily)
	if strings.Contains(sub, "italic") || strings.Contains(sub, "oblique") {
		return font.Italic
	}
	return font.Regular
}

func (f Face) weight() font.Weight {
	sub := strings.ToLower(f.subfamily)
	// Longer names first, "extrabold" contains "bold".
	weights := []struct {
		name   string
		weight font.Weight
	}{
		{"extralight", font.ExtraLight},
		{"extrabold", font.ExtraBold},
		{"semibold", font.SemiBold},
		{"thin", font.Thin},
		{"light", font.Light},
		{"medium", font.Medium},
		{"bold", font.Bold},
		{"black", font.Black},
	}
	for _, w := range weights {
		if strings.Contains(sub, w.name) {
			return w.weight
		}
	}
	return font.Normal
}
