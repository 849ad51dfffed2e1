// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides type describing font faces attributes.
*/
package font

import "golang.org/x/image/font"

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is a parsed typeface that can be instantiated at any size.
type Face interface {
	// Face returns a face with ppem pixels per em. The returned face
	// must only be used by one goroutine at a time.
	Face(ppem float32) (font.Face, error)
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// Lookup returns the face in faces that best matches f. A face
// with a different weight is preferred over one with a different
// style; the typeface of the first face is used if no face of f's
// typeface matches. Lookup reports false only if faces is empty.
func Lookup(faces []FontFace, f Font) (FontFace, bool) {
	if len(faces) == 0 {
		return FontFace{}, false
	}
	if ff, ok := lookupStyle(faces, f); ok {
		return ff, true
	}
	f.Typeface = faces[0].Font.Typeface
	if ff, ok := lookupStyle(faces, f); ok {
		return ff, true
	}
	return faces[0], true
}

func lookupStyle(faces []FontFace, f Font) (FontFace, bool) {
	candidates := []Font{f, f, f, f}
	candidates[1].Weight = Normal
	candidates[2].Style = Regular
	candidates[3].Weight, candidates[3].Style = Normal, Regular
	for _, c := range candidates {
		for _, ff := range faces {
			if ff.Font == c {
				return ff, true
			}
		}
	}
	return FontFace{}, false
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
