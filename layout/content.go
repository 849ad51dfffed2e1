// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/outline/f32"
)

// TextContent measures text.
type TextContent interface {
	// MeasureText returns the size of the text laid out within max.
	// If deviceMetrics is set, the size covers the rendered glyphs
	// instead of the typographic bounds.
	MeasureText(max f32.Point, deviceMetrics bool) f32.Point
}

// TextElement is a Layout displaying text.
type TextElement interface {
	Layout
	// TextContent returns the text of the element, or nil.
	TextContent() TextContent
	// ContentInsets returns the insets around the text.
	ContentInsets() Insets
}

// ImageContent is an image with a fixed size.
type ImageContent interface {
	IntrinsicSize() f32.Point
}

// ImageElement is a Layout displaying an image.
type ImageElement interface {
	Layout
	// ImageContent returns the image of the element, or nil.
	ImageContent() ImageContent
}

// ButtonInsets are the insets of the title and the image of a button.
type ButtonInsets struct {
	Title, Image Insets
}

// ButtonElement is a Layout displaying a title next to an optional
// image.
type ButtonElement interface {
	Layout
	// TextContent returns the title, or nil.
	TextContent() TextContent
	// NestedImage returns the image element, or nil.
	NestedImage() ImageElement
	ButtonInsets() ButtonInsets
}

// TextOption is a set of options for Text.
type TextOption uint8

const (
	// DeviceMetrics measures the rendered glyphs.
	DeviceMetrics TextOption = 1 << iota
	// ParentWidth uses the width of the parent instead of the
	// measured text width.
	ParentWidth
)

// Text lays out a TextElement with the size of its text.
type Text struct {
	Element   TextElement
	Alignment Alignment
	Options   TextOption
}

// Image lays out an ImageElement with the size of its image.
type Image struct {
	Element   ImageElement
	Alignment Alignment
}

// ButtonHeight selects the height of a Button.
type ButtonHeight uint8

const (
	// HeightContent derives the height from the title and image.
	HeightContent ButtonHeight = iota
	// HeightParent uses the parent height.
	HeightParent
	// HeightCustom uses Button.CustomHeight.
	HeightCustom
)

// Button lays out a ButtonElement with the size of its title and
// image side by side.
type Button struct {
	Element ButtonElement
	// Insets surround the title and image.
	Insets Insets
	// ImageSize replaces the size of the nested image if not zero.
	// The zero size means unset: an explicit 0x0 image cannot be
	// requested and falls back to the intrinsic size of the image.
	ImageSize    f32.Point
	Height       ButtonHeight
	CustomHeight float32
	Alignment    Alignment
}

func (t Text) Layout(r f32.Rectangle) f32.Rectangle {
	return t.Element.Layout(t.Alignment.Rect(t.Measure(r), r))
}

func (t Text) Measure(r f32.Rectangle) f32.Point {
	in := t.Element.ContentInsets()
	var sz f32.Point
	if c := t.Element.TextContent(); c != nil {
		sz = c.MeasureText(in.Apply(r).Size(), t.Options&DeviceMetrics != 0)
	}
	sz.Y += in.Top + in.Bottom
	if t.Options&ParentWidth != 0 {
		sz.X = r.Dx()
	} else {
		sz.X += in.Left + in.Right
	}
	return sz
}

func (im Image) Layout(r f32.Rectangle) f32.Rectangle {
	return im.Element.Layout(im.Alignment.Rect(im.Measure(r), r))
}

func (im Image) Measure(r f32.Rectangle) f32.Point {
	if c := im.Element.ImageContent(); c != nil {
		return c.IntrinsicSize()
	}
	return r.Size()
}

// Layout lays out the element and then its nested image, if any, at
// the leading edge of the button inside both insets, vertically
// centered and sized as in Measure.
func (b Button) Layout(r f32.Rectangle) f32.Rectangle {
	res := b.Element.Layout(b.Alignment.Rect(b.Measure(r), r))
	if e := b.Element.NestedImage(); e != nil {
		e.Layout(b.imageRect(res))
	}
	return res
}

func (b Button) Measure(r f32.Rectangle) f32.Point {
	var title f32.Point
	if c := b.Element.TextContent(); c != nil {
		title = c.MeasureText(r.Size(), false)
	}
	img := b.imageSize()
	in := b.Element.ButtonInsets()
	w := b.Insets.Left +
		in.Image.Left + img.X + in.Image.Right +
		in.Title.Left + title.X + in.Title.Right +
		b.Insets.Right
	var h float32
	switch b.Height {
	case HeightParent:
		h = r.Dy()
	case HeightCustom:
		h = b.CustomHeight
	default:
		h = b.Insets.Top +
			max(in.Image.Top, in.Title.Top) +
			max(img.Y, title.Y) +
			max(in.Image.Bottom, in.Title.Bottom) +
			b.Insets.Bottom
	}
	return f32.Point{X: w, Y: h}
}

func (b Button) imageSize() f32.Point {
	if b.ImageSize != (f32.Point{}) {
		return b.ImageSize
	}
	if e := b.Element.NestedImage(); e != nil {
		if c := e.ImageContent(); c != nil {
			return c.IntrinsicSize()
		}
	}
	return f32.Point{}
}

// imageRect returns the rectangle of the nested image in the button
// rectangle r.
func (b Button) imageRect(r f32.Rectangle) f32.Rectangle {
	in := b.Element.ButtonInsets().Image
	box := Insets{
		Top:    b.Insets.Top + in.Top,
		Left:   b.Insets.Left + in.Left,
		Bottom: b.Insets.Bottom + in.Bottom,
	}.Apply(r)
	return (Left | VCenter).Rect(b.imageSize(), box)
}
