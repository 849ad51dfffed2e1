// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"unicode/utf8"

	"gioui.org/outline/f32"
)

// element takes any rectangle it is offered and records it.
type element struct {
	rect f32.Rectangle
	// size, if set, is returned by Measure.
	size *f32.Point
}

// textElement measures a character as 1 wide and a line as 21 high.
type textElement struct {
	element
	text   string
	insets Insets
}

type textContent string

type imageElement struct {
	element
	content ImageContent
}

type imageContent f32.Point

type buttonElement struct {
	element
	title  TextContent
	image  ImageElement
	insets ButtonInsets
}

// zeroLayout lays out its child in the empty rectangle.
type zeroLayout struct {
	child Layout
}

func sizedElement(w, h float32) *element {
	sz := f32.Pt(w, h)
	return &element{size: &sz}
}

func (e *element) Layout(r f32.Rectangle) f32.Rectangle {
	e.rect = r.WithSize(e.Measure(r))
	return r
}

func (e *element) Measure(r f32.Rectangle) f32.Point {
	if e.size != nil {
		return *e.size
	}
	return r.Size()
}

func (e *textElement) TextContent() TextContent {
	return textContent(e.text)
}

func (e *textElement) ContentInsets() Insets {
	return e.insets
}

func (t textContent) MeasureText(max f32.Point, deviceMetrics bool) f32.Point {
	return f32.Pt(float32(utf8.RuneCountInString(string(t))), 21)
}

func (e *imageElement) ImageContent() ImageContent {
	return e.content
}

func (c imageContent) IntrinsicSize() f32.Point {
	return f32.Point(c)
}

func (e *buttonElement) TextContent() TextContent {
	return e.title
}

func (e *buttonElement) NestedImage() ImageElement {
	return e.image
}

func (e *buttonElement) ButtonInsets() ButtonInsets {
	return e.insets
}

func (z zeroLayout) Layout(r f32.Rectangle) f32.Rectangle {
	z.child.Layout(f32.Rectangle{})
	return f32.Rectangle{}
}

func (z zeroLayout) Measure(r f32.Rectangle) f32.Point {
	return f32.Point{}
}
