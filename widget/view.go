// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"gioui.org/outline/f32"
	"gioui.org/outline/layout"
	"gioui.org/outline/text"
)

// View is a named rectangle on screen.
type View struct {
	Name string
	// Intrinsic is the largest size the view measures. Views from
	// NewView have an unbounded intrinsic size.
	Intrinsic f32.Point

	rect    f32.Rectangle
	laidOut bool
}

// Label is a View displaying text.
type Label struct {
	View
	Text text.Content
	// Insets surround the text.
	Insets layout.Insets
}

// ImageView is a View displaying an image.
type ImageView struct {
	View
	// Image is the displayed image, or nil.
	Image layout.ImageContent
}

// Button is a View displaying a title and an optional image.
type Button struct {
	View
	Title text.Content
	// Image, if not nil, is laid out by layout.Button at the
	// leading edge of the button.
	Image  *ImageView
	Insets layout.ButtonInsets
}

var (
	_ layout.TextElement   = (*Label)(nil)
	_ layout.ImageElement  = (*ImageView)(nil)
	_ layout.ButtonElement = (*Button)(nil)
)

// NewView returns a view that takes any size it is offered.
func NewView(name string) *View {
	inf := float32(math.Inf(1))
	return &View{Name: name, Intrinsic: f32.Pt(inf, inf)}
}

// NewSizedView returns a view that measures at most sz.
func NewSizedView(name string, sz f32.Point) *View {
	return &View{Name: name, Intrinsic: sz}
}

// NewLabel returns a label of c.
func NewLabel(name string, c text.Content) *Label {
	return &Label{View: *NewView(name), Text: c}
}

// NewImageView returns a view of img.
func NewImageView(name string, img layout.ImageContent) *ImageView {
	return &ImageView{View: *NewView(name), Image: img}
}

// NewButton returns a button titled title, with an optional image.
func NewButton(name string, title text.Content, img *ImageView) *Button {
	return &Button{View: *NewView(name), Title: title, Image: img}
}

// Layout records and returns r.
func (v *View) Layout(r f32.Rectangle) f32.Rectangle {
	v.rect = r
	v.laidOut = true
	return r
}

// Measure returns the size of r limited to the intrinsic size.
func (v *View) Measure(r f32.Rectangle) f32.Point {
	return r.Size().Min(v.Intrinsic)
}

// Rect returns the rectangle of the last Layout.
func (v *View) Rect() f32.Rectangle {
	return v.rect
}

// LaidOut reports whether v has been laid out.
func (v *View) LaidOut() bool {
	return v.laidOut
}

func (l *Label) TextContent() layout.TextContent {
	if l.Text.Text == "" {
		return nil
	}
	return l.Text
}

func (l *Label) ContentInsets() layout.Insets {
	return l.Insets
}

func (v *ImageView) ImageContent() layout.ImageContent {
	return v.Image
}

func (b *Button) TextContent() layout.TextContent {
	if b.Title.Text == "" {
		return nil
	}
	return b.Title
}

func (b *Button) NestedImage() layout.ImageElement {
	if b.Image == nil {
		return nil
	}
	return b.Image
}

func (b *Button) ButtonInsets() layout.ButtonInsets {
	return b.Insets
}
