// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/outline/f32"
)

// Insets are margins on the four edges of a rectangle. They are meant
// to be non-negative, but that is not enforced.
type Insets struct {
	Top, Left, Bottom, Right float32
}

// Inset lays out a child in the rectangle shrunk by Insets.
type Inset struct {
	Insets Insets
	Child  Layout
}

// UniformInsets returns Insets with v on all edges.
func UniformInsets(v float32) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// XYInsets returns Insets with dx on the left and right edges and
// dy on the top and bottom edges.
func XYInsets(dx, dy float32) Insets {
	return Insets{Top: dy, Left: dx, Bottom: dy, Right: dx}
}

// Add returns the edge-wise sum of in and in2.
func (in Insets) Add(in2 Insets) Insets {
	return Insets{
		Top:    in.Top + in2.Top,
		Left:   in.Left + in2.Left,
		Bottom: in.Bottom + in2.Bottom,
		Right:  in.Right + in2.Right,
	}
}

// Apply shrinks r by in. The result has a negative size if
// the insets exceed the size of r.
func (in Insets) Apply(r f32.Rectangle) f32.Rectangle {
	r.Min.X += in.Left
	r.Min.Y += in.Top
	r.Max.X -= in.Right
	r.Max.Y -= in.Bottom
	return r
}

// InsetBy returns an Inset layout of child.
func InsetBy(child Layout, in Insets) Inset {
	return Inset{Insets: in, Child: child}
}

// InsetXY is like InsetBy with XYInsets(dx, dy).
func InsetXY(child Layout, dx, dy float32) Inset {
	return Inset{Insets: XYInsets(dx, dy), Child: child}
}

// Layout the child in the inset rectangle.
func (in Inset) Layout(r f32.Rectangle) f32.Rectangle {
	return in.Child.Layout(in.Insets.Apply(r))
}

// Measure the child in the inset rectangle. The insets are not
// added back to the result.
func (in Inset) Measure(r f32.Rectangle) f32.Point {
	return in.Child.Measure(in.Insets.Apply(r))
}
