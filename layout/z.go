// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/outline/f32"
)

// Z lays out its children on top of each other in the same
// rectangle. Children are laid out in order, so the first child is
// at the back and the last at the front.
type Z struct {
	Children []Layout
}

// Overlay returns a Z of the children.
func Overlay(children ...Layout) Z {
	return Z{Children: children}
}

// Layout every child in r. The result is at the origin of r with the
// size reported by Measure.
func (z Z) Layout(r f32.Rectangle) f32.Rectangle {
	for _, c := range z.Children {
		c.Layout(r)
	}
	return r.WithSize(z.Measure(r))
}

// Measure returns the largest child size by area, the first one
// on ties, or the size of r without children.
func (z Z) Measure(r f32.Rectangle) f32.Point {
	if len(z.Children) == 0 {
		return r.Size()
	}
	var largest f32.Point
	for i, c := range z.Children {
		sz := c.Measure(r)
		if i == 0 || sz.Area() > largest.Area() {
			largest = sz
		}
	}
	return largest
}
