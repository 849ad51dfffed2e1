// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/outline/f32"
)

// Layout is implemented by every node of a layout tree.
//
// Measure must not change any state and may be called any number of
// times, with different rectangles, before or independently of Layout,
// including from within the Layout of another node.
//
// Layout assigns the final geometry. It may record state of the node
// itself and lays out its children in rectangles derived from r. It
// returns the rectangle the node actually occupies, which need not
// equal r.
type Layout interface {
	Layout(r f32.Rectangle) f32.Rectangle
	Measure(r f32.Rectangle) f32.Point
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is a set of flags for placing a sized element inside
// a parent rectangle.
//
// When both the center flag and an edge flag are set for the same
// dimension, the center flag wins. Without flags the element is
// placed at the left and top edges.
type Alignment uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// Left aligns to the left edge.
	Left Alignment = 1 << iota
	// Right aligns to the right edge.
	Right
	// HCenter centers horizontally.
	HCenter
	// Top aligns to the top edge.
	Top
	// Bottom aligns to the bottom edge.
	Bottom
	// VCenter centers vertically.
	VCenter
)

// Center is short for HCenter | VCenter.
const Center = HCenter | VCenter

// Cross returns the axis orthogonal to a.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Contains reports whether all flags of b are set in a.
func (a Alignment) Contains(b Alignment) bool {
	return a&b == b
}

// Origin returns the origin of an element of size sz aligned
// inside r.
func (a Alignment) Origin(sz f32.Point, r f32.Rectangle) f32.Point {
	return f32.Point{X: a.x(sz, r), Y: a.y(sz, r)}
}

// Rect returns the rectangle of size sz aligned inside r.
func (a Alignment) Rect(sz f32.Point, r f32.Rectangle) f32.Rectangle {
	o := a.Origin(sz, r)
	return f32.Rectangle{Min: o, Max: o.Add(sz)}
}

func (a Alignment) x(sz f32.Point, r f32.Rectangle) float32 {
	switch {
	case a.Contains(HCenter):
		return r.Min.X + (r.Dx()-sz.X)*0.5
	case a.Contains(Right):
		return r.Max.X - sz.X
	default:
		return r.Min.X
	}
}

func (a Alignment) y(sz f32.Point, r f32.Rectangle) float32 {
	switch {
	case a.Contains(VCenter):
		return r.Min.Y + (r.Dy()-sz.Y)*0.5
	case a.Contains(Bottom):
		return r.Max.Y - sz.Y
	default:
		return r.Min.Y
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (a Alignment) String() string {
	if a == 0 {
		return "0"
	}
	names := [...]string{"Left", "Right", "HCenter", "Top", "Bottom", "VCenter"}
	var s string
	for i, n := range names {
		if a&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n
	}
	return s
}
