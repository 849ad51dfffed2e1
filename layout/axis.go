// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/outline/f32"
)

// Point is a point whose components are read along an axis: Offset
// is the component on the axis, CrossOffset the orthogonal one.
//
// Reading the same f32.Point with another axis swaps the meaning of
// the components.
type Point struct {
	Axis Axis
	Pt   f32.Point
}

// Size is a size whose components are read along an axis: Length
// is the dimension on the axis, CrossLength the orthogonal one.
type Size struct {
	Axis Axis
	Pt   f32.Point
}

// AxisPoint returns the Point with the given offset on a and
// cross offset on the orthogonal axis.
func AxisPoint(a Axis, offset, cross float32) Point {
	return Point{Axis: a, Pt: axisPoint(a, offset, cross)}
}

// AxisSize returns the Size with the given length on a and
// cross length on the orthogonal axis.
func AxisSize(a Axis, length, cross float32) Size {
	return Size{Axis: a, Pt: axisPoint(a, length, cross)}
}

// Offset returns the component of p on its axis.
func (p Point) Offset() float32 { return axisMain(p.Axis, p.Pt) }

// CrossOffset returns the component of p orthogonal to its axis.
func (p Point) CrossOffset() float32 { return axisCross(p.Axis, p.Pt) }

// WithOffset returns p with its offset replaced by v.
func (p Point) WithOffset(v float32) Point {
	p.Pt = axisPoint(p.Axis, v, p.CrossOffset())
	return p
}

// WithCrossOffset returns p with its cross offset replaced by v.
func (p Point) WithCrossOffset(v float32) Point {
	p.Pt = axisPoint(p.Axis, p.Offset(), v)
	return p
}

// Length returns the dimension of s on its axis.
func (s Size) Length() float32 { return axisMain(s.Axis, s.Pt) }

// CrossLength returns the dimension of s orthogonal to its axis.
func (s Size) CrossLength() float32 { return axisCross(s.Axis, s.Pt) }

// WithLength returns s with its length replaced by v.
func (s Size) WithLength(v float32) Size {
	s.Pt = axisPoint(s.Axis, v, s.CrossLength())
	return s
}

// WithCrossLength returns s with its cross length replaced by v.
func (s Size) WithCrossLength(v float32) Size {
	s.Pt = axisPoint(s.Axis, s.Length(), v)
	return s
}

func axisPoint(a Axis, main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Point{X: main, Y: cross}
	} else {
		return f32.Point{X: cross, Y: main}
	}
}

func axisMain(a Axis, sz f32.Point) float32 {
	if a == Horizontal {
		return sz.X
	} else {
		return sz.Y
	}
}

func axisCross(a Axis, sz f32.Point) float32 {
	if a == Horizontal {
		return sz.Y
	} else {
		return sz.X
	}
}
