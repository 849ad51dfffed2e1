// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/outline/f32"
	"gioui.org/outline/unit"
)

// Stack lays out child elements one after another along an axis.
//
// Elements with a fixed length keep the length they measure.
// Elements marked FlexLength share the space left by the fixed
// elements and all offsets equally. The cross position of every
// element is its cross offset from the origin of the stack,
// independent of its siblings.
//
// The zero value is an empty horizontal Stack.
type Stack struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Convert, if not nil, converts the offset and cross offset
	// of every element before use. Lengths are not converted.
	Convert OffsetConverter

	elements []StackElement
}

// StackElement is an element of a Stack.
type StackElement struct {
	Child Layout
	// Point holds the offset from the previous element along the
	// stack axis and the offset from the stack origin across it.
	Point    Point
	Flexible Flexible
}

// Flexible is the set of measurements of a stack element that
// are computed by the stack.
type Flexible uint8

const (
	// FlexLength marks the length along the stack axis as flexible.
	FlexLength Flexible = 1 << iota
)

// OffsetConverter converts stack offsets, for example to scale
// offsets designed for one screen size to another. Axis is the
// axis the offset is measured on.
type OffsetConverter interface {
	ConvertOffset(a Axis, v float32) float32
}

// ConvertFunc adapts a function to an OffsetConverter.
type ConvertFunc func(a Axis, v float32) float32

// MetricOffsets is an OffsetConverter that interprets offsets
// as dp and converts them to pixels.
type MetricOffsets unit.Metric

// ScaleOffsets is an OffsetConverter that scales horizontal offsets
// by X and vertical offsets by Y.
type ScaleOffsets f32.Point

type measurement struct {
	point Point
	size  Size
}

func (f ConvertFunc) ConvertOffset(a Axis, v float32) float32 {
	return f(a, v)
}

func (m MetricOffsets) ConvertOffset(_ Axis, v float32) float32 {
	return unit.Metric(m).Dp(unit.Dp(v))
}

func (s ScaleOffsets) ConvertOffset(a Axis, v float32) float32 {
	if a == Horizontal {
		return v * s.X
	}
	return v * s.Y
}

// Contains reports whether all flags of g are set in f.
func (f Flexible) Contains(g Flexible) bool {
	return f&g == g
}

// NewStack returns a stack along a with the children appended in
// order. Children that are StackItems are appended with their
// modifiers, other children with zero offsets and no flexibility.
func NewStack(a Axis, children ...Layout) *Stack {
	s := &Stack{Axis: a}
	s.Add(children...)
	return s
}

// Append adds child to the end of the stack. Offset is the distance
// from the previous element along the stack axis, crossOffset the
// distance from the stack origin across it.
func (s *Stack) Append(child Layout, offset, crossOffset float32, flex Flexible) {
	s.elements = append(s.elements, StackElement{
		Child:    child,
		Point:    AxisPoint(s.Axis, offset, crossOffset),
		Flexible: flex,
	})
}

// AppendLength is like Append, but fixes the length of child along
// the stack axis. The cross length is taken from the stack.
func (s *Stack) AppendLength(child Layout, length, offset, crossOffset float32, flex Flexible) {
	s.Append(Along(child, s.Axis, length), offset, crossOffset, flex)
}

// Elements returns the elements of the stack. The result must not be
// modified.
func (s *Stack) Elements() []StackElement {
	return s.elements
}

// Len returns the number of elements.
func (s *Stack) Len() int {
	return len(s.elements)
}

// Layout the elements in order. The result is at the origin of r,
// with the length covered by the elements and their offsets, and the
// largest cross length of the elements.
func (s *Stack) Layout(r f32.Rectangle) f32.Rectangle {
	ms := s.measure(r)
	parent := Size{Axis: s.Axis, Pt: r.Size()}
	origin := Point{Axis: s.Axis, Pt: r.Min}
	cur := origin
	var maxCross float32
	for i, m := range ms {
		cur = cur.WithOffset(cur.Offset() + m.point.Offset())
		cur = cur.WithCrossOffset(origin.CrossOffset() + m.point.CrossOffset())
		box := AxisSize(s.Axis, m.size.Length(), parent.CrossLength())
		got := s.elements[i].Child.Layout(f32.Rectangle{Min: cur.Pt, Max: cur.Pt.Add(box.Pt)})
		sz := Size{Axis: s.Axis, Pt: got.Size()}
		cur = cur.WithOffset(cur.Offset() + sz.Length())
		if c := sz.CrossLength(); i == 0 || c > maxCross {
			maxCross = c
		}
	}
	if len(ms) == 0 {
		maxCross = parent.CrossLength()
	}
	sz := AxisSize(s.Axis, cur.Offset()-origin.Offset(), maxCross)
	return r.WithSize(sz.Pt)
}

// Measure returns the size the elements would cover in r.
func (s *Stack) Measure(r f32.Rectangle) f32.Point {
	ms := s.measure(r)
	var length, maxCross float32
	for i, m := range ms {
		length += m.point.Offset() + m.size.Length()
		if c := m.size.CrossLength(); i == 0 || c > maxCross {
			maxCross = c
		}
	}
	if len(ms) == 0 {
		maxCross = Size{Axis: s.Axis, Pt: r.Size()}.CrossLength()
	}
	return AxisSize(s.Axis, length, maxCross).Pt
}

// measure computes the converted offsets and the sizes of all
// elements in order. Fixed elements are measured in r; flexible
// elements share the remaining length and measure only their cross
// length.
func (s *Stack) measure(r f32.Rectangle) []measurement {
	parent := Size{Axis: s.Axis, Pt: r.Size()}
	ms := make([]measurement, len(s.elements))
	var staticLength, flexOffsets float32
	var flexCount int
	for i, e := range s.elements {
		p := s.convert(e.Point)
		ms[i].point = p
		if e.Flexible.Contains(FlexLength) {
			flexOffsets += p.Offset()
			flexCount++
			continue
		}
		sz := Size{Axis: s.Axis, Pt: e.Child.Measure(r)}
		ms[i].size = sz
		staticLength += p.Offset() + sz.Length()
	}
	if flexCount == 0 {
		return ms
	}
	flexLength := (parent.Length() - staticLength - flexOffsets) / float32(flexCount)
	for i, e := range s.elements {
		if !e.Flexible.Contains(FlexLength) {
			continue
		}
		est := Size{Axis: s.Axis, Pt: e.Child.Measure(r)}
		ms[i].size = AxisSize(s.Axis, flexLength, est.CrossLength())
	}
	return ms
}

func (s *Stack) convert(p Point) Point {
	if s.Convert == nil {
		return p
	}
	return AxisPoint(p.Axis,
		s.Convert.ConvertOffset(p.Axis, p.Offset()),
		s.Convert.ConvertOffset(p.Axis.Cross(), p.CrossOffset()),
	)
}
