// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/outline/f32"
)

// Sized lays out a child with a resolved size, placed inside the
// parent rectangle according to Alignment.
type Sized struct {
	Child Layout
	// Width and Height are the fixed dimensions. A dimension
	// is only used if its bit is set in Fixed; otherwise the
	// parent dimension is used.
	Width, Height float32
	Fixed         Dims
	// Option overrides the fixed dimensions if not SizeFixed.
	Option    SizeOption
	Alignment Alignment
}

// Dims is a set of dimensions.
type Dims uint8

// SizeOption selects how a Sized resolves its size.
type SizeOption uint8

const (
	FixedWidth Dims = 1 << iota
	FixedHeight
)

const (
	// SizeFixed uses Width and Height, or the parent
	// dimensions where they are not fixed.
	SizeFixed SizeOption = iota
	// UseChildSize uses the size measured by the child.
	UseChildSize
	// SquareByWidth uses a square with the parent width.
	SquareByWidth
	// SquareByHeight uses a square with the parent height.
	SquareByHeight
)

// FixedSize returns a Sized with the width and height fixed.
func FixedSize(child Layout, w, h float32) Sized {
	return Sized{Child: child, Width: w, Height: h, Fixed: FixedWidth | FixedHeight}
}

// Square returns a Sized with both dimensions fixed to side.
func Square(child Layout, side float32) Sized {
	return FixedSize(child, side, side)
}

// Width returns a Sized with the width fixed to w and the height of
// the parent.
func Width(child Layout, w float32) Sized {
	return Sized{Child: child, Width: w, Fixed: FixedWidth}
}

// Height returns a Sized with the height fixed to h and the width of
// the parent.
func Height(child Layout, h float32) Sized {
	return Sized{Child: child, Height: h, Fixed: FixedHeight}
}

// Fill returns a Sized that takes the size of the parent.
func Fill(child Layout) Sized {
	return Sized{Child: child}
}

// WithOption returns a Sized that resolves its size with opt.
func WithOption(child Layout, opt SizeOption) Sized {
	return Sized{Child: child, Option: opt}
}

// Along returns a Sized with the dimension on axis a fixed to
// length and the other dimension taken from the parent. A zero
// length stays fixed.
func Along(child Layout, a Axis, length float32) Sized {
	s := Sized{Child: child}
	if a == Horizontal {
		s.Width, s.Fixed = length, FixedWidth
	} else {
		s.Height, s.Fixed = length, FixedHeight
	}
	return s
}

// SizeOf returns a Sized with the dimensions of sz fixed. Zero
// components are treated as not fixed and resolve to the parent.
func SizeOf(child Layout, sz Size) Sized {
	s := Sized{Child: child, Width: sz.Pt.X, Height: sz.Pt.Y}
	if sz.Pt.X != 0 {
		s.Fixed |= FixedWidth
	}
	if sz.Pt.Y != 0 {
		s.Fixed |= FixedHeight
	}
	return s
}

// Aligned returns s with its alignment set to a.
func (s Sized) Aligned(a Alignment) Sized {
	s.Alignment = a
	return s
}

// Layout the child in the aligned rectangle of the measured size.
func (s Sized) Layout(r f32.Rectangle) f32.Rectangle {
	sz := s.Measure(r)
	return s.Child.Layout(s.Alignment.Rect(sz, r))
}

func (s Sized) Measure(r f32.Rectangle) f32.Point {
	switch s.Option {
	case UseChildSize:
		return s.Child.Measure(r)
	case SquareByWidth:
		return f32.Point{X: r.Dx(), Y: r.Dx()}
	case SquareByHeight:
		return f32.Point{X: r.Dy(), Y: r.Dy()}
	}
	sz := r.Size()
	if s.Fixed&FixedWidth != 0 {
		sz.X = s.Width
	}
	if s.Fixed&FixedHeight != 0 {
		sz.Y = s.Height
	}
	return sz
}

func (o SizeOption) String() string {
	switch o {
	case SizeFixed:
		return "SizeFixed"
	case UseChildSize:
		return "UseChildSize"
	case SquareByWidth:
		return "SquareByWidth"
	case SquareByHeight:
		return "SquareByHeight"
	default:
		panic("unreachable")
	}
}
