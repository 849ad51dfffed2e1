// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/outline/f32"
)

// StackItem describes a Stack child together with the modifiers it
// is appended with. Modifier methods return updated copies.
//
// A StackItem is itself a Layout that delegates to its child, so it
// can be passed wherever a Layout is expected.
type StackItem struct {
	child       Layout
	length      float32
	hasLength   bool
	offset      float32
	crossOffset float32
	flexible    Flexible
}

// Item returns the StackItem for l with no modifiers. If l is
// already a StackItem it is returned unchanged.
func Item(l Layout) StackItem {
	if it, ok := l.(StackItem); ok {
		return it
	}
	return StackItem{child: l}
}

// Flexed is short for Item(l).Flexible(FlexLength).
func Flexed(l Layout) StackItem {
	return Item(l).Flexible(FlexLength)
}

// Length fixes the length of the item along the stack axis.
func (it StackItem) Length(v float32) StackItem {
	it.length, it.hasLength = v, true
	return it
}

// Offset sets the distance from the previous element.
func (it StackItem) Offset(v float32) StackItem {
	it.offset = v
	return it
}

// CrossOffset sets the distance from the stack origin across the
// stack axis.
func (it StackItem) CrossOffset(v float32) StackItem {
	it.crossOffset = v
	return it
}

// Flexible sets the flexible measurements of the item.
func (it StackItem) Flexible(f Flexible) StackItem {
	it.flexible = f
	return it
}

// Child returns the layout described by it.
func (it StackItem) Child() Layout {
	return it.child
}

func (it StackItem) Layout(r f32.Rectangle) f32.Rectangle {
	return it.child.Layout(r)
}

func (it StackItem) Measure(r f32.Rectangle) f32.Point {
	return it.child.Measure(r)
}

// Add appends the children in order, with the same geometry as the
// equivalent Append and AppendLength calls.
func (s *Stack) Add(children ...Layout) {
	for _, c := range children {
		it := Item(c)
		if it.hasLength {
			s.AppendLength(it.child, it.length, it.offset, it.crossOffset, it.flexible)
		} else {
			s.Append(it.child, it.offset, it.crossOffset, it.flexible)
		}
	}
}
