// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "testing"

func TestXYWH(t *testing.T) {
	r := XYWH(5, 10, 34, -4)
	if got, want := r, Rect(5, 10, 39, 6); got != want {
		t.Errorf("XYWH: got %v, want %v", got, want)
	}
	if got, want := r.Size(), Pt(34, -4); got != want {
		t.Errorf("Size: got %v, want %v", got, want)
	}
	if !r.Empty() {
		t.Errorf("%v with negative height is not empty", r)
	}
	if got, want := r.Canon(), Rect(5, 6, 39, 10); got != want {
		t.Errorf("Canon: got %v, want %v", got, want)
	}
}

func TestPointMin(t *testing.T) {
	if got, want := Pt(375, 21).Min(Pt(100, 44)), Pt(100, 21); got != want {
		t.Errorf("Min: got %v, want %v", got, want)
	}
}

func TestRectangleString(t *testing.T) {
	if got, want := XYWH(0, 0, 143.5, 44).String(), "(0,0)-(143.5,44)"; got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestWithSize(t *testing.T) {
	r := XYWH(22, 13, 331, 139).WithSize(Pt(331, 44))
	if want := XYWH(22, 13, 331, 44); r != want {
		t.Errorf("WithSize: got %v, want %v", r, want)
	}
}
