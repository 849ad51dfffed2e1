// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gioui.org/outline/unit"
)

func TestMetric(t *testing.T) {
	m := unit.Metric{
		PxPerDp: 2,
		PxPerSp: 3,
	}
	if got, want := m.Dp(5), float32(10); got != want {
		t.Errorf("Dp(5) = %v, want %v", got, want)
	}
	if got, want := m.Sp(5), float32(15); got != want {
		t.Errorf("Sp(5) = %v, want %v", got, want)
	}
}

func TestMetric_ZeroValue(t *testing.T) {
	var m unit.Metric
	if got := m.Dp(10.5); got != 10.5 {
		t.Errorf("zero Metric: Dp(10.5) = %v, want 10.5", got)
	}
	if got := m.Sp(12); got != 12 {
		t.Errorf("zero Metric: Sp(12) = %v, want 12", got)
	}
}

func TestString(t *testing.T) {
	if got, want := unit.Dp(1.5).String(), "1.5dp"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := unit.Sp(12).String(), "12sp"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
