// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Their
size vary between platforms and displays. Layout geometry is expressed
in pixels; Metric converts dp and sp values to pixels.

Unlike pixel values used for rasterization, converted values are not
rounded: layout rectangles may carry fractional coordinates.

*/
package unit

import (
	"fmt"
)

// Metric converts Values to device-dependent pixels. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float32
	// Sp is like Dp but for font sizes.
	Sp float32
)

// Dp converts v to pixels.
func (c Metric) Dp(v Dp) float32 {
	return nonZero(c.PxPerDp) * float32(v)
}

// Sp converts v to pixels.
func (c Metric) Sp(v Sp) float32 {
	return nonZero(c.PxPerSp) * float32(v)
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
