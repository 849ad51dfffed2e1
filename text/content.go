// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"gioui.org/outline/f32"
	"gioui.org/outline/font"
	"gioui.org/outline/layout"
)

// Content is a text measured by a Shaper. A Content without a
// Shaper, or one whose font cannot be loaded, has zero size.
type Content struct {
	Shaper *Shaper
	Font   font.Font
	// Size in pixels per em.
	Size float32
	Text string
}

var _ layout.TextContent = Content{}

// MeasureText implements layout.TextContent. Lines are wrapped to the
// width of max; the height of max is not used.
func (c Content) MeasureText(max f32.Point, deviceMetrics bool) f32.Point {
	if c.Shaper == nil {
		return f32.Point{}
	}
	sz, err := c.Shaper.Measure(Parameters{
		Font:          c.Font,
		Size:          c.Size,
		MaxWidth:      max.X,
		DeviceMetrics: deviceMetrics,
	}, c.Text)
	if err != nil {
		return f32.Point{}
	}
	return sz
}
