// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the views layouts are resolved to. Views
// are the leaves of a layout tree: they record the rectangle they are
// laid out in and provide the text and image content measured by
// layout.Text, layout.Image and layout.Button.
package widget
