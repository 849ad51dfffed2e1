// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"sort"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"gioui.org/outline/f32"
)

// Icon is an IconVG image displayed Side units wide. Its height
// follows the aspect ratio of the icon view box.
type Icon struct {
	Side float32
	// aspect is the view box height divided by its width.
	aspect float32
}

var materialIcons = map[string][]byte{
	"add":             icons.ContentAdd,
	"arrow-back":      icons.NavigationArrowBack,
	"autorenew":       icons.ActionAutorenew,
	"check-box":       icons.ToggleCheckBox,
	"check-box-blank": icons.ToggleCheckBoxOutlineBlank,
	"home":            icons.ActionHome,
	"menu":            icons.NavigationMenu,
	"person":          icons.SocialPerson,
	"radio-checked":   icons.ToggleRadioButtonChecked,
	"radio-unchecked": icons.ToggleRadioButtonUnchecked,
	"search":          icons.ActionSearch,
	"send":            icons.ContentSend,
	"settings":        icons.ActionSettingsInputComponent,
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte, side float32) (*Icon, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	dx, dy := m.ViewBox.AspectRatio()
	aspect := float32(1)
	if dx != 0 {
		aspect = dy / dx
	}
	return &Icon{Side: side, aspect: aspect}, nil
}

// MaterialIcon returns the named Material Design icon. See
// MaterialIconNames for the known names.
func MaterialIcon(name string, side float32) (*Icon, error) {
	data, ok := materialIcons[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	return NewIcon(data, side)
}

// MaterialIconNames returns the sorted names of the Material Design
// icons.
func MaterialIconNames() []string {
	names := make([]string, 0, len(materialIcons))
	for n := range materialIcons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IntrinsicSize implements layout.ImageContent.
func (ic *Icon) IntrinsicSize() f32.Point {
	return f32.Point{X: ic.Side, Y: ic.Side * ic.aspect}
}
