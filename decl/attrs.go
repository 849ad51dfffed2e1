// SPDX-License-Identifier: Unlicense OR MIT

package decl

import (
	"fmt"
	"sort"

	"gioui.org/outline/layout"
)

// attrs reads the attributes of a node and tracks which were read.
type attrs struct {
	n    *Node
	used map[string]bool
}

func (a *attrs) get(key string) (Value, bool) {
	v, ok := a.n.Attrs[key]
	if ok {
		if a.used == nil {
			a.used = make(map[string]bool)
		}
		a.used[key] = true
	}
	return v, ok
}

// unused returns an error for the first attribute not read.
func (a *attrs) unused() error {
	var keys []string
	for k := range a.n.Attrs {
		if !a.used[k] {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	return fmt.Errorf("%v: unknown attribute %q for %s", a.n.Pos, keys[0], a.n.Kind)
}

func (a *attrs) number(key string) (float32, bool, error) {
	v, ok := a.get(key)
	if !ok {
		return 0, false, nil
	}
	if v.Kind != Number {
		return 0, false, typeError(key, v, Number)
	}
	return float32(v.Num), true, nil
}

// numbers reads a number or a list of numbers.
func (a *attrs) numbers(key string) ([]float32, bool, error) {
	v, ok := a.get(key)
	if !ok {
		return nil, false, nil
	}
	if v.Kind == Number {
		return []float32{float32(v.Num)}, true, nil
	}
	if v.Kind != List {
		return nil, false, typeError(key, v, List)
	}
	vs := make([]float32, len(v.List))
	for i, e := range v.List {
		if e.Kind != Number {
			return nil, false, typeError(key, e, Number)
		}
		vs[i] = float32(e.Num)
	}
	return vs, true, nil
}

func (a *attrs) str(key string) (string, bool, error) {
	v, ok := a.get(key)
	if !ok {
		return "", false, nil
	}
	if v.Kind != String {
		return "", false, typeError(key, v, String)
	}
	return v.Str, true, nil
}

// strs reads a string or a list of strings.
func (a *attrs) strs(key string) ([]string, error) {
	v, ok := a.get(key)
	if !ok {
		return nil, nil
	}
	if v.Kind == String {
		return []string{v.Str}, nil
	}
	if v.Kind != List {
		return nil, typeError(key, v, List)
	}
	ss := make([]string, len(v.List))
	for i, e := range v.List {
		if e.Kind != String {
			return nil, typeError(key, e, String)
		}
		ss[i] = e.Str
	}
	return ss, nil
}

func (a *attrs) boolean(key string) (bool, error) {
	v, ok := a.get(key)
	if !ok {
		return false, nil
	}
	if v.Kind != Bool {
		return false, typeError(key, v, Bool)
	}
	return v.Bool, nil
}

// insets reads 1 value for all edges, 2 values for the horizontal and
// vertical edges, or 4 values for the top, left, bottom and right
// edges.
func (a *attrs) insets(key string) (layout.Insets, bool, error) {
	vs, ok, err := a.numbers(key)
	if err != nil || !ok {
		return layout.Insets{}, false, err
	}
	switch len(vs) {
	case 1:
		return layout.UniformInsets(vs[0]), true, nil
	case 2:
		return layout.XYInsets(vs[0], vs[1]), true, nil
	case 4:
		return layout.Insets{Top: vs[0], Left: vs[1], Bottom: vs[2], Right: vs[3]}, true, nil
	default:
		v, _ := a.get(key)
		return layout.Insets{}, false, fmt.Errorf("%v: %s needs 1, 2 or 4 values, got %d", v.Pos, key, len(vs))
	}
}

var alignments = map[string]layout.Alignment{
	"left":    layout.Left,
	"right":   layout.Right,
	"hcenter": layout.HCenter,
	"top":     layout.Top,
	"bottom":  layout.Bottom,
	"vcenter": layout.VCenter,
	"center":  layout.Center,
}

func (a *attrs) alignment(key string) (layout.Alignment, error) {
	names, err := a.strs(key)
	if err != nil {
		return 0, err
	}
	var al layout.Alignment
	for _, n := range names {
		f, ok := alignments[n]
		if !ok {
			v, _ := a.get(key)
			return 0, fmt.Errorf("%v: unknown alignment %q", v.Pos, n)
		}
		al |= f
	}
	return al, nil
}

func typeError(key string, v Value, want ValueKind) error {
	return fmt.Errorf("%v: %s must be a %v, got %v", v.Pos, key, want, v.Kind)
}
