// SPDX-License-Identifier: Unlicense OR MIT

package decl

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"gioui.org/outline/f32"
	"gioui.org/outline/font"
	"gioui.org/outline/layout"
	"gioui.org/outline/text"
	"gioui.org/outline/unit"
	"gioui.org/outline/widget"
)

// Env is the environment documents are built in.
type Env struct {
	// Shaper measures text. Without a Shaper, text measures as
	// zero.
	Shaper *text.Shaper
	// TextSize is the font size in sp of text without a size
	// attribute. If zero, text.DefaultSize is used.
	TextSize float32
	// Metric converts text sizes from sp to pixels.
	Metric unit.Metric
	// Dir is the directory image paths are relative to.
	Dir string
}

// Tree is a built document.
type Tree struct {
	Root layout.Layout
	// Views are the views of the tree in document order. Views
	// without a name are named after their kind and position, such
	// as "view2".
	Views []*widget.View
}

// ErrUnknownKind is returned by Build for nodes of unknown kinds.
var ErrUnknownKind = errors.New("unknown node kind")

// Kinds returns the sorted node kinds known to Build.
func Kinds() []string {
	kinds := make([]string, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

type builder struct {
	env   Env
	views []*widget.View
	names map[string]bool
	count map[string]int
}

type buildFunc func(b *builder, n *Node, a *attrs) (layout.Layout, error)

var builders map[string]buildFunc

func init() {
	builders = map[string]buildFunc{
		"hstack": func(b *builder, n *Node, a *attrs) (layout.Layout, error) {
			return b.stack(n, a, layout.Horizontal)
		},
		"vstack": func(b *builder, n *Node, a *attrs) (layout.Layout, error) {
			return b.stack(n, a, layout.Vertical)
		},
		"z":      (*builder).z,
		"inset":  (*builder).inset,
		"size":   (*builder).size,
		"view":   (*builder).view,
		"text":   (*builder).text,
		"image":  (*builder).image,
		"button": (*builder).button,
	}
}

// stackItemAttrs are the attributes of nodes inside a stack.
var stackItemAttrs = []string{"length", "offset", "cross", "flex"}

// Build builds the layout tree of doc.
func Build(doc *Document, env Env) (*Tree, error) {
	if doc == nil || doc.Root == nil {
		return nil, errors.New("empty document")
	}
	b := &builder{
		env:   env,
		names: make(map[string]bool),
		count: make(map[string]int),
	}
	root, err := b.node(doc.Root, false)
	if err != nil {
		return nil, err
	}
	return &Tree{Root: root, Views: b.views}, nil
}

// Layout lays out the tree in r.
func (t *Tree) Layout(r f32.Rectangle) f32.Rectangle {
	return t.Root.Layout(r)
}

// Bounds returns the smallest rectangle covering every laid out
// view, or the zero rectangle if no view is laid out.
func (t *Tree) Bounds() f32.Rectangle {
	var (
		b     f32.Rectangle
		found bool
	)
	for _, v := range t.Views {
		if !v.LaidOut() {
			continue
		}
		r := v.Rect().Canon()
		if !found {
			b, found = r, true
			continue
		}
		b = b.Union(r)
	}
	return b
}

// View returns the view named name, or nil.
func (t *Tree) View(name string) *widget.View {
	for _, v := range t.Views {
		if v.Name == name {
			return v
		}
	}
	return nil
}

func (b *builder) node(n *Node, inStack bool) (layout.Layout, error) {
	build, ok := builders[n.Kind]
	if !ok {
		return nil, fmt.Errorf("%v: %w %q", n.Pos, ErrUnknownKind, n.Kind)
	}
	a := &attrs{n: n}
	l, err := build(b, n, a)
	if err != nil {
		return nil, err
	}
	if inStack {
		l, err = b.item(l, a)
		if err != nil {
			return nil, err
		}
	}
	if err := a.unused(); err != nil {
		return nil, err
	}
	return l, nil
}

func (b *builder) item(l layout.Layout, a *attrs) (layout.Layout, error) {
	it := layout.Item(l)
	if v, ok, err := a.number("length"); err != nil {
		return nil, err
	} else if ok {
		it = it.Length(v)
	}
	if v, ok, err := a.number("offset"); err != nil {
		return nil, err
	} else if ok {
		it = it.Offset(v)
	}
	if v, ok, err := a.number("cross"); err != nil {
		return nil, err
	} else if ok {
		it = it.CrossOffset(v)
	}
	flex, err := a.boolean("flex")
	if err != nil {
		return nil, err
	}
	if flex {
		it = it.Flexible(layout.FlexLength)
	}
	return it, nil
}

func (b *builder) children(n *Node, inStack bool) ([]layout.Layout, error) {
	var ls []layout.Layout
	for _, c := range n.Children {
		l, err := b.node(c, inStack)
		if err != nil {
			return nil, err
		}
		ls = append(ls, l)
	}
	return ls, nil
}

func (b *builder) child(n *Node) (layout.Layout, error) {
	if len(n.Children) != 1 {
		return nil, fmt.Errorf("%v: %s needs exactly one child, got %d", n.Pos, n.Kind, len(n.Children))
	}
	return b.node(n.Children[0], false)
}

func (b *builder) leaf(n *Node) error {
	if len(n.Children) > 0 {
		return fmt.Errorf("%v: %s cannot have children", n.Pos, n.Kind)
	}
	return nil
}

// addView names and records v.
func (b *builder) addView(n *Node, v *widget.View, suffix string) error {
	name := n.Name
	if name == "" {
		b.count[n.Kind]++
		name = fmt.Sprintf("%s%d", n.Kind, b.count[n.Kind])
	}
	name += suffix
	if b.names[name] {
		return fmt.Errorf("%v: duplicate name %q", n.Pos, name)
	}
	b.names[name] = true
	v.Name = name
	b.views = append(b.views, v)
	return nil
}

func (b *builder) stack(n *Node, a *attrs, axis layout.Axis) (layout.Layout, error) {
	s := &layout.Stack{Axis: axis}
	if v, ok, err := a.number("dp"); err != nil {
		return nil, err
	} else if ok {
		s.Convert = layout.MetricOffsets(unit.Metric{PxPerDp: v, PxPerSp: v})
	}
	if vs, ok, err := a.numbers("scale"); err != nil {
		return nil, err
	} else if ok {
		if s.Convert != nil {
			return nil, fmt.Errorf("%v: dp and scale are exclusive", n.Pos)
		}
		switch len(vs) {
		case 1:
			s.Convert = layout.ScaleOffsets{X: vs[0], Y: vs[0]}
		case 2:
			s.Convert = layout.ScaleOffsets{X: vs[0], Y: vs[1]}
		default:
			return nil, fmt.Errorf("%v: scale needs 1 or 2 values", n.Pos)
		}
	}
	children, err := b.children(n, true)
	if err != nil {
		return nil, err
	}
	s.Add(children...)
	return s, nil
}

func (b *builder) z(n *Node, a *attrs) (layout.Layout, error) {
	children, err := b.children(n, false)
	if err != nil {
		return nil, err
	}
	return layout.Overlay(children...), nil
}

func (b *builder) inset(n *Node, a *attrs) (layout.Layout, error) {
	in, _, err := a.insets("insets")
	if err != nil {
		return nil, err
	}
	child, err := b.child(n)
	if err != nil {
		return nil, err
	}
	return layout.InsetBy(child, in), nil
}

var sizeOptions = map[string]layout.SizeOption{
	"fixed":         layout.SizeFixed,
	"child":         layout.UseChildSize,
	"square-width":  layout.SquareByWidth,
	"square-height": layout.SquareByHeight,
}

func (b *builder) size(n *Node, a *attrs) (layout.Layout, error) {
	child, err := b.child(n)
	if err != nil {
		return nil, err
	}
	s := layout.Fill(child)
	if v, ok, err := a.number("side"); err != nil {
		return nil, err
	} else if ok {
		s = layout.Square(child, v)
	}
	if v, ok, err := a.number("width"); err != nil {
		return nil, err
	} else if ok {
		s.Width, s.Fixed = v, s.Fixed|layout.FixedWidth
	}
	if v, ok, err := a.number("height"); err != nil {
		return nil, err
	} else if ok {
		s.Height, s.Fixed = v, s.Fixed|layout.FixedHeight
	}
	if name, ok, err := a.str("option"); err != nil {
		return nil, err
	} else if ok {
		opt, known := sizeOptions[name]
		if !known {
			return nil, fmt.Errorf("%v: unknown size option %q", n.Pos, name)
		}
		s.Option = opt
	}
	if s.Alignment, err = a.alignment("align"); err != nil {
		return nil, err
	}
	return s, nil
}

func (b *builder) view(n *Node, a *attrs) (layout.Layout, error) {
	if err := b.leaf(n); err != nil {
		return nil, err
	}
	v := widget.NewView("")
	if vs, ok, err := a.numbers("intrinsic"); err != nil {
		return nil, err
	} else if ok {
		if len(vs) != 2 {
			return nil, fmt.Errorf("%v: intrinsic needs 2 values", n.Pos)
		}
		v.Intrinsic = f32.Pt(vs[0], vs[1])
	}
	if err := b.addView(n, v, ""); err != nil {
		return nil, err
	}
	return v, nil
}

func (b *builder) text(n *Node, a *attrs) (layout.Layout, error) {
	if err := b.leaf(n); err != nil {
		return nil, err
	}
	c, err := b.content(a, "text")
	if err != nil {
		return nil, err
	}
	l := widget.NewLabel("", c)
	if l.Insets, _, err = a.insets("insets"); err != nil {
		return nil, err
	}
	t := layout.Text{Element: l}
	if t.Alignment, err = a.alignment("align"); err != nil {
		return nil, err
	}
	if pw, err := a.boolean("parent-width"); err != nil {
		return nil, err
	} else if pw {
		t.Options |= layout.ParentWidth
	}
	if dm, err := a.boolean("device-metrics"); err != nil {
		return nil, err
	} else if dm {
		t.Options |= layout.DeviceMetrics
	}
	if err := b.addView(n, &l.View, ""); err != nil {
		return nil, err
	}
	return t, nil
}

func (b *builder) image(n *Node, a *attrs) (layout.Layout, error) {
	if err := b.leaf(n); err != nil {
		return nil, err
	}
	img, _, err := b.imageContent(n, a)
	if err != nil {
		return nil, err
	}
	v := widget.NewImageView("", img)
	im := layout.Image{Element: v}
	if im.Alignment, err = a.alignment("align"); err != nil {
		return nil, err
	}
	if err := b.addView(n, &v.View, ""); err != nil {
		return nil, err
	}
	return im, nil
}

func (b *builder) button(n *Node, a *attrs) (layout.Layout, error) {
	if err := b.leaf(n); err != nil {
		return nil, err
	}
	title, err := b.content(a, "title")
	if err != nil {
		return nil, err
	}
	img, hasImage, err := b.imageContent(n, a)
	if err != nil {
		return nil, err
	}
	var iv *widget.ImageView
	if hasImage {
		iv = widget.NewImageView("", img)
	}
	w := widget.NewButton("", title, iv)
	if w.Insets.Title, _, err = a.insets("title-insets"); err != nil {
		return nil, err
	}
	if w.Insets.Image, _, err = a.insets("image-insets"); err != nil {
		return nil, err
	}
	bl := layout.Button{Element: w}
	if bl.Insets, _, err = a.insets("insets"); err != nil {
		return nil, err
	}
	if v, ok, err := a.number("image-side"); err != nil {
		return nil, err
	} else if ok {
		bl.ImageSize = f32.Pt(v, v)
	}
	if h, ok := a.get("height"); ok {
		switch {
		case h.Kind == String && h.Str == "parent":
			bl.Height = layout.HeightParent
		case h.Kind == Number:
			bl.Height, bl.CustomHeight = layout.HeightCustom, float32(h.Num)
		default:
			return nil, fmt.Errorf("%v: height must be a number or parent", h.Pos)
		}
	}
	if bl.Alignment, err = a.alignment("align"); err != nil {
		return nil, err
	}
	if err := b.addView(n, &w.View, ""); err != nil {
		return nil, err
	}
	if iv != nil {
		if err := b.addView(n, &iv.View, ".image"); err != nil {
			return nil, err
		}
	}
	return bl, nil
}

var weights = map[string]font.Weight{
	"thin":       font.Thin,
	"extralight": font.ExtraLight,
	"light":      font.Light,
	"normal":     font.Normal,
	"medium":     font.Medium,
	"semibold":   font.SemiBold,
	"bold":       font.Bold,
	"extrabold":  font.ExtraBold,
	"black":      font.Black,
}

// content returns the text content of the key attribute with the font
// attributes of the node.
func (b *builder) content(a *attrs, key string) (text.Content, error) {
	c := text.Content{Shaper: b.env.Shaper}
	var err error
	if c.Text, _, err = a.str(key); err != nil {
		return c, err
	}
	size := b.env.TextSize
	if v, ok, err := a.number("size"); err != nil {
		return c, err
	} else if ok {
		size = v
	}
	if size == 0 {
		size = text.DefaultSize
	}
	c.Size = b.env.Metric.Sp(unit.Sp(size))
	if w, ok, err := a.str("weight"); err != nil {
		return c, err
	} else if ok {
		weight, known := weights[w]
		if !known {
			return c, fmt.Errorf("%v: unknown weight %q", a.n.Pos, w)
		}
		c.Font.Weight = weight
	}
	italic, err := a.boolean("italic")
	if err != nil {
		return c, err
	}
	if italic {
		c.Font.Style = font.Italic
	}
	if v, ok, err := a.str("variant"); err != nil {
		return c, err
	} else if ok {
		c.Font.Variant = font.Variant(v)
	}
	return c, nil
}

// imageContent returns the content of the image or icon attribute.
func (b *builder) imageContent(n *Node, a *attrs) (layout.ImageContent, bool, error) {
	path, hasPath, err := a.str("image")
	if err != nil {
		return nil, false, err
	}
	icon, hasIcon, err := a.str("icon")
	if err != nil {
		return nil, false, err
	}
	switch {
	case hasPath && hasIcon:
		return nil, false, fmt.Errorf("%v: image and icon are exclusive", n.Pos)
	case hasPath:
		if !filepath.IsAbs(path) {
			path = filepath.Join(b.env.Dir, path)
		}
		bm, err := widget.LoadBitmap(path)
		if err != nil {
			return nil, false, fmt.Errorf("%v: %w", n.Pos, err)
		}
		if s, ok, err := a.number("scale"); err != nil {
			return nil, false, err
		} else if ok {
			bm.Scale = s
		}
		return bm, true, nil
	case hasIcon:
		side, ok, err := a.number("side")
		if err != nil {
			return nil, false, err
		}
		if !ok {
			side = 24
		}
		ic, err := widget.MaterialIcon(icon, side)
		if err != nil {
			return nil, false, fmt.Errorf("%v: %w", n.Pos, err)
		}
		return ic, true, nil
	}
	return nil, false, nil
}
