// SPDX-License-Identifier: Unlicense OR MIT

package decl

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gioui.org/outline/f32"
	"gioui.org/outline/font/gofont"
	"gioui.org/outline/text"
	"gioui.org/outline/unit"
)

const rowOutline = `
// A row with a flexible title.
hstack {
	avatar = view(length: 44, cross: 10)
	title = view(flex: true)
	action = view(length: 44)
}
`

const rowYAML = `
kind: hstack
children:
  - kind: view
    name: avatar
    length: 44
    cross: 10
  - kind: view
    name: title
    flex: true
  - kind: view
    name: action
    length: 44
`

const cardOutline = `
vstack(scale: [1, 2]) {
	inset(insets: [22, 0]) {
		hstack {
			size(side: 44) { avatar = view }
			inset(insets: [4, 0, 0, 0], flex: true, offset: 10) {
				vstack {
					name = text(text: "John Wick", size: 14, weight: bold)
					handle = text(text: "@jwck", size: 12, italic: true, align: right, parent-width: true)
				}
			}
			ok = button(title: "Follow", icon: "person", side: 18, image-insets: [0, 0, 0, 4], height: 44, offset: 10)
		}
	}
	z(offset: 6.5) {
		background = view
		size(option: child, align: center) { badge = view(intrinsic: [20, 20]) }
	}
}
`

const cardYAML = `
kind: vstack
scale: [1, 2]
children:
  - kind: inset
    insets: [22, 0]
    children:
      - kind: hstack
        children:
          - kind: size
            side: 44
            children:
              - {kind: view, name: avatar}
          - kind: inset
            insets: [4, 0, 0, 0]
            flex: true
            offset: 10
            children:
              - kind: vstack
                children:
                  - {kind: text, name: name, text: John Wick, size: 14, weight: bold}
                  - kind: text
                    name: handle
                    text: "@jwck"
                    size: 12
                    italic: true
                    align: right
                    parent-width: true
          - kind: button
            name: ok
            title: Follow
            icon: person
            side: 18
            image-insets: [0, 0, 0, 4]
            height: 44
            offset: 10
  - kind: z
    offset: 6.5
    children:
      - {kind: view, name: background}
      - kind: size
        option: child
        align: center
        children:
          - {kind: view, name: badge, intrinsic: [20, 20]}
`

type rect struct {
	Name string
	Rect f32.Rectangle
}

func buildOutline(t *testing.T, src string, env Env) *Tree {
	t.Helper()
	doc, err := ParseOutlineString(src)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := Build(doc, env)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func buildYAML(t *testing.T, src string, env Env) *Tree {
	t.Helper()
	doc, err := ParseYAML(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	tree, err := Build(doc, env)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func layoutRects(tree *Tree, r f32.Rectangle) []rect {
	tree.Layout(r)
	var rs []rect
	for _, v := range tree.Views {
		rs = append(rs, rect{Name: v.Name, Rect: v.Rect()})
	}
	return rs
}

func TestRow(t *testing.T) {
	tree := buildOutline(t, rowOutline, Env{})

	got := layoutRects(tree, f32.XYWH(0, 0, 375, 44))

	want := []rect{
		{"avatar", f32.XYWH(0, 10, 44, 44)},
		{"title", f32.XYWH(44, 0, 287, 44)},
		{"action", f32.XYWH(331, 0, 44, 44)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLMatchesOutline(t *testing.T) {
	env := Env{Shaper: text.NewShaper(gofont.Collection())}
	tests := []struct {
		name         string
		outline, yml string
		parent       f32.Rectangle
	}{
		{"Row", rowOutline, rowYAML, f32.XYWH(0, 0, 375, 44)},
		{"Card", cardOutline, cardYAML, f32.XYWH(0, 20, 375, 200)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := layoutRects(buildOutline(t, test.outline, env), test.parent)
			b := layoutRects(buildYAML(t, test.yml, env), test.parent)
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("rects mismatch (-outline +yaml):\n%s", diff)
			}
		})
	}
}

func TestCard(t *testing.T) {
	env := Env{Shaper: text.NewShaper(gofont.Collection())}
	tree := buildOutline(t, cardOutline, env)
	parent := f32.XYWH(0, 20, 375, 200)

	tree.Layout(parent)

	var names []string
	for _, v := range tree.Views {
		names = append(names, v.Name)
	}
	wantNames := []string{"avatar", "name", "handle", "ok", "ok.image", "background", "badge"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("views mismatch (-want +got):\n%s", diff)
	}
	if got, want := tree.View("avatar").Rect(), f32.XYWH(22, 20, 44, 44); got != want {
		t.Errorf("avatar: got %v, want %v", got, want)
	}
	// The button image is 18 wide, inset by 4 on the right.
	follow, err := env.Shaper.Measure(text.Parameters{}, "Follow")
	if err != nil {
		t.Fatal(err)
	}
	ok := tree.View("ok").Rect()
	if got, want := ok, f32.XYWH(375-22-22-follow.X, 20, 22+follow.X, 44); got != want {
		t.Errorf("button: got %v, want %v", got, want)
	}
	// The z stack starts below the row, with the offset scaled by 2.
	bg := tree.View("background").Rect()
	if got, want := bg.Min.Y, float32(20+44+13); got != want {
		t.Errorf("background top: got %v, want %v", got, want)
	}
	badge := tree.View("badge").Rect()
	if got, want := badge.Size(), f32.Pt(20, 20); got != want {
		t.Errorf("badge size: got %v, want %v", got, want)
	}
	name, handle := tree.View("name").Rect(), tree.View("handle").Rect()
	if handle.Min.Y != name.Max.Y {
		t.Errorf("handle at %v does not follow name at %v", handle, name)
	}
	if got, want := handle.Max.X, ok.Min.X-10; got != want {
		t.Errorf("handle ends at %v, want %v", got, want)
	}
}

func TestButtonParentHeight(t *testing.T) {
	tree := buildOutline(t, `hstack { b = button(title: "a", height: parent) }`, Env{})

	tree.Layout(f32.XYWH(0, 0, 100, 50))

	if got, want := tree.View("b").Rect(), f32.XYWH(0, 0, 0, 50); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestButtonImageSide(t *testing.T) {
	tree := buildOutline(t, `hstack { b = button(icon: "home", image-side: 40, insets: [0, 10, 0, 0]) }`, Env{})

	tree.Layout(f32.XYWH(0, 0, 375, 100))

	if got, want := tree.View("b").Rect(), f32.XYWH(0, 0, 50, 40); got != want {
		t.Errorf("button: got %v, want %v", got, want)
	}
	// The image takes the side reserved by the button, after its
	// left inset.
	if got, want := tree.View("b.image").Rect(), f32.XYWH(10, 0, 40, 40); got != want {
		t.Errorf("image: got %v, want %v", got, want)
	}
}

func TestBounds(t *testing.T) {
	tree := buildOutline(t, rowOutline, Env{})
	if got := tree.Bounds(); got != (f32.Rectangle{}) {
		t.Errorf("bounds before layout: got %v, want zero", got)
	}

	tree.Layout(f32.XYWH(0, 0, 375, 44))

	// The avatar hangs 10 below the row.
	if got, want := tree.Bounds(), f32.Rect(0, 0, 375, 54); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTextSizeMetric(t *testing.T) {
	shaper := text.NewShaper(gofont.Collection())
	const src = `vstack { t = text(text: "Hello", size: 10) }`
	scaled := buildOutline(t, src, Env{Shaper: shaper, Metric: unit.Metric{PxPerSp: 2}})
	plain := buildOutline(t, `vstack { t = text(text: "Hello", size: 20) }`, Env{Shaper: shaper})

	r := f32.XYWH(0, 0, 375, 200)
	scaled.Layout(r)
	plain.Layout(r)

	if got, want := scaled.View("t").Rect(), plain.View("t").Rect(); got != want {
		t.Errorf("10sp at 2px/sp: got %v, want %v", got, want)
	}
}

func TestUnnamedViews(t *testing.T) {
	tree := buildOutline(t, `vstack { view view z { view } }`, Env{})
	var names []string
	for _, v := range tree.Views {
		names = append(names, v.Name)
	}
	if diff := cmp.Diff([]string{"view1", "view2", "view3"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDpOffsets(t *testing.T) {
	tree := buildOutline(t, `vstack(dp: 2) { a = view(offset: 5, length: 10, cross: 1) }`, Env{})

	tree.Layout(f32.XYWH(0, 0, 100, 100))

	if got, want := tree.View("a").Rect(), f32.XYWH(2, 10, 100, 10); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"UnknownAttribute", `hstack { view(width: 3) }`, `unknown attribute "width" for view`},
		{"ItemOutsideStack", `z { view(length: 3) }`, `unknown attribute "length"`},
		{"InsetChildren", `inset(insets: 3) { view view }`, "needs exactly one child"},
		{"InsetValues", `inset(insets: [1, 2, 3]) { view }`, "needs 1, 2 or 4 values"},
		{"Type", `hstack { view(offset: "a") }`, "offset must be a number, got string"},
		{"Alignment", `size(align: middle) { view }`, `unknown alignment "middle"`},
		{"Option", `size(option: stretch) { view }`, `unknown size option "stretch"`},
		{"DuplicateName", `z { a = view a = view }`, `duplicate name "a"`},
		{"LeafChildren", `view { view }`, "view cannot have children"},
		{"Icon", `image(icon: "no-such-icon")`, `unknown icon "no-such-icon"`},
		{"ButtonHeight", `button(title: "a", height: true)`, "height must be a number or parent"},
		{"Exclusive", `hstack(dp: 1, scale: 2) { view }`, "exclusive"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			doc, err := ParseOutlineString(test.src)
			if err != nil {
				t.Fatal(err)
			}
			_, err = Build(doc, Env{})
			if err == nil || !strings.Contains(err.Error(), test.want) {
				t.Errorf("got error %v, want %q", err, test.want)
			}
		})
	}
}

func TestUnknownKind(t *testing.T) {
	doc, err := ParseYAML(strings.NewReader("kind: hstack\nchildren:\n  - kind: grid\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Build(doc, Env{})
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("got %v, want %v", err, ErrUnknownKind)
	}
	if !strings.HasPrefix(err.Error(), "3:5:") {
		t.Errorf("error without position: %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := ParseOutlineString(`hstack {`); err == nil {
		t.Error("outline: expected error")
	}
	for _, src := range []string{"", "- kind: view\n", "name: a\n", "kind: view\nchildren: 3\n", "kind: view\nx: ~\n"} {
		if _, err := ParseYAML(strings.NewReader(src)); err == nil {
			t.Errorf("yaml %q: expected error", src)
		}
	}
}

func TestParseValues(t *testing.T) {
	doc, err := ParseOutlineString(`view(a: 1.5, b: "x", c: true, d: [1, two], e: [], f: -3)`)
	if err != nil {
		t.Fatal(err)
	}
	got := doc.Root.Attrs
	want := map[string]Value{
		"a": NumberValue(1.5),
		"b": StringValue("x"),
		"c": BoolValue(true),
		"d": ListValue(NumberValue(1), StringValue("two")),
		"e": ListValue(),
		"f": NumberValue(-3),
	}
	ignorePos := cmp.Comparer(func(a, b Position) bool { return true })
	if diff := cmp.Diff(want, got, ignorePos); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestKinds(t *testing.T) {
	want := []string{"button", "hstack", "image", "inset", "size", "text", "view", "vstack", "z"}
	if diff := cmp.Diff(want, Kinds()); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}
