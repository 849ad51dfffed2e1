// SPDX-License-Identifier: Unlicense OR MIT

package decl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	outlineLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.-]*`},
		{Name: "Punct", Pattern: `[][(){},:=;]`},
	})

	outlineParser = participle.MustBuild[outlineNode](
		participle.Lexer(outlineLexer),
		participle.Elide("Whitespace", "LineComment"),
		participle.UseLookahead(2),
	)
)

// outlineNode is a node in the outline syntax:
//
//	[name =] kind [(key: value, ...)] [{ children }]
type outlineNode struct {
	Pos      lexer.Position
	Name     string         `parser:"( @Ident '=' )?"`
	Kind     string         `parser:"@Ident"`
	Attrs    []*outlineAttr `parser:"( '(' ( @@ ( ',' @@ )* ','? )? ')' )?"`
	Children []*outlineNode `parser:"( '{' ( @@ ';'? )* '}' )?"`
}

type outlineAttr struct {
	Pos   lexer.Position
	Key   string        `parser:"@Ident ':'"`
	Value *outlineValue `parser:"@@"`
}

type outlineValue struct {
	Pos    lexer.Position
	Number *float64       `parser:"  @Number"`
	String *stringLiteral `parser:"| @String"`
	Ident  *string        `parser:"| @Ident"`
	List   *outlineList   `parser:"| @@"`
}

type outlineList struct {
	Values []*outlineValue `parser:"'[' ( @@ ( ',' @@ )* ','? )? ']'"`
}

// stringLiteral unquotes Go-style strings on capture.
type stringLiteral string

// Capture implements participle.Capture.
func (s *stringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = stringLiteral(val)
	return nil
}

// ParseOutline parses a document in the outline syntax. Filename is
// used in error positions only.
func ParseOutline(filename string, r io.Reader) (*Document, error) {
	on, err := outlineParser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parsing outline: %w", err)
	}
	n, err := on.node()
	if err != nil {
		return nil, err
	}
	return &Document{Root: n}, nil
}

// ParseOutlineString is like ParseOutline for a string.
func ParseOutlineString(src string) (*Document, error) {
	on, err := outlineParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("parsing outline: %w", err)
	}
	n, err := on.node()
	if err != nil {
		return nil, err
	}
	return &Document{Root: n}, nil
}

func (o *outlineNode) node() (*Node, error) {
	n := &Node{
		Pos:   outlinePos(o.Pos),
		Kind:  o.Kind,
		Name:  o.Name,
		Attrs: make(map[string]Value, len(o.Attrs)),
	}
	for _, a := range o.Attrs {
		if _, dup := n.Attrs[a.Key]; dup {
			return nil, fmt.Errorf("%v: duplicate attribute %q", outlinePos(a.Pos), a.Key)
		}
		n.Attrs[a.Key] = a.Value.value()
	}
	for _, c := range o.Children {
		child, err := c.node()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func (o *outlineValue) value() Value {
	var v Value
	switch {
	case o.Number != nil:
		v = NumberValue(*o.Number)
	case o.String != nil:
		v = StringValue(string(*o.String))
	case o.Ident != nil && *o.Ident == "true":
		v = BoolValue(true)
	case o.Ident != nil && *o.Ident == "false":
		v = BoolValue(false)
	case o.Ident != nil:
		v = StringValue(*o.Ident)
	default:
		v = ListValue()
		if o.List != nil {
			for _, e := range o.List.Values {
				v.List = append(v.List, e.value())
			}
		}
	}
	v.Pos = outlinePos(o.Pos)
	return v
}

func outlinePos(p lexer.Position) Position {
	return Position{Line: p.Line, Column: p.Column}
}
