// SPDX-License-Identifier: Unlicense OR MIT

// Package decl describes layout trees in documents. A document is a
// tree of nodes, written in YAML or in the compact outline syntax:
//
//	hstack(offset: 10) {
//		avatar = view(length: 44)
//		title = text(text: "John Wick", flex: true, offset: 10)
//	}
//
// Build turns a document into a layout.Layout of widgets.
package decl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is a parsed layout document.
type Document struct {
	Root *Node
}

// Node is a layout node. Kind selects the layout or widget, Attrs
// hold its attributes and Children its child nodes in order.
type Node struct {
	Pos      Position
	Kind     string
	Name     string
	Attrs    map[string]Value
	Children []*Node
}

// Position is a location in a document. Lines and columns start at 1;
// a zero Position is unknown.
type Position struct {
	Line, Column int
}

// ValueKind is the type of a Value.
type ValueKind uint8

// Value is an attribute value.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
	List []Value
	Pos  Position
}

const (
	Number ValueKind = iota
	String
	Bool
	List
)

// Load parses the document at path. Files ending in .yaml or .yml are
// YAML documents, others use the outline syntax.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseOutline(path, f)
	}
}

// NumberValue returns a number Value.
func NumberValue(v float64) Value {
	return Value{Kind: Number, Num: v}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{Kind: String, Str: s}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{Kind: Bool, Bool: b}
}

// ListValue returns a list Value.
func ListValue(vs ...Value) Value {
	return Value{Kind: List, List: vs}
}

func (p Position) String() string {
	if p.Line == 0 {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (k ValueKind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	case List:
		return "list"
	default:
		panic("unreachable")
	}
}

// Walk calls f for n and its descendants, depth first, in document
// order. It stops at the first error.
func (n *Node) Walk(f func(n *Node) error) error {
	if err := f(n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.Walk(f); err != nil {
			return err
		}
	}
	return nil
}
