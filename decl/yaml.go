// SPDX-License-Identifier: Unlicense OR MIT

package decl

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses a YAML document. Every node is a mapping with a
// kind key, an optional name and children, and attributes as the
// remaining keys:
//
//	kind: hstack
//	children:
//	  - kind: view
//	    name: avatar
//	    length: 44
func ParseYAML(r io.Reader) (*Document, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	n, err := yamlNode(root)
	if err != nil {
		return nil, err
	}
	return &Document{Root: n}, nil
}

func yamlNode(y *yaml.Node) (*Node, error) {
	pos := yamlPos(y)
	if y.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%v: expected a mapping", pos)
	}
	n := &Node{Pos: pos, Attrs: make(map[string]Value)}
	for i := 0; i+1 < len(y.Content); i += 2 {
		k, v := y.Content[i], y.Content[i+1]
		switch key := k.Value; key {
		case "kind":
			n.Kind = v.Value
		case "name":
			n.Name = v.Value
		case "children":
			if v.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%v: children must be a list", yamlPos(v))
			}
			for _, c := range v.Content {
				child, err := yamlNode(c)
				if err != nil {
					return nil, err
				}
				n.Children = append(n.Children, child)
			}
		default:
			if _, dup := n.Attrs[key]; dup {
				return nil, fmt.Errorf("%v: duplicate attribute %q", yamlPos(k), key)
			}
			val, err := yamlValue(v)
			if err != nil {
				return nil, err
			}
			n.Attrs[key] = val
		}
	}
	if n.Kind == "" {
		return nil, fmt.Errorf("%v: node without kind", pos)
	}
	return n, nil
}

func yamlValue(y *yaml.Node) (Value, error) {
	pos := yamlPos(y)
	switch y.Kind {
	case yaml.ScalarNode:
		var v Value
		switch y.Tag {
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(y.Value, 64)
			if err != nil {
				var i int64
				if err := y.Decode(&i); err != nil {
					return Value{}, fmt.Errorf("%v: %w", pos, err)
				}
				f = float64(i)
			}
			v = NumberValue(f)
		case "!!bool":
			var b bool
			if err := y.Decode(&b); err != nil {
				return Value{}, fmt.Errorf("%v: %w", pos, err)
			}
			v = BoolValue(b)
		case "!!null":
			return Value{}, fmt.Errorf("%v: missing value", pos)
		default:
			v = StringValue(y.Value)
		}
		v.Pos = pos
		return v, nil
	case yaml.SequenceNode:
		l := ListValue()
		l.Pos = pos
		for _, c := range y.Content {
			v, err := yamlValue(c)
			if err != nil {
				return Value{}, err
			}
			l.List = append(l.List, v)
		}
		return l, nil
	case yaml.AliasNode:
		return yamlValue(y.Alias)
	default:
		return Value{}, fmt.Errorf("%v: unsupported attribute value", pos)
	}
}

func yamlPos(y *yaml.Node) Position {
	return Position{Line: y.Line, Column: y.Column}
}
