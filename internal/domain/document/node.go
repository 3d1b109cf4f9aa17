package document

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// NewMapping returns an empty block-style mapping node.
func NewMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap}
}

// NewKey returns a plain string scalar suitable as a mapping key.
func NewKey(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagStr, Value: key}
}

// IsMapping reports whether n is a mapping node (aliases are followed).
func IsMapping(n *yaml.Node) bool {
	n = resolveAlias(n)
	return n != nil && n.Kind == yaml.MappingNode
}

// MappingIndex returns the index of key's key node in m.Content, or -1.
func MappingIndex(m *yaml.Node, key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return i
		}
	}
	return -1
}

// MappingKeys lists the keys of m in order.
func MappingKeys(m *yaml.Node) []string {
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return keys
}

// CloneNode deep-copies a node tree. Alias targets are copied, not shared.
func CloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Alias != nil {
		c.Alias = CloneNode(n.Alias)
	}
	if len(n.Content) > 0 {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = CloneNode(child)
		}
	}
	return &c
}

// ExpandAliases replaces every alias below n with a private copy of its
// target and clears all anchors, so that no later edit can leave an alias
// pointing at a removed anchor. The alias' own comments are kept on the copy.
func ExpandAliases(n *yaml.Node) {
	if n == nil {
		return
	}
	n.Anchor = ""
	for i, c := range n.Content {
		if c.Kind == yaml.AliasNode {
			cp := CloneNode(resolveAlias(c))
			if cp == nil {
				cp = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
			}
			cp.HeadComment, cp.LineComment, cp.FootComment = c.HeadComment, c.LineComment, c.FootComment
			n.Content[i] = cp
		}
		ExpandAliases(n.Content[i])
	}
}

// ValueNode converts a Go value into a node. Documents and nodes are cloned.
func ValueNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *Document:
		return CloneNode(val.Root()), nil
	case *yaml.Node:
		c := CloneNode(resolveAlias(val))
		ExpandAliases(c)
		return c, nil
	}
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style &^= yaml.FlowStyle
	}
	return &n, nil
}

// NodeValue decodes a node into plain Go values.
func NodeValue(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode line %d: %w", n.Line, err)
	}
	return v, nil
}

// NodesEqual compares two node trees by value: mapping key order, comments
// and presentation style are ignored.
func NodesEqual(a, b *yaml.Node) bool {
	a, b = resolveAlias(a), resolveAlias(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case yaml.MappingNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := 0; i+1 < len(a.Content); i += 2 {
			j := MappingIndex(b, a.Content[i].Value)
			if j < 0 || !NodesEqual(a.Content[i+1], b.Content[j+1]) {
				return false
			}
		}
		return true
	case yaml.SequenceNode, yaml.DocumentNode:
		if len(a.Content) != len(b.Content) {
			return false
		}
		for i := range a.Content {
			if !NodesEqual(a.Content[i], b.Content[i]) {
				return false
			}
		}
		return true
	default:
		return scalarsEqual(a, b)
	}
}

func scalarsEqual(a, b *yaml.Node) bool {
	if a.ShortTag() == b.ShortTag() && a.Value == b.Value {
		return true
	}
	av, aerr := NodeValue(a)
	bv, berr := NodeValue(b)
	if aerr != nil || berr != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}

// Resolve follows alias nodes to their anchored target.
func Resolve(n *yaml.Node) *yaml.Node {
	return resolveAlias(n)
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// AppendPair adds a key/value pair to mapping m. A mapping that was empty is
// switched to block style so "{}" placeholders do not turn into flow output.
func AppendPair(m, key, value *yaml.Node) {
	if len(m.Content) == 0 {
		m.Style &^= yaml.FlowStyle
	}
	m.Content = append(m.Content, key, value)
}

func appendPair(m *yaml.Node, key string, value *yaml.Node) {
	AppendPair(m, NewKey(key), value)
}

// PlainStyle clears flow and quoting styles throughout a tree so that content
// imported from JSON is rendered as block YAML. Strings that would otherwise
// resolve to another type are still quoted by the encoder.
func PlainStyle(n *yaml.Node) {
	if n == nil {
		return
	}
	n.Style &= yaml.TaggedStyle
	for _, c := range n.Content {
		PlainStyle(c)
	}
}
