// Package document models configuration documents as ordered YAML node trees.
//
// A Document keeps the parsed yaml.v3 node graph rather than a decoded map so
// that key order and operator comments survive a load/persist cycle.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	tagMap = "!!map"
	tagSeq = "!!seq"
	tagStr = "!!str"
)

// KeyPath addresses a node inside a Document, outermost key first.
type KeyPath []string

// ParseKeyPath splits a dotted path ("listener.sample_rate") into a KeyPath.
func ParseKeyPath(s string) KeyPath {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return KeyPath(strings.Split(s, "."))
}

func (p KeyPath) String() string {
	return strings.Join(p, ".")
}

// DuplicateKeyError reports a key that appears twice in one mapping.
type DuplicateKeyError struct {
	Key  string
	Line int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q at line %d", e.Key, e.Line)
}

// ErrNotMapping is returned when a document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Document is an ordered mapping of string keys to scalars, sequences and
// nested mappings.
type Document struct {
	root *yaml.Node
}

// New returns an empty Document.
func New() *Document {
	return &Document{root: &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{NewMapping()}}}
}

// Wrap builds a Document around a mapping node. The node is used in place;
// aliases inside it are expanded.
func Wrap(mapping *yaml.Node) *Document {
	if mapping == nil {
		return New()
	}
	mapping.Anchor = ""
	ExpandAliases(mapping)
	return &Document{root: &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{mapping}}}
}

// Parse decodes YAML text into a Document. Empty input yields an empty Document.
// Anchors and aliases are expanded into independent copies.
func Parse(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return New(), nil
	}
	if root.Kind != yaml.DocumentNode {
		return nil, ErrNotMapping
	}

	top := root.Content[0]
	switch {
	case top.Kind == yaml.MappingNode:
	case top.Kind == yaml.ScalarNode && top.ShortTag() == "!!null":
		m := NewMapping()
		m.HeadComment, m.LineComment, m.FootComment = top.HeadComment, top.LineComment, top.FootComment
		root.Content[0] = m
	default:
		return nil, ErrNotMapping
	}

	if err := checkUniqueKeys(root.Content[0]); err != nil {
		return nil, err
	}
	ExpandAliases(&root)
	return &Document{root: &root}, nil
}

// MustParse is Parse for literals known to be valid; it panics on error.
func MustParse(s string) *Document {
	d, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return d
}

// FromMap builds a Document from a Go map. Keys are emitted in sorted order.
func FromMap(m map[string]any) (*Document, error) {
	if len(m) == 0 {
		return New(), nil
	}
	var n yaml.Node
	if err := n.Encode(m); err != nil {
		return nil, fmt.Errorf("encode map: %w", err)
	}
	if n.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}
	return Wrap(&n), nil
}

// Marshal renders the Document as YAML, comments included.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Root returns the top-level mapping node. Callers that mutate it mutate the Document.
func (d *Document) Root() *yaml.Node {
	return d.root.Content[0]
}

// Clone returns a deep copy, comments included.
func (d *Document) Clone() *Document {
	return &Document{root: CloneNode(d.root)}
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	return len(d.Root().Content) / 2
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return MappingKeys(d.Root())
}

// Lookup returns the node at path.
func (d *Document) Lookup(path KeyPath) (*yaml.Node, bool) {
	cur := d.Root()
	for _, key := range path {
		cur = resolveAlias(cur)
		if cur == nil || cur.Kind != yaml.MappingNode {
			return nil, false
		}
		i := MappingIndex(cur, key)
		if i < 0 {
			return nil, false
		}
		cur = cur.Content[i+1]
	}
	return resolveAlias(cur), true
}

// Get returns the decoded value at path. Mappings decode to map[string]any.
func (d *Document) Get(path KeyPath) (any, bool) {
	n, ok := d.Lookup(path)
	if !ok {
		return nil, false
	}
	v, err := NodeValue(n)
	if err != nil {
		return n.Value, true
	}
	return v, true
}

// Set stores value at path, creating intermediate mappings as needed.
// An intermediate node that is not a mapping is replaced by one.
func (d *Document) Set(path KeyPath, value any) error {
	if len(path) == 0 {
		return errors.New("empty key path")
	}
	node, err := ValueNode(value)
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}

	cur := d.Root()
	for _, key := range path[:len(path)-1] {
		i := MappingIndex(cur, key)
		if i < 0 {
			child := NewMapping()
			appendPair(cur, key, child)
			cur = child
			continue
		}
		switch child := cur.Content[i+1]; {
		case child.Kind == yaml.AliasNode && IsMapping(child):
			own := CloneNode(resolveAlias(child))
			own.Anchor = ""
			ExpandAliases(own)
			keepComments(own, child)
			cur.Content[i+1] = own
		case child.Kind != yaml.MappingNode:
			mapping := NewMapping()
			keepComments(mapping, child)
			cur.Content[i+1] = mapping
		}
		cur = cur.Content[i+1]
	}

	last := path[len(path)-1]
	if i := MappingIndex(cur, last); i >= 0 {
		keepComments(node, cur.Content[i+1])
		cur.Content[i+1] = node
		return nil
	}
	appendPair(cur, last, node)
	return nil
}

// Delete removes the key at path and reports whether it existed.
func (d *Document) Delete(path KeyPath) bool {
	if len(path) == 0 {
		return false
	}
	parent, ok := d.Lookup(path[:len(path)-1])
	if !ok || parent.Kind != yaml.MappingNode {
		return false
	}
	i := MappingIndex(parent, path[len(path)-1])
	if i < 0 {
		return false
	}
	parent.Content = append(parent.Content[:i], parent.Content[i+2:]...)
	return true
}

// ToMap decodes the Document into plain Go values.
func (d *Document) ToMap() (map[string]any, error) {
	out := make(map[string]any)
	if err := d.Root().Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// Equal reports whether two Documents hold the same keys and values,
// ignoring key order, comments and scalar styles.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return NodesEqual(d.Root(), other.Root())
}

// String renders the Document as YAML, for debugging and test failure output.
func (d *Document) String() string {
	b, err := d.Marshal()
	if err != nil {
		return fmt.Sprintf("<invalid document: %v>", err)
	}
	return string(b)
}

func checkUniqueKeys(n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		seen := make(map[string]struct{}, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if _, dup := seen[k.Value]; dup {
				return &DuplicateKeyError{Key: k.Value, Line: k.Line}
			}
			seen[k.Value] = struct{}{}
			if err := checkUniqueKeys(n.Content[i+1]); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for _, c := range n.Content {
			if err := checkUniqueKeys(c); err != nil {
				return err
			}
		}
	}
	return nil
}

func keepComments(dst, src *yaml.Node) {
	if dst.HeadComment == "" {
		dst.HeadComment = src.HeadComment
	}
	if dst.LineComment == "" {
		dst.LineComment = src.LineComment
	}
	if dst.FootComment == "" {
		dst.FootComment = src.FootComment
	}
}
