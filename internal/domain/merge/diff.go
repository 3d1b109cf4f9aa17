package merge

import (
	"encoding/json"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/devconf/internal/domain/document"
)

// ChangeType classifies a difference between two documents.
type ChangeType int

const (
	// ChangeAdded is a key present only in the newer document.
	ChangeAdded ChangeType = iota
	// ChangeRemoved is a key present only in the older document.
	ChangeRemoved
	// ChangeModified is a key present in both with different values.
	ChangeModified
)

func (t ChangeType) String() string {
	switch t {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "modified"
	default:
		return "unknown"
	}
}

// Change is one entry of a Diff. Key is the dotted path of the entry;
// OldValue and NewValue are display renderings, empty when not applicable.
type Change struct {
	Type     ChangeType
	Key      string
	OldValue string
	NewValue string
}

// Diff lists the keys that differ between before and after. Nested mappings
// are compared key by key; any other value is compared as a whole. The
// result is sorted by change type, then key.
func Diff(before, after *document.Document) []Change {
	var changes []Change
	diffNodes(&changes, nil, before.Root(), after.Root())
	slices.SortStableFunc(changes, func(a, b Change) int {
		if a.Type != b.Type {
			return int(a.Type) - int(b.Type)
		}
		return strings.Compare(a.Key, b.Key)
	})
	return changes
}

func diffNodes(out *[]Change, prefix document.KeyPath, before, after *yaml.Node) {
	before, after = document.Resolve(before), document.Resolve(after)

	for i := 0; i+1 < len(before.Content); i += 2 {
		key := before.Content[i].Value
		path := append(slices.Clone(prefix), key)
		bval := before.Content[i+1]

		j := document.MappingIndex(after, key)
		if j < 0 {
			*out = append(*out, Change{Type: ChangeRemoved, Key: path.String(), OldValue: formatValue(bval)})
			continue
		}
		aval := after.Content[j+1]
		if document.IsMapping(bval) && document.IsMapping(aval) {
			diffNodes(out, path, bval, aval)
			continue
		}
		if !document.NodesEqual(bval, aval) {
			*out = append(*out, Change{
				Type:     ChangeModified,
				Key:      path.String(),
				OldValue: formatValue(bval),
				NewValue: formatValue(aval),
			})
		}
	}

	for i := 0; i+1 < len(after.Content); i += 2 {
		key := after.Content[i].Value
		if document.MappingIndex(before, key) >= 0 {
			continue
		}
		path := append(slices.Clone(prefix), key)
		*out = append(*out, Change{Type: ChangeAdded, Key: path.String(), NewValue: formatValue(after.Content[i+1])})
	}
}

// formatValue renders a node on one line: scalars verbatim, containers as JSON.
func formatValue(n *yaml.Node) string {
	n = document.Resolve(n)
	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == "!!str" {
			return `"` + n.Value + `"`
		}
		return n.Value
	}
	v, err := document.NodeValue(n)
	if err != nil {
		return "<invalid>"
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "<invalid>"
	}
	return string(raw)
}
