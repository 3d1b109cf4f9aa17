// Package merge implements the structural operations used to keep
// configuration documents in line with their shipped templates.
//
// Merge, ReconcileStrict and ReconcileAdditive are pure: they return a new
// Document and leave their inputs untouched. DeleteKeysRecursive edits the
// Document it is given.
package merge

import (
	"gopkg.in/yaml.v3"

	"github.com/bnema/devconf/internal/domain/document"
)

// Merge deep-merges overlay into a copy of base.
//
// Scalars and sequences from overlay replace the base value wholesale, nested
// mappings merge recursively, and a type mismatch resolves to the overlay
// value. Keys keep base order; keys only present in overlay are appended in
// overlay order.
func Merge(base, overlay *document.Document) *document.Document {
	out := base.Clone()
	mergeInto(out.Root(), overlay.Root())
	return out
}

func mergeInto(dst, src *yaml.Node) {
	src = document.Resolve(src)
	for i := 0; i+1 < len(src.Content); i += 2 {
		key, val := src.Content[i], src.Content[i+1]

		j := document.MappingIndex(dst, key.Value)
		if j < 0 {
			document.AppendPair(dst, document.CloneNode(key), document.CloneNode(val))
			continue
		}

		cur := dst.Content[j+1]
		if document.IsMapping(cur) && document.IsMapping(val) {
			mergeInto(ownMapping(dst, j), val)
			continue
		}
		next := document.CloneNode(val)
		inheritComments(next, cur)
		dst.Content[j+1] = next
	}
}

// ownMapping returns the mapping stored at value index j+1 of m, replacing an
// alias with a private copy so edits do not leak into the anchored node.
func ownMapping(m *yaml.Node, j int) *yaml.Node {
	v := m.Content[j+1]
	if v.Kind == yaml.AliasNode {
		v = document.CloneNode(document.Resolve(v))
		v.Anchor = ""
		m.Content[j+1] = v
	}
	return v
}

func inheritComments(dst, src *yaml.Node) {
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
