package merge

import (
	"gopkg.in/yaml.v3"

	"github.com/bnema/devconf/internal/domain/document"
)

// DeleteKeysRecursive removes every key named in names from doc, at any
// depth, including mappings nested in sequences. Containers emptied by the
// removal stay in place as empty mappings. doc is modified and returned.
func DeleteKeysRecursive(doc *document.Document, names []string) *document.Document {
	if len(names) == 0 {
		return doc
	}
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	deleteKeys(doc.Root(), drop)
	return doc
}

func deleteKeys(n *yaml.Node, drop map[string]struct{}) {
	switch n.Kind {
	case yaml.MappingNode:
		kept := n.Content[:0]
		for i := 0; i+1 < len(n.Content); i += 2 {
			if _, ok := drop[n.Content[i].Value]; ok {
				continue
			}
			deleteKeys(n.Content[i+1], drop)
			kept = append(kept, n.Content[i], n.Content[i+1])
		}
		clear(n.Content[len(kept):])
		n.Content = kept
	case yaml.SequenceNode:
		for _, c := range n.Content {
			deleteKeys(c, drop)
		}
	}
}
