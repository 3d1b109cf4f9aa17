package config

import (
	"slices"

	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/infrastructure/templates"
)

// keyMove relocates the value at From to To.
type keyMove struct {
	From document.KeyPath
	To   document.KeyPath
}

// legacyMoves lists, per logical document, the layout changes made since the
// deprecated file formats were written.
var legacyMoves = map[string][]keyMove{
	templates.LocalConf: {
		{From: document.KeyPath{"logging"}, To: document.KeyPath{"logs"}},
		{From: document.KeyPath{"log_level"}, To: document.KeyPath{"logs", "level"}},
		{From: document.KeyPath{"ipc_path"}, To: document.KeyPath{"dirVars", "ipcDir"}},
	},
	templates.UserInfo: {
		{From: document.KeyPath{"unit"}, To: document.KeyPath{"units"}},
		{From: document.KeyPath{"brand"}, To: document.KeyPath{"brands"}},
	},
}

// LegacyConfigTransformer implements port.ConfigTransformer.
// It moves sections of documents imported from deprecated files to the
// locations the current templates use.
type LegacyConfigTransformer struct {
	moves map[string][]keyMove
}

// NewLegacyConfigTransformer creates a transformer with the built-in moves.
func NewLegacyConfigTransformer() *LegacyConfigTransformer {
	return &LegacyConfigTransformer{moves: legacyMoves}
}

// TransformLegacy applies the moves registered for name. A move is skipped
// when its source is absent or its destination already exists, so the
// current layout always wins. Renames within one mapping keep the key's
// position and comments. It returns the applied moves as "old->new".
func (t *LegacyConfigTransformer) TransformLegacy(name string, doc *document.Document) []string {
	var applied []string
	for _, mv := range t.moves[name] {
		if _, exists := doc.Lookup(mv.To); exists {
			continue
		}
		node, ok := doc.Lookup(mv.From)
		if !ok {
			continue
		}

		if sameParent(mv.From, mv.To) {
			renameInPlace(doc, mv.From, mv.To[len(mv.To)-1])
		} else {
			if err := doc.Set(mv.To, node); err != nil {
				continue
			}
			doc.Delete(mv.From)
		}
		applied = append(applied, mv.From.String()+"->"+mv.To.String())
	}
	return applied
}

func sameParent(a, b document.KeyPath) bool {
	return len(a) == len(b) && slices.Equal(a[:len(a)-1], b[:len(b)-1])
}

func renameInPlace(doc *document.Document, from document.KeyPath, newKey string) {
	parent, ok := doc.Lookup(from[:len(from)-1])
	if !ok {
		return
	}
	if i := document.MappingIndex(parent, from[len(from)-1]); i >= 0 {
		parent.Content[i].Value = newKey
	}
}
