package merge

import (
	"gopkg.in/yaml.v3"

	"github.com/bnema/devconf/internal/domain/document"
)

// ReconcileStrict returns base reshaped to the key set of template.
//
// At every level the result holds exactly the template's keys, in template
// order. A key present in base keeps its (recursively reconciled) base value
// and comments; a key missing from base takes the template value; keys that
// only exist in base are dropped. When the template holds a mapping and base
// holds anything else, the template mapping wins.
func ReconcileStrict(base, template *document.Document) *document.Document {
	return document.Wrap(strictNode(base.Root(), template.Root()))
}

func strictNode(base, tmpl *yaml.Node) *yaml.Node {
	base, tmpl = document.Resolve(base), document.Resolve(tmpl)

	out := *base
	out.Anchor = ""
	out.Content = make([]*yaml.Node, 0, len(tmpl.Content))
	if len(base.Content) == 0 {
		out.Style = tmpl.Style
	}

	for i := 0; i+1 < len(tmpl.Content); i += 2 {
		tkey, tval := tmpl.Content[i], tmpl.Content[i+1]

		j := document.MappingIndex(base, tkey.Value)
		if j < 0 {
			out.Content = append(out.Content, document.CloneNode(tkey), document.CloneNode(tval))
			continue
		}

		bkey, bval := base.Content[j], base.Content[j+1]
		var val *yaml.Node
		switch {
		case !document.IsMapping(tval):
			val = document.CloneNode(bval)
		case document.IsMapping(bval):
			val = strictNode(bval, tval)
		default:
			val = document.CloneNode(tval)
			inheritComments(val, bval)
		}
		out.Content = append(out.Content, document.CloneNode(bkey), val)
	}
	return &out
}

// ReconcileAdditive returns base extended with every template key it lacks.
//
// Base values are kept unconditionally and base order is preserved; missing
// template keys are appended with their template values, recursively inside
// mappings both sides share. Nothing is ever removed.
func ReconcileAdditive(base, template *document.Document) *document.Document {
	out := base.Clone()
	additiveInto(out.Root(), template.Root())
	return out
}

func additiveInto(dst, tmpl *yaml.Node) {
	tmpl = document.Resolve(tmpl)
	for i := 0; i+1 < len(tmpl.Content); i += 2 {
		tkey, tval := tmpl.Content[i], tmpl.Content[i+1]

		j := document.MappingIndex(dst, tkey.Value)
		if j < 0 {
			document.AppendPair(dst, document.CloneNode(tkey), document.CloneNode(tval))
			continue
		}
		if document.IsMapping(dst.Content[j+1]) && document.IsMapping(tval) {
			additiveInto(ownMapping(dst, j), tval)
		}
	}
}
