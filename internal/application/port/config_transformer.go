package port

import "github.com/bnema/devconf/internal/domain/document"

// ConfigTransformer rewrites legacy document layouts into the current one.
type ConfigTransformer interface {
	// TransformLegacy renames deprecated sections of the document called name
	// in place and returns the sections it renamed, as "old->new".
	TransformLegacy(name string, doc *document.Document) []string
}
