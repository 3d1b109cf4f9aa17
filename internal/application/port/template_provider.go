package port

import (
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
)

// TemplateProvider supplies the shipped reference documents.
type TemplateProvider interface {
	// Template returns a fresh copy of the template for name.
	Template(name string) (*document.Document, bool)
	// Profile describes how the document called name is created and reconciled.
	// Names without a registered profile get PolicyNone and no legacy files.
	Profile(name string) entity.DocumentProfile
	// Names lists the logical names that ship a template.
	Names() []string
}
