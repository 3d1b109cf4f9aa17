package port

import (
	"time"

	"github.com/bnema/devconf/internal/domain/document"
)

// DocumentRepository loads and stores configuration documents.
// Implementations never leave a partially written document at a canonical path.
type DocumentRepository interface {
	// Load parses the document at path, comments included.
	Load(path string) (*document.Document, error)
	// Persist atomically replaces path with doc.
	Persist(path string, doc *document.Document) error
	// Export writes a plain derived copy of doc; the format follows the extension.
	Export(path string, doc *document.Document) error
	// Import reads a document from a legacy plain file (JSON, TOML or YAML).
	Import(path string) (*document.Document, error)
	// Exists reports whether a document file exists at path.
	Exists(path string) bool
	// ModTime returns the last modification time of path.
	ModTime(path string) (time.Time, error)
	// List returns the document paths inside dir, excluding lock and staging artifacts.
	List(dir string) ([]string, error)
}
