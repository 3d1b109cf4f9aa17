package yamlfile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
)

// Export writes a plain, comment-free copy of doc to path. The encoding is
// chosen by extension: ".toml" for TOML, anything else for indented JSON.
// Exports are derived views and are never read back as the source of truth.
func (*Repository) Export(path string, doc *document.Document) error {
	var (
		data []byte
		err  error
	)
	switch entity.FormatFromPath(path) {
	case entity.FormatTOML:
		data, err = encodeTOML(doc)
	case entity.FormatJSON:
		data, err = doc.MarshalIndentJSON()
	default:
		return &entity.StorageError{Op: "export", Path: path, Err: fmt.Errorf("unsupported export format %q", entity.FormatFromPath(path))}
	}
	if err != nil {
		return &entity.StorageError{Op: "encode", Path: path, Err: err}
	}
	return writeAtomic(path, data)
}

// Import reads a document from a plain file: YAML, commented JSON (".json",
// ".conf") or TOML. Comments in JSON and TOML sources are not kept.
func (r *Repository) Import(path string) (*document.Document, error) {
	format := entity.FormatFromPath(path)
	if format == entity.FormatYAML {
		return r.Load(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &entity.StorageError{Op: "import", Path: path, Err: err}
	}

	var doc *document.Document
	switch format {
	case entity.FormatJSON:
		doc, err = document.ParseJSON(data)
	case entity.FormatTOML:
		doc, err = decodeTOML(data)
	}
	if err != nil {
		return nil, &entity.ParseError{Path: path, Line: errorLine(err), Err: err}
	}
	return doc, nil
}

// encodeTOML renders doc with nested tables indented. Null values have no
// TOML representation and are omitted.
func encodeTOML(doc *document.Document) ([]byte, error) {
	m, err := doc.ToMap()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("failed to encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeTOML(data []byte) (*document.Document, error) {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return document.FromMap(m)
}
