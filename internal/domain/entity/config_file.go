// Package entity defines the domain types shared across devconf.
package entity

import (
	"path/filepath"
	"strings"
)

// File name suffixes for the artifacts that live next to a canonical document.
const (
	LockSuffix    = ".lock"
	StagingSuffix = ".tmp"
)

// Format identifies the on-disk encoding of a configuration document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Extension returns the file extension used for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatTOML:
		return ".toml"
	default:
		return ".yml"
	}
}

// YAMLExtensions lists the extensions accepted for canonical documents,
// preferred first.
var YAMLExtensions = []string{".yml", ".yaml"}

// FormatFromPath infers the format from a file extension.
// Unknown extensions are treated as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".conf":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ReconcilePolicy selects how a document is aligned with its template.
type ReconcilePolicy int

const (
	// PolicyNone leaves the document as loaded.
	PolicyNone ReconcilePolicy = iota
	// PolicyStrict makes the key set at every level equal to the template's.
	PolicyStrict
	// PolicyAdditive adds template-only keys and never removes anything.
	PolicyAdditive
)

func (p ReconcilePolicy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyAdditive:
		return "additive"
	default:
		return "none"
	}
}

// ParseReconcilePolicy converts a policy name into a ReconcilePolicy.
func ParseReconcilePolicy(s string) (ReconcilePolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return PolicyStrict, true
	case "additive":
		return PolicyAdditive, true
	case "none", "":
		return PolicyNone, true
	}
	return PolicyNone, false
}

// ConfigFile identifies one logical configuration document on disk.
type ConfigFile struct {
	Name   string
	Dir    string
	Format Format
	// Ext overrides the format's default extension, e.g. ".yaml" for a
	// document that already exists under that name.
	Ext string
}

// NewConfigFile returns a YAML ConfigFile for name inside dir.
func NewConfigFile(name, dir string) ConfigFile {
	return ConfigFile{Name: name, Dir: dir, Format: FormatYAML}
}

// Path returns the canonical path of the document.
func (c ConfigFile) Path() string {
	if c.Ext != "" {
		return filepath.Join(c.Dir, c.Name+c.Ext)
	}
	format := c.Format
	if format == "" {
		format = FormatYAML
	}
	return filepath.Join(c.Dir, c.Name+format.Extension())
}

// LockPath returns the lock marker location for the document.
func (c ConfigFile) LockPath() string {
	return LockPathFor(c.Path())
}

// StagingPath returns the staging file location for the document.
func (c ConfigFile) StagingPath() string {
	return StagingPathFor(c.Path())
}

// ExportPath returns the default location of the plain JSON export.
func (c ConfigFile) ExportPath() string {
	return filepath.Join(c.Dir, c.Name+FormatJSON.Extension())
}

// LockPathFor derives the lock marker path for any canonical path.
func LockPathFor(path string) string {
	return path + LockSuffix
}

// StagingPathFor derives the staging file path for any canonical path.
func StagingPathFor(path string) string {
	return path + StagingSuffix
}

// IsConcurrencyArtifact reports whether name is a lock marker or staging file.
func IsConcurrencyArtifact(name string) bool {
	return strings.HasSuffix(name, LockSuffix) || strings.HasSuffix(name, StagingSuffix)
}

// DocumentProfile describes how one logical document is created and kept
// current across software versions.
type DocumentProfile struct {
	// Name is the logical document name, also the canonical file stem.
	Name string
	// Policy selects how the document is reconciled with its template.
	Policy ReconcilePolicy
	// LegacyFiles lists deprecated file names holding this document's data,
	// most preferred first.
	LegacyFiles []string
}
