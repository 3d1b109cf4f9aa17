// Package templates ships the reference documents new devices start from and
// that existing documents are reconciled against.
package templates

import (
	"embed"
	"fmt"
	"slices"

	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
)

// Logical names of the shipped documents.
const (
	LocalConf = "ngi_local_conf"
	UserInfo  = "ngi_user_info"
)

//go:embed ngi_local_conf.yml ngi_user_info.yml
var files embed.FS

var profiles = map[string]entity.DocumentProfile{
	LocalConf: {
		Name:        LocalConf,
		Policy:      entity.PolicyStrict,
		LegacyFiles: []string{"local_conf.yml", "neon_local_conf.yml", "mycroft.conf"},
	},
	UserInfo: {
		Name:        UserInfo,
		Policy:      entity.PolicyAdditive,
		LegacyFiles: []string{"user_info.yml", "dep_user_info.yml", "neon_user_info.yml"},
	},
}

// Provider implements port.TemplateProvider over the embedded templates.
type Provider struct {
	parsed map[string]*document.Document
}

// New parses the embedded templates. It fails only if a shipped template is
// malformed, which is a build defect.
func New() (*Provider, error) {
	p := &Provider{parsed: make(map[string]*document.Document, len(profiles))}
	for name := range profiles {
		raw, err := files.ReadFile(name + ".yml")
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		doc, err := document.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		p.parsed[name] = doc
	}
	return p, nil
}

// Template returns a copy of the template for name; callers may mutate it.
func (p *Provider) Template(name string) (*document.Document, bool) {
	doc, ok := p.parsed[name]
	if !ok {
		return nil, false
	}
	return doc.Clone(), true
}

// Profile returns the registered profile for name, or a profile with
// PolicyNone and no legacy files.
func (*Provider) Profile(name string) entity.DocumentProfile {
	if prof, ok := profiles[name]; ok {
		prof.LegacyFiles = slices.Clone(prof.LegacyFiles)
		return prof
	}
	return entity.DocumentProfile{Name: name, Policy: entity.PolicyNone}
}

// Names lists the documents that ship a template, sorted.
func (p *Provider) Names() []string {
	names := make([]string, 0, len(p.parsed))
	for name := range p.parsed {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
