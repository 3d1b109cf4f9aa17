package config

import (
	"fmt"
	"strings"

	"github.com/bnema/devconf/internal/domain/entity"
)

// Section names for grouping settings keys.
const (
	SectionPaths   = "Paths"
	SectionLock    = "Lock"
	SectionLogging = "Logging"
	SectionExport  = "Export"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all settings keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultSettings()

	keys := make([]entity.ConfigKeyInfo, 0, 12)
	keys = append(keys, p.getPathKeys(defaults)...)
	keys = append(keys, p.getLockKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getExportKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getPathKeys(defaults *Settings) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "config_dir",
			Type:        "string",
			Default:     defaults.ConfigDir,
			Description: "Directory holding the canonical configuration documents",
			Section:     SectionPaths,
		},
		{
			Key:         "legacy_dirs",
			Type:        "[]string",
			Default:     "[" + strings.Join(defaults.LegacyDirs, ", ") + "]",
			Description: "Extra directories searched for deprecated document files",
			Section:     SectionPaths,
		},
		{
			Key:         "signal_dir",
			Type:        "string",
			Default:     defaults.SignalDir,
			Description: "Directory holding named signal files",
			Section:     SectionPaths,
		},
		{
			Key:         "log_dir",
			Type:        "string",
			Default:     defaults.LogDir,
			Description: "Directory receiving log files and log archives",
			Section:     SectionPaths,
		},
		{
			Key:         "log_retention_days",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.LogRetentionDays),
			Description: "Days a log archive is kept before pruning",
			Range:       "1+",
			Section:     SectionPaths,
		},
	}
}

func (*SchemaProvider) getLockKeys(defaults *Settings) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "lock.timeout",
			Type:        "duration",
			Default:     defaults.Lock.Timeout.String(),
			Description: "Longest a writer waits for a document lock",
			Section:     SectionLock,
		},
		{
			Key:         "lock.stale_after",
			Type:        "duration",
			Default:     defaults.Lock.StaleAfter.String(),
			Description: "Age after which a lock marker counts as abandoned",
			Section:     SectionLock,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Settings) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Minimum log level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "bool",
			Default:     fmt.Sprintf("%t", defaults.Logging.File),
			Description: "Also write a rotating log file in log_dir",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getExportKeys(defaults *Settings) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "export.format",
			Type:        "string",
			Default:     defaults.Export.Format,
			Description: "Default format of derived document exports",
			Values:      []string{"json", "toml"},
			Section:     SectionExport,
		},
	}
}
