package config

import "time"

// Settings represents the configuration of the devconf tooling itself, as
// opposed to the device documents it manages.
type Settings struct {
	// ConfigDir holds the canonical documents.
	ConfigDir string `mapstructure:"config_dir" toml:"config_dir" json:"config_dir" jsonschema:"description=Directory holding the canonical configuration documents"`
	// LegacyDirs are searched, after ConfigDir, for deprecated document files.
	LegacyDirs []string `mapstructure:"legacy_dirs" toml:"legacy_dirs" json:"legacy_dirs" jsonschema:"description=Extra directories searched for deprecated document files"`
	// SignalDir holds named signal files.
	SignalDir string `mapstructure:"signal_dir" toml:"signal_dir" json:"signal_dir" jsonschema:"description=Directory holding named signal files"`
	// LogDir receives service logs and their archives.
	LogDir string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir" jsonschema:"description=Directory receiving log files and log archives"`
	// LogRetentionDays is how long log archives are kept before pruning.
	LogRetentionDays int `mapstructure:"log_retention_days" toml:"log_retention_days" json:"log_retention_days" jsonschema:"minimum=1,description=Days a log archive is kept"`

	Lock    LockSettings    `mapstructure:"lock" toml:"lock" json:"lock"`
	Logging LoggingSettings `mapstructure:"logging" toml:"logging" json:"logging"`
	Export  ExportSettings  `mapstructure:"export" toml:"export" json:"export"`
}

// LockSettings bounds document lock acquisition.
type LockSettings struct {
	// Timeout is the longest a writer waits for a document lock.
	Timeout time.Duration `mapstructure:"timeout" toml:"timeout" json:"timeout" jsonschema:"description=Longest wait for a document lock (nanoseconds or Go duration string)"`
	// StaleAfter is the age past which "devconf lock clean" removes a marker.
	StaleAfter time.Duration `mapstructure:"stale_after" toml:"stale_after" json:"stale_after" jsonschema:"description=Age after which a lock marker is considered abandoned"`
}

// LoggingSettings configures the tool's own logs.
type LoggingSettings struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File enables the rotating log file in LogDir.
	File bool `mapstructure:"file" toml:"file" json:"file"`
}

// ExportSettings configures derived exports.
type ExportSettings struct {
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=json,enum=toml"`
}

// LogRetention returns the archive retention period.
func (s *Settings) LogRetention() time.Duration {
	return time.Duration(s.LogRetentionDays) * 24 * time.Hour
}

// SearchDirs returns ConfigDir followed by the legacy directories, without
// duplicates.
func (s *Settings) SearchDirs() []string {
	dirs := []string{s.ConfigDir}
	for _, d := range s.LegacyDirs {
		dup := false
		for _, seen := range dirs {
			if seen == d {
				dup = true
				break
			}
		}
		if !dup && d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
