package config

import (
	"path/filepath"
	"time"
)

const (
	defaultLockTimeout      = 10 * time.Second
	defaultLockStaleAfter   = 5 * time.Minute
	defaultLogRetentionDays = 42 // six weeks
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
	defaultExportFormat     = "json"

	filePerm = 0o644
	dirPerm  = 0o755
)

// DefaultSettings returns the default settings for the current user.
// Directories that cannot be resolved are left empty and rejected by validation.
func DefaultSettings() *Settings {
	s := &Settings{
		LogRetentionDays: defaultLogRetentionDays,
		Lock: LockSettings{
			Timeout:    defaultLockTimeout,
			StaleAfter: defaultLockStaleAfter,
		},
		Logging: LoggingSettings{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Export: ExportSettings{
			Format: defaultExportFormat,
		},
	}

	if dirs, err := GetXDGDirs(); err == nil {
		s.ConfigDir = dirs.ConfigHome
		s.LegacyDirs = []string{dirs.DataHome}
	}
	if dir, err := GetLogDir(); err == nil {
		s.LogDir = dir
	}
	if dir, err := GetSignalDir(); err == nil {
		s.SignalDir = dir
	}
	return s
}

func (m *Manager) setDefaults() {
	defaults := DefaultSettings()

	m.viper.SetDefault("config_dir", defaults.ConfigDir)
	m.viper.SetDefault("legacy_dirs", defaults.LegacyDirs)
	m.viper.SetDefault("signal_dir", defaults.SignalDir)
	m.viper.SetDefault("log_dir", defaults.LogDir)
	m.viper.SetDefault("log_retention_days", defaults.LogRetentionDays)

	m.viper.SetDefault("lock.timeout", defaults.Lock.Timeout)
	m.viper.SetDefault("lock.stale_after", defaults.Lock.StaleAfter)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)

	m.viper.SetDefault("export.format", defaults.Export.Format)
}

// expandHome resolves a leading "~" against home.
func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
