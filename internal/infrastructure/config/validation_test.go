package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		ConfigDir:        "/etc/devconf",
		LegacyDirs:       []string{"/var/lib/devconf"},
		SignalDir:        "/run/devconf/ipc/signal",
		LogDir:           "/var/log/devconf",
		LogRetentionDays: 42,
		Lock:             LockSettings{Timeout: time.Second, StaleAfter: time.Minute},
		Logging:          LoggingSettings{Level: "info", Format: "console"},
		Export:           ExportSettings{Format: "json"},
	}
}

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{name: "valid", mutate: func(*Settings) {}},
		{name: "relative config dir", mutate: func(s *Settings) { s.ConfigDir = "conf" }, wantErr: "config_dir"},
		{name: "missing signal dir", mutate: func(s *Settings) { s.SignalDir = "" }, wantErr: "signal_dir"},
		{name: "relative legacy dir", mutate: func(s *Settings) { s.LegacyDirs = []string{"old"} }, wantErr: "legacy_dirs"},
		{name: "zero retention", mutate: func(s *Settings) { s.LogRetentionDays = 0 }, wantErr: "log_retention_days"},
		{name: "zero lock timeout", mutate: func(s *Settings) { s.Lock.Timeout = 0 }, wantErr: "lock.timeout"},
		{name: "negative stale age", mutate: func(s *Settings) { s.Lock.StaleAfter = -time.Second }, wantErr: "lock.stale_after"},
		{name: "unknown level", mutate: func(s *Settings) { s.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "unknown log format", mutate: func(s *Settings) { s.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "unknown export format", mutate: func(s *Settings) { s.Export.Format = "ini" }, wantErr: "export.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(s)

			err := validateSettings(s)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateSettings_ReportsEveryProblem(t *testing.T) {
	s := validSettings()
	s.Lock.Timeout = 0
	s.Export.Format = "ini"

	err := validateSettings(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lock.timeout")
	assert.Contains(t, err.Error(), "export.format")
}
