package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/devconf/internal/logging"
)

// validateSettings performs comprehensive validation of settings values
func validateSettings(s *Settings) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDirs(s)...)
	validationErrors = append(validationErrors, validateLock(s)...)
	validationErrors = append(validationErrors, validateLogging(s)...)
	validationErrors = append(validationErrors, validateExport(s)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("settings validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDirs(s *Settings) []string {
	var validationErrors []string
	required := map[string]string{
		"config_dir": s.ConfigDir,
		"signal_dir": s.SignalDir,
		"log_dir":    s.LogDir,
	}
	for _, key := range []string{"config_dir", "signal_dir", "log_dir"} {
		dir := required[key]
		switch {
		case dir == "":
			validationErrors = append(validationErrors, key+" must be set")
		case !filepath.IsAbs(dir):
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be an absolute path (got %q)", key, dir))
		}
	}
	for _, dir := range s.LegacyDirs {
		if !filepath.IsAbs(dir) {
			validationErrors = append(validationErrors, fmt.Sprintf("legacy_dirs entries must be absolute paths (got %q)", dir))
		}
	}
	if s.LogRetentionDays < 1 {
		validationErrors = append(validationErrors, "log_retention_days must be at least 1")
	}
	return validationErrors
}

func validateLock(s *Settings) []string {
	var validationErrors []string
	if s.Lock.Timeout <= 0 {
		validationErrors = append(validationErrors, "lock.timeout must be positive")
	}
	if s.Lock.StaleAfter <= 0 {
		validationErrors = append(validationErrors, "lock.stale_after must be positive")
	}
	return validationErrors
}

func validateLogging(s *Settings) []string {
	var validationErrors []string
	if _, ok := logging.ParseLevel(s.Logging.Level); !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a known level", s.Logging.Level))
	}
	switch s.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}

func validateExport(s *Settings) []string {
	switch s.Export.Format {
	case "json", "toml":
		return nil
	}
	return []string{"export.format must be json or toml"}
}
