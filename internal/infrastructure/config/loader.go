package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles loading of the tool's settings.
type Manager struct {
	settings *Settings
	viper    *viper.Viper
	mu       sync.RWMutex
}

// NewManager creates a new settings manager. An empty settingsFile selects
// the default XDG location.
func NewManager(settingsFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName(settingsName)
		v.AddConfigPath(configDir)
	}

	// Environment variables override the file, e.g. DEVCONF_LOCK_TIMEOUT=30s.
	v.SetEnvPrefix("DEVCONF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The log variables predate the settings layout.
	if err := v.BindEnv("logging.level", "DEVCONF_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DEVCONF_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DEVCONF_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DEVCONF_LOG_FORMAT: %w", err)
	}

	return &Manager{viper: v}, nil
}

// Load reads defaults, the optional settings file and the environment.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readSettingsFile(); err != nil {
		return err
	}

	settings := &Settings{}
	if err := m.viper.Unmarshal(settings); err != nil {
		return fmt.Errorf(
			"failed to parse settings file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	normalizeSettings(settings)

	if err := validateSettings(settings); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	m.settings = settings
	return nil
}

func (m *Manager) readSettingsFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	// A missing settings file is normal: defaults and environment apply.
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read settings file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.viper.ConfigFileUsed(), err)
}

func normalizeSettings(s *Settings) {
	home, err := os.UserHomeDir()
	if err == nil {
		s.ConfigDir = expandHome(s.ConfigDir, home)
		s.SignalDir = expandHome(s.SignalDir, home)
		s.LogDir = expandHome(s.LogDir, home)
		for i, d := range s.LegacyDirs {
			s.LegacyDirs[i] = expandHome(d, home)
		}
	}
	s.Logging.Level = strings.ToLower(strings.TrimSpace(s.Logging.Level))
	s.Logging.Format = strings.ToLower(strings.TrimSpace(s.Logging.Format))
	s.Export.Format = strings.ToLower(strings.TrimSpace(s.Export.Format))
}

// Get returns a copy of the loaded settings.
func (m *Manager) Get() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return DefaultSettings()
	}
	settingsCopy := *m.settings
	settingsCopy.LegacyDirs = append([]string(nil), m.settings.LegacyDirs...)
	return &settingsCopy
}

// SettingsFileUsed returns the path of the settings file that was read, or
// an empty string when none was found.
func (m *Manager) SettingsFileUsed() string {
	return m.viper.ConfigFileUsed()
}
