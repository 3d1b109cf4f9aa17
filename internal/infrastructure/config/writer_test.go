package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSettingsOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")

	require.NoError(t, WriteSettingsOrdered(validSettings(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	assert.Equal(t, []string{"[export]", "[lock]", "[logging]"}, sections)
	assert.True(t, strings.HasPrefix(string(content), "config_dir = "))
}

func TestWriteSettingsOrdered_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o644))

	assert.Error(t, WriteSettingsOrdered(validSettings(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))
}

func TestWriteSettingsOrdered_RoundTripsThroughManager(t *testing.T) {
	isolateXDG(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	want := validSettings()
	want.Export.Format = "toml"
	require.NoError(t, WriteSettingsOrdered(want, path))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.Equal(t, want, mgr.Get())
}

func TestSortTOMLSections(t *testing.T) {
	input := `config_dir = '/etc/devconf'

[logging]
level = 'info'

[export]
format = 'json'

[lock]
timeout = 10
`
	expected := `config_dir = '/etc/devconf'

[export]
format = 'json'

[lock]
timeout = 10

[logging]
level = 'info'
`
	assert.Equal(t, expected, sortTOMLSections(input))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "devconf settings", schema["title"])
	assert.Contains(t, string(data), "log_retention_days")
	assert.Contains(t, string(data), "stale_after")
}

func TestSchemaProvider_CoversSettings(t *testing.T) {
	isolateXDG(t)
	keys := NewSchemaProvider().GetSchema()

	byKey := make(map[string]string, len(keys))
	for _, k := range keys {
		byKey[k.Key] = k.Default
	}
	for _, key := range []string{"config_dir", "legacy_dirs", "signal_dir", "log_dir", "log_retention_days",
		"lock.timeout", "lock.stale_after", "logging.level", "logging.format", "logging.file", "export.format"} {
		assert.Contains(t, byKey, key)
	}
	assert.Equal(t, "10s", byKey["lock.timeout"])
}
