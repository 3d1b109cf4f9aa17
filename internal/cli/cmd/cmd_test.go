package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG directory at a fresh home and returns a
// document directory inside it.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(home, "run"))
	t.Setenv("DEVCONF_LOG_LEVEL", "disabled")
	return filepath.Join(home, "conf")
}

// run executes the root command in-process against configDir.
func run(t *testing.T, configDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config-dir", configDir}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		app = nil
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_GetSetShow(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, dir, "get", "ngi_local_conf", "listener.sample_rate")
	require.NoError(t, err)
	assert.Equal(t, "16000\n", out)
	assert.FileExists(t, filepath.Join(dir, "ngi_local_conf.yml"))

	_, err = run(t, dir, "set", "ngi_local_conf", "listener.sample_rate", "8000")
	require.NoError(t, err)

	out, err = run(t, dir, "get", "ngi_local_conf", "listener.sample_rate")
	require.NoError(t, err)
	assert.Equal(t, "8000\n", out)

	out, err = run(t, dir, "show", "ngi_local_conf")
	require.NoError(t, err)
	assert.Contains(t, out, "# Device-local configuration")
	assert.Contains(t, out, "sample_rate: 8000")

	_, err = run(t, dir, "get", "ngi_local_conf", "listener.nothing")
	assert.Error(t, err)
}

func TestCLI_ListAndMigrate(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user_info.yml"), []byte("units:\n  measure: metric\n"), 0o644))

	out, err := run(t, dir, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ngi_local_conf")
	assert.Contains(t, out, "not created")

	out, err = run(t, dir, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "user_info.yml")

	out, err = run(t, dir, "get", "ngi_user_info", "units.measure")
	require.NoError(t, err)
	assert.Equal(t, "metric\n", out)

	out, err = run(t, dir, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")
}

func TestCLI_ReconcileWithTemplateFile(t *testing.T) {
	dir := isolate(t)
	template := filepath.Join(t.TempDir(), "skills.yml")
	require.NoError(t, os.WriteFile(template, []byte("enabled: true\nlimits:\n  max: 3\n"), 0o644))

	_, err := run(t, dir, "import", "skills_conf", template)
	require.NoError(t, err)
	_, err = run(t, dir, "set", "skills_conf", "stray", "1")
	require.NoError(t, err)

	out, err := run(t, dir, "reconcile", "skills_conf", "--template", template, "--policy", "strict", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "stray")

	_, err = run(t, dir, "get", "skills_conf", "stray")
	assert.Error(t, err)

	_, err = run(t, dir, "reconcile", "skills_conf", "--policy", "sideways", "--template", template, "--yes")
	assert.Error(t, err)
}

func TestCLI_Signals(t *testing.T) {
	dir := isolate(t)

	_, err := run(t, dir, "signal", "create", "skill-weather_active")
	require.NoError(t, err)

	out, err := run(t, dir, "signal", "check", "skill-weather_active", "--no-expiry")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, dir, "signal", "clear", "skill-weather")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared 1 signals")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw      string
		asString bool
		want     any
	}{
		{raw: "8000", want: 8000},
		{raw: "true", want: true},
		{raw: "1.5", want: 1.5},
		{raw: "hey neon", want: "hey neon"},
		{raw: "[a, b]", want: []any{"a", "b"}},
		{raw: "", want: ""},
		{raw: "~", want: nil},
		{raw: "8000", asString: true, want: "8000"},
	}
	for _, tt := range tests {
		got, err := parseValue(tt.raw, tt.asString)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
