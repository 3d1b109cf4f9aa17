package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
		ok   bool
	}{
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"", zerolog.InfoLevel, false},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(envLogLevel, "trace")
	t.Setenv(envLogFormat, "json")
	cfg := ApplyEnv(DefaultConfig())
	assert.Equal(t, zerolog.TraceLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	t.Setenv(envLogLevel, "bogus")
	t.Setenv(envLogFormat, "xml")
	cfg = ApplyEnv(DefaultConfig())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "store")
	ctx = WithDocument(ctx, "ngi_local_conf", "/tmp/ngi_local_conf.yml")
	ctx = With(ctx, map[string]any{"attempt": 2})
	FromContext(ctx).Info().Msg("written")

	line := buf.String()
	assert.Contains(t, line, `"component":"store"`)
	assert.Contains(t, line, `"name":"ngi_local_conf"`)
	assert.Contains(t, line, `"attempt":2`)
	assert.Contains(t, line, `"message":"written"`)
}

func TestFromContext_NoLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Info().Msg("dropped")
	})
}

func TestNewWithFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.LogDir = dir
	cfg.Component = "cli"

	logger, closer, err := NewWithFile(cfg)
	require.NoError(t, err)
	logger.Info().Str("doc", "ngi_user_info").Msg("loaded")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "cli.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"doc":"ngi_user_info"`)
}

func TestNewWithFile_NoDir(t *testing.T) {
	_, closer, err := NewWithFile(DefaultConfig())
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devconf.log")
	r, err := NewRotatingFile(path, 10, 2)
	require.NoError(t, err)
	defer r.Close()

	for _, line := range []string{"aaaaaaaa\n", "bbbbbbbb\n", "cccccccc\n", "dddddddd\n"} {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{path + ".1", path + ".2"}, r.Backups())
	read := func(p string) string {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		return string(data)
	}
	assert.Equal(t, "dddddddd\n", read(path))
	assert.Equal(t, "cccccccc\n", read(path+".1"))
	assert.Equal(t, "bbbbbbbb\n", read(path+".2"))
	assert.NoFileExists(t, path+".3")
}

func TestRotatingFile_ReopensAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devconf.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))

	r, err := NewRotatingFile(path, 1<<20, 1)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	_, err = r.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "old\n"))
	assert.Contains(t, string(data), "new\n")
}
