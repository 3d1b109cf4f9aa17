package entity

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFile_Paths(t *testing.T) {
	f := NewConfigFile("ngi_local_conf", "/etc/neon")

	assert.Equal(t, filepath.Join("/etc/neon", "ngi_local_conf.yml"), f.Path())
	assert.Equal(t, filepath.Join("/etc/neon", "ngi_local_conf.yml.lock"), f.LockPath())
	assert.Equal(t, filepath.Join("/etc/neon", "ngi_local_conf.yml.tmp"), f.StagingPath())
	assert.Equal(t, filepath.Join("/etc/neon", "ngi_local_conf.json"), f.ExportPath())

	zero := ConfigFile{Name: "x", Dir: "d"}
	assert.Equal(t, filepath.Join("d", "x.yml"), zero.Path())

	long := ConfigFile{Name: "x", Dir: "d", Format: FormatYAML, Ext: ".yaml"}
	assert.Equal(t, filepath.Join("d", "x.yaml"), long.Path())
	assert.Equal(t, filepath.Join("d", "x.yaml.lock"), long.LockPath())
	assert.Equal(t, filepath.Join("d", "x.json"), long.ExportPath())
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("mycroft.conf"))
	assert.Equal(t, FormatJSON, FormatFromPath("export.JSON"))
	assert.Equal(t, FormatTOML, FormatFromPath("settings.toml"))
	assert.Equal(t, FormatYAML, FormatFromPath("user_info.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("no_extension"))
}

func TestIsConcurrencyArtifact(t *testing.T) {
	assert.True(t, IsConcurrencyArtifact("a.yml.lock"))
	assert.True(t, IsConcurrencyArtifact("a.yml.tmp"))
	assert.False(t, IsConcurrencyArtifact("a.yml"))
	assert.False(t, IsConcurrencyArtifact("lockfile.yml"))
}

func TestParseReconcilePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want ReconcilePolicy
		ok   bool
	}{
		{"strict", PolicyStrict, true},
		{" Additive ", PolicyAdditive, true},
		{"none", PolicyNone, true},
		{"", PolicyNone, true},
		{"merge", PolicyNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseReconcilePolicy(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	assert.Equal(t, "strict", PolicyStrict.String())
	assert.Equal(t, "none", ReconcilePolicy(42).String())
}

func TestErrors_Unwrap(t *testing.T) {
	perr := fmt.Errorf("load: %w", &ParseError{Path: "a.yml", Line: 3, Err: errors.New("bad indent")})
	assert.True(t, IsParseError(perr))
	assert.False(t, IsStorageError(perr))
	assert.Contains(t, perr.Error(), "line 3")

	serr := &StorageError{Op: "write", Path: "a.yml", Err: fs.ErrPermission}
	assert.True(t, IsStorageError(serr))
	assert.ErrorIs(t, serr, fs.ErrPermission)
}
