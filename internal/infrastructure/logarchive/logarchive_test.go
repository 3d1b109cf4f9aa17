package logarchive

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestArchive_DefaultName(t *testing.T) {
	logDir := t.TempDir()
	writeFile(t, filepath.Join(logDir, "skills.log"), "skills\n")
	writeFile(t, filepath.Join(logDir, "voice.log"), "voice\n")
	writeFile(t, filepath.Join(logDir, "notes.txt"), "keep\n")

	a := New()
	a.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local) }

	dir, err := a.Archive(context.Background(), logDir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(logDir, "logs--2024-05-06--07-08-09"), dir)

	content, err := os.ReadFile(filepath.Join(dir, "skills.log"))
	require.NoError(t, err)
	assert.Equal(t, "skills\n", string(content))
	assert.FileExists(t, filepath.Join(dir, "voice.log"))
	assert.NoFileExists(t, filepath.Join(logDir, "skills.log"))
	assert.FileExists(t, filepath.Join(logDir, "notes.txt"))
}

func TestArchive_NamedAndRepeated(t *testing.T) {
	logDir := t.TempDir()
	a := New()

	writeFile(t, filepath.Join(logDir, "a.log"), "1")
	_, err := a.Archive(context.Background(), logDir, "before-update")
	require.NoError(t, err)

	writeFile(t, filepath.Join(logDir, "b.log"), "2")
	dir, err := a.Archive(context.Background(), logDir, "before-update")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "a.log"))
	assert.FileExists(t, filepath.Join(dir, "b.log"))
}

func TestArchive_MissingDir(t *testing.T) {
	dir, err := New().Archive(context.Background(), filepath.Join(t.TempDir(), "absent"), "")
	require.NoError(t, err)
	assert.Empty(t, dir)
}

func TestArchive_RejectsNestedName(t *testing.T) {
	_, err := New().Archive(context.Background(), t.TempDir(), "../escape")
	assert.Error(t, err)
}

func TestPrune(t *testing.T) {
	logDir := t.TempDir()
	now := time.Now()

	old := filepath.Join(logDir, "logs--old")
	older := filepath.Join(logDir, "logs--older")
	fresh := filepath.Join(logDir, "logs--fresh")
	for _, dir := range []string{old, older, fresh} {
		writeFile(t, filepath.Join(dir, "x.log"), "x")
	}
	require.NoError(t, os.Chtimes(old, now, now.Add(-50*24*time.Hour)))
	require.NoError(t, os.Chtimes(older, now, now.Add(-60*24*time.Hour)))
	require.NoError(t, os.Chtimes(fresh, now, now.Add(-time.Hour)))
	writeFile(t, filepath.Join(logDir, "current.log"), "live")
	require.NoError(t, os.Chtimes(filepath.Join(logDir, "current.log"), now, now.Add(-90*24*time.Hour)))

	removed, err := New().Prune(context.Background(), logDir, 6*7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{older, old}, removed)

	assert.NoDirExists(t, old)
	assert.NoDirExists(t, older)
	assert.DirExists(t, fresh)
	assert.FileExists(t, filepath.Join(logDir, "current.log"))
}

func TestPrune_MissingDirAndBadRetention(t *testing.T) {
	removed, err := New().Prune(context.Background(), filepath.Join(t.TempDir(), "absent"), time.Hour)
	require.NoError(t, err)
	assert.Empty(t, removed)

	_, err = New().Prune(context.Background(), t.TempDir(), 0)
	assert.Error(t, err)
}
