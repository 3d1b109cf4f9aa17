package docwatch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatch(t *testing.T, path string) (*atomic.Int32, context.CancelFunc) {
	t.Helper()
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- New(20*time.Millisecond).Watch(ctx, path, func() { calls.Add(1) })
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})
	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	return &calls, cancel
}

func TestWatch_AtomicReplaceTriggersOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ngi_local_conf.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	calls, _ := startWatch(t, path)

	staging := path + ".tmp"
	require.NoError(t, os.WriteFile(staging, []byte("a: 2\n"), 0o644))
	require.NoError(t, os.Rename(staging, path))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatch_IgnoresArtifactsAndSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ngi_user_info.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	calls, _ := startWatch(t, path)

	require.NoError(t, os.WriteFile(path+".lock", nil, 0o644))
	require.NoError(t, os.Remove(path+".lock"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("b: 1\n"), 0o644))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := New(0).Watch(context.Background(), filepath.Join(t.TempDir(), "absent", "doc.yml"), func() {})
	assert.Error(t, err)
}

func TestRelevant(t *testing.T) {
	target := "/etc/devconf/doc.yml"
	assert.True(t, relevant(fsnotify.Event{Name: target, Op: fsnotify.Create}, target))
	assert.True(t, relevant(fsnotify.Event{Name: target, Op: fsnotify.Write}, target))
	assert.False(t, relevant(fsnotify.Event{Name: target, Op: fsnotify.Chmod}, target))
	assert.False(t, relevant(fsnotify.Event{Name: target + ".tmp", Op: fsnotify.Write}, target))
	assert.False(t, relevant(fsnotify.Event{Name: "/etc/devconf/other.yml", Op: fsnotify.Write}, target))
}
