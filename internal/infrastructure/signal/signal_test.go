package signal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devconf/internal/application/port"
)

func newTestRegistry(t *testing.T) (*Registry, *time.Time) {
	t.Helper()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(filepath.Join(t.TempDir(), "ipc", "signal"))
	r.now = func() time.Time { return now }
	return r, &now
}

func TestRegistry_SingleUse(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRegistry(t)

	require.NoError(t, r.Create(ctx, "CORE_isSpeaking"))

	ok, err := r.Check(ctx, "CORE_isSpeaking", port.SignalSingleUse)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Check(ctx, "CORE_isSpeaking", port.SignalSingleUse)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_NoExpiry(t *testing.T) {
	ctx := context.Background()
	r, now := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "CORE_skipWakeWord"))

	*now = now.Add(365 * 24 * time.Hour)
	for range 3 {
		ok, err := r.Check(ctx, "CORE_skipWakeWord", port.SignalNoExpiry)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRegistry_AnyNegativeLifetimeNeverExpires(t *testing.T) {
	ctx := context.Background()
	r, now := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "CORE_neonInUse"))

	*now = now.Add(48 * time.Hour)
	for _, ttl := range []time.Duration{-time.Second, -time.Hour} {
		ok, err := r.Check(ctx, "CORE_neonInUse", ttl)
		require.NoError(t, err)
		assert.True(t, ok, "ttl %s", ttl)
	}
}

func TestRegistry_TTL(t *testing.T) {
	ctx := context.Background()
	r, now := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "nick_SKILL_waiting"))

	*now = now.Add(5 * time.Second)
	ok, err := r.Check(ctx, "nick_SKILL_waiting", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "signal is live inside its lifetime")

	*now = now.Add(10 * time.Second)
	ok, err = r.Check(ctx, "nick_SKILL_waiting", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "signal expired")

	_, err = os.Stat(filepath.Join(r.Dir(), "nick_SKILL_waiting"))
	assert.True(t, os.IsNotExist(err), "expired signal is removed")
}

func TestRegistry_CreateRestartsLifetime(t *testing.T) {
	ctx := context.Background()
	r, now := newTestRegistry(t)
	require.NoError(t, r.Create(ctx, "sig"))

	*now = now.Add(8 * time.Second)
	require.NoError(t, r.Create(ctx, "sig"))
	*now = now.Add(8 * time.Second)

	ok, err := r.Check(ctx, "sig", 10*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistry_CheckMissing(t *testing.T) {
	r, _ := newTestRegistry(t)
	ok, err := r.Check(context.Background(), "never", port.SignalNoExpiry)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_InvalidNames(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRegistry(t)
	for _, name := range []string{"", ".", "..", "a/b", `a\b`} {
		assert.ErrorIs(t, r.Create(ctx, name), ErrInvalidName, "name %q", name)
		_, err := r.Check(ctx, name, port.SignalNoExpiry)
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
	_, err := r.Clear(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestRegistry_Clear(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRegistry(t)
	for _, name := range []string{"weather_listening", "nick_weather_listening", "CORE_isSpeaking", "weatherly_x", "xweather_"} {
		require.NoError(t, r.Create(ctx, name))
	}

	removed, err := r.Clear(ctx, "weather")
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	entries, err := os.ReadDir(r.Dir())
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{"CORE_isSpeaking", "xweather_"}, left)
}

func TestRegistry_ClearMissingDir(t *testing.T) {
	r, _ := newTestRegistry(t)
	removed, err := r.Clear(context.Background(), "any")
	require.NoError(t, err)
	assert.Zero(t, removed)
}
