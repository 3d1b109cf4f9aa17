package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devconf/internal/application/usecase"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/infrastructure/templates"
)

func TestDerivedConfig_CLIConfig(t *testing.T) {
	ctx := context.Background()
	st := newStack(t, t.TempDir())
	local := st.open(t, templates.LocalConf)
	uc := usecase.NewDerivedConfigUseCase(local, st.open(t, templates.UserInfo))

	cfg, err := uc.CLIConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.CLIConfig{
		LogDir:           "~/.local/state/neon",
		CoreVersion:      "21.5.0",
		WakeWordsEnabled: true,
	}, cfg)

	require.NoError(t, local.Set(ctx, document.ParseKeyPath("interface.wake_word_enabled"), false))
	cfg, err = uc.CLIConfig(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.WakeWordsEnabled)
}

func TestDerivedConfig_SpeechConfig(t *testing.T) {
	ctx := context.Background()
	st := newStack(t, t.TempDir())
	local := st.open(t, templates.LocalConf)
	user := st.open(t, templates.UserInfo)

	cfg, err := usecase.NewDerivedConfigUseCase(local, user).SpeechConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en-us", cfg.Lang)
	assert.Equal(t, 16000, cfg.Listener["sample_rate"])
	assert.Contains(t, cfg.Hotwords, "hey_neon")
	assert.NotNil(t, cfg.STT)
	assert.NotNil(t, cfg.TTS)

	require.NoError(t, user.Set(ctx, document.ParseKeyPath("speech.tts_language"), "de-de"))
	cfg, err = usecase.NewDerivedConfigUseCase(local, user).SpeechConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "de-de", cfg.Lang)
}

func TestDerivedConfig_SpeechConfigWithoutUser(t *testing.T) {
	ctx := context.Background()
	local := newStack(t, t.TempDir()).open(t, templates.LocalConf)
	require.NoError(t, local.Set(ctx, document.ParseKeyPath("gui.lang"), "fr-fr"))

	cfg, err := usecase.NewDerivedConfigUseCase(local, nil).SpeechConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fr-fr", cfg.Lang)
}

func TestDerivedConfig_SectionNotMapping(t *testing.T) {
	ctx := context.Background()
	local := newStack(t, t.TempDir()).open(t, templates.LocalConf)
	require.NoError(t, local.Set(ctx, document.KeyPath{"listener"}, "off"))

	_, err := usecase.NewDerivedConfigUseCase(local, nil).SpeechConfig(ctx)
	assert.Error(t, err)
}
