package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/application/port/mocks"
	"github.com/bnema/devconf/internal/application/usecase"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/infrastructure/templates"
)

func TestCompatSkill_RequestInspection(t *testing.T) {
	skill := usecase.NewCompatSkill(usecase.SkillContext{SkillID: "skill-weather"}, nil, nil)
	msg := usecase.Message{Type: "recognizer_loop:utterance"}

	assert.True(t, skill.MustRespond(msg))
	assert.True(t, skill.InRequest(msg))
	assert.True(t, skill.FromMobile(msg))
	assert.Equal(t, "local", skill.UtteranceUser(msg))
	assert.Equal(t, "ada", skill.UtteranceUser(usecase.Message{Context: map[string]any{"username": "ada"}}))
	assert.Equal(t, "skill-weather", skill.Skill().SkillID)
}

func TestCompatSkill_Preferences(t *testing.T) {
	ctx := context.Background()
	user := newStack(t, t.TempDir()).open(t, templates.UserInfo)
	skill := usecase.NewCompatSkill(usecase.SkillContext{SkillID: "skill-weather"}, user, nil)

	prefs, err := skill.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, "imperial", prefs["measure"])

	units, err := skill.PreferenceSection(ctx, "units")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"time": 12, "date": "MDY", "measure": "imperial"}, units)

	missing, err := skill.PreferenceSection(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, missing)

	_, err = usecase.NewCompatSkill(usecase.SkillContext{}, nil, nil).Preferences(ctx)
	assert.Error(t, err)
}

func TestCompatSkill_SpeakFillsSpeakerFromPreferences(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	host := mocks.NewMockSkillHost(ctrl)
	user := newStack(t, t.TempDir()).open(t, templates.UserInfo)
	require.NoError(t, user.Set(ctx, document.ParseKeyPath("speech.neon_voice"), "Hans"))

	skill := usecase.NewCompatSkill(usecase.SkillContext{SkillID: "skill-weather", Host: host}, user, nil)

	host.EXPECT().Speak(gomock.Any(), "it is sunny", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opts port.SpeakOptions) error {
			assert.Equal(t, map[string]string{
				"tts_language": "en-us",
				"tts_gender":   "female",
				"neon_voice":   "Hans",
			}, opts.Speaker)
			assert.Equal(t, "skill-weather", opts.Meta["skill"])
			assert.True(t, opts.Wait)
			return nil
		})

	require.NoError(t, skill.Speak(ctx, "it is sunny", port.SpeakOptions{Wait: true}))
}

func TestCompatSkill_SpeakKeepsExplicitSpeaker(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	host := mocks.NewMockSkillHost(ctrl)
	user := newStack(t, t.TempDir()).open(t, templates.UserInfo)
	skill := usecase.NewCompatSkill(usecase.SkillContext{SkillID: "skill-weather", Host: host}, user, nil)

	speaker := map[string]string{"tts_language": "fr-fr"}
	want := port.SpeakOptions{Speaker: speaker, Meta: map[string]any{"skill": "other"}}
	host.EXPECT().Speak(gomock.Any(), "bonjour", want).Return(nil)

	require.NoError(t, skill.Speak(ctx, "bonjour", port.SpeakOptions{Speaker: speaker, Meta: map[string]any{"skill": "other"}}))
}

func TestCompatSkill_SpeakDialog(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	host := mocks.NewMockSkillHost(ctrl)
	skill := usecase.NewCompatSkill(usecase.SkillContext{SkillID: "skill-weather", Host: host}, nil, nil)

	hostErr := errors.New("host offline")
	host.EXPECT().
		SpeakDialog(gomock.Any(), "forecast", map[string]string{}, port.SpeakOptions{Meta: map[string]any{"skill": "skill-weather"}}).
		Return(hostErr)

	err := skill.SpeakDialog(ctx, "forecast", nil, port.SpeakOptions{})
	assert.ErrorIs(t, err, hostErr)
}

func TestCompatSkill_Signals(t *testing.T) {
	ctx := context.Background()
	signals := mocks.NewMockSignalRegistry(t)
	skill := usecase.NewCompatSkill(usecase.SkillContext{SkillID: "skill-weather"}, nil, signals)

	signals.EXPECT().Create(ctx, "skill-weather_active").Return(nil)
	signals.EXPECT().Check(ctx, "skill-weather_active", 30*time.Second).Return(true, nil)
	signals.EXPECT().Clear(ctx, "skill-weather").Return(2, nil)

	require.NoError(t, skill.CreateSignal(ctx, "active"))
	ok, err := skill.CheckSignal(ctx, "active", 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	n, err := skill.ClearSignals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCompatSkill_SignalsWithoutRegistry(t *testing.T) {
	ctx := context.Background()
	skill := usecase.NewCompatSkill(usecase.SkillContext{SkillID: "skill-weather"}, nil, nil)

	assert.Error(t, skill.CreateSignal(ctx, "active"))
	_, err := skill.CheckSignal(ctx, "active", port.SignalNoExpiry)
	assert.Error(t, err)
	_, err = skill.ClearSignals(ctx)
	assert.Error(t, err)
}
