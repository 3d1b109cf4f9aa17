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

func TestBuildDefaultUserProfile_FromTemplate(t *testing.T) {
	profile, err := usecase.BuildDefaultUserProfile(templateDoc(t, templates.UserInfo))
	require.NoError(t, err)

	assert.Equal(t, -1, profile["first_name"])
	assert.Equal(t, -1, profile["secondary_tts_language"])
	assert.Equal(t, "en-us", profile["tts_language"])
	assert.Equal(t, "imperial", profile["measure"])
	assert.Equal(t, "Renton", profile["city"])
	assert.Equal(t, false, profile["email_verified"])
	assert.Equal(t, map[string]any{}, profile["ignored_brands"])
	assert.NotContains(t, profile, "user")
}

func TestBuildDefaultUserProfile_LaterSectionWins(t *testing.T) {
	doc := document.MustParse(`
speech:
  name: from-speech
  only_speech: x
units:
  name: from-units
  empty: ""
other:
  name: ignored
`)
	profile, err := usecase.BuildDefaultUserProfile(doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":        "from-units",
		"only_speech": "x",
		"empty":       -1,
	}, profile)
}

func TestBuildDefaultUserProfile_SectionNotMapping(t *testing.T) {
	_, err := usecase.BuildDefaultUserProfile(document.MustParse("user: nobody\n"))
	assert.Error(t, err)
}

func TestUserProfile_KeepsStoredValues(t *testing.T) {
	ctx := context.Background()
	store := newStack(t, t.TempDir()).open(t, templates.UserInfo)
	require.NoError(t, store.Set(ctx, document.ParseKeyPath("user.first_name"), "Ada"))

	profile, err := usecase.UserProfile(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile["first_name"])
	assert.Equal(t, "", profile["last_name"])
}
