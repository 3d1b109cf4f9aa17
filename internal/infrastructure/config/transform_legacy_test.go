package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/infrastructure/templates"
)

func TestTransformLegacy_RenamesSectionsInPlace(t *testing.T) {
	transformer := NewLegacyConfigTransformer()

	doc := document.MustParse(`user:
  first_name: Ada
# measurement preferences
unit:
  measure: metric
brand:
  favorite_brands: {}
`)
	applied := transformer.TransformLegacy(templates.UserInfo, doc)

	assert.Equal(t, []string{"unit->units", "brand->brands"}, applied)
	assert.Equal(t, []string{"user", "units", "brands"}, doc.Keys())
	assert.Contains(t, doc.String(), "# measurement preferences\nunits:")

	v, ok := doc.Get(document.KeyPath{"units", "measure"})
	require.True(t, ok)
	assert.Equal(t, "metric", v)
}

func TestTransformLegacy_CurrentLayoutWins(t *testing.T) {
	transformer := NewLegacyConfigTransformer()

	doc := document.MustParse("logging:\n  level: debug\nlogs:\n  level: info\n")
	applied := transformer.TransformLegacy(templates.LocalConf, doc)

	assert.Empty(t, applied)
	assert.Equal(t, []string{"logging", "logs"}, doc.Keys())
}

func TestTransformLegacy_MovesAcrossSections(t *testing.T) {
	transformer := NewLegacyConfigTransformer()

	doc := document.MustParse("log_level: DEBUG\nipc_path: /run/neon/ipc\ndirVars:\n  logsDir: /var/log/neon\n")
	applied := transformer.TransformLegacy(templates.LocalConf, doc)

	assert.Equal(t, []string{"log_level->logs.level", "ipc_path->dirVars.ipcDir"}, applied)

	v, _ := doc.Get(document.KeyPath{"logs", "level"})
	assert.Equal(t, "DEBUG", v)
	v, _ = doc.Get(document.KeyPath{"dirVars", "ipcDir"})
	assert.Equal(t, "/run/neon/ipc", v)
	v, _ = doc.Get(document.KeyPath{"dirVars", "logsDir"})
	assert.Equal(t, "/var/log/neon", v)

	_, ok := doc.Get(document.KeyPath{"log_level"})
	assert.False(t, ok)
}

func TestTransformLegacy_UnknownDocument(t *testing.T) {
	doc := document.MustParse("unit: {}\n")
	assert.Empty(t, NewLegacyConfigTransformer().TransformLegacy("other", doc))
	assert.Equal(t, []string{"unit"}, doc.Keys())
}
