package yamlfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
)

func TestExport_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ngi_local_conf.json")
	doc := document.MustParse(commented)

	require.NoError(t, New().Export(path, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "#")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]any{"sample_rate": float64(16000), "mute": false}, decoded["listener"])
	assert.NoFileExists(t, path+".tmp")
}

func TestExport_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ngi_local_conf.toml")
	doc := document.MustParse("name: device\nempty: ~\nlistener:\n  sample_rate: 16000\n")

	require.NoError(t, New().Export(path, doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(raw, &decoded))
	assert.Equal(t, "device", decoded["name"])
	assert.NotContains(t, decoded, "empty")
	assert.Equal(t, map[string]any{"sample_rate": int64(16000)}, decoded["listener"])
}

func TestExport_UnsupportedFormat(t *testing.T) {
	err := New().Export(filepath.Join(t.TempDir(), "out.yml"), document.New())
	assert.True(t, entity.IsStorageError(err))
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	repo := New()

	t.Run("commented json", func(t *testing.T) {
		path := filepath.Join(dir, "mycroft.conf")
		writeFile(t, path, "// device config\n{\n  \"lang\": \"en-us\",\n  # wake word\n  \"listener\": {\"wake_word\": \"hey mycroft\"}\n}\n", 0o644)

		doc, err := repo.Import(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"lang", "listener"}, doc.Keys())
		v, _ := doc.Get(document.KeyPath{"listener", "wake_word"})
		assert.Equal(t, "hey mycroft", v)
	})

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(dir, "legacy.toml")
		writeFile(t, path, "lang = 'en-us'\n[listener]\nsample_rate = 16000\n", 0o644)

		doc, err := repo.Import(path)
		require.NoError(t, err)
		v, _ := doc.Get(document.KeyPath{"listener", "sample_rate"})
		assert.Equal(t, 16000, v)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "local_conf.yml")
		writeFile(t, path, commented, 0o644)

		doc, err := repo.Import(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"listener", "skills"}, doc.Keys())
	})

	t.Run("broken toml reports line", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		writeFile(t, path, "a = 1\nb = \n", 0o644)

		_, err := repo.Import(path)
		var pe *entity.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Positive(t, pe.Line)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := repo.Import(filepath.Join(dir, "absent.json"))
		assert.True(t, entity.IsStorageError(err))
	})
}
