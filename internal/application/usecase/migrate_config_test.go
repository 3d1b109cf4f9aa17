package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/devconf/internal/application/port/mocks"
	"github.com/bnema/devconf/internal/application/usecase"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/domain/merge"
	"github.com/bnema/devconf/internal/infrastructure/templates"
)

func TestMigrate_CreatesFromTemplate(t *testing.T) {
	dir := t.TempDir()
	st := newStack(t, dir)
	file := entity.NewConfigFile(templates.LocalConf, dir)

	out, err := st.migrator.Execute(context.Background(), usecase.MigrateConfigInput{File: file})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.Empty(t, out.LegacySource)
	assert.Empty(t, out.Changes)
	assert.True(t, templateDoc(t, templates.LocalConf).Equal(out.Document))
	assert.True(t, out.Document.Equal(loadFile(t, file.Path())))

	raw, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "# Device-local configuration", "template comments are kept")
	assert.NoFileExists(t, file.LockPath())
	assert.NoFileExists(t, file.StagingPath())
}

func TestMigrate_NameWithoutTemplateStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	st := newStack(t, dir)
	file := entity.NewConfigFile("test_conf", dir)

	doc, err := st.migrator.Ensure(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
	assert.FileExists(t, file.Path())
}

func TestMigrate_RelocatesLegacyFile(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "neon_local_conf.yml")
	legacyContent := `# old layout
logging:
  level: debug
listener:
  sample_rate: 48000
  legacy_only: true
stray_section:
  x: 1
`
	writeFile(t, legacy, legacyContent)
	st := newStack(t, dir)
	file := entity.NewConfigFile(templates.LocalConf, dir)

	out, err := st.migrator.Execute(context.Background(), usecase.MigrateConfigInput{File: file})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.Equal(t, legacy, out.LegacySource)
	assert.Equal(t, []string{"logging->logs"}, out.Transformed)

	doc := loadFile(t, file.Path())
	assert.Equal(t, templateDoc(t, templates.LocalConf).Keys(), doc.Keys())
	level, _ := doc.Get(document.ParseKeyPath("logs.level"))
	assert.Equal(t, "debug", level)
	rate, _ := doc.Get(document.ParseKeyPath("listener.sample_rate"))
	assert.Equal(t, 48000, rate)
	_, ok := doc.Get(document.ParseKeyPath("listener.legacy_only"))
	assert.False(t, ok, "strict reconciliation drops keys the template does not know")

	raw, err := os.ReadFile(legacy)
	require.NoError(t, err)
	assert.Equal(t, legacyContent, string(raw), "deprecated file is left byte-identical")
}

func TestMigrate_LegacyPreferenceOrderAndDirs(t *testing.T) {
	dir := t.TempDir()
	oldDir := t.TempDir()
	writeFile(t, filepath.Join(oldDir, "mycroft.conf"), `// mycroft style
{
  "listener": {"wake_word": "hey mycroft"}
}
`)
	writeFile(t, filepath.Join(oldDir, "local_conf.yml"), "listener:\n  wake_word: hey local\n")
	st := newStack(t, dir, usecase.WithLegacyDirs(oldDir))

	out, err := st.migrator.Execute(context.Background(), usecase.MigrateConfigInput{File: entity.NewConfigFile(templates.LocalConf, dir)})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(oldDir, "local_conf.yml"), out.LegacySource)
	word, _ := out.Document.Get(document.ParseKeyPath("listener.wake_word"))
	assert.Equal(t, "hey local", word)
}

func TestMigrate_ImportsCommentedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "mycroft.conf"), `// mycroft style
{
  # the listener
  "listener": {"wake_word": "hey mycroft", "sample_rate": 8000}
}
`)
	st := newStack(t, dir)

	doc, err := st.migrator.Ensure(context.Background(), entity.NewConfigFile(templates.LocalConf, dir))
	require.NoError(t, err)
	word, _ := doc.Get(document.ParseKeyPath("listener.wake_word"))
	assert.Equal(t, "hey mycroft", word)
}

func TestMigrate_AdditiveKeepsCustomKeys(t *testing.T) {
	dir := t.TempDir()
	file := entity.NewConfigFile(templates.UserInfo, dir)
	writeFile(t, file.Path(), `user:
  first_name: Ada
  nickname: countess
custom:
  color: green
`)
	st := newStack(t, dir)

	out, err := st.migrator.Execute(context.Background(), usecase.MigrateConfigInput{File: file})
	require.NoError(t, err)

	assert.False(t, out.Created)
	assert.NotEmpty(t, out.Changes)
	for _, c := range out.Changes {
		assert.Equal(t, merge.ChangeAdded, c.Type, "additive reconciliation only adds: %s", c.Key)
	}

	doc := loadFile(t, file.Path())
	name, _ := doc.Get(document.ParseKeyPath("user.first_name"))
	assert.Equal(t, "Ada", name)
	nick, _ := doc.Get(document.ParseKeyPath("user.nickname"))
	assert.Equal(t, "countess", nick)
	color, _ := doc.Get(document.ParseKeyPath("custom.color"))
	assert.Equal(t, "green", color)
	for _, key := range []string{"user", "brands", "speech", "units", "location"} {
		_, ok := doc.Get(document.KeyPath{key})
		assert.True(t, ok, key)
	}
}

func TestMigrate_SecondRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	file := entity.NewConfigFile(templates.LocalConf, dir)
	writeFile(t, file.Path(), "listener:\n  sample_rate: 8000\nobsolete: true\n")
	st := newStack(t, dir)
	ctx := context.Background()

	first, err := st.migrator.Execute(ctx, usecase.MigrateConfigInput{File: file})
	require.NoError(t, err)
	assert.NotEmpty(t, first.Changes)
	locks := st.locker.acquired.Load()

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(file.Path(), past, past))

	second, err := st.migrator.Execute(ctx, usecase.MigrateConfigInput{File: file})
	require.NoError(t, err)
	assert.Empty(t, second.Changes)
	assert.Equal(t, locks, st.locker.acquired.Load(), "a converged document takes no lock")

	info, err := os.Stat(file.Path())
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "a converged document is not rewritten")
}

func TestMigrate_MalformedDocumentIsNotReplaced(t *testing.T) {
	dir := t.TempDir()
	file := entity.NewConfigFile(templates.LocalConf, dir)
	broken := "listener:\n  sample_rate: 1\n bad: indent\n"
	writeFile(t, file.Path(), broken)
	st := newStack(t, dir)

	_, err := st.migrator.Execute(context.Background(), usecase.MigrateConfigInput{File: file})
	require.Error(t, err)
	assert.True(t, entity.IsParseError(err))

	raw, err := os.ReadFile(file.Path())
	require.NoError(t, err)
	assert.Equal(t, broken, string(raw))
}

func TestMigrate_MalformedLegacyFileFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "user_info.yml"), "user: [unclosed\n")
	st := newStack(t, dir)
	file := entity.NewConfigFile(templates.UserInfo, dir)

	_, err := st.migrator.Ensure(context.Background(), file)
	require.Error(t, err)
	assert.NoFileExists(t, file.Path(), "no template is written over unreadable legacy data")
	assert.NoFileExists(t, file.LockPath())
}

func TestMigrate_LockTimeout(t *testing.T) {
	dir := t.TempDir()
	file := entity.NewConfigFile(templates.LocalConf, dir)
	writeFile(t, file.LockPath(), "")
	st := newStack(t, dir, usecase.WithLockTimeout(50*time.Millisecond))

	_, err := st.migrator.Ensure(context.Background(), file)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrLockTimeout)
	assert.NoFileExists(t, file.Path())
}

func TestMigrate_PersistFailureIsPropagated(t *testing.T) {
	file := entity.NewConfigFile("test_conf", "/etc/devconf")
	persistErr := &entity.StorageError{Op: "persist", Path: file.Path(), Err: errors.New("disk full")}

	repo := mocks.NewMockDocumentRepository(t)
	locker := mocks.NewMockFileLock(t)
	provider := mocks.NewMockTemplateProvider(t)

	repo.EXPECT().Exists(file.Path()).Return(false)
	locker.EXPECT().WithLock(mock.Anything, file.Path(), 3*time.Second, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ time.Duration, fn func() error) error { return fn() })
	provider.EXPECT().Profile("test_conf").Return(entity.DocumentProfile{Name: "test_conf"})
	provider.EXPECT().Template("test_conf").Return(nil, false)
	repo.EXPECT().Persist(file.Path(), mock.Anything).Return(persistErr)

	uc := usecase.NewMigrateConfigUseCase(repo, locker, provider,
		mocks.NewMockConfigTransformer(t), mocks.NewMockDiffFormatter(t), usecase.WithLockTimeout(3*time.Second))

	_, err := uc.Ensure(context.Background(), file)
	require.Error(t, err)
	assert.True(t, entity.IsStorageError(err))
}

func TestMigrate_DetectChanges(t *testing.T) {
	dir := t.TempDir()
	file := entity.NewConfigFile(templates.LocalConf, dir)
	st := newStack(t, dir)
	ctx := context.Background()

	_, err := st.migrator.Ensure(ctx, file)
	require.NoError(t, err)

	out, err := st.migrator.DetectChanges(ctx, usecase.DetectChangesInput{File: file})
	require.NoError(t, err)
	assert.False(t, out.HasChanges)
	assert.Equal(t, "No changes detected.", out.DiffText)

	doc := loadFile(t, file.Path())
	require.NoError(t, doc.Set(document.KeyPath{"extra"}, 1))
	require.NoError(t, st.repo.Persist(file.Path(), doc))

	out, err = st.migrator.DetectChanges(ctx, usecase.DetectChangesInput{File: file})
	require.NoError(t, err)
	assert.True(t, out.HasChanges)
	require.Len(t, out.Changes, 1)
	assert.Equal(t, merge.ChangeRemoved, out.Changes[0].Type)
	assert.Equal(t, "extra", out.Changes[0].Key)
	assert.Contains(t, out.DiffText, "- extra")

	// Previewing never writes.
	assert.True(t, doc.Equal(loadFile(t, file.Path())))

	_, err = st.migrator.DetectChanges(ctx, usecase.DetectChangesInput{File: entity.NewConfigFile("unknown", dir)})
	assert.ErrorIs(t, err, entity.ErrMissingTemplate)
}
