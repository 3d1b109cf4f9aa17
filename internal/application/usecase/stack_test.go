package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/devconf/internal/application/usecase"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/infrastructure/config"
	"github.com/bnema/devconf/internal/infrastructure/filelock"
	"github.com/bnema/devconf/internal/infrastructure/persistence/yamlfile"
	"github.com/bnema/devconf/internal/infrastructure/templates"
)

// countingLocker records how often the document lock is taken.
type countingLocker struct {
	*filelock.Locker
	acquired atomic.Int32
}

func (l *countingLocker) WithLock(ctx context.Context, path string, timeout time.Duration, fn func() error) error {
	l.acquired.Add(1)
	return l.Locker.WithLock(ctx, path, timeout, fn)
}

type stack struct {
	dir      string
	repo     *yamlfile.Repository
	locker   *countingLocker
	migrator *usecase.MigrateConfigUseCase
	registry *usecase.StoreRegistry
}

func newStack(t *testing.T, dir string, opts ...usecase.MigrateOption) *stack {
	t.Helper()
	provider, err := templates.New()
	require.NoError(t, err)

	repo := yamlfile.New()
	locker := &countingLocker{Locker: filelock.New(filelock.WithBackoff(time.Millisecond, 10*time.Millisecond))}
	opts = append([]usecase.MigrateOption{usecase.WithLockTimeout(5 * time.Second)}, opts...)
	migrator := usecase.NewMigrateConfigUseCase(repo, locker, provider,
		config.NewLegacyConfigTransformer(), config.NewDiffFormatter(), opts...)

	return &stack{
		dir:      dir,
		repo:     repo,
		locker:   locker,
		migrator: migrator,
		registry: usecase.NewStoreRegistry(dir, repo, locker, provider, migrator, nil),
	}
}

func (s *stack) open(t *testing.T, name string) *usecase.ConfigStore {
	t.Helper()
	store, err := s.registry.Open(name)
	require.NoError(t, err)
	return store
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func loadFile(t *testing.T, path string) *document.Document {
	t.Helper()
	doc, err := yamlfile.New().Load(path)
	require.NoError(t, err)
	return doc
}

func templateDoc(t *testing.T, name string) *document.Document {
	t.Helper()
	provider, err := templates.New()
	require.NoError(t, err)
	doc, ok := provider.Template(name)
	require.True(t, ok)
	return doc
}
