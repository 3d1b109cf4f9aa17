package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/domain/merge"
	"github.com/bnema/devconf/internal/logging"
)

// ErrWatchUnavailable is returned by Watch when the store has no watcher.
var ErrWatchUnavailable = errors.New("document watching is not available")

// ConfigStore is the in-process view of one configuration document.
//
// Reads are served from memory and never take the file lock, so they may be
// stale until Reload. Writes persist the whole document under the file lock.
// A ConfigStore is safe for concurrent use.
type ConfigStore struct {
	file        entity.ConfigFile
	repo        port.DocumentRepository
	locker      port.FileLock
	migrator    *MigrateConfigUseCase
	watcher     port.DocumentWatcher
	lockTimeout time.Duration

	mu      sync.RWMutex
	doc     *document.Document
	dirty   bool
	rev     uint64
	modTime time.Time

	writeMu sync.Mutex
	loads   singleflight.Group
}

// NewConfigStore creates a store for file. The document is loaded, and
// migrated if needed, on first access. watcher may be nil.
func NewConfigStore(
	file entity.ConfigFile,
	repo port.DocumentRepository,
	locker port.FileLock,
	migrator *MigrateConfigUseCase,
	watcher port.DocumentWatcher,
) *ConfigStore {
	return &ConfigStore{
		file:        file,
		repo:        repo,
		locker:      locker,
		migrator:    migrator,
		watcher:     watcher,
		lockTimeout: migrator.LockTimeout(),
	}
}

// File returns the identity of the stored document.
func (s *ConfigStore) File() entity.ConfigFile {
	return s.file
}

// Ensure loads the document, running the migrator first, unless it is
// already loaded. Concurrent first loads share one migrator run.
func (s *ConfigStore) Ensure(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.doc != nil
	s.mu.RUnlock()
	if loaded {
		return nil
	}

	_, err, _ := s.loads.Do(s.file.Path(), func() (any, error) {
		s.mu.RLock()
		loaded := s.doc != nil
		s.mu.RUnlock()
		if loaded {
			return nil, nil
		}

		doc, err := s.migrator.Ensure(ctx, s.file)
		if err != nil {
			return nil, err
		}
		modTime, _ := s.repo.ModTime(s.file.Path())

		s.mu.Lock()
		if s.doc == nil {
			s.doc = doc
			s.modTime = modTime
		}
		s.mu.Unlock()
		return nil, nil
	})
	return err
}

// Get returns the value at path, or def when the path is absent.
func (s *ConfigStore) Get(ctx context.Context, path document.KeyPath, def any) (any, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.doc.Get(path); ok {
		return v, nil
	}
	return def, nil
}

// GetString returns the value at path converted to a string.
func (s *ConfigStore) GetString(ctx context.Context, path document.KeyPath, def string) (string, error) {
	return getAs(ctx, s, path, def, cast.ToStringE)
}

// GetBool returns the value at path converted to a bool.
func (s *ConfigStore) GetBool(ctx context.Context, path document.KeyPath, def bool) (bool, error) {
	return getAs(ctx, s, path, def, cast.ToBoolE)
}

// GetInt returns the value at path converted to an int.
func (s *ConfigStore) GetInt(ctx context.Context, path document.KeyPath, def int) (int, error) {
	return getAs(ctx, s, path, def, cast.ToIntE)
}

// GetFloat returns the value at path converted to a float64.
func (s *ConfigStore) GetFloat(ctx context.Context, path document.KeyPath, def float64) (float64, error) {
	return getAs(ctx, s, path, def, cast.ToFloat64E)
}

func getAs[T any](ctx context.Context, s *ConfigStore, path document.KeyPath, def T, conv func(any) (T, error)) (T, error) {
	v, err := s.Get(ctx, path, def)
	if err != nil {
		return def, err
	}
	out, err := conv(v)
	if err != nil {
		return def, fmt.Errorf("%s %s: %w", s.file.Name, path, err)
	}
	return out, nil
}

// Set stores value at path in memory and marks the store dirty. Nothing is
// written until Write.
func (s *ConfigStore) Set(ctx context.Context, path document.KeyPath, value any) error {
	if err := s.Ensure(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.doc.Set(path, value); err != nil {
		return err
	}
	s.touchLocked()
	return nil
}

// Update sets one value and, when persist is true, writes immediately.
func (s *ConfigStore) Update(ctx context.Context, path document.KeyPath, value any, persist bool) error {
	if err := s.Set(ctx, path, value); err != nil {
		return err
	}
	if !persist {
		return nil
	}
	return s.Write(ctx)
}

// DeleteKeys removes every key named in names at any depth, in memory.
func (s *ConfigStore) DeleteKeys(ctx context.Context, names []string) error {
	if err := s.Ensure(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	merge.DeleteKeysRecursive(s.doc, names)
	s.touchLocked()
	return nil
}

// Write persists the in-memory document under the file lock. The store is
// marked clean only if no mutation happened while the write was in flight.
func (s *ConfigStore) Write(ctx context.Context) error {
	if err := s.Ensure(ctx); err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err := s.locker.WithLock(ctx, s.file.Path(), s.lockTimeout, func() error {
		s.mu.RLock()
		snapshot, rev := s.doc.Clone(), s.rev
		s.mu.RUnlock()
		return s.persist(snapshot, rev)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", s.file.Name, err)
	}
	logging.FromContext(ctx).Debug().Str("name", s.file.Name).Msg("document written")
	return nil
}

// Reload replaces the in-memory document with the one on disk, discarding
// unsaved mutations. It does not take the file lock.
func (s *ConfigStore) Reload(ctx context.Context) error {
	path := s.file.Path()
	doc, err := s.repo.Load(path)
	if err != nil {
		return fmt.Errorf("reload %s: %w", s.file.Name, err)
	}
	modTime, _ := s.repo.ModTime(path)

	s.mu.Lock()
	s.doc = doc
	s.dirty = false
	s.rev++
	s.modTime = modTime
	s.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("name", s.file.Name).Msg("document reloaded")
	return nil
}

// ReloadIfChanged reloads when the file on disk was modified after the last
// load or write by this store, and reports whether it did.
func (s *ConfigStore) ReloadIfChanged(ctx context.Context) (bool, error) {
	if err := s.Ensure(ctx); err != nil {
		return false, err
	}
	modTime, err := s.repo.ModTime(s.file.Path())
	if err != nil {
		return false, err
	}

	s.mu.RLock()
	known := s.modTime
	s.mu.RUnlock()
	if modTime.Equal(known) {
		return false, nil
	}
	if err := s.Reload(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Reconcile aligns the document with template under policy and writes it.
// The reconcile and persist steps run under the file lock.
func (s *ConfigStore) Reconcile(ctx context.Context, template *document.Document, policy entity.ReconcilePolicy) error {
	if template == nil {
		return fmt.Errorf("reconcile %s: %w", s.file.Name, entity.ErrMissingTemplate)
	}
	if err := s.Ensure(ctx); err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err := s.locker.WithLock(ctx, s.file.Path(), s.lockTimeout, func() error {
		s.mu.Lock()
		s.doc = reconcile(s.doc, template, policy)
		s.touchLocked()
		snapshot, rev := s.doc.Clone(), s.rev
		s.mu.Unlock()
		return s.persist(snapshot, rev)
	})
	if err != nil {
		return fmt.Errorf("reconcile %s: %w", s.file.Name, err)
	}
	logging.FromContext(ctx).Info().
		Str("name", s.file.Name).
		Str("policy", policy.String()).
		Msg("document reconciled")
	return nil
}

// Replace swaps the whole content for a copy of doc and writes it.
func (s *ConfigStore) Replace(ctx context.Context, doc *document.Document) error {
	if doc == nil {
		return errors.New("replace with nil document")
	}
	// The lazy load still runs so that migration never races a replace.
	if err := s.Ensure(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = doc.Clone()
	s.touchLocked()
	s.mu.Unlock()
	return s.Write(ctx)
}

// ImportFile replaces the content with a plain JSON, TOML or YAML file and
// writes it.
func (s *ConfigStore) ImportFile(ctx context.Context, path string) error {
	doc, err := s.repo.Import(path)
	if err != nil {
		return err
	}
	return s.Replace(ctx, doc)
}

// Export writes a plain derived copy of the document to path and returns the
// path used. An empty path selects the document's default JSON export.
func (s *ConfigStore) Export(ctx context.Context, path string) (string, error) {
	doc, err := s.Content(ctx)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = s.file.ExportPath()
	}
	if err := s.repo.Export(path, doc); err != nil {
		return "", err
	}
	return path, nil
}

// Content returns a deep copy of the in-memory document.
func (s *ConfigStore) Content(ctx context.Context) (*document.Document, error) {
	if err := s.Ensure(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone(), nil
}

// Dirty reports whether there are mutations not yet written.
func (s *ConfigStore) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// Watch reloads the store whenever another process replaces the file and
// then calls onChange with the new content, until ctx is cancelled. The
// store's own writes do not trigger onChange.
func (s *ConfigStore) Watch(ctx context.Context, onChange func(*document.Document)) error {
	if s.watcher == nil {
		return ErrWatchUnavailable
	}
	if err := s.Ensure(ctx); err != nil {
		return err
	}
	log := logging.FromContext(ctx)

	return s.watcher.Watch(ctx, s.file.Path(), func() {
		changed, err := s.ReloadIfChanged(ctx)
		if err != nil {
			log.Warn().Err(err).Str("name", s.file.Name).Msg("failed to reload changed document")
			return
		}
		if !changed || onChange == nil {
			return
		}
		s.mu.RLock()
		doc := s.doc.Clone()
		s.mu.RUnlock()
		onChange(doc)
	})
}

func (s *ConfigStore) touchLocked() {
	s.dirty = true
	s.rev++
}

// persist writes snapshot; it must run while holding the file lock.
func (s *ConfigStore) persist(snapshot *document.Document, rev uint64) error {
	path := s.file.Path()
	if err := s.repo.Persist(path, snapshot); err != nil {
		return err
	}
	modTime, _ := s.repo.ModTime(path)

	s.mu.Lock()
	if s.rev == rev {
		s.dirty = false
	}
	s.modTime = modTime
	s.mu.Unlock()
	return nil
}
