package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/logging"
)

const ensureConcurrency = 4

// ErrInvalidDocumentName is returned for logical names that cannot be used as
// a file stem.
var ErrInvalidDocumentName = errors.New("invalid document name")

// StoreRegistry hands out one ConfigStore per logical document name.
type StoreRegistry struct {
	dir       string
	repo      port.DocumentRepository
	locker    port.FileLock
	templates port.TemplateProvider
	migrator  *MigrateConfigUseCase
	watcher   port.DocumentWatcher

	mu     sync.Mutex
	stores map[string]*ConfigStore
}

// NewStoreRegistry creates a registry for the documents kept in dir.
// watcher may be nil.
func NewStoreRegistry(
	dir string,
	repo port.DocumentRepository,
	locker port.FileLock,
	templates port.TemplateProvider,
	migrator *MigrateConfigUseCase,
	watcher port.DocumentWatcher,
) *StoreRegistry {
	return &StoreRegistry{
		dir:       dir,
		repo:      repo,
		locker:    locker,
		templates: templates,
		migrator:  migrator,
		watcher:   watcher,
		stores:    make(map[string]*ConfigStore),
	}
}

// Dir returns the directory holding the canonical documents.
func (r *StoreRegistry) Dir() string {
	return r.dir
}

// Open returns the store for name, creating it on first use. Every call with
// the same name returns the same store.
func (r *StoreRegistry) Open(name string) (*ConfigStore, error) {
	name = strings.TrimSpace(name)
	ext := ""
	for _, e := range entity.YAMLExtensions {
		if strings.HasSuffix(name, e) {
			name, ext = strings.TrimSuffix(name, e), e
			break
		}
	}
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDocumentName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[name]; ok {
		return s, nil
	}
	file := entity.NewConfigFile(name, r.dir)
	if ext = r.existingExt(name, ext); ext != file.Format.Extension() {
		file.Ext = ext
	}
	s := NewConfigStore(file, r.repo, r.locker, r.migrator, r.watcher)
	r.stores[name] = s
	return s, nil
}

// existingExt picks the extension of the canonical file: the requested one,
// else whichever accepted extension already exists on disk, else the default.
func (r *StoreRegistry) existingExt(name, requested string) string {
	if requested != "" {
		return requested
	}
	for _, e := range entity.YAMLExtensions {
		if r.repo.Exists(filepath.Join(r.dir, name+e)) {
			return e
		}
	}
	return entity.YAMLExtensions[0]
}

// Names lists the documents that ship a template or already exist on disk,
// sorted.
func (r *StoreRegistry) Names() ([]string, error) {
	names := r.templates.Names()
	paths, err := r.repo.List(r.dir)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		stem := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		if !slices.Contains(names, stem) {
			names = append(names, stem)
		}
	}
	slices.Sort(names)
	return names, nil
}

// EnsureAll loads, and migrates where needed, every known document
// concurrently. It returns the first failure.
func (r *StoreRegistry) EnsureAll(ctx context.Context) error {
	names, err := r.Names()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ensureConcurrency)
	for _, name := range names {
		store, err := r.Open(name)
		if err != nil {
			return err
		}
		g.Go(func() error {
			if err := store.Ensure(gctx); err != nil {
				return fmt.Errorf("ensure %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logging.FromContext(ctx).Debug().Strs("names", names).Msg("all documents ensured")
	return nil
}
