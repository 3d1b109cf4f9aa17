// Package signal implements named, file-backed signals shared between
// processes. A signal is raised when a file of that name exists in the
// registry directory.
package signal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrInvalidName is returned for names that cannot be used as a file name.
var ErrInvalidName = errors.New("invalid signal name")

// Registry implements port.SignalRegistry on a directory.
type Registry struct {
	dir string
	now func() time.Time
}

var _ port.SignalRegistry = (*Registry)(nil)

// NewRegistry creates a Registry rooted at dir. The directory is created on
// first use.
func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir, now: time.Now}
}

// Dir returns the registry directory.
func (r *Registry) Dir() string {
	return r.dir
}

// Create raises the signal. Raising an existing signal restarts its lifetime.
func (r *Registry) Create(ctx context.Context, name string) error {
	path, err := r.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.dir, dirPerm); err != nil {
		return &entity.StorageError{Op: "create signal", Path: r.dir, Err: err}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return &entity.StorageError{Op: "create signal", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &entity.StorageError{Op: "create signal", Path: path, Err: err}
	}
	now := r.now()
	if err := os.Chtimes(path, now, now); err != nil {
		return &entity.StorageError{Op: "create signal", Path: path, Err: err}
	}

	logging.FromContext(ctx).Debug().Str("signal", name).Msg("signal raised")
	return nil
}

// Check reports whether the signal is raised, consuming single-use signals
// and removing expired ones.
func (r *Registry) Check(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	path, err := r.path(name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &entity.StorageError{Op: "check signal", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}

	log := logging.FromContext(ctx)
	switch {
	case ttl < 0:
		return true, nil
	case ttl == port.SignalSingleUse:
		if err := remove(path); err != nil {
			return true, err
		}
		log.Debug().Str("signal", name).Msg("signal consumed")
		return true, nil
	case ttl > 0 && r.now().Sub(info.ModTime()) > ttl:
		if err := remove(path); err != nil {
			return false, err
		}
		log.Debug().Str("signal", name).Dur("ttl", ttl).Msg("signal expired")
		return false, nil
	}
	return true, nil
}

// Clear removes every signal whose name starts with prefix or contains
// "_<prefix>_". A missing registry directory clears nothing.
func (r *Registry) Clear(ctx context.Context, prefix string) (int, error) {
	if prefix == "" {
		return 0, fmt.Errorf("%w: empty prefix", ErrInvalidName)
	}
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, &entity.StorageError{Op: "clear signals", Path: r.dir, Err: err}
	}

	infix := "_" + prefix + "_"
	removed := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !(strings.HasPrefix(name, prefix) || strings.Contains(name, infix)) {
			continue
		}
		if err := remove(filepath.Join(r.dir, name)); err != nil {
			return removed, err
		}
		removed++
	}

	logging.FromContext(ctx).Debug().Str("prefix", prefix).Int("removed", removed).Msg("signals cleared")
	return removed, nil
}

func (r *Registry) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(r.dir, name), nil
}

func remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &entity.StorageError{Op: "remove signal", Path: path, Err: err}
	}
	return nil
}
