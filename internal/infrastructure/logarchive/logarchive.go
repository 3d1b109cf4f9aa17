// Package logarchive moves finished service logs into dated archive
// directories and prunes archives past their retention period.
package logarchive

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bnema/devconf/internal/application/port"
	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/logging"
)

const (
	// ArchivePrefix starts every default archive directory name.
	ArchivePrefix = "logs--"
	archiveLayout = "2006-01-02--15-04-05"
	logSuffix     = ".log"
	dirPerm       = 0o755
)

// Archiver implements port.LogArchiver on the local filesystem.
type Archiver struct {
	now func() time.Time
}

var _ port.LogArchiver = (*Archiver)(nil)

// New creates an Archiver.
func New() *Archiver {
	return &Archiver{now: time.Now}
}

// DefaultArchiveName returns the archive directory name used for t.
func DefaultArchiveName(t time.Time) string {
	return ArchivePrefix + t.Format(archiveLayout)
}

// Archive moves every "*.log" file directly inside logDir into logDir/name.
// A missing logDir archives nothing and returns an empty path.
func (a *Archiver) Archive(ctx context.Context, logDir, name string) (string, error) {
	if name == "" {
		name = DefaultArchiveName(a.now())
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid archive name %q", name)
	}

	entries, err := os.ReadDir(logDir)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", &entity.StorageError{Op: "read log dir", Path: logDir, Err: err}
	}

	archiveDir := filepath.Join(logDir, name)
	if err := os.MkdirAll(archiveDir, dirPerm); err != nil {
		return "", &entity.StorageError{Op: "create archive", Path: archiveDir, Err: err}
	}

	moved := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), logSuffix) {
			continue
		}
		src := filepath.Join(logDir, e.Name())
		if err := os.Rename(src, filepath.Join(archiveDir, e.Name())); err != nil {
			return archiveDir, &entity.StorageError{Op: "archive log", Path: src, Err: err}
		}
		moved++
	}

	logging.FromContext(ctx).Info().
		Str("archive", archiveDir).
		Int("files", moved).
		Msg("logs archived")
	return archiveDir, nil
}

// Prune removes directories inside logDir whose modification time is older
// than retain. Removed paths are returned oldest first.
func (a *Archiver) Prune(ctx context.Context, logDir string, retain time.Duration) ([]string, error) {
	if retain <= 0 {
		return nil, fmt.Errorf("retention must be positive, got %s", retain)
	}

	entries, err := os.ReadDir(logDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &entity.StorageError{Op: "read log dir", Path: logDir, Err: err}
	}

	type archive struct {
		path    string
		modTime time.Time
	}
	var expired []archive
	now := a.now()
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > retain {
			expired = append(expired, archive{path: filepath.Join(logDir, e.Name()), modTime: info.ModTime()})
		}
	}

	sort.Slice(expired, func(i, j int) bool {
		return expired[i].modTime.Before(expired[j].modTime)
	})

	log := logging.FromContext(ctx)
	removed := make([]string, 0, len(expired))
	for _, arc := range expired {
		if err := os.RemoveAll(arc.path); err != nil {
			return removed, &entity.StorageError{Op: "prune archive", Path: arc.path, Err: err}
		}
		log.Info().Str("archive", arc.path).Msg("removed old log archive")
		removed = append(removed, arc.path)
	}
	return removed, nil
}
