// Package yamlfile stores configuration documents as YAML files on the local
// filesystem. Writes are atomic: content is staged next to the target, synced
// and renamed over it, so readers only ever observe a complete file.
package yamlfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sys/unix"

	"github.com/bnema/devconf/internal/domain/document"
	"github.com/bnema/devconf/internal/domain/entity"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

var yamlErrorLine = regexp.MustCompile(`line (\d+):`)

// Repository implements port.DocumentRepository.
type Repository struct{}

// New creates a Repository.
func New() *Repository {
	return &Repository{}
}

// Load reads and parses the YAML document at path. An empty file yields an
// empty Document. A missing file is a *entity.StorageError wrapping
// fs.ErrNotExist; malformed content is a *entity.ParseError.
func (*Repository) Load(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &entity.StorageError{Op: "load", Path: path, Err: err}
	}
	doc, err := document.Parse(data)
	if err != nil {
		return nil, &entity.ParseError{Path: path, Line: errorLine(err), Err: err}
	}
	return doc, nil
}

// Persist atomically replaces path with the YAML rendering of doc. The file
// mode of an existing target is preserved.
func (*Repository) Persist(path string, doc *document.Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return &entity.StorageError{Op: "encode", Path: path, Err: err}
	}
	return writeAtomic(path, data)
}

// Exists reports whether a regular file exists at path.
func (*Repository) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ModTime returns the modification time of path.
func (*Repository) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, &entity.StorageError{Op: "stat", Path: path, Err: err}
	}
	return info.ModTime(), nil
}

// List returns the paths of the YAML documents in dir, sorted. Lock markers,
// staging files and hidden files are skipped. A missing dir yields no paths.
func (*Repository) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &entity.StorageError{Op: "list", Path: dir, Err: err}
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || entity.IsConcurrencyArtifact(name) {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yml", ".yaml":
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &entity.StorageError{Op: "persist", Path: path, Err: err}
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return &entity.StorageError{Op: "persist", Path: path, Err: fmt.Errorf("directory not writable: %w", err)}
	}

	mode := os.FileMode(filePerm)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	staging := entity.StagingPathFor(path)
	f, err := os.OpenFile(staging, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return &entity.StorageError{Op: "stage", Path: staging, Err: err}
	}
	defer func() {
		if err != nil {
			_ = os.Remove(staging)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return &entity.StorageError{Op: "stage", Path: staging, Err: err}
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return &entity.StorageError{Op: "sync", Path: staging, Err: err}
	}
	if err = f.Close(); err != nil {
		return &entity.StorageError{Op: "stage", Path: staging, Err: err}
	}
	// OpenFile applies the umask; restore the exact previous mode.
	if err = os.Chmod(staging, mode); err != nil {
		return &entity.StorageError{Op: "chmod", Path: staging, Err: err}
	}
	if err = os.Rename(staging, path); err != nil {
		return &entity.StorageError{Op: "rename", Path: path, Err: err}
	}
	if err = syncDir(dir); err != nil {
		return &entity.StorageError{Op: "sync", Path: dir, Err: err}
	}
	return nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}

func errorLine(err error) int {
	var dup *document.DuplicateKeyError
	if errors.As(err, &dup) {
		return dup.Line
	}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	if m := yamlErrorLine.FindStringSubmatch(err.Error()); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil {
			return n
		}
	}
	return 0
}
