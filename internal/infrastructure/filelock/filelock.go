// Package filelock provides cross-process mutual exclusion for configuration
// documents using an exclusive-create marker file next to the document.
package filelock

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/bnema/devconf/internal/domain/entity"
	"github.com/bnema/devconf/internal/logging"
)

const (
	defaultInitialInterval = 10 * time.Millisecond
	defaultMaxInterval     = 250 * time.Millisecond
	markerPerm             = 0o644
	dirPerm                = 0o755
)

var errHeld = errors.New("lock held by another holder")

// Locker implements port.FileLock with "<path>.lock" marker files.
type Locker struct {
	initialInterval time.Duration
	maxInterval     time.Duration
}

// Option configures a Locker.
type Option func(*Locker)

// WithBackoff overrides the retry interval bounds used while waiting on a
// contended marker.
func WithBackoff(initial, maxInterval time.Duration) Option {
	return func(l *Locker) {
		if initial > 0 {
			l.initialInterval = initial
		}
		if maxInterval >= l.initialInterval {
			l.maxInterval = maxInterval
		}
	}
}

// New creates a Locker.
func New(opts ...Option) *Locker {
	l := &Locker{
		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Acquire takes the lock guarding path, retrying with exponential backoff
// until timeout has elapsed. A timeout of zero or less makes a single attempt.
// The returned release function removes the marker; calling it more than once
// is harmless.
func (l *Locker) Acquire(ctx context.Context, path string, timeout time.Duration) (func() error, error) {
	marker := entity.LockPathFor(path)
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(filepath.Dir(marker), dirPerm); err != nil {
		return nil, &entity.StorageError{Op: "lock", Path: marker, Err: err}
	}

	opts := []backoff.RetryOption{backoff.WithBackOff(l.newBackOff())}
	if timeout > 0 {
		opts = append(opts, backoff.WithMaxElapsedTime(timeout))
	} else {
		opts = append(opts, backoff.WithMaxTries(1))
	}
	opts = append(opts, backoff.WithNotify(func(_ error, wait time.Duration) {
		log.Trace().Str("path", marker).Dur("wait", wait).Msg("lock contended, retrying")
	}))

	start := time.Now()
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, createMarker(marker)
	}, opts...)
	if err != nil {
		if errors.Is(err, errHeld) {
			log.Warn().Str("path", marker).Dur("timeout", timeout).Msg("lock acquisition timed out")
			return nil, fmt.Errorf("%w: %s after %s", entity.ErrLockTimeout, marker, timeout)
		}
		return nil, err
	}
	log.Debug().Str("path", marker).Dur("waited", time.Since(start)).Msg("lock acquired")

	released := false
	return func() error {
		if released {
			return nil
		}
		released = true
		return Release(path)
	}, nil
}

// WithLock runs fn while holding the lock guarding path. The marker is removed
// on every exit path, including a panic in fn. A failure to remove the marker
// is reported only when fn itself succeeded.
func (l *Locker) WithLock(ctx context.Context, path string, timeout time.Duration, fn func() error) (err error) {
	release, err := l.Acquire(ctx, path, timeout)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn()
}

// CleanStale removes the marker guarding path when it is older than maxAge,
// for recovery after a holder died without releasing. It reports whether a
// marker was removed. A missing marker is not an error.
func (*Locker) CleanStale(path string, maxAge time.Duration) (bool, error) {
	marker := entity.LockPathFor(path)
	info, err := os.Stat(marker)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &entity.StorageError{Op: "stat lock", Path: marker, Err: err}
	}
	if time.Since(info.ModTime()) < maxAge {
		return false, nil
	}
	if err := Release(path); err != nil {
		return false, err
	}
	return true, nil
}

// Held reports whether a marker currently guards path.
func Held(path string) bool {
	_, err := os.Stat(entity.LockPathFor(path))
	return err == nil
}

// Release removes the marker guarding path. An absent marker is a no-op.
func Release(path string) error {
	marker := entity.LockPathFor(path)
	if err := os.Remove(marker); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &entity.StorageError{Op: "unlock", Path: marker, Err: err}
	}
	return nil
}

func (l *Locker) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.initialInterval
	b.MaxInterval = l.maxInterval
	return b
}

func createMarker(marker string) error {
	f, err := os.OpenFile(marker, os.O_CREATE|os.O_EXCL|os.O_WRONLY, markerPerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errHeld
		}
		return backoff.Permanent(&entity.StorageError{Op: "lock", Path: marker, Err: err})
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(marker)
		return backoff.Permanent(&entity.StorageError{Op: "lock", Path: marker, Err: err})
	}
	return nil
}
