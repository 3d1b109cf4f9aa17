// Package port defines the interfaces the use cases depend on.
package port

import (
	"context"
	"time"
)

// FileLock provides cross-process mutual exclusion scoped to one document path.
type FileLock interface {
	// Acquire blocks until the lock guarding path is held or timeout elapses,
	// in which case it fails with entity.ErrLockTimeout. The returned function
	// releases the lock and may be called more than once.
	Acquire(ctx context.Context, path string, timeout time.Duration) (release func() error, err error)

	// WithLock runs fn while holding the lock and releases it on every exit path.
	WithLock(ctx context.Context, path string, timeout time.Duration, fn func() error) error
}
