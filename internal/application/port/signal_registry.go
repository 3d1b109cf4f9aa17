package port

import (
	"context"
	"time"
)

// Signal lifetimes understood by SignalRegistry.Check.
const (
	// SignalSingleUse consumes the signal when it is checked.
	SignalSingleUse time.Duration = 0
	// SignalNoExpiry keeps the signal until it is cleared. Any negative
	// lifetime behaves the same.
	SignalNoExpiry time.Duration = -1
)

// SignalRegistry manages named, file-backed flags shared between processes.
// It is unrelated to document locking.
type SignalRegistry interface {
	// Create raises the named signal.
	Create(ctx context.Context, name string) error
	// Check reports whether the signal is raised. A ttl of SignalSingleUse
	// consumes it, a negative ttl (SignalNoExpiry) never expires it, and a positive ttl expires
	// (and removes) it once that long has passed since it was raised.
	Check(ctx context.Context, name string, ttl time.Duration) (bool, error)
	// Clear removes every signal whose name starts with prefix or contains
	// "_<prefix>_", returning how many were removed.
	Clear(ctx context.Context, prefix string) (int, error)
}
