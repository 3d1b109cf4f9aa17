package port

import (
	"context"
	"time"
)

// LogArchiver moves finished log files aside and prunes old archives.
type LogArchiver interface {
	// Archive moves every "*.log" file in logDir into logDir/name and returns
	// the archive directory. An empty name selects a timestamped default.
	Archive(ctx context.Context, logDir, name string) (string, error)
	// Prune deletes archive directories in logDir older than retain and
	// returns the removed paths.
	Prune(ctx context.Context, logDir string, retain time.Duration) ([]string, error)
}
