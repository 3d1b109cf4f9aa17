package port

import "github.com/bnema/devconf/internal/domain/merge"

// DiffFormatter renders document changes for display.
type DiffFormatter interface {
	// FormatChanges returns changes formatted as a diff, or a short notice
	// when there are none.
	FormatChanges(changes []merge.Change) string
}
