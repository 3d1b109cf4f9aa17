package config

import (
	"fmt"
	"strings"

	"github.com/bnema/devconf/internal/domain/merge"
)

// ConfigDiffFormatter implements port.DiffFormatter for formatting document changes.
type ConfigDiffFormatter struct{}

// NewDiffFormatter creates a new ConfigDiffFormatter.
func NewDiffFormatter() *ConfigDiffFormatter {
	return &ConfigDiffFormatter{}
}

// FormatChanges returns changes formatted as a diff for display.
func (*ConfigDiffFormatter) FormatChanges(changes []merge.Change) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	sb.WriteString("Reconciliation changes:\n\n")

	for _, change := range changes {
		switch change.Type {
		case merge.ChangeAdded:
			sb.WriteString(fmt.Sprintf("  + %s = %s\n", change.Key, change.NewValue))
		case merge.ChangeRemoved:
			sb.WriteString(fmt.Sprintf("  - %s = %s\n", change.Key, change.OldValue))
		case merge.ChangeModified:
			sb.WriteString(fmt.Sprintf("  ~ %s: %s -> %s\n", change.Key, change.OldValue, change.NewValue))
		}
	}

	return sb.String()
}
