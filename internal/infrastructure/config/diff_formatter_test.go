package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/devconf/internal/domain/merge"
)

func TestFormatChanges(t *testing.T) {
	f := NewDiffFormatter()

	assert.Equal(t, "No changes detected.", f.FormatChanges(nil))

	out := f.FormatChanges([]merge.Change{
		{Type: merge.ChangeAdded, Key: "listener.channels", NewValue: "1"},
		{Type: merge.ChangeRemoved, Key: "old_section", OldValue: `{"a":1}`},
		{Type: merge.ChangeModified, Key: "tts", OldValue: `"polly"`, NewValue: `{"module":"polly"}`},
	})
	assert.Contains(t, out, "  + listener.channels = 1\n")
	assert.Contains(t, out, "  - old_section = {\"a\":1}\n")
	assert.Contains(t, out, "  ~ tts: \"polly\" -> {\"module\":\"polly\"}\n")
}
