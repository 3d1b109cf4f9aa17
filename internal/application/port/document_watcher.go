package port

import "context"

// DocumentWatcher reports changes made to a document file by other processes.
type DocumentWatcher interface {
	// Watch calls onChange each time the file at path is replaced or written,
	// until ctx is cancelled. Lock and staging artifacts never trigger it.
	Watch(ctx context.Context, path string, onChange func()) error
}
