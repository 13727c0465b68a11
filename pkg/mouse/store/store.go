package store

import (
	"context"
	"time"
)

// Store persists processed runs so their output can be listed and shown
// again later. Vocabularies are never stored.
type Store interface {
	Close() error

	SaveRun(ctx context.Context, r Run) error
	// GetRun returns internalerr.ErrNotFound when no run has the id.
	GetRun(ctx context.Context, id string) (Run, error)
	// ListRuns returns up to limit runs, newest first. A limit of 0 or less
	// returns every run.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
}

// Run is one processed input and the JSON output it produced.
type Run struct {
	ID            string
	CreatedAt     time.Time
	Source        string
	Mode          string
	TokenCount    int
	SentenceCount int
	Output        []byte
}
