// Package store persists workflow sessions between HTTP requests. Sessions
// are isolated: a store never shares mutable state across session IDs.
package store

import (
	"context"

	"vincula/internal/workflow"
)

// Error Contract:
// All store methods follow this pattern:
// - Return sentinel.ErrNotFound (wrapped) when the session does not exist
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures
type Store interface {
	Save(ctx context.Context, session *workflow.Session) error
	Get(ctx context.Context, id string) (*workflow.Session, error)
	Delete(ctx context.Context, id string) error
}
