// Package archive defines the artifact persistence collaborator that keeps
// the finalized consent documents.
package archive

import "context"

// Handle identifies a stored artifact and the link surfaced to the subject.
type Handle struct {
	Name string
	Link string
}

// Store archives a finalized document. It is only called after the subject
// has received the document by email; a failure here is a partial-success
// condition, not a reason to withhold the document.
type Store interface {
	Store(ctx context.Context, name string, data []byte) (Handle, error)
}
