package trace

import "context"

// Log is the append-only collaborator the workflow writes issuance rows to.
// Append must never mutate earlier rows; an issuance error appends a second
// row, it does not rewrite the first. List serves the management surface.
type Log interface {
	Append(ctx context.Context, rec Record) error
	List(ctx context.Context) ([]Record, error)
}
