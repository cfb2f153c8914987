package memory

import (
	"context"
	"sync"

	"vincula/internal/trace"
)

// InMemoryLog keeps traceability rows in process memory for tests and
// single-node development.
type InMemoryLog struct {
	mu   sync.RWMutex
	rows []trace.Record
}

// New constructs an empty in-memory log.
func New() *InMemoryLog {
	return &InMemoryLog{}
}

func (l *InMemoryLog) Append(_ context.Context, rec trace.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rows = append(l.rows, rec)
	return nil
}

func (l *InMemoryLog) List(_ context.Context) ([]trace.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]trace.Record{}, l.rows...), nil
}
