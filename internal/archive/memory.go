package archive

import (
	"context"
	"sync"
)

// MemoryStore keeps archived documents in memory for tests and can be told
// to fail, which exercises the partial-success path of the workflow.
type MemoryStore struct {
	mu       sync.Mutex
	stored   map[string][]byte
	failWith error
}

// NewMemoryStore constructs an empty in-memory archive.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{stored: make(map[string][]byte)}
}

func (s *MemoryStore) Store(_ context.Context, name string, data []byte) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return Handle{}, s.failWith
	}
	s.stored[name] = append([]byte{}, data...)
	return Handle{Name: name, Link: "memory://" + name}, nil
}

// Stored returns the archived bytes for name, or nil.
func (s *MemoryStore) Stored(name string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stored[name]
}

// Count returns how many artifacts were archived.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stored)
}

// FailWith makes subsequent stores return err; nil restores archival.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}
