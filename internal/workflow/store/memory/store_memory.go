package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"vincula/internal/workflow"
	"vincula/pkg/platform/sentinel"
)

// InMemoryStore keeps sessions in process memory. Sessions are stored as
// serialized snapshots so callers never share a pointer with the store, the
// same isolation the Redis store provides.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// New constructs an empty in-memory session store.
func New() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string][]byte)}
}

func (s *InMemoryStore) Save(_ context.Context, session *workflow.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = data
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id string) (*workflow.Session, error) {
	s.mu.RLock()
	data, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, sentinel.ErrNotFound)
	}
	var session workflow.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
