package notify

import (
	"context"
	"sync"
)

// MemorySender records messages for tests and can be told to fail, which
// exercises the fail-closed paths of the workflow.
type MemorySender struct {
	mu       sync.Mutex
	sent     []Message
	failWith error
}

// NewMemorySender constructs an always-succeeding fake.
func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

func (s *MemorySender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.sent = append(s.sent, msg)
	return nil
}

// Sent returns a copy of everything delivered so far.
func (s *MemorySender) Sent() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message{}, s.sent...)
}

// FailWith makes subsequent sends return err; nil restores delivery.
func (s *MemorySender) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}
