package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"vincula/internal/workflow"
	"vincula/pkg/platform/sentinel"
)

// DefaultTTL bounds abandoned sessions. A completed or restarted session
// refreshes the TTL on every save, so active subjects never expire mid-flow.
const DefaultTTL = 24 * time.Hour

// Store persists sessions in Redis so the service can run stateless behind a
// load balancer. Sessions serialize to JSON; the signature PNG rides along
// base64-encoded.
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// New builds a Redis session store. ttl <= 0 falls back to DefaultTTL.
func New(client *goredis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

func key(id string) string {
	return "vincula:session:" + id
}

func (s *Store) Save(ctx context.Context, session *workflow.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, key(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (*workflow.Session, error) {
	data, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, fmt.Errorf("session %s: %w", id, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	var session workflow.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return &session, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
