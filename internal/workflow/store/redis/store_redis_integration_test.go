//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vincula/internal/workflow"
	"vincula/pkg/platform/sentinel"
	"vincula/pkg/testutil/containers"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	rc := containers.NewRedisContainer(t)
	return New(rc.Client, time.Hour)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	session := &workflow.Session{
		ID:        "sess-1",
		State:     workflow.StateAwaitingVerification,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, workflow.StateAwaitingVerification, got.State)
	assert.Equal(t, session.CreatedAt, got.CreatedAt)
}

func TestRedisStoreMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestRedisStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &workflow.Session{ID: "sess-2", State: workflow.StateTermsPending}))
	require.NoError(t, store.Delete(ctx, "sess-2"))

	_, err := store.Get(ctx, "sess-2")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
