package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vincula/internal/consent"
	"vincula/internal/workflow"
	"vincula/pkg/platform/sentinel"
)

func TestGetUnknownSession(t *testing.T) {
	store := New()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestSaveGetRoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	session := &workflow.Session{
		ID:    "s1",
		State: workflow.StateNaturalForm,
		Request: &consent.Request{
			Kind:      consent.SubjectNaturalPerson,
			Natural:   &consent.NaturalPerson{FullName: "Ana Pérez", IDNumber: "123"},
			Signature: []byte{0x89, 0x50, 0x4e, 0x47},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, workflow.StateNaturalForm, got.State)
	assert.Equal(t, "Ana Pérez", got.Request.Natural.FullName)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, got.Request.Signature)
}

func TestGetReturnsSnapshotNotSharedPointer(t *testing.T) {
	store := New()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &workflow.Session{ID: "s1", State: workflow.StateTermsPending}))

	first, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	first.State = workflow.StateCompleted

	second, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, workflow.StateTermsPending, second.State)
}

func TestDelete(t *testing.T) {
	store := New()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &workflow.Session{ID: "s1"}))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
