package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vincula/internal/trace"
)

func TestAppendIsAppendOnly(t *testing.T) {
	log := New()
	ctx := context.Background()

	first := trace.Record{DocumentID: "FER-1", Status: trace.StatusSent}
	second := trace.Record{DocumentID: "FER-1", Status: trace.StatusErrorPrefix + "archive unreachable"}

	require.NoError(t, log.Append(ctx, first))
	require.NoError(t, log.Append(ctx, second))

	rows, err := log.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// The error row is a second row; the first is untouched.
	assert.Equal(t, trace.StatusSent, rows[0].Status)
	assert.Equal(t, "Error: archive unreachable", rows[1].Status)
}

func TestListReturnsCopy(t *testing.T) {
	log := New()
	ctx := context.Background()
	require.NoError(t, log.Append(ctx, trace.Record{DocumentID: "FER-1"}))

	rows, err := log.List(ctx)
	require.NoError(t, err)
	rows[0].DocumentID = "mutated"

	again, err := log.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "FER-1", again[0].DocumentID)
}
