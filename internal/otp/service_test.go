package otp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vincula/internal/notify"
	dErrors "vincula/pkg/domain-errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerateCodeShape(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{6}$`)
	for i := 0; i < 10000; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.True(t, pattern.MatchString(code), "code %q is not 6 ASCII digits", code)
	}
}

func TestIssueDispatchesCodeToDestination(t *testing.T) {
	sender := notify.NewMemorySender()
	issued := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	mgr := NewManager(sender, testLogger(), func() time.Time { return issued })

	ch, err := mgr.Issue(context.Background(), "ana@x.co")
	require.NoError(t, err)
	assert.Equal(t, "ana@x.co", ch.Destination)
	assert.Equal(t, issued, ch.IssuedAt)
	assert.Len(t, ch.Code, 6)

	sent := sender.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ana@x.co", sent[0].To)
	assert.Contains(t, sent[0].HTMLBody, ch.Code)
	assert.Nil(t, sent[0].Attachment)
}

func TestIssueFailsClosedOnDeliveryFailure(t *testing.T) {
	sender := notify.NewMemorySender()
	sender.FailWith(errors.New("smtp dial timeout"))
	mgr := NewManager(sender, testLogger(), nil)

	ch, err := mgr.Issue(context.Background(), "ana@x.co")
	assert.Nil(t, ch)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeDelivery))
}

func TestVerifyExactMatchOnly(t *testing.T) {
	mgr := NewManager(notify.NewMemorySender(), testLogger(), nil)
	ch := &Challenge{Code: "001234"}

	assert.True(t, mgr.Verify(ch, "001234"))
	// No implicit left-padding or trimming.
	assert.False(t, mgr.Verify(ch, "1234"))
	assert.False(t, mgr.Verify(ch, " 001234"))
	assert.False(t, mgr.Verify(ch, "001234 "))
	assert.False(t, mgr.Verify(nil, "001234"))
}
