package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScript_Listen(t *testing.T) {
	ctx := context.Background()
	s := NewScript(2, "  Add ", "", "", "", "View")

	got, err := s.Listen(ctx, "Your command?")
	require.NoError(t, err)
	assert.Equal(t, "add", got)

	// Two silent reads exhaust the retries.
	got, err = s.Listen(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Listen(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "view", got)

	_, err = s.Listen(ctx, "")
	assert.ErrorIs(t, err, ErrClosed)

	assert.Equal(t, []string{
		"Your command?",
		"You were silent. Please try again.",
		"You were silent. Please try again.",
		"You were silent. Please try again.",
	}, s.Spoken())
}

func TestScript_Closed(t *testing.T) {
	s := NewScript(1, "add")
	require.NoError(t, s.Close())

	_, err := s.Listen(context.Background(), "")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestScript_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScript(1, "add").Listen(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
