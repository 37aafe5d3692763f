package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/laddoo/store"
	storetest "github.com/hrygo/laddoo/store/test"
)

func TestDriver(t *testing.T) {
	storetest.RunDriverTests(t, func(*testing.T) store.Driver { return NewDB() })
}

func TestGetReminder_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	d := NewDB()

	_, err := d.UpsertReminder(ctx, &store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "once"})
	require.NoError(t, err)

	got, err := d.GetReminder(ctx, "2026-06-02 15:30")
	require.NoError(t, err)
	got.Content = "mutated"

	again, err := d.GetReminder(ctx, "2026-06-02 15:30")
	require.NoError(t, err)
	assert.Equal(t, "call mom", again.Content)
}
