// Package test holds driver conformance checks shared by every store driver.
package test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/store"
)

// concurrentWriters is the number of goroutines racing in the concurrency checks.
const concurrentWriters = 20

// RunDriverTests exercises the store.Driver contract against drivers built by newDriver.
// Each subtest gets a fresh, empty driver.
func RunDriverTests(t *testing.T, newDriver func(t *testing.T) store.Driver) {
	t.Run("get absent", func(t *testing.T) {
		ctx := context.Background()
		d := newDriver(t)

		got, err := d.GetReminder(ctx, "2026-06-02 15:30")
		require.NoError(t, err)
		assert.Nil(t, got)

		list, err := d.ListReminders(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("upsert and get", func(t *testing.T) {
		ctx := context.Background()
		d := newDriver(t)

		_, err := d.UpsertReminder(ctx, &store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "weekly"})
		require.NoError(t, err)

		got, err := d.GetReminder(ctx, "2026-06-02 15:30")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "weekly"}, *got)
	})

	t.Run("upsert replaces", func(t *testing.T) {
		ctx := context.Background()
		d := newDriver(t)

		_, err := d.UpsertReminder(ctx, &store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "once"})
		require.NoError(t, err)
		_, err = d.UpsertReminder(ctx, &store.Reminder{Key: "2026-06-02 15:30", Content: "call dad", Recurrence: "daily"})
		require.NoError(t, err)

		list, err := d.ListReminders(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "call dad", list[0].Content)
		assert.Equal(t, "daily", list[0].Recurrence)
	})

	t.Run("list is ordered by key", func(t *testing.T) {
		ctx := context.Background()
		d := newDriver(t)

		for _, key := range []string{"2026-12-01 09:00", "2026-01-15 18:30", "2026-06-02 07:05"} {
			_, err := d.UpsertReminder(ctx, &store.Reminder{Key: key, Content: "note " + key, Recurrence: "once"})
			require.NoError(t, err)
		}

		list, err := d.ListReminders(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "2026-01-15 18:30", list[0].Key)
		assert.Equal(t, "2026-06-02 07:05", list[1].Key)
		assert.Equal(t, "2026-12-01 09:00", list[2].Key)
	})

	t.Run("delete", func(t *testing.T) {
		ctx := context.Background()
		d := newDriver(t)

		_, err := d.UpsertReminder(ctx, &store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "once"})
		require.NoError(t, err)
		require.NoError(t, d.DeleteReminder(ctx, "2026-06-02 15:30"))
		require.NoError(t, d.DeleteReminder(ctx, "2026-06-02 15:30"))

		got, err := d.GetReminder(ctx, "2026-06-02 15:30")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("create rejects a taken key", func(t *testing.T) {
		ctx := context.Background()
		d := newDriver(t)

		_, err := d.CreateReminder(ctx, &store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "weekly"})
		require.NoError(t, err)

		_, err = d.CreateReminder(ctx, &store.Reminder{Key: "2026-06-02 15:30", Content: "call dad", Recurrence: "once"})
		require.Error(t, err)
		assert.True(t, rerrors.IsCode(err, rerrors.ErrCodeDuplicateKey), "got %v", err)

		got, err := d.GetReminder(ctx, "2026-06-02 15:30")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "weekly"}, *got)
	})

	t.Run("concurrent creates of one key", func(t *testing.T) {
		ctx := context.Background()
		d := newDriver(t)

		var (
			wg         sync.WaitGroup
			succeeded  atomic.Int32
			duplicates atomic.Int32
		)
		for i := range concurrentWriters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := d.CreateReminder(ctx, &store.Reminder{Key: "2026-06-02 15:30", Content: fmt.Sprintf("writer %d", i), Recurrence: "once"})
				switch {
				case err == nil:
					succeeded.Add(1)
				case rerrors.IsCode(err, rerrors.ErrCodeDuplicateKey):
					duplicates.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), succeeded.Load())
		assert.Equal(t, int32(concurrentWriters-1), duplicates.Load())
	})

	t.Run("concurrent creates of distinct keys", func(t *testing.T) {
		ctx := context.Background()
		d := newDriver(t)

		var wg sync.WaitGroup
		for i := range concurrentWriters {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key := fmt.Sprintf("2026-06-%02d 09:00", i+1)
				_, err := d.CreateReminder(ctx, &store.Reminder{Key: key, Content: "note " + key, Recurrence: "once"})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		list, err := d.ListReminders(ctx)
		require.NoError(t, err)
		assert.Len(t, list, concurrentWriters)
	})
}
