package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/internal/profile"
	"github.com/hrygo/laddoo/store"
	storetest "github.com/hrygo/laddoo/store/test"
)

func newTestDB(t *testing.T) (store.Driver, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reminders.json")
	driver, err := NewDB(&profile.Profile{DSN: path})
	require.NoError(t, err)
	return driver, path
}

func TestDriver(t *testing.T) {
	storetest.RunDriverTests(t, func(t *testing.T) store.Driver {
		driver, _ := newTestDB(t)
		return driver
	})
}

func TestNewDB_RequiresDSN(t *testing.T) {
	_, err := NewDB(&profile.Profile{})
	require.Error(t, err)
}

func TestLoad_LegacyShapes(t *testing.T) {
	ctx := context.Background()
	driver, path := newTestDB(t)

	legacy := `{
    "2026-06-02 15:30": {"content": "call mom", "repeat": "weekly"},
    "2026-07-04 09:00": "parade",
    "2026-08-11 18:00": {"content": "dinner"}
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	list, err := driver.ListReminders(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "weekly"}, *list[0])
	assert.Equal(t, store.Reminder{Key: "2026-07-04 09:00", Content: "parade", Recurrence: "once"}, *list[1])
	assert.Equal(t, store.Reminder{Key: "2026-08-11 18:00", Content: "dinner", Recurrence: "once"}, *list[2])
}

func TestLoad_EmptyFile(t *testing.T) {
	driver, path := newTestDB(t)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	list, err := driver.ListReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLoad_CorruptFile(t *testing.T) {
	driver, path := newTestDB(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := driver.ListReminders(context.Background())
	require.Error(t, err)
	assert.True(t, rerrors.IsCode(err, rerrors.ErrCodeStorage))

	_, err = driver.UpsertReminder(context.Background(), &store.Reminder{Key: "2026-06-02 15:30", Content: "x", Recurrence: "once"})
	assert.True(t, rerrors.IsCode(err, rerrors.ErrCodeStorage))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "a failed write must leave the file untouched")
}

func TestSave_Format(t *testing.T) {
	driver, path := newTestDB(t)

	_, err := driver.UpsertReminder(context.Background(), &store.Reminder{Key: "2026-06-02 15:30", Content: "call mom", Recurrence: "weekly"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `{
    "2026-06-02 15:30": {
        "content": "call mom",
        "recurrence": "weekly"
    }
}`
	assert.Equal(t, want, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temporary file left behind: %s", e.Name())
	}
}
