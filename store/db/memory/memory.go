// Package memory is an in-process reminder driver. Nothing is persisted.
package memory

import (
	"context"
	"sort"
	"sync"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/store"
)

// DB is an in-memory implementation of store.Driver.
type DB struct {
	reminders map[string]store.Reminder
	mu        sync.RWMutex
}

// NewDB creates a new in-memory reminder driver.
func NewDB() *DB {
	return &DB{
		reminders: make(map[string]store.Reminder),
	}
}

func (d *DB) Close() error {
	return nil
}

// GetReminder retrieves a reminder by key.
func (d *DB) GetReminder(_ context.Context, key string) (*store.Reminder, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	reminder, ok := d.reminders[key]
	if !ok {
		return nil, nil
	}
	return &reminder, nil
}

// CreateReminder stores a reminder unless its key is taken.
func (d *DB) CreateReminder(_ context.Context, create *store.Reminder) (*store.Reminder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.reminders[create.Key]; ok {
		return nil, rerrors.DuplicateKey(create.Key)
	}
	d.reminders[create.Key] = *create
	return create, nil
}

// UpsertReminder stores a reminder at its key.
func (d *DB) UpsertReminder(_ context.Context, upsert *store.Reminder) (*store.Reminder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reminders[upsert.Key] = *upsert
	return upsert, nil
}

// DeleteReminder removes a reminder. Deleting an absent key is a no-op.
func (d *DB) DeleteReminder(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.reminders, key)
	return nil
}

// ListReminders returns all reminders ordered by key.
func (d *DB) ListReminders(_ context.Context) ([]*store.Reminder, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	list := make([]*store.Reminder, 0, len(d.reminders))
	for _, r := range d.reminders {
		reminder := r
		list = append(list, &reminder)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list, nil
}
