package store

import (
	"context"
)

// Reminder is a stored reminder record keyed by its timestamp.
type Reminder struct {
	// Key is the fixed-width timestamp "YYYY-MM-DD HH:MM" of the first occurrence.
	Key        string
	Content    string
	Recurrence string
}

// GetReminder returns the reminder stored at key, or nil when absent.
func (s *Store) GetReminder(ctx context.Context, key string) (*Reminder, error) {
	return s.driver.GetReminder(ctx, key)
}

// CreateReminder stores a new reminder. It fails with DUPLICATE_KEY when the
// key is taken.
func (s *Store) CreateReminder(ctx context.Context, create *Reminder) (*Reminder, error) {
	return s.driver.CreateReminder(ctx, create)
}

// UpsertReminder stores the reminder at its key, replacing any existing record.
func (s *Store) UpsertReminder(ctx context.Context, upsert *Reminder) (*Reminder, error) {
	return s.driver.UpsertReminder(ctx, upsert)
}

// DeleteReminder removes the reminder stored at key.
func (s *Store) DeleteReminder(ctx context.Context, key string) error {
	return s.driver.DeleteReminder(ctx, key)
}

// ListReminders returns every stored reminder ordered by key.
func (s *Store) ListReminders(ctx context.Context) ([]*Reminder, error) {
	return s.driver.ListReminders(ctx)
}
