package store

import (
	"context"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	Close() error

	// Reminder model related methods.
	// GetReminder returns (nil, nil) when no reminder exists at key.
	GetReminder(ctx context.Context, key string) (*Reminder, error)
	// CreateReminder fails with DUPLICATE_KEY, leaving the stored record
	// untouched, when a reminder already exists at create.Key.
	CreateReminder(ctx context.Context, create *Reminder) (*Reminder, error)
	UpsertReminder(ctx context.Context, upsert *Reminder) (*Reminder, error)
	DeleteReminder(ctx context.Context, key string) error
	// ListReminders returns reminders ordered by key, which is chronological.
	ListReminders(ctx context.Context) ([]*Reminder, error)
}
