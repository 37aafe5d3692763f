package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/hrygo/laddoo/plugin/aitime"
	"github.com/hrygo/laddoo/plugin/schedule"
	"github.com/hrygo/laddoo/store"
)

// Service defines the reminder business logic shared by the assistant,
// the CLI and the HTTP API.
type Service interface {
	// ParseTime normalizes and parses a spoken time of day.
	ParseTime(ctx context.Context, text string) (aitime.ParsedTime, error)

	// ParseDate normalizes and parses a spoken calendar date.
	ParseDate(ctx context.Context, text string) (aitime.ParsedDate, error)

	// Schedule composes date and clock in the current year and rejects
	// instants before now with PAST_INSTANT.
	Schedule(ctx context.Context, date aitime.ParsedDate, clock aitime.ParsedTime) (aitime.Timestamp, error)

	// Resolve parses both phrases and schedules the result.
	Resolve(ctx context.Context, datePhrase, timePhrase string) (aitime.Timestamp, error)

	// Exists reports whether a reminder is stored at key.
	Exists(ctx context.Context, key aitime.Timestamp) (bool, error)

	// Add stores a new reminder. An occupied key fails with DUPLICATE_KEY
	// and leaves the store unchanged.
	Add(ctx context.Context, create *AddRequest) (*store.Reminder, error)

	// List returns every stored reminder in key order.
	List(ctx context.Context) ([]*store.Reminder, error)

	// Upcoming resolves every reminder to its next occurrence, sorted
	// chronologically. Once reminders in the past are omitted.
	Upcoming(ctx context.Context) ([]*Occurrence, error)

	// Find returns reminders whose content contains query, case-insensitively.
	Find(ctx context.Context, query string) ([]*store.Reminder, error)

	// Remove deletes the reminder at key. An absent key fails with NOT_FOUND.
	Remove(ctx context.Context, key string) error
}

// AddRequest represents the request to add a reminder.
type AddRequest struct {
	Key     aitime.Timestamp
	Content string
	// Recurrence defaults to schedule.Once when empty.
	Recurrence schedule.Rule
}

// Occurrence is the next concrete instant a reminder is due. It is computed
// on demand and never persisted.
type Occurrence struct {
	At         time.Time     `json:"at"`
	Key        string        `json:"key"`
	Content    string        `json:"content"`
	Recurrence schedule.Rule `json:"recurrence"`
}

// occurrenceLayout renders an instant as "Monday, June 02 at 03:30 PM".
const occurrenceLayout = "Monday, January 02 at 03:04 PM"

// Describe renders the occurrence the way it is spoken, e.g.
// "call mom on Tuesday, June 02 at 03:30 PM, repeating weekly".
func (o *Occurrence) Describe() string {
	return fmt.Sprintf("%s on %s, repeating %s", o.Content, o.At.Format(occurrenceLayout), o.Recurrence)
}
