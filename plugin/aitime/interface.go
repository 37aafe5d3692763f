// Package aitime turns spoken English date and time phrases into reminder
// timestamps.
package aitime

import (
	"context"
	"time"
)

// TimeService defines the spoken time parsing boundary consumed by the
// reminder service and the conversational assistant.
type TimeService interface {
	// ParseTime normalizes and parses a time of day.
	// Supports: "3 pm", "3:30 p.m.", "three forty five pm", "15 05"
	ParseTime(ctx context.Context, input string) (ParsedTime, error)

	// ParseDate normalizes and parses a calendar date.
	// Supports: "June 2nd", "the 11th of august", "march twenty first"
	ParseDate(ctx context.Context, input string) (ParsedDate, error)

	// Compose combines a date and time into a timestamp in the year of reference.
	Compose(ctx context.Context, date ParsedDate, clock ParsedTime, reference time.Time) (Timestamp, error)
}
