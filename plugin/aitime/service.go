package aitime

import (
	"context"
	"time"
)

// Service implements TimeService with rule-based parsing.
type Service struct{}

// NewService creates a new time service.
func NewService() *Service {
	return &Service{}
}

// ParseTime normalizes and parses a time of day.
func (s *Service) ParseTime(_ context.Context, input string) (ParsedTime, error) {
	return ParseTime(NormalizeTime(input))
}

// ParseDate normalizes and parses a calendar date.
func (s *Service) ParseDate(_ context.Context, input string) (ParsedDate, error) {
	return ParseDate(Normalize(input))
}

// Compose combines date and clock in the year of reference.
func (s *Service) Compose(_ context.Context, date ParsedDate, clock ParsedTime, reference time.Time) (Timestamp, error) {
	return Compose(date.Month, date.Day, clock.Hour, clock.Minute, reference.Year())
}

// Ensure Service implements TimeService
var _ TimeService = (*Service)(nil)
