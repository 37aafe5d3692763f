// Package reminder provides reminder management on top of the spoken time
// parser, the recurrence resolver and the reminder store.
//
// All instants are naive wall clock times in the service location.
package reminder

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/plugin/aitime"
	"github.com/hrygo/laddoo/plugin/schedule"
	"github.com/hrygo/laddoo/store"
)

type service struct {
	store *store.Store
	times aitime.TimeService
	now   func() time.Time
	loc   *time.Location
}

// Option configures the reminder service.
type Option func(*service)

// WithClock replaces time.Now, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithLocation sets the location reminder keys are interpreted in.
// Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *service) {
		s.loc = loc
	}
}

// WithTimeService replaces the rule-based time parser.
func WithTimeService(times aitime.TimeService) Option {
	return func(s *service) {
		s.times = times
	}
}

// NewService creates a new reminder service.
func NewService(store *store.Store, opts ...Option) Service {
	s := &service{
		store: store,
		times: aitime.NewService(),
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) currentTime() time.Time {
	return s.now().In(s.loc)
}

func (s *service) ParseTime(ctx context.Context, text string) (aitime.ParsedTime, error) {
	return s.times.ParseTime(ctx, text)
}

func (s *service) ParseDate(ctx context.Context, text string) (aitime.ParsedDate, error) {
	return s.times.ParseDate(ctx, text)
}

func (s *service) Schedule(ctx context.Context, date aitime.ParsedDate, clock aitime.ParsedTime) (aitime.Timestamp, error) {
	now := s.currentTime()
	ts, err := s.times.Compose(ctx, date, clock, now)
	if err != nil {
		return "", err
	}
	if err := s.checkFuture(ts, now); err != nil {
		return "", err
	}
	return ts, nil
}

func (s *service) Resolve(ctx context.Context, datePhrase, timePhrase string) (aitime.Timestamp, error) {
	date, err := s.ParseDate(ctx, datePhrase)
	if err != nil {
		return "", err
	}
	clock, err := s.ParseTime(ctx, timePhrase)
	if err != nil {
		return "", err
	}
	return s.Schedule(ctx, date, clock)
}

// checkFuture rejects instants strictly before now.
func (s *service) checkFuture(ts aitime.Timestamp, now time.Time) error {
	t, err := ts.Time(s.loc)
	if err != nil {
		return rerrors.Wrap(err, rerrors.ErrCodeInvalid, "malformed reminder key")
	}
	if t.Before(now) {
		return rerrors.PastInstant(ts.String())
	}
	return nil
}

func (s *service) Exists(ctx context.Context, key aitime.Timestamp) (bool, error) {
	existing, err := s.store.GetReminder(ctx, key.String())
	if err != nil {
		return false, errors.Wrap(err, "failed to get reminder")
	}
	return existing != nil, nil
}

func (s *service) Add(ctx context.Context, create *AddRequest) (*store.Reminder, error) {
	content := strings.TrimSpace(create.Content)
	if content == "" {
		return nil, rerrors.NotRecognized("reminder content is empty")
	}

	rule := create.Recurrence
	if rule == "" {
		rule = schedule.Once
	}
	rule, err := schedule.ParseRule(string(rule))
	if err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrCodeInvalid, "unsupported recurrence")
	}

	// The instant may have passed while the user was confirming.
	if err := s.checkFuture(create.Key, s.currentTime()); err != nil {
		return nil, err
	}

	// The driver checks and inserts in one step, so a taken key is never
	// overwritten by a concurrent add.
	reminder, err := s.store.CreateReminder(ctx, &store.Reminder{
		Key:        create.Key.String(),
		Content:    content,
		Recurrence: string(rule),
	})
	if rerrors.IsCode(err, rerrors.ErrCodeDuplicateKey) {
		return nil, err
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to save reminder")
	}

	slog.Info("reminder added",
		"key", reminder.Key,
		"recurrence", reminder.Recurrence,
	)
	return reminder, nil
}

func (s *service) List(ctx context.Context) ([]*store.Reminder, error) {
	list, err := s.store.ListReminders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reminders")
	}
	return list, nil
}

func (s *service) Upcoming(ctx context.Context) ([]*Occurrence, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.currentTime()
	occurrences := make([]*Occurrence, 0, len(list))
	for _, r := range list {
		base, err := aitime.ParseTimestamp(r.Key, s.loc)
		if err != nil {
			slog.Warn("skipping reminder with malformed key", "key", r.Key, "error", err)
			continue
		}

		rule := schedule.Rule(strings.ToLower(r.Recurrence))
		if !rule.Valid() {
			rule = schedule.Once
		}
		if rule == schedule.Once && base.Before(now) {
			continue
		}

		occurrences = append(occurrences, &Occurrence{
			At:         schedule.NextOccurrence(base, rule, now),
			Key:        r.Key,
			Content:    r.Content,
			Recurrence: rule,
		})
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		if !occurrences[i].At.Equal(occurrences[j].At) {
			return occurrences[i].At.Before(occurrences[j].At)
		}
		return occurrences[i].Key < occurrences[j].Key
	})
	return occurrences, nil
}

func (s *service) Find(ctx context.Context, query string) ([]*store.Reminder, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, rerrors.NotRecognized("search query is empty")
	}

	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []*store.Reminder
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.Content), query) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

func (s *service) Remove(ctx context.Context, key string) error {
	existing, err := s.store.GetReminder(ctx, key)
	if err != nil {
		return errors.Wrap(err, "failed to get reminder")
	}
	if existing == nil {
		return rerrors.NotFound(key)
	}

	if err := s.store.DeleteReminder(ctx, key); err != nil {
		return errors.Wrap(err, "failed to delete reminder")
	}

	slog.Info("reminder removed", "key", key)
	return nil
}
