// Package assistant runs the spoken conversation that adds, lists and
// removes reminders.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/plugin/aitime"
	"github.com/hrygo/laddoo/plugin/schedule"
	"github.com/hrygo/laddoo/plugin/speech"
	"github.com/hrygo/laddoo/server/service/reminder"
)

// DefaultMaxAttempts bounds how often the add flow asks for a date and time.
const DefaultMaxAttempts = 5

var (
	addConfirmations    = []string{"do it", "yes", "add it"}
	removeConfirmations = []string{"do it", "yes", "remove it"}
)

// Assistant is the conversational front end of the reminder service.
type Assistant struct {
	engine      speech.Engine
	reminders   reminder.Service
	now         func() time.Time
	maxAttempts int
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithClock replaces time.Now for the greeting.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		a.now = now
	}
}

// WithMaxAttempts bounds the date and time prompts of the add flow.
func WithMaxAttempts(n int) Option {
	return func(a *Assistant) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// New creates an assistant speaking through engine.
func New(engine speech.Engine, reminders reminder.Service, opts ...Option) *Assistant {
	a := &Assistant{
		engine:      engine,
		reminders:   reminders,
		now:         time.Now,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run greets the user and dispatches commands until the user says exit or
// the engine is closed.
func (a *Assistant) Run(ctx context.Context) error {
	a.greet()

	for {
		command, err := a.engine.Listen(ctx, "Your command?")
		if err != nil {
			if errors.Is(err, speech.ErrClosed) {
				return nil
			}
			return err
		}

		switch {
		case containsAny(command, "add"):
			err = a.add(ctx)
		case containsAny(command, "view", "show"):
			err = a.view(ctx)
		case containsAny(command, "remove", "delete"):
			err = a.remove(ctx)
		case containsAny(command, "exit", "stop"):
			a.engine.Speak("Goodbye!")
			return nil
		default:
			a.engine.Speak("Unknown command. Try again.")
		}

		if err != nil {
			if errors.Is(err, speech.ErrClosed) {
				return nil
			}
			if !rerrors.IsCode(err, rerrors.ErrCodeStorage) {
				return err
			}
			slog.Error("reminder storage failed", "error", err)
			a.engine.Speak("Sorry, I could not reach your reminders.")
		}
	}
}

func (a *Assistant) greet() {
	switch hour := a.now().Hour(); {
	case hour < 12:
		a.engine.Speak("Good Morning!")
	case hour < 18:
		a.engine.Speak("Good Afternoon!")
	default:
		a.engine.Speak("Good Evening!")
	}
	a.engine.Speak("I am your assistant, Laddoo. How can I help you today?")
}

func (a *Assistant) add(ctx context.Context) error {
	content, err := a.engine.Listen(ctx, "What is the reminder about?")
	if err != nil {
		return err
	}
	if content == "" {
		a.engine.Speak("Reminder content not received.")
		return nil
	}

	key, err := a.askInstant(ctx)
	if err != nil || key == "" {
		return err
	}

	answer, err := a.engine.Listen(ctx, "Repeat daily, weekly, monthly, yearly or once?")
	if err != nil {
		return err
	}
	rule := schedule.MatchRule(answer)

	exists, err := a.reminders.Exists(ctx, key)
	if err != nil {
		return err
	}
	if exists {
		a.engine.Speak("You already have a reminder at that time.")
		return nil
	}

	a.engine.Speak(fmt.Sprintf("You said '%s' on %s repeating %s. Say do it or add it to confirm.", content, key, rule))
	confirmation, err := a.engine.Listen(ctx, "")
	if err != nil {
		return err
	}
	if !containsAny(confirmation, addConfirmations...) {
		a.engine.Speak("Reminder not saved.")
		return nil
	}

	_, err = a.reminders.Add(ctx, &reminder.AddRequest{Key: key, Content: content, Recurrence: rule})
	switch {
	case rerrors.IsCode(err, rerrors.ErrCodeDuplicateKey):
		a.engine.Speak("You already have a reminder at that time.")
	case rerrors.IsCode(err, rerrors.ErrCodePastInstant):
		a.engine.Speak("That date and time is already over. Reminder not saved.")
	case err != nil:
		return err
	default:
		a.engine.Speak("Reminder saved.")
	}
	return nil
}

// askInstant prompts for a date and a time until they form a future instant.
// It returns "" once the attempts are used up.
func (a *Assistant) askInstant(ctx context.Context) (aitime.Timestamp, error) {
	for range a.maxAttempts {
		datePhrase, err := a.engine.Listen(ctx, "Say the date like 'June 2' or 'August 11'")
		if err != nil {
			return "", err
		}
		date, err := a.reminders.ParseDate(ctx, datePhrase)
		if err != nil {
			a.engine.Speak("Could not understand the date.")
			continue
		}

		timePhrase, err := a.engine.Listen(ctx, "What time? Say like '3 PM' or '3 30 PM'")
		if err != nil {
			return "", err
		}
		clock, err := a.reminders.ParseTime(ctx, timePhrase)
		if err != nil {
			a.engine.Speak("Could not understand the time.")
			continue
		}

		key, err := a.reminders.Schedule(ctx, date, clock)
		switch {
		case rerrors.IsCode(err, rerrors.ErrCodePastInstant):
			a.engine.Speak("That date and time is already over. Please say another date.")
		case err != nil:
			slog.Debug("rejected reminder instant", "date", datePhrase, "time", timePhrase, "error", err)
			a.engine.Speak("Invalid date or time.")
		default:
			return key, nil
		}
	}

	a.engine.Speak("I could not get a valid date and time. Reminder not saved.")
	return "", nil
}

func (a *Assistant) view(ctx context.Context) error {
	stored, err := a.reminders.List(ctx)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		a.engine.Speak("You have no reminders.")
		return nil
	}

	upcoming, err := a.reminders.Upcoming(ctx)
	if err != nil {
		return err
	}
	if len(upcoming) == 0 {
		a.engine.Speak("No upcoming reminders.")
		return nil
	}

	a.engine.Speak("Here are your upcoming reminders:")
	for _, o := range upcoming {
		a.engine.Speak(o.Describe())
	}
	return nil
}

func (a *Assistant) remove(ctx context.Context) error {
	target, err := a.engine.Listen(ctx, "What reminder do you want to remove?")
	if err != nil {
		return err
	}

	matches, err := a.reminders.Find(ctx, target)
	if err != nil && !rerrors.IsCode(err, rerrors.ErrCodeNotRecognized) {
		return err
	}

	for _, m := range matches {
		a.engine.Speak(fmt.Sprintf("Found: %s at %s. Say 'do it' to confirm.", m.Content, m.Key))
		confirmation, err := a.engine.Listen(ctx, "")
		if err != nil {
			return err
		}
		if !containsAny(confirmation, removeConfirmations...) {
			continue
		}
		if err := a.reminders.Remove(ctx, m.Key); err != nil {
			return err
		}
		a.engine.Speak("Reminder removed.")
		return nil
	}

	a.engine.Speak("No matching reminder found.")
	return nil
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
