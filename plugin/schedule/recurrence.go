// Package schedule resolves recurring reminders to their next occurrence.
package schedule

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/hrygo/laddoo/plugin/aitime"
)

// Rule is the recurrence of a reminder.
type Rule string

const (
	Once    Rule = "once"
	Daily   Rule = "daily"
	Weekly  Rule = "weekly"
	Monthly Rule = "monthly"
	Yearly  Rule = "yearly"
)

// Rules lists every supported rule in the order they are offered to the user.
var Rules = []Rule{Daily, Weekly, Monthly, Yearly, Once}

const (
	// MonthlyDayLimit caps the day of month on every monthly step. A reminder
	// created on the 29th-31st settles on the 28th after its first step.
	MonthlyDayLimit = 28

	// matchCutoff is the minimum similarity for a spoken answer to select a rule.
	matchCutoff = 0.6
)

// Valid reports whether r is a supported rule.
func (r Rule) Valid() bool {
	switch r {
	case Once, Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// ParseRule parses a stored rule name. It is case-insensitive.
func ParseRule(s string) (Rule, error) {
	r := Rule(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", errors.Errorf("unsupported recurrence rule: %q", s)
	}
	return r, nil
}

// MatchRule picks the rule closest to a spoken answer such as "weakly" or
// "repeat it monthly". Answers that resemble no rule default to Once.
func MatchRule(spoken string) Rule {
	spoken = strings.ToLower(strings.TrimSpace(spoken))
	if spoken == "" {
		return Once
	}

	if r, ok := closestRule(spoken); ok {
		return r
	}
	for _, word := range strings.Fields(spoken) {
		if r, ok := closestRule(word); ok {
			return r
		}
	}
	return Once
}

// closestRule returns the rule with the highest similarity ratio to word,
// provided it reaches matchCutoff.
func closestRule(word string) (Rule, bool) {
	var (
		best      Rule
		bestScore float64
	)

	matcher := difflib.NewMatcher(nil, strings.Split(word, ""))
	for _, r := range Rules {
		matcher.SetSeq1(strings.Split(string(r), ""))
		if matcher.RealQuickRatio() < matchCutoff || matcher.QuickRatio() < matchCutoff {
			continue
		}
		if score := matcher.Ratio(); score >= matchCutoff && score > bestScore {
			best, bestScore = r, score
		}
	}

	return best, best != ""
}

// NextOccurrence returns the first occurrence of a reminder at or after now.
// Once reminders never advance; the caller drops them when they are past.
// Unknown rules are treated as Once.
func NextOccurrence(base time.Time, rule Rule, now time.Time) time.Time {
	switch rule {
	case Daily:
		return advance(base, now, func(t time.Time) time.Time { return t.AddDate(0, 0, 1) })
	case Weekly:
		return advance(base, now, func(t time.Time) time.Time { return t.AddDate(0, 0, 7) })
	case Monthly:
		return advance(base, now, nextMonth)
	case Yearly:
		return nextYearly(base, now)
	default:
		return base
	}
}

// advance applies step until the result is no longer before now.
func advance(t, now time.Time, step func(time.Time) time.Time) time.Time {
	for t.Before(now) {
		t = step(t)
	}
	return t
}

// nextMonth moves t one calendar month forward, clamping the day of month to
// MonthlyDayLimit.
func nextMonth(t time.Time) time.Time {
	year, month := t.Year(), t.Month()+1
	if month > time.December {
		month = time.January
		year++
	}
	day := min(t.Day(), MonthlyDayLimit)
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// nextYearly keeps month and day of base fixed. A February 29 base falls on
// February 28 in common years and returns to the 29th in leap years.
func nextYearly(base, now time.Time) time.Time {
	for year := base.Year(); ; year++ {
		day := base.Day()
		if !aitime.ValidDate(year, base.Month(), day) {
			day = 28
		}
		t := time.Date(year, base.Month(), day, base.Hour(), base.Minute(), base.Second(), base.Nanosecond(), base.Location())
		if !t.Before(now) {
			return t
		}
	}
}
