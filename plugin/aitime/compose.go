package aitime

import (
	"time"

	"github.com/pkg/errors"

	rerrors "github.com/hrygo/laddoo/internal/errors"
)

// TimestampLayout is the fixed-width layout of a Timestamp. Lexical and
// chronological order coincide.
const TimestampLayout = "2006-01-02 15:04"

// Timestamp is the sortable key of a reminder, e.g. "2026-06-02 15:30".
type Timestamp string

// String implements fmt.Stringer.
func (ts Timestamp) String() string {
	return string(ts)
}

// Time parses the timestamp as wall clock time in loc.
func (ts Timestamp) Time(loc *time.Location) (time.Time, error) {
	return ParseTimestamp(string(ts), loc)
}

// FormatTimestamp encodes t as a Timestamp.
func FormatTimestamp(t time.Time) Timestamp {
	return Timestamp(t.Format(TimestampLayout))
}

// ParseTimestamp decodes a timestamp string as wall clock time in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(TimestampLayout, s, loc)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid timestamp %q", s)
	}
	return t, nil
}

// ValidDate reports whether day exists in month of year.
// It is the only place that knows about month lengths and leap years.
func ValidDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && d.Month() == month && d.Day() == day
}

// Compose builds the timestamp for month/day/hour/minute in year.
// It fails with INVALID when the date does not exist in that year.
func Compose(month time.Month, day, hour, minute, year int) (Timestamp, error) {
	if !ValidDate(year, month, day) {
		return "", rerrors.Invalid("no such date: %s %d, %d", month, day, year).
			WithContext("month", month.String()).
			WithContext("day", day).
			WithContext("year", year)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", rerrors.Invalid("no such time: %02d:%02d", hour, minute)
	}

	t := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	return FormatTimestamp(t), nil
}
