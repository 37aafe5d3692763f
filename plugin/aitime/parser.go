package aitime

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	rerrors "github.com/hrygo/laddoo/internal/errors"
)

// timePattern matches an hour, an optional whitespace-separated minute, and an
// optional meridiem marker anywhere in the phrase.
var timePattern = regexp.MustCompile(`(\d{1,2})(?:\s+(\d{1,2}))?\s*(am|pm)?`)

// monthNames maps lowercase month names to calendar months.
var monthNames = func() map[string]time.Month {
	m := make(map[string]time.Month, 12)
	for month := time.January; month <= time.December; month++ {
		m[strings.ToLower(month.String())] = month
	}
	return m
}()

// ParsedTime is an hour and minute of day in 24-hour form.
type ParsedTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParsedDate is a calendar month and a day of month.
// The day is only known to be plausible for some month; Compose checks it
// against the real month length.
type ParsedDate struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// ParseTime extracts a time of day from normalized time tokens.
// Without a meridiem the hour is taken literally, so "3" is 03:00.
func ParseTime(tokens []string) (ParsedTime, error) {
	phrase := strings.Join(tokens, " ")

	matches := timePattern.FindStringSubmatch(phrase)
	if matches == nil {
		return ParsedTime{}, rerrors.NotRecognized("no time found in %q", phrase)
	}

	hour, _ := strconv.Atoi(matches[1])
	minute := 0
	if matches[2] != "" {
		minute, _ = strconv.Atoi(matches[2])
	}

	switch matches[3] {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ParsedTime{}, rerrors.NotRecognized("time out of range in %q", phrase).
			WithContext("hour", hour).
			WithContext("minute", minute)
	}

	return ParsedTime{Hour: hour, Minute: minute}, nil
}

// ParseDate extracts a month name and day of month from normalized date tokens.
// The first number is the day; if several month names appear the last one wins.
func ParseDate(tokens []string) (ParsedDate, error) {
	var (
		month  time.Month
		day    int
		hasDay bool
	)

	for _, tok := range tokens {
		if n, ok := parseDigits(tok); ok {
			if !hasDay {
				day, hasDay = n, true
			}
			continue
		}
		if m, ok := monthNames[tok]; ok {
			month = m
		}
	}

	phrase := strings.Join(tokens, " ")
	if month == 0 {
		return ParsedDate{}, rerrors.NotRecognized("no month found in %q", phrase)
	}
	if !hasDay || day < 1 || day > 31 {
		return ParsedDate{}, rerrors.NotRecognized("no day of month found in %q", phrase)
	}

	return ParsedDate{Month: month, Day: day}, nil
}

// parseDigits parses a token made only of ASCII digits.
func parseDigits(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}
