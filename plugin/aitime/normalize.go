package aitime

import (
	"regexp"
	"strings"
)

var (
	// ordinalSuffixPattern only strips suffixes from digit-led tokens, so "2nd"
	// becomes "2" while "august" keeps its letters.
	ordinalSuffixPattern = regexp.MustCompile(`^(\d+)(?:st|nd|rd|th)$`)

	// meridiemPattern joins spoken "a m" / "p m" into "am" / "pm".
	meridiemPattern = regexp.MustCompile(`\b([ap])\s+m\b`)

	punctuationReplacer = strings.NewReplacer(
		",", " ",
		"!", " ",
		"?", " ",
		";", " ",
	)
)

// Normalize cleans a spoken date phrase and returns its tokens.
func Normalize(text string) []string {
	text = strings.ToLower(text)
	text = punctuationReplacer.Replace(text)
	text = strings.ReplaceAll(text, ".", " ")
	return tokenize(text)
}

// NormalizeTime cleans a spoken time phrase and returns its tokens.
// Periods and "o'clock" are dropped, "a m"/"p m" collapse, and colons split
// hour from minute.
func NormalizeTime(text string) []string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, ".", "")
	text = strings.ReplaceAll(text, "o'clock", "")
	text = punctuationReplacer.Replace(text)
	text = meridiemPattern.ReplaceAllString(text, "${1}m")
	text = strings.ReplaceAll(text, ":", " ")
	return tokenize(text)
}

func tokenize(text string) []string {
	fields := strings.Fields(text)
	for i, f := range fields {
		fields[i] = ordinalSuffixPattern.ReplaceAllString(f, "$1")
	}
	return convertNumberWords(fields)
}
