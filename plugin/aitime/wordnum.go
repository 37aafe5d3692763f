package aitime

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// cardinalWords maps spelled cardinal numbers to integers.
var cardinalWords = map[string]int{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,
}

// ordinalWords maps spelled ordinals to integers.
var ordinalWords = map[string]int{
	"first":       1,
	"second":      2,
	"third":       3,
	"fourth":      4,
	"fifth":       5,
	"sixth":       6,
	"seventh":     7,
	"eighth":      8,
	"ninth":       9,
	"tenth":       10,
	"eleventh":    11,
	"twelfth":     12,
	"thirteenth":  13,
	"fourteenth":  14,
	"fifteenth":   15,
	"sixteenth":   16,
	"seventeenth": 17,
	"eighteenth":  18,
	"nineteenth":  19,
	"twentieth":   20,
	"thirtieth":   30,
}

// wordToNum converts a single spelled number word to an integer.
func wordToNum(word string) (int, bool) {
	if n, ok := cardinalWords[word]; ok {
		return n, true
	}
	if n, ok := ordinalWords[word]; ok {
		return n, true
	}
	return 0, false
}

// isTensWord reports whether word is a cardinal multiple of ten from twenty up.
func isTensWord(word string) bool {
	n, ok := cardinalWords[word]
	return ok && n >= 20 && n%10 == 0
}

// unitValue returns the value of a spelled unit (one..nine, first..ninth).
func unitValue(word string) (int, bool) {
	n, ok := wordToNum(word)
	if !ok || n < 1 || n > 9 {
		return 0, false
	}
	return n, true
}

// hyphenatedToNum converts compounds like "twenty-one" or "thirty-first".
func hyphenatedToNum(token string) (int, bool) {
	tens, unit, found := strings.Cut(token, "-")
	if !found || !isTensWord(tens) {
		return 0, false
	}
	u, ok := unitValue(unit)
	if !ok {
		return 0, false
	}
	return cardinalWords[tens] + u, true
}

// splitNumberCompound splits a hyphenated token whose parts are all number
// words or "oh". Other hyphenated tokens are left alone.
func splitNumberCompound(token string) ([]string, bool) {
	parts := strings.Split(token, "-")
	if len(parts) < 2 {
		return nil, false
	}
	for _, part := range parts {
		if _, ok := wordToNum(part); !ok && part != "oh" {
			return nil, false
		}
	}
	return parts, true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// convertNumberWords replaces spelled numbers with digit strings.
// Tokens that are not number words are kept verbatim.
func convertNumberWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !isAlpha(tok) {
			if n, ok := hyphenatedToNum(tok); ok {
				out = append(out, strconv.Itoa(n))
				continue
			}
			// "ten-thirty" and "three-oh-five" read as separate words.
			if parts, ok := splitNumberCompound(tok); ok {
				out = append(out, convertNumberWords(parts)...)
				continue
			}
			out = append(out, tok)
			continue
		}

		n, ok := wordToNum(tok)
		if !ok {
			// "three oh five" reads as 3:05
			if tok == "oh" && i+1 < len(tokens) {
				if u, ok := unitValue(tokens[i+1]); ok {
					out = append(out, fmt.Sprintf("0%d", u))
					i++
					continue
				}
			}
			out = append(out, tok)
			continue
		}

		if isTensWord(tok) && i+1 < len(tokens) {
			if u, ok := unitValue(tokens[i+1]); ok {
				n += u
				i++
			}
		}
		out = append(out, strconv.Itoa(n))
	}
	return out
}
