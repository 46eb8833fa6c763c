package copygen

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var (
	plainTextPattern   = regexp.MustCompile(`^[a-zA-Z0-9 ]*$`)
	punctuationPattern = regexp.MustCompile(`[^\w\s]`)
)

// ConstrainText enforces the plain-text contract on generated copy: text
// over the length limit is an error (there is no safe way to shorten it
// locally), while stray punctuation is stripped and the cleaned text kept.
func ConstrainText(v string, limit int) (string, error) {
	if n := utf8.RuneCountInString(v); n > limit {
		return "", fmt.Errorf("text must be %d characters or fewer, got %d", limit, n)
	}
	if !plainTextPattern.MatchString(v) {
		return punctuationPattern.ReplaceAllString(v, ""), nil
	}
	return v, nil
}
