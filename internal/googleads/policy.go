package googleads

import (
	"fmt"
	"regexp"
	"strings"
)

// Precondition checks. These run before any mutate call is built; a violation
// is returned to the immediate caller and never enters a facade error list.

// CountViolation reports a headline or description list below its minimum.
type CountViolation struct {
	Field string
	Min   int
	Got   int
}

func (e *CountViolation) Error() string {
	return fmt.Sprintf("number of %s must be %d or greater, got %d", e.Field, e.Min, e.Got)
}

// FormatViolation reports a malformed input value, currently only URLs.
type FormatViolation struct {
	Field  string
	Reason string
}

func (e *FormatViolation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateCounts enforces the minimum headline and description counts for a
// responsive search ad.
func ValidateCounts(headlines, descriptions int) error {
	if headlines < MinHeadlines {
		return &CountViolation{Field: "headlines", Min: MinHeadlines, Got: headlines}
	}
	if descriptions < MinDescriptions {
		return &CountViolation{Field: "descriptions", Min: MinDescriptions, Got: descriptions}
	}
	return nil
}

// ValidateURL rejects empty URLs and anything without an http(s) scheme.
func ValidateURL(url string) error {
	if url == "" || (!strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://")) {
		return &FormatViolation{Field: "url", Reason: "must start with http:// or https://"}
	}
	return nil
}

var httpSchemePattern = regexp.MustCompile(`^(http://)?`)

// FixURL forces an https scheme onto a URL that lacks one, replacing a plain
// http scheme when present.
func FixURL(url string) string {
	if strings.HasPrefix(url, "https://") {
		return url
	}
	return httpSchemePattern.ReplaceAllString(url, "https://")
}
