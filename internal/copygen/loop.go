package copygen

import (
	"context"
	"fmt"
	"unicode/utf8"

	"adpilot/internal/logging"
)

const (
	// HeadlineLimit is the acceptance bound for generated headlines. One
	// below the platform maximum so downstream truncation never fires.
	HeadlineLimit = 29

	// DefaultMaxRetries bounds the generation loop.
	DefaultMaxRetries = 5
)

// HeadlineSource produces candidate headlines for a keyword. *Client is the
// production implementation.
type HeadlineSource interface {
	KeywordHeadlines(ctx context.Context, content, keyword string) ([]string, error)
}

// KeywordHeadline pairs a keyword with its accepted headline.
type KeywordHeadline struct {
	Keyword  string
	Headline string
}

// ExhaustedError is the terminal failure after the retry bound is spent
// without an acceptable candidate.
type ExhaustedError struct {
	Keyword string
	Retries int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("failed to generate a valid headline for %q after %d retries", e.Keyword, e.Retries)
}

// attempt records one candidate evaluation; it lives only for the duration
// of a Generate call and feeds the generate log.
type attempt struct {
	candidate string
	accepted  bool
	reason    string
}

// HeadlineLoop is the bounded, validator-gated generation loop. Each round
// requests a candidate batch, accepts the first candidate that passes the
// predicate, and otherwise loops until the retry bound is exhausted. Only
// validation rejections are retried; a request error aborts immediately.
type HeadlineLoop struct {
	src        HeadlineSource
	maxRetries int
}

// NewHeadlineLoop builds a loop; maxRetries <= 0 selects the default bound.
func NewHeadlineLoop(src HeadlineSource, maxRetries int) *HeadlineLoop {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &HeadlineLoop{src: src, maxRetries: maxRetries}
}

// Generate obtains one acceptable headline for the keyword. existing holds
// headlines already accepted by the caller; duplicates are rejected so the
// same line never appears twice in an ad.
func (l *HeadlineLoop) Generate(ctx context.Context, content, keyword string, existing []string) (KeywordHeadline, error) {
	seen := make(map[string]bool, len(existing))
	for _, h := range existing {
		seen[h] = true
	}

	for retry := 0; retry < l.maxRetries; retry++ {
		candidates, err := l.src.KeywordHeadlines(ctx, content, keyword)
		if err != nil {
			return KeywordHeadline{}, err
		}
		for _, c := range candidates {
			a := l.evaluate(c, seen)
			logging.GenerateDebug("headline candidate %q for %q: accepted=%v %s", a.candidate, keyword, a.accepted, a.reason)
			if a.accepted {
				logging.Generate("accepted headline %q for keyword %q (retry %d)", c, keyword, retry)
				return KeywordHeadline{Keyword: keyword, Headline: c}, nil
			}
		}
	}
	return KeywordHeadline{}, &ExhaustedError{Keyword: keyword, Retries: l.maxRetries}
}

func (l *HeadlineLoop) evaluate(candidate string, seen map[string]bool) attempt {
	if utf8.RuneCountInString(candidate) > HeadlineLimit {
		return attempt{candidate: candidate, reason: fmt.Sprintf("over %d characters", HeadlineLimit)}
	}
	if seen[candidate] {
		return attempt{candidate: candidate, reason: "duplicate of an accepted headline"}
	}
	return attempt{candidate: candidate, accepted: true}
}

// Regenerate replaces a single previously accepted headline that has since
// become invalid (for example, edited past the length bound). A headline
// that still passes is returned unchanged without a remote call.
func (l *HeadlineLoop) Regenerate(ctx context.Context, content string, h KeywordHeadline, existing []string) (KeywordHeadline, error) {
	if utf8.RuneCountInString(h.Headline) <= HeadlineLimit {
		return h, nil
	}
	return l.Generate(ctx, content, h.Keyword, existing)
}
