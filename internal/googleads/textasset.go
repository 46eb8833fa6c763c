package googleads

import "adpilot/internal/domain"

// NewTextAsset wraps text as an ad text asset, optionally pinned so Google
// always serves it in the given slot (e.g. "HEADLINE_1").
func NewTextAsset(text, pinnedField string) TextAsset {
	return TextAsset{Text: text, PinnedField: pinnedField}
}

// TruncateHeadlines converts headline lines into text assets hard-capped at
// HeadlineMaxLength characters. The cut is a plain slice, not word-aware;
// losing the tail of an over-long headline is accepted behavior, not an
// error. Limits count characters, not bytes, so multibyte text is never cut
// mid-rune.
func TruncateHeadlines(headlines []domain.TextLine) []TextAsset {
	assets := make([]TextAsset, 0, len(headlines))
	for _, h := range headlines {
		text := h.Text
		if runes := []rune(text); len(runes) > HeadlineMaxLength {
			text = string(runes[:HeadlineMaxLength])
		}
		assets = append(assets, NewTextAsset(text, ""))
	}
	return assets
}

// TextAssets converts lines verbatim, with no truncation.
func TextAssets(lines []domain.TextLine) []TextAsset {
	assets := make([]TextAsset, 0, len(lines))
	for _, l := range lines {
		assets = append(assets, NewTextAsset(l.Text, ""))
	}
	return assets
}
