package summarizer

import (
	"context"
	"strings"
)

const (
	// minSentenceLength filters out headings and fragments.
	minSentenceLength = 20

	// maxSentences is the number of leading sentences kept in the summary.
	maxSentences = 3

	// maxExtractLength caps the joined result.
	maxExtractLength = 300

	// hardFallbackLength is used when no sentence survives the noise filter.
	hardFallbackLength = 150

	ellipsis = "..."
)

// isSentenceTerminal reports whether r ends a sentence.
func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Extract produces a deterministic extractive summary of text.
//
// Candidate sentences are split on terminal punctuation and trimmed; those
// shorter than 20 characters are discarded as noise. The first three survivors
// are joined with a single space and capped at 300 characters. If nothing
// survives the filter, the first 150 characters of the original text are
// returned instead. The function is pure: identical input always yields
// byte-identical output, so it is testable without network access.
func Extract(text string) string {
	candidates := make([]string, 0, maxSentences)
	for _, fragment := range strings.FieldsFunc(text, isSentenceTerminal) {
		sentence := strings.TrimSpace(fragment)
		if len([]rune(sentence)) < minSentenceLength {
			continue
		}
		candidates = append(candidates, sentence)
	}

	if len(candidates) == 0 {
		runes := []rune(text)
		if len(runes) <= hardFallbackLength {
			return text
		}
		return string(runes[:hardFallbackLength]) + ellipsis
	}

	keep := len(candidates)
	if keep > maxSentences {
		keep = maxSentences
	}

	joined := strings.Join(candidates[:keep], " ")
	if runes := []rune(joined); len(runes) > maxExtractLength {
		return string(runes[:maxExtractLength-len(ellipsis)]) + ellipsis
	}
	return joined
}

// Extractive adapts Extract to the Summarize contract used by the AI
// providers. It never fails and performs no I/O, which makes it the
// default summarizer when no AI credential is configured.
type Extractive struct{}

// NewExtractive creates a new extractive summarizer.
func NewExtractive() *Extractive {
	return &Extractive{}
}

// Summarize returns the deterministic extractive summary of text.
func (e *Extractive) Summarize(_ context.Context, text string) (string, error) {
	return Extract(text), nil
}
