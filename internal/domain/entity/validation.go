package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxTags      = 10
	maxTagLength = 30
)

// NormalizeTags lowercases and trims a tag list, dropping empty entries and
// duplicates while preserving first-seen order. Used for both article tags
// and user interests so the two stay comparable.
// Returns a ValidationError if the normalized set exceeds the limits.
func NormalizeTags(field string, tags []string) ([]string, error) {
	if len(tags) == 0 {
		return []string{}, nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if utf8.RuneCountInString(t) > maxTagLength {
			return nil, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("each entry must not exceed %d characters", maxTagLength),
			}
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	if len(out) > maxTags {
		return nil, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d entries", maxTags),
		}
	}
	return out, nil
}
