package entity

import (
	"fmt"
	"time"
	"unicode/utf8"
)

const (
	minTitleLength   = 5
	maxTitleLength   = 200
	minContentLength = 50
	maxSummaryLength = 500
)

// Article represents a content entity owned by a user.
// Summary is never empty after creation: it is either author-supplied or
// generated synchronously at create/update time.
type Article struct {
	ID        int64
	UserID    int64
	Title     string
	Content   string
	Author    string
	Summary   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateTitle checks the article title length constraints (5-200 characters).
func ValidateTitle(title string) error {
	if title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if n := utf8.RuneCountInString(title); n < minTitleLength || n > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be between %d and %d characters", minTitleLength, maxTitleLength),
		}
	}
	return nil
}

// ValidateContent checks that the article body carries enough text to be
// worth summarizing (50 characters minimum).
func ValidateContent(content string) error {
	if content == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	if utf8.RuneCountInString(content) < minContentLength {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("must be at least %d characters", minContentLength),
		}
	}
	return nil
}

// ValidateSummary checks the author-supplied summary length (500 characters max).
// An empty summary is valid here: it means "generate one for me".
func ValidateSummary(summary string) error {
	if utf8.RuneCountInString(summary) > maxSummaryLength {
		return &ValidationError{
			Field:   "summary",
			Message: fmt.Sprintf("must not exceed %d characters", maxSummaryLength),
		}
	}
	return nil
}
