package summarizer

import "fmt"

// SummarizerConfig is a common interface for summarizer configuration.
// Both OpenAI and Claude implementations should implement this interface
// to ensure consistent validation and configuration behavior.
type SummarizerConfig interface {
	// GetCharacterLimit returns the maximum number of characters allowed in a summary.
	// The limit should be within the valid range (100-500).
	GetCharacterLimit() int

	// Validate validates the configuration and returns an error if invalid.
	Validate() error
}

const (
	// minCharLimit is the minimum allowed character limit for summaries.
	minCharLimit = 100

	// maxCharLimit is the maximum allowed character limit for summaries.
	// Matches the storage constraint on the articles.summary column.
	maxCharLimit = 500
)

// ValidateCharacterLimit validates that the character limit is within the valid range (100-500).
// Returns an error if the limit is out of range with a descriptive message.
func ValidateCharacterLimit(limit int) error {
	if limit < minCharLimit {
		return fmt.Errorf("character limit %d is below minimum %d", limit, minCharLimit)
	}
	if limit > maxCharLimit {
		return fmt.Errorf("character limit %d exceeds maximum %d", limit, maxCharLimit)
	}
	return nil
}
