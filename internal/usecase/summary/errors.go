// Package summary provides the use case for generating article summaries.
// It orchestrates the external AI summarizer with a deterministic extractive
// fallback so that a stored summary is never empty.
package summary

import "errors"

// Sentinel errors for summary generation.
var (
	// ErrSummaryUnavailable indicates that the external AI call failed or was
	// rejected. Callers substitute the extractive fallback.
	ErrSummaryUnavailable = errors.New("summary unavailable")

	// ErrEmptySummary indicates that the external AI returned a blank or
	// whitespace-only result. Callers substitute the extractive fallback.
	ErrEmptySummary = errors.New("empty summary")
)
