package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"content-hub/pkg/config"
)

// Summarizer is an interface for AI-powered text summarization.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Extractor produces a deterministic summary without external calls.
type Extractor func(text string) string

// DefaultTimeout bounds a single AI summarization attempt. Override with the
// SUMMARY_TIMEOUT environment variable (a time.ParseDuration string).
const DefaultTimeout = 30 * time.Second

// Provider generates article summaries. When an AI backend is configured it
// is tried first; failures are surfaced as ErrSummaryUnavailable or
// ErrEmptySummary rather than silently falling back, so the caller can log
// the distinction between "AI succeeded" and "AI failed, used fallback".
// When no AI backend is configured, Summarize returns the extractive result
// directly and never fails.
type Provider struct {
	ai        Summarizer
	extract   Extractor
	available bool
	timeout   time.Duration
}

// NewProvider creates a summary provider. ai may be nil, in which case the
// provider is permanently unavailable and serves extractive summaries only.
// The per-attempt timeout is read from SUMMARY_TIMEOUT at construction time.
func NewProvider(ai Summarizer, extract Extractor) *Provider {
	return &Provider{
		ai:        ai,
		extract:   extract,
		available: ai != nil,
		timeout:   config.GetEnvDuration("SUMMARY_TIMEOUT", DefaultTimeout),
	}
}

// Available reports whether an AI backend is configured.
func (p *Provider) Available() bool {
	return p.available
}

// Fallback returns the deterministic extractive summary of content.
func (p *Provider) Fallback(content string) string {
	return p.extract(content)
}

// buildInput prepends the title to the content when present, giving the AI
// backend the same context a reader would have.
func buildInput(content, title string) string {
	if title == "" {
		return content
	}
	return fmt.Sprintf("Title: %s\n\n%s", title, content)
}

// Summarize generates a summary for content. title is optional context.
//
// Unavailable providers return the extractive result with a nil error.
// Available providers return ErrSummaryUnavailable when the AI call fails and
// ErrEmptySummary when it returns blank output; the caller substitutes
// Fallback(content) in both cases.
func (p *Provider) Summarize(ctx context.Context, content, title string) (string, error) {
	if !p.available {
		return p.extract(content), nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	result, err := p.ai.Summarize(ctx, buildInput(content, title))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSummaryUnavailable, err)
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return "", ErrEmptySummary
	}
	return result, nil
}
