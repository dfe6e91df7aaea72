// Package summarizer provides AI-powered text summarization implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability
// patterns, plus a deterministic extractive fallback that needs no external
// service. Character limits are configurable, with observability through
// structured logging and Prometheus metrics.
package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"content-hub/internal/resilience/circuitbreaker"
	"content-hub/internal/resilience/retry"
	"content-hub/internal/utils/text"
)

// ClaudeConfig holds configuration parameters for the Claude summarizer.
// Configuration is loaded from environment variables with fallback to defaults.
type ClaudeConfig struct {
	// CharacterLimit is the maximum number of characters allowed in a summary.
	// Loaded from SUMMARIZER_CHAR_LIMIT environment variable.
	// Valid range: 100-500 characters. Default: 400.
	CharacterLimit int

	// Model is the Claude API model identifier to use for summarization.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// GetCharacterLimit implements SummarizerConfig.
func (c *ClaudeConfig) GetCharacterLimit() int {
	return c.CharacterLimit
}

// Validate implements SummarizerConfig.
func (c *ClaudeConfig) Validate() error {
	if err := ValidateCharacterLimit(c.CharacterLimit); err != nil {
		return fmt.Errorf("invalid character limit: %w", err)
	}
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// LoadClaudeConfig loads configuration from environment variables.
// Invalid SUMMARIZER_CHAR_LIMIT values fall back to the default (400) with a
// warning log.
func LoadClaudeConfig() ClaudeConfig {
	const defaultCharLimit = 400

	charLimit := defaultCharLimit

	if envLimit := os.Getenv("SUMMARIZER_CHAR_LIMIT"); envLimit != "" {
		parsed, err := strconv.Atoi(envLimit)
		if err != nil {
			slog.Warn("Invalid SUMMARIZER_CHAR_LIMIT format, using default",
				slog.String("value", envLimit),
				slog.Int("default", defaultCharLimit),
				slog.String("error", err.Error()))
		} else if validationErr := ValidateCharacterLimit(parsed); validationErr != nil {
			slog.Warn("SUMMARIZER_CHAR_LIMIT out of valid range, using default",
				slog.Int("value", parsed),
				slog.Int("default", defaultCharLimit),
				slog.String("error", validationErr.Error()))
		} else {
			charLimit = parsed
		}
	}

	return ClaudeConfig{
		CharacterLimit: charLimit,
		Model:          string(anthropic.Model("claude-sonnet-4-5-20250929")),
		MaxTokens:      1024,
		Timeout:        60 * time.Second,
	}
}

// Claude implements text summarization using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability,
// and supports configurable character limits with comprehensive observability.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          ClaudeConfig
	metricsRecorder SummaryMetricsRecorder
}

// NewClaude creates a new Claude summarizer with the given API key.
// It automatically configures circuit breaker, retry logic, character limit
// configuration, and metrics recording.
func NewClaude(apiKey string) *Claude {
	config := LoadClaudeConfig()

	slog.Info("Initialized Claude summarizer with configuration",
		slog.Int("character_limit", config.CharacterLimit),
		slog.String("model", config.Model))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// Summarize generates a summary of the given text using Claude AI.
// It uses circuit breaker and retry logic for improved reliability.
func (c *Claude) Summarize(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doSummarize(ctx, text)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("claude summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// buildPrompt constructs the summarization prompt using configured parameters.
func (c *Claude) buildPrompt(text string) string {
	return fmt.Sprintf("Summarize the following article in at most %d characters. Respond with the summary only, no preamble:\n%s",
		c.config.CharacterLimit, text)
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (c *Claude) doSummarize(ctx context.Context, inputText string) (string, error) {
	// Request ID for correlating the log lines of one summarization
	requestID := uuid.New().String()

	// Truncate text to keep request size predictable across providers
	const maxChars = 10000
	truncatedText := inputText
	if len(inputText) > maxChars {
		truncatedText = inputText[:maxChars] + "...\n(content truncated due to length)"
		slog.Warn("text truncated for claude api",
			slog.String("request_id", requestID),
			slog.Int("original_length", len(inputText)),
			slog.Int("truncated_length", len(truncatedText)))
	}

	prompt := c.buildPrompt(truncatedText)
	inputLength := text.CountRunes(truncatedText)

	slog.InfoContext(ctx, "Starting summarization",
		slog.String("request_id", requestID),
		slog.Int("input_length", inputLength),
		slog.Int("character_limit", c.config.CharacterLimit))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Summarization failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return "", fmt.Errorf("claude api returned unexpected response type")
	}

	summary := textBlock.Text
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= c.config.CharacterLimit

	slog.InfoContext(ctx, "Summarization completed",
		slog.String("request_id", requestID),
		slog.Int("summary_length", summaryLength),
		slog.Int("character_limit", c.config.CharacterLimit),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	if !withinLimit {
		excess := summaryLength - c.config.CharacterLimit
		slog.WarnContext(ctx, "Summary exceeds character limit",
			slog.String("request_id", requestID),
			slog.Int("summary_length", summaryLength),
			slog.Int("limit", c.config.CharacterLimit),
			slog.Int("excess", excess))
	}

	c.metricsRecorder.RecordLength(summaryLength)
	c.metricsRecorder.RecordDuration(duration)
	c.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		c.metricsRecorder.RecordLimitExceeded()
	}

	return summary, nil
}
