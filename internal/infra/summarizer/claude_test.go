package summarizer

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewClaudeWiring(t *testing.T) {
	claude := NewClaude("test-api-key")
	if claude == nil {
		t.Fatal("NewClaude() returned nil")
	}
	if claude.circuitBreaker == nil {
		t.Error("circuit breaker not configured")
	}
	if claude.circuitBreaker.Name() != "claude-api" {
		t.Errorf("circuit breaker name = %q, want claude-api", claude.circuitBreaker.Name())
	}
	if claude.retryConfig.MaxAttempts != 3 {
		t.Errorf("retry MaxAttempts = %d, want 3", claude.retryConfig.MaxAttempts)
	}
	if claude.metricsRecorder == nil {
		t.Error("metrics recorder not configured")
	}
	if err := claude.config.Validate(); err != nil {
		t.Errorf("loaded config should validate, got %v", err)
	}
}

func TestClaudeBuildPrompt(t *testing.T) {
	claude := NewClaude("test-api-key")

	prompt := claude.buildPrompt("the article body")

	if !strings.Contains(prompt, "the article body") {
		t.Error("prompt does not contain the input text")
	}
	if !strings.Contains(prompt, strconv.Itoa(claude.config.CharacterLimit)) {
		t.Errorf("prompt does not mention the character limit %d", claude.config.CharacterLimit)
	}
}

func TestClaude_Summarize_CanceledContext(t *testing.T) {
	claude := NewClaude("invalid-test-key")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := claude.Summarize(ctx, "test text")
	if err == nil {
		t.Error("Summarize() with canceled context should return error")
	}
}

func TestClaude_Summarize_ExpiredDeadline(t *testing.T) {
	claude := NewClaude("invalid-test-key")

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()
	time.Sleep(10 * time.Millisecond)

	// Must not panic; deadline errors are not retried
	_, err := claude.Summarize(ctx, "test text")
	if err == nil {
		t.Error("Summarize() past the deadline should return error")
	}
}
