package summarizer

import (
	"context"
	"strings"
	"testing"
	"time"
)

func testOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		CharacterLimit: 400,
		Model:          "gpt-3.5-turbo",
		MaxTokens:      1024,
		Timeout:        60 * time.Second,
	}
}

func TestNewOpenAIWiring(t *testing.T) {
	o := NewOpenAI("test-api-key", testOpenAIConfig())
	if o == nil {
		t.Fatal("NewOpenAI() returned nil")
	}
	if o.circuitBreaker == nil {
		t.Error("circuit breaker not configured")
	}
	if o.circuitBreaker.Name() != "openai-api" {
		t.Errorf("circuit breaker name = %q, want openai-api", o.circuitBreaker.Name())
	}
	if o.config.GetCharacterLimit() != 400 {
		t.Errorf("character limit = %d, want 400", o.config.GetCharacterLimit())
	}
	if o.metricsRecorder == nil {
		t.Error("metrics recorder not configured")
	}
}

func TestOpenAIBuildPrompt(t *testing.T) {
	o := NewOpenAI("test-api-key", testOpenAIConfig())

	prompt := o.buildPrompt("the article body")

	if !strings.Contains(prompt, "the article body") {
		t.Error("prompt does not contain the input text")
	}
	if !strings.Contains(prompt, "400") {
		t.Error("prompt does not mention the character limit")
	}
}

func TestOpenAI_Summarize_CanceledContext(t *testing.T) {
	o := NewOpenAI("invalid-test-key", testOpenAIConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Summarize(ctx, "test text")
	if err == nil {
		t.Error("Summarize() with canceled context should return error")
	}
}

func TestOpenAI_Summarize_ExpiredDeadline(t *testing.T) {
	o := NewOpenAI("invalid-test-key", testOpenAIConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()
	time.Sleep(10 * time.Millisecond)

	_, err := o.Summarize(ctx, "test text")
	if err == nil {
		t.Error("Summarize() past the deadline should return error")
	}
}
