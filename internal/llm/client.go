// Package llm provides text-generation provider clients and JSON recovery
// for free-form model replies.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for text-generation providers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for generation provider clients.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxRetries  int
	RetryDelay  time.Duration
	RateLimit   int
	Temperature float64
	MaxTokens   int
}

// systemPrompt keeps provider replies terse and format-faithful; the
// extraction prompts carry the real instructions.
const systemPrompt = "You are a proposal analysis assistant. Respond only in the exact format requested, with no additional commentary."
