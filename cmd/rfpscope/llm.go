package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"rfpscope/internal/llm"
)

// createLLMClient creates a provider client from configuration. Shared
// by every command that needs generation.
func createLLMClient() (llm.Client, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "anthropic"
	}

	config := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		MaxRetries:  viper.GetInt("llm.max_retries"),
		RetryDelay:  viper.GetDuration("llm.retry_delay"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
	}

	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 60
	}

	switch provider {
	case "anthropic":
		apiKey := viper.GetString("llm.anthropic_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("Anthropic API key not found in config or ANTHROPIC_API_KEY environment variable")
		}
		config.APIKey = apiKey
	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OpenAI API key not found in config or OPENAI_API_KEY environment variable")
		}
		config.APIKey = apiKey
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}

	client, err := llm.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", provider, err)
	}

	return llm.NewRateLimited(client, config.RateLimit), nil
}
