package llm

import (
	"context"
	"net/http"
	"time"
)

// Defaults applied when the matching Config field is zero.
const (
	DefaultOpenAIModel    = "gpt-3.5-turbo"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultTemperature    = 0.7
	DefaultMaxTokens      = 1500
	DefaultTimeout        = 30 * time.Second
)

// Client defines the interface for text-generation providers.
type Client interface {
	// Complete sends one prompt with a system instruction and returns the
	// text of the top completion.
	Complete(ctx context.Context, prompt string, systemPrompt string) (string, error)
}

// Config holds configuration for an LLM client.
type Config struct {
	// Temperature is nil when unset; an explicit 0 is kept.
	Temperature *float64
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int
	Timeout     time.Duration
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func (cfg Config) withDefaults(model string) Config {
	if cfg.Model == "" {
		cfg.Model = model
	}
	if cfg.Temperature == nil {
		cfg.Temperature = Ptr(DefaultTemperature)
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}
