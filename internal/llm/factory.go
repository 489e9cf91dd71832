package llm

import (
	"context"
	"fmt"
	"strings"
)

// Supported provider names.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// NewClient creates an LLM client based on the provided configuration.
// An empty provider selects OpenAI.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		client, err := newOpenAIClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderAnthropic:
		client, err := newAnthropicClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderGemini:
		client, err := newGeminiClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
