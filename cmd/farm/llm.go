package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/smart-farming/internal/advisor"
	"github.com/Veraticus/smart-farming/internal/common"
	"github.com/Veraticus/smart-farming/internal/config"
	"github.com/Veraticus/smart-farming/internal/llm"
)

// createAdvisor builds the recommendation provider from configuration.
// A missing credential or unknown provider is fatal.
func createAdvisor(ctx context.Context) (*advisor.Provider, error) {
	cfg, err := config.LoadLLMConfig()
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("Configuration error: %v. Set OPENAI_API_KEY (or the key for your provider) in your environment or .env file.", err),
			err)
	}

	client, err := llm.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	common.LogInfo("LLM client configured", common.Fields{
		"provider": cfg.Provider,
		"model":    cfg.Model,
	})

	return advisor.NewProvider(client, slog.Default()), nil
}
