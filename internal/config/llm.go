package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Veraticus/smart-farming/internal/common"
	"github.com/Veraticus/smart-farming/internal/llm"
)

// providerKeyEnv maps each provider to the environment variable holding its
// credential.
var providerKeyEnv = map[string]string{
	llm.ProviderOpenAI:    "OPENAI_API_KEY",
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
	llm.ProviderGemini:    "GEMINI_API_KEY",
}

// LoadEnvFile loads variables from a dotenv file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	path = ExpandPath(path)

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadLLMConfig builds the text-generation client configuration.
// It follows this precedence:
// 1. Viper configuration (from config file or FARM_ env vars)
// 2. Direct environment variables (OPENAI_API_KEY and friends)
// 3. Client defaults
func LoadLLMConfig() (llm.Config, error) {
	provider := strings.ToLower(strings.TrimSpace(viper.GetString("llm.provider")))
	if provider == "" {
		provider = llm.ProviderOpenAI
	}

	envKey, ok := providerKeyEnv[provider]
	if !ok {
		return llm.Config{}, fmt.Errorf("%w: unsupported LLM provider %q", common.ErrInvalidConfig, provider)
	}

	cfg := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Timeout:     viper.GetDuration("llm.timeout"),
	}

	if viper.IsSet("llm.temperature") {
		temperature := viper.GetFloat64("llm.temperature")
		if temperature < 0 || temperature > 2 {
			return llm.Config{}, fmt.Errorf("%w: llm.temperature must be between 0 and 2, got %v", common.ErrInvalidConfig, temperature)
		}
		cfg.Temperature = &temperature
	}
	if cfg.MaxTokens < 0 {
		return llm.Config{}, fmt.Errorf("%w: llm.max_tokens must not be negative", common.ErrInvalidConfig)
	}

	// Check viper first, then environment variable
	apiKey := viper.GetString("llm." + provider + "_api_key")
	if apiKey == "" {
		apiKey = os.Getenv(envKey)
	}
	if apiKey == "" {
		return llm.Config{}, fmt.Errorf("%w: %s API key not found in config or %s environment variable",
			common.ErrMissingConfig, provider, envKey)
	}
	cfg.APIKey = apiKey

	return cfg, nil
}
