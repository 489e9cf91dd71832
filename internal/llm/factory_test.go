package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		wantType any
		wantErr  bool
	}{
		{name: "empty defaults to openai", provider: "", wantType: &openAIClient{}},
		{name: "openai", provider: "OpenAI", wantType: &openAIClient{}},
		{name: "anthropic", provider: "anthropic", wantType: &anthropicClient{}},
		{name: "gemini", provider: "gemini", wantType: &geminiClient{}},
		{name: "unknown", provider: "llama", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), Config{Provider: tt.provider, APIKey: "test-key"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported LLM provider")
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, client)
		})
	}
}
