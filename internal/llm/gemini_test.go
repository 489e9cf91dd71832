package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresKey(t *testing.T) {
	_, err := newGeminiClient(context.Background(), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestGeminiClient_Complete(t *testing.T) {
	var path string
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&captured)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]string{{"text": `{"pest_advice":["scout"]}`}},
					},
				},
			},
		})
	}))
	defer server.Close()

	client, err := newGeminiClient(context.Background(), Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiModel, client.model)

	got, err := client.Complete(context.Background(), "the prompt", "the system")
	require.NoError(t, err)
	assert.Equal(t, `{"pest_advice":["scout"]}`, got)
	assert.True(t, strings.HasSuffix(path, DefaultGeminiModel+":generateContent"), path)

	config, ok := captured["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1500, config["maxOutputTokens"], 0.0001)
	assert.Equal(t, "application/json", config["responseMimeType"])
}

func TestGeminiClient_Complete_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client, err := newGeminiClient(context.Background(), Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "prompt", "system")
	require.Error(t, err)
}

func TestGeminiClient_Complete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "bad model", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	client, err := newGeminiClient(context.Background(), Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "prompt", "system")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}
