package advisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/Veraticus/smart-farming/internal/llm"
	"github.com/Veraticus/smart-farming/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	err          error
	reply        string
	prompt       string
	systemPrompt string
	calls        int
}

func (f *fakeClient) Complete(_ context.Context, prompt string, systemPrompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	f.systemPrompt = systemPrompt
	return f.reply, f.err
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProfile() model.FarmerProfile {
	return model.FarmerProfile{
		Name:         "Ada",
		Province:     model.ProvinceSaskatchewan,
		Season:       model.SeasonSpring,
		CropStage:    model.CropStagePrePlanting,
		SelectedCrop: model.CropWheat,
	}
}

func TestProvider_NoClientUsesFallback(t *testing.T) {
	p := NewProvider(nil, testLogger())

	result := p.Generate(context.Background(), testProfile())

	assert.Equal(t, model.SourceFallback, result.Source)
	assert.Empty(t, result.Warning)
	assert.Equal(t, FallbackFor(testProfile()), result.Recommendations)
}

func TestProvider_LiveResponse(t *testing.T) {
	client := &fakeClient{reply: "```json\n" + validReply + "\n```"}
	p := NewProvider(client, testLogger())

	result := p.Generate(context.Background(), testProfile())

	require.Equal(t, 1, client.calls)
	assert.Equal(t, SystemPrompt, client.systemPrompt)
	assert.Equal(t, BuildPrompt(testProfile()), client.prompt)
	assert.Equal(t, model.SourceLive, result.Source)
	assert.Empty(t, result.Warning)
	assert.Equal(t, []string{"Scout for flea beetles"}, result.Recommendations.PestAdvice)
}

func TestProvider_EmptyObjectIsLive(t *testing.T) {
	p := NewProvider(&fakeClient{reply: "{}"}, testLogger())

	result := p.Generate(context.Background(), testProfile())

	assert.Equal(t, model.SourceLive, result.Source)
	assert.Zero(t, result.Recommendations.Len())
}

func TestProvider_DegradesToFallback(t *testing.T) {
	tests := []struct {
		name        string
		client      *fakeClient
		wantWarning string
	}{
		{
			name:        "invalid json",
			client:      &fakeClient{reply: "I recommend planting early."},
			wantWarning: WarningMalformed,
		},
		{
			name:        "wrong element types",
			client:      &fakeClient{reply: `{"weather_advice": [1, 2, 3]}`},
			wantWarning: WarningMalformed,
		},
		{
			name:        "service error",
			client:      &fakeClient{err: &llm.APIError{Provider: "OpenAI", StatusCode: 500, Body: "boom"}},
			wantWarning: UnavailableWarning("status 500"),
		},
		{
			name:        "wrapped service error",
			client:      &fakeClient{err: fmt.Errorf("call: %w", &llm.APIError{Provider: "anthropic", StatusCode: 429})},
			wantWarning: UnavailableWarning("status 429"),
		},
		{
			name:        "deadline exceeded",
			client:      &fakeClient{err: fmt.Errorf("request failed: %w", context.DeadlineExceeded)},
			wantWarning: UnavailableWarning("timeout"),
		},
		{
			name:        "client timeout",
			client:      &fakeClient{err: &url.Error{Op: "Post", URL: "http://x", Err: timeoutError{}}},
			wantWarning: UnavailableWarning("timeout"),
		},
		{
			name:        "cancelled context",
			client:      &fakeClient{err: context.Canceled},
			wantWarning: UnavailableWarning("cancelled"),
		},
		{
			name:        "transport error",
			client:      &fakeClient{err: errors.New("connection refused")},
			wantWarning: UnavailableWarning("request failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(tt.client, testLogger())

			result := p.Generate(context.Background(), testProfile())

			assert.Equal(t, 1, tt.client.calls)
			assert.Equal(t, model.SourceFallback, result.Source)
			assert.Equal(t, tt.wantWarning, result.Warning)
			assert.Equal(t, FallbackFor(testProfile()), result.Recommendations)
		})
	}
}

func TestProvider_AlwaysReturnsFourCategories(t *testing.T) {
	replies := []string{validReply, "{}", "garbage", `{"soil_advice": null}`}
	for _, reply := range replies {
		for _, crop := range model.Crops {
			profile := testProfile()
			profile.SelectedCrop = crop

			result := NewProvider(&fakeClient{reply: reply}, testLogger()).Generate(context.Background(), profile)

			assert.Len(t, result.Recommendations.Categories(), 4)
			for _, category := range result.Recommendations.Categories() {
				assert.NotNil(t, category.Tips)
			}
		}
	}
}
