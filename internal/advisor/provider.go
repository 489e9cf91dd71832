package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/Veraticus/smart-farming/internal/llm"
	"github.com/Veraticus/smart-farming/internal/model"
)

// WarningMalformed is shown when the live reply could not be decoded.
const WarningMalformed = "AI response was not in correct format. Using fallback recommendations."

// UnavailableWarning is shown when the live service failed for cause.
func UnavailableWarning(cause string) string {
	return fmt.Sprintf("Error with AI service (%s). Using fallback recommendations.", cause)
}

// failureCause condenses a client error into a few words for the user.
func failureCause(err error) string {
	var apiErr *llm.APIError
	var netErr net.Error
	switch {
	case errors.As(err, &apiErr):
		return fmt.Sprintf("status %d", apiErr.StatusCode)
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "request failed"
	}
}

// Result is the outcome of one Generate call.
type Result struct {
	Source          model.RecommendationSource
	Warning         string
	Recommendations model.RecommendationSet
}

// Provider generates recommendations, preferring the configured client.
type Provider struct {
	client llm.Client
	logger *slog.Logger
}

// NewProvider creates a provider. A nil client means every call uses the
// fallback generator.
func NewProvider(client llm.Client, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{
		client: client,
		logger: logger,
	}
}

// Generate returns recommendations for profile. It never fails: any
// problem with the live service degrades to the fallback generator and is
// reported through Result.Warning.
func (p *Provider) Generate(ctx context.Context, profile model.FarmerProfile) Result {
	if p.client == nil {
		return Result{
			Recommendations: FallbackFor(profile),
			Source:          model.SourceFallback,
		}
	}

	content, err := p.client.Complete(ctx, BuildPrompt(profile), SystemPrompt)
	if err != nil {
		p.logger.Warn("recommendation request failed, using fallback",
			"crop", profile.SelectedCrop,
			"province", profile.Province,
			"error", err)
		return p.fallback(profile, UnavailableWarning(failureCause(err)))
	}

	set, err := Decode(content)
	if err != nil {
		p.logger.Warn("recommendation response malformed, using fallback",
			"crop", profile.SelectedCrop,
			"error", err)
		return p.fallback(profile, WarningMalformed)
	}

	p.logger.Info("recommendations generated",
		"crop", profile.SelectedCrop,
		"season", profile.Season,
		"tips", set.Len())

	return Result{
		Recommendations: set,
		Source:          model.SourceLive,
	}
}

func (p *Provider) fallback(profile model.FarmerProfile, warning string) Result {
	return Result{
		Recommendations: FallbackFor(profile),
		Source:          model.SourceFallback,
		Warning:         warning,
	}
}
