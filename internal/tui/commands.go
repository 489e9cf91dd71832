package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/smart-farming/internal/advisor"
	"github.com/Veraticus/smart-farming/internal/model"
)

// generateRecommendations runs the advisor off the update loop. The result
// is applied to the session when recommendationsMsg arrives.
func (m Model) generateRecommendations(profile model.FarmerProfile) tea.Cmd {
	ctx := m.config.Context
	gen := m.advisor
	return func() tea.Msg {
		if gen == nil {
			return recommendationsMsg{
				profile: profile,
				result: advisor.Result{
					Recommendations: advisor.FallbackFor(profile),
					Source:          model.SourceFallback,
				},
			}
		}
		return recommendationsMsg{
			profile: profile,
			result:  gen.Generate(ctx, profile),
		}
	}
}
