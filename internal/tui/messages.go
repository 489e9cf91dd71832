package tui

import (
	"github.com/Veraticus/smart-farming/internal/advisor"
	"github.com/Veraticus/smart-farming/internal/model"
)

// recommendationsMsg carries the provider result back to the update loop.
type recommendationsMsg struct {
	profile model.FarmerProfile
	result  advisor.Result
}
