package advisor

import (
	"fmt"

	"github.com/Veraticus/smart-farming/internal/model"
)

// Fallback builds template advice for a crop, season and province. The
// result depends on nothing else, so equal inputs give equal output.
func Fallback(crop model.Crop, season model.Season, province model.Province) model.RecommendationSet {
	return model.RecommendationSet{
		WeatherAdvice: []string{
			fmt.Sprintf("Monitor local weather forecasts daily for %s conditions in %s", season, province),
			"Watch for frost warnings and protect crops accordingly",
			"Track precipitation levels for optimal irrigation scheduling",
			"Plan fieldwork around weather windows to maximize efficiency",
		},
		PestAdvice: []string{
			fmt.Sprintf("Scout fields regularly for common %s pests in your region", crop),
			"Implement integrated pest management strategies to reduce chemical use",
			"Use crop rotation to naturally reduce pest pressure",
			"Monitor pest thresholds before applying treatments",
		},
		SoilAdvice: []string{
			"Conduct soil tests to determine nutrient levels and pH balance",
			fmt.Sprintf("Apply fertilizers based on %s requirements and soil test results", crop),
			"Monitor soil moisture levels regularly for optimal crop growth",
			"Consider adding organic matter to improve soil structure",
		},
		SustainabilityTips: []string{
			"Practice crop rotation to maintain soil health and reduce disease",
			"Reduce chemical inputs where possible through IPM strategies",
			"Implement water conservation techniques like drip irrigation",
			"Use cover crops during off-season to prevent erosion",
		},
	}
}

// FallbackFor is Fallback applied to the relevant fields of profile.
func FallbackFor(profile model.FarmerProfile) model.RecommendationSet {
	return Fallback(profile.SelectedCrop, profile.Season, profile.Province)
}
