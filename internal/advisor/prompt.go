package advisor

import (
	"fmt"

	"github.com/Veraticus/smart-farming/internal/model"
)

// SystemPrompt is sent with every generation request.
const SystemPrompt = "You are an expert Canadian agricultural advisor. Always respond with valid JSON only."

const promptTemplate = `As an expert agricultural advisor for Canadian farming, provide specific recommendations for:

Farmer Profile:
- Name: %s
- Province: %s
- Season: %s
- Crop Stage: %s
- Selected Crop: %s

Please provide detailed recommendations in the following categories:
1. Weather-Based Advice (3-4 specific tips)
2. Pest & Disease Management (3-4 actionable items)
3. Soil & Fertilizer Guidance (3-4 recommendations)
4. Sustainable Farming Tips (3-4 practices)

Format your response as JSON with exactly these keys: weather_advice, pest_advice, soil_advice, sustainability_tips (each containing an array of strings). Only return the JSON, no other text.`

// BuildPrompt renders the user prompt for profile.
func BuildPrompt(profile model.FarmerProfile) string {
	return fmt.Sprintf(promptTemplate,
		profile.Name,
		profile.Province,
		profile.Season,
		profile.CropStage,
		profile.SelectedCrop,
	)
}
